package thermo

import (
	"fmt"

	"github.com/san-kum/thermochem/internal/chem"
	"github.com/san-kum/thermochem/internal/numeric"
)

// Record is one species entry of a curve fit source.
type Record[F numeric.Float] struct {
	Name              string
	FormationEnthalpy F
	Coefficients      []F
}

// CurveFitTable stores the curve fits of every active species of a mixture,
// indexed like the mixture.
type CurveFitTable[F numeric.Float] struct {
	mix  *chem.Mixture
	fits []*CurveFit[F]
}

func NewCurveFitTable[F numeric.Float](mix *chem.Mixture) *CurveFitTable[F] {
	return &CurveFitTable[F]{
		mix:  mix,
		fits: make([]*CurveFit[F], mix.NSpecies()),
	}
}

// AddCurveFit appends one or more 10-coefficient intervals to the named
// species. Species that are not active are ignored.
func (t *CurveFitTable[F]) AddCurveFit(name string, coeffs []F) error {
	return t.AddRecord(Record[F]{Name: name, Coefficients: coeffs})
}

// AddRecord is AddCurveFit that also carries the formation enthalpy.
func (t *CurveFitTable[F]) AddRecord(rec Record[F]) error {
	s, ok := t.mix.Index(rec.Name)
	if !ok {
		return nil
	}

	if t.fits[s] == nil {
		fit, err := NewCurveFit(rec.Coefficients, rec.FormationEnthalpy)
		if err != nil {
			return fmt.Errorf("%s: %w", rec.Name, err)
		}
		t.fits[s] = fit
		return nil
	}

	if err := t.fits[s].appendIntervals(rec.Coefficients); err != nil {
		return fmt.Errorf("%s: %w", rec.Name, err)
	}
	if rec.FormationEnthalpy != 0 {
		t.fits[s].hForm = rec.FormationEnthalpy
	}
	return nil
}

// Check reports whether every active species has a curve fit.
func (t *CurveFitTable[F]) Check() bool {
	for _, fit := range t.fits {
		if fit == nil || fit.NIntervals() == 0 {
			return false
		}
	}
	return true
}

// Missing lists the active species without a curve fit.
func (t *CurveFitTable[F]) Missing() []string {
	var missing []string
	for s, fit := range t.fits {
		if fit == nil || fit.NIntervals() == 0 {
			missing = append(missing, t.mix.Species(s).Name)
		}
	}
	return missing
}

// Validate returns an *IncompleteTableError when Check fails.
func (t *CurveFitTable[F]) Validate() error {
	if missing := t.Missing(); len(missing) > 0 {
		return &IncompleteTableError{Missing: missing}
	}
	return nil
}

// CurveFit returns the fit of species s, or nil if none was added.
func (t *CurveFitTable[F]) CurveFit(s int) *CurveFit[F] {
	return t.fits[s]
}

// IntervalFor returns the interval of species s used at temperature T. A
// species without a fit yet reports interval 0.
func (t *CurveFitTable[F]) IntervalFor(s int, T F) int {
	if t.fits[s] == nil {
		return 0
	}
	return t.fits[s].IntervalFor(T)
}

func (t *CurveFitTable[F]) Mixture() *chem.Mixture {
	return t.mix
}
