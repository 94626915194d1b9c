package thermo

import (
	"fmt"

	"github.com/san-kum/thermochem/internal/chem"
	"github.com/san-kum/thermochem/internal/numeric"
)

// CEAEvaluator turns a fully populated table into dimensional species and
// mixture properties. Species arguments are mixture indices; fraction vectors
// must have one entry per active species.
type CEAEvaluator[F numeric.Float] struct {
	table *CurveFitTable[F]
	mix   *chem.Mixture
	fits  []*CurveFit[F]
	r     []F
}

// NewCEAEvaluator fails with the table's *IncompleteTableError if any active
// species lacks a curve fit.
func NewCEAEvaluator[F numeric.Float](table *CurveFitTable[F]) (*CEAEvaluator[F], error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}

	mix := table.Mixture()
	r := make([]F, mix.NSpecies())
	for s := range r {
		r[s] = F(mix.R(s))
	}

	return &CEAEvaluator[F]{
		table: table,
		mix:   mix,
		fits:  table.fits,
		r:     r,
	}, nil
}

func (e *CEAEvaluator[F]) Table() *CurveFitTable[F] { return e.table }

func (e *CEAEvaluator[F]) Mixture() *chem.Mixture { return e.mix }

// SpeciesIndex resolves a species name to its index.
func (e *CEAEvaluator[F]) SpeciesIndex(name string) (int, error) {
	s, ok := e.mix.Index(name)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrInactiveSpecies, name)
	}
	return s, nil
}

func (e *CEAEvaluator[F]) CpOverR(c *TempCache[F], s int) F {
	return e.fits[s].CpOverR(c)
}

// Cp is the species specific heat at constant pressure in J/kg-K.
func (e *CEAEvaluator[F]) Cp(c *TempCache[F], s int) F {
	return e.r[s] * e.fits[s].CpOverR(c)
}

func (e *CEAEvaluator[F]) CvOverR(c *TempCache[F], s int) F {
	return e.fits[s].CpOverR(c) - 1
}

// Cv is the species specific heat at constant volume in J/kg-K.
func (e *CEAEvaluator[F]) Cv(c *TempCache[F], s int) F {
	return e.r[s] * (e.fits[s].CpOverR(c) - 1)
}

func (e *CEAEvaluator[F]) HOverRT(c *TempCache[F], s int) F {
	return e.fits[s].HOverRT(c)
}

// H is the species enthalpy in J/kg, including formation enthalpy.
func (e *CEAEvaluator[F]) H(c *TempCache[F], s int) F {
	return e.r[s] * c.T * e.fits[s].HOverRT(c)
}

// E is the species internal energy H - R_s*T in J/kg.
func (e *CEAEvaluator[F]) E(c *TempCache[F], s int) F {
	return e.r[s] * c.T * (e.fits[s].HOverRT(c) - 1)
}

func (e *CEAEvaluator[F]) SOverR(c *TempCache[F], s int) F {
	return e.fits[s].SOverR(c)
}

// S is the species entropy at the reference pressure in J/kg-K.
func (e *CEAEvaluator[F]) S(c *TempCache[F], s int) F {
	return e.r[s] * e.fits[s].SOverR(c)
}

func (e *CEAEvaluator[F]) DCpOverRDT(c *TempCache[F], s int) F {
	return e.fits[s].DCpOverRDT(c)
}

func (e *CEAEvaluator[F]) HRTMinusSR(c *TempCache[F], s int) F {
	return e.fits[s].HRTMinusSR(c)
}

func (e *CEAEvaluator[F]) DHRTMinusSRDT(c *TempCache[F], s int) F {
	return e.fits[s].DHRTMinusSRDT(c)
}

// Evaluate returns Cp/R, H/RT and S/R of species s.
func (e *CEAEvaluator[F]) Evaluate(c *TempCache[F], s int) Properties[F] {
	return e.fits[s].Evaluate(c)
}

// CpOverRAll writes Cp/R of every species into out, allocating when out is
// too short, and returns it.
func (e *CEAEvaluator[F]) CpOverRAll(c *TempCache[F], out []F) []F {
	out = e.batch(out)
	for s, fit := range e.fits {
		out[s] = fit.CpOverR(c)
	}
	return out
}

func (e *CEAEvaluator[F]) HOverRTAll(c *TempCache[F], out []F) []F {
	out = e.batch(out)
	for s, fit := range e.fits {
		out[s] = fit.HOverRT(c)
	}
	return out
}

func (e *CEAEvaluator[F]) SOverRAll(c *TempCache[F], out []F) []F {
	out = e.batch(out)
	for s, fit := range e.fits {
		out[s] = fit.SOverR(c)
	}
	return out
}

func (e *CEAEvaluator[F]) batch(out []F) []F {
	if len(out) < len(e.fits) {
		return make([]F, len(e.fits))
	}
	return out[:len(e.fits)]
}

func (e *CEAEvaluator[F]) checkFractions(n int) {
	if n != len(e.fits) {
		panic(fmt.Sprintf("%v: got %d, want %d", chem.ErrFractionLength, n, len(e.fits)))
	}
}

// CpMix is the mass-weighted mixture Cp in J/kg-K.
func (e *CEAEvaluator[F]) CpMix(c *TempCache[F], massFractions []F) F {
	e.checkFractions(len(massFractions))
	var cp F
	for s, y := range massFractions {
		cp += y * e.Cp(c, s)
	}
	return cp
}

// CvMix is the mass-weighted mixture Cv in J/kg-K.
func (e *CEAEvaluator[F]) CvMix(c *TempCache[F], massFractions []F) F {
	e.checkFractions(len(massFractions))
	var cv F
	for s, y := range massFractions {
		cv += y * e.Cv(c, s)
	}
	return cv
}

// HMix is the mass-weighted mixture enthalpy in J/kg.
func (e *CEAEvaluator[F]) HMix(c *TempCache[F], massFractions []F) F {
	e.checkFractions(len(massFractions))
	var h F
	for s, y := range massFractions {
		h += y * e.H(c, s)
	}
	return h
}

// EMix is the mass-weighted mixture internal energy in J/kg.
func (e *CEAEvaluator[F]) EMix(c *TempCache[F], massFractions []F) F {
	e.checkFractions(len(massFractions))
	var en F
	for s, y := range massFractions {
		en += y * e.E(c, s)
	}
	return en
}

// CpMolarMix is the mole-weighted mixture Cp in J/mol-K.
func (e *CEAEvaluator[F]) CpMolarMix(c *TempCache[F], moleFractions []F) F {
	e.checkFractions(len(moleFractions))
	var cpR F
	for s, x := range moleFractions {
		cpR += x * e.fits[s].CpOverR(c)
	}
	return cpR * F(chem.RUniversal)
}

// MixtureCp builds a cache for T and returns CpMix.
func (e *CEAEvaluator[F]) MixtureCp(T F, massFractions []F) F {
	c := NewTempCache(T)
	return e.CpMix(&c, massFractions)
}
