package chem

import (
	"fmt"

	"github.com/san-kum/thermochem/internal/numeric"
)

// Mixture is the ordered set of active species.
type Mixture struct {
	species []Species
	index   map[string]int
}

// NewMixture activates the named species in the given order.
func NewMixture(names []string, cat *Catalog) (*Mixture, error) {
	m := &Mixture{
		species: make([]Species, 0, len(names)),
		index:   make(map[string]int, len(names)),
	}
	for _, name := range names {
		if _, dup := m.index[name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSpecies, name)
		}
		sp, ok := cat.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSpecies, name)
		}
		m.index[name] = len(m.species)
		m.species = append(m.species, sp)
	}
	return m, nil
}

// NewMixtureFromSpecies builds a mixture from explicit species data.
func NewMixtureFromSpecies(species []Species) (*Mixture, error) {
	m := &Mixture{
		species: make([]Species, 0, len(species)),
		index:   make(map[string]int, len(species)),
	}
	for _, sp := range species {
		if err := sp.validate(); err != nil {
			return nil, err
		}
		if _, dup := m.index[sp.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSpecies, sp.Name)
		}
		m.index[sp.Name] = len(m.species)
		m.species = append(m.species, sp)
	}
	return m, nil
}

func (m *Mixture) NSpecies() int { return len(m.species) }

func (m *Mixture) Species(s int) Species { return m.species[s] }

// Index returns the active index of name.
func (m *Mixture) Index(name string) (int, bool) {
	s, ok := m.index[name]
	return s, ok
}

// IsActive reports whether name participates in the mixture.
func (m *Mixture) IsActive(name string) bool {
	_, ok := m.index[name]
	return ok
}

// Names returns the active species names in index order.
func (m *Mixture) Names() []string {
	names := make([]string, len(m.species))
	for i, sp := range m.species {
		names[i] = sp.Name
	}
	return names
}

// R returns the specific gas constant of species s in J/kg-K.
func (m *Mixture) R(s int) float64 { return m.species[s].GasConstant() }

// M returns the molar mass of species s in kg/mol.
func (m *Mixture) M(s int) float64 { return m.species[s].MolarMass }

func (m *Mixture) NTrDOFs(s int) float64 { return m.species[s].NTrDOFs }

func (m *Mixture) checkLen(n int) error {
	if n != len(m.species) {
		return fmt.Errorf("%w: got %d, want %d", ErrFractionLength, n, len(m.species))
	}
	return nil
}

// MixtureR returns sum(Y_s * R_s) for mass fractions Y.
func MixtureR[F numeric.Float](m *Mixture, massFractions []F) (F, error) {
	if err := m.checkLen(len(massFractions)); err != nil {
		return 0, err
	}
	var r F
	for s, y := range massFractions {
		r += y * F(m.R(s))
	}
	return r, nil
}

// MixtureMolarMass returns 1/sum(Y_s/M_s) in kg/mol.
func MixtureMolarMass[F numeric.Float](m *Mixture, massFractions []F) (F, error) {
	if err := m.checkLen(len(massFractions)); err != nil {
		return 0, err
	}
	var inv F
	for s, y := range massFractions {
		inv += y / F(m.M(s))
	}
	return 1 / inv, nil
}

// MassToMoleFractions converts Y to X.
func MassToMoleFractions[F numeric.Float](m *Mixture, massFractions []F) ([]F, error) {
	mw, err := MixtureMolarMass(m, massFractions)
	if err != nil {
		return nil, err
	}
	x := make([]F, len(massFractions))
	for s, y := range massFractions {
		x[s] = y * mw / F(m.M(s))
	}
	return x, nil
}

// MoleToMassFractions converts X to Y.
func MoleToMassFractions[F numeric.Float](m *Mixture, moleFractions []F) ([]F, error) {
	if err := m.checkLen(len(moleFractions)); err != nil {
		return nil, err
	}
	var mw F
	for s, x := range moleFractions {
		mw += x * F(m.M(s))
	}
	y := make([]F, len(moleFractions))
	for s, x := range moleFractions {
		y[s] = x * F(m.M(s)) / mw
	}
	return y, nil
}
