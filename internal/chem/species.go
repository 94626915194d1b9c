package chem

import "fmt"

// RUniversal is the universal gas constant in J/mol-K.
const RUniversal = 8.3144621

// Species is the static data the thermodynamics consume.
type Species struct {
	Name string
	// MolarMass in kg/mol.
	MolarMass float64
	// NTrDOFs is the translational plus rotational heat capacity in units of R.
	NTrDOFs float64
	Charge  int
}

// GasConstant returns R/M in J/kg-K.
func (s Species) GasConstant() float64 {
	return RUniversal / s.MolarMass
}

func (s Species) validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidSpecies)
	}
	if s.MolarMass <= 0 {
		return fmt.Errorf("%w: %s has molar mass %g", ErrInvalidSpecies, s.Name, s.MolarMass)
	}
	if s.NTrDOFs < 0 {
		return fmt.Errorf("%w: %s has negative degrees of freedom", ErrInvalidSpecies, s.Name)
	}
	return nil
}
