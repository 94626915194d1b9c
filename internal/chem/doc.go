// Package chem describes the chemical species a mixture is built from.
//
// A [Catalog] holds static per-species data (molar mass, translational and
// rotational degrees of freedom, charge). A [Mixture] selects the active
// species from a catalog and fixes their indices; every other package refers
// to species by that index.
//
//	cat := chem.DefaultCatalog()
//	mix, err := chem.NewMixture([]string{"N2", "O2", "NO", "N", "O"}, cat)
//	rN2 := mix.R(0) // J/kg-K
//
// Mixtures are read-only after construction and safe for concurrent use.
package chem
