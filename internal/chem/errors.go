package chem

import "errors"

var (
	// ErrUnknownSpecies indicates a species name missing from the catalog.
	ErrUnknownSpecies = errors.New("chem: unknown species")

	// ErrDuplicateSpecies indicates a species listed twice in a mixture.
	ErrDuplicateSpecies = errors.New("chem: duplicate species")

	// ErrFractionLength indicates a composition vector of the wrong size.
	ErrFractionLength = errors.New("chem: fraction vector length does not match mixture")

	// ErrInvalidSpecies indicates catalog data that cannot describe a species.
	ErrInvalidSpecies = errors.New("chem: invalid species data")
)
