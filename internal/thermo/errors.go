package thermo

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrIncompleteTable indicates an active species without curve fit data.
	ErrIncompleteTable = errors.New("thermo: curve fit table not fully populated")

	// ErrMalformedCoefficients indicates a coefficient block that is not a
	// whole number of 10-value intervals.
	ErrMalformedCoefficients = errors.New("thermo: coefficient count is not a positive multiple of 10")

	// ErrTooManyIntervals indicates more intervals than the temperature table has.
	ErrTooManyIntervals = errors.New("thermo: too many temperature intervals")

	// ErrInactiveSpecies indicates a species name that is not active in the mixture.
	ErrInactiveSpecies = errors.New("thermo: species not in mixture")
)

// IncompleteTableError lists the active species that never received a fit.
type IncompleteTableError struct {
	Missing []string
}

func (e *IncompleteTableError) Error() string {
	return fmt.Sprintf("%s: missing %s", ErrIncompleteTable, strings.Join(e.Missing, ", "))
}

func (e *IncompleteTableError) Unwrap() error {
	return ErrIncompleteTable
}
