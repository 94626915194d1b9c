package thermo

import (
	"fmt"

	"github.com/san-kum/thermochem/internal/numeric"
)

// CoeffsPerInterval is the number of coefficients stored per interval. Only
// nine are used; a7 is kept so blocks line up with the CEA layout.
const CoeffsPerInterval = 10

// CurveFit is the piecewise polynomial fit of a single species.
type CurveFit[F numeric.Float] struct {
	coeffs []F
	hForm  F
}

// NewCurveFit copies coeffs, which must hold 1 to MaxIntervals blocks of
// CoeffsPerInterval values. hForm is the formation enthalpy at 298.15 K in J/mol.
func NewCurveFit[F numeric.Float](coeffs []F, hForm F) (*CurveFit[F], error) {
	f := &CurveFit[F]{hForm: hForm}
	if err := f.appendIntervals(coeffs); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *CurveFit[F]) appendIntervals(coeffs []F) error {
	if len(coeffs) == 0 || len(coeffs)%CoeffsPerInterval != 0 {
		return fmt.Errorf("%w: got %d", ErrMalformedCoefficients, len(coeffs))
	}
	n := len(f.coeffs)/CoeffsPerInterval + len(coeffs)/CoeffsPerInterval
	if n > MaxIntervals {
		return fmt.Errorf("%w: %d > %d", ErrTooManyIntervals, n, MaxIntervals)
	}
	f.coeffs = append(f.coeffs, coeffs...)
	return nil
}

func (f *CurveFit[F]) NIntervals() int {
	return len(f.coeffs) / CoeffsPerInterval
}

// Coefficients returns a0..a9 of interval i. The slice aliases the fit and
// must not be modified.
func (f *CurveFit[F]) Coefficients(i int) []F {
	lo := i * CoeffsPerInterval
	hi := lo + CoeffsPerInterval
	return f.coeffs[lo:hi:hi]
}

// FormationEnthalpy is the enthalpy of formation at 298.15 K in J/mol.
func (f *CurveFit[F]) FormationEnthalpy() F {
	return f.hForm
}

// Bounds returns the documented temperature range of interval i, for
// 0 <= i < NIntervals(). Other values of i panic.
func (f *CurveFit[F]) Bounds(i int) (lo, hi F) {
	return F(temperatureBounds[i]), F(temperatureBounds[i+1])
}

// IntervalFor returns the interval whose [low, high) range contains T. T below
// the table uses interval 0 and T above it uses the last interval.
func (f *CurveFit[F]) IntervalFor(T F) int {
	return intervalIn(float64(T), f.NIntervals())
}

func (f *CurveFit[F]) interval(c *TempCache[F]) int {
	if last := f.NIntervals() - 1; c.interval > last {
		return last
	}
	return c.interval
}
