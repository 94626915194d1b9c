package thermo

import "github.com/san-kum/thermochem/internal/numeric"

// temperatureBounds are the CEA interval edges in Kelvin:
// [200,1000), [1000,6000), [6000,20000).
var temperatureBounds = [...]float64{200, 1000, 6000, 20000}

// MaxIntervals is the largest number of intervals a curve fit may hold.
const MaxIntervals = len(temperatureBounds) - 1

// TempCache holds the powers of T shared by the Cp, H and S polynomials.
type TempCache[F numeric.Float] struct {
	T     F
	InvT  F
	InvT2 F
	T2    F
	T3    F
	T4    F
	LnT   F

	interval int
}

// NewTempCache computes the cached quantities for T.
func NewTempCache[F numeric.Float](T F) TempCache[F] {
	T2 := T * T
	invT := 1 / T
	return TempCache[F]{
		T:        T,
		InvT:     invT,
		InvT2:    invT * invT,
		T2:       T2,
		T3:       T2 * T,
		T4:       T2 * T2,
		LnT:      numeric.Log(T),
		interval: intervalIn(float64(T), MaxIntervals),
	}
}

// Interval is the index on the full three-interval table. Fits with fewer
// intervals clamp it to their last one.
func (c *TempCache[F]) Interval() int {
	return c.interval
}

// intervalIn picks the interval of an n-interval fit whose [low, high)
// contains T, clamping to the first and last interval outside the table.
func intervalIn(T float64, n int) int {
	for i := n - 1; i > 0; i-- {
		if T >= temperatureBounds[i] {
			return i
		}
	}
	return 0
}
