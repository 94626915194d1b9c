// Package thermo evaluates species thermodynamics from CEA curve fits.
//
// The package is built from four pieces:
//
//   - [TempCache]: powers and logarithm of one temperature, computed once
//   - [CurveFit]: the 2 or 3 coefficient intervals of one species
//   - [CurveFitTable]: curve fits for every active species of a mixture
//   - [CEAEvaluator]: species and mixture Cp, Cv, H, E, S from a table
//
// Each interval carries ten coefficients a0..a9 (a7 is unused):
//
//	Cp/R =  a0/T² + a1/T      + a2     + a3·T   + a4·T²   + a5·T³   + a6·T⁴
//	H/RT = -a0/T² + a1·lnT/T  + a2     + a3·T/2 + a4·T²/3 + a5·T³/4 + a6·T⁴/5 + a8/T
//	S/R  = -a0/2T² - a1/T     + a2·lnT + a3·T   + a4·T²/2 + a5·T³/3 + a6·T⁴/4 + a9
//
// # Example
//
//	table := thermo.NewCurveFitTable[float64](mix)
//	_ = parsing.ReadCEADefault(table)
//	eval, err := thermo.NewCEAEvaluator(table)
//	c := thermo.NewTempCache(1500.0)
//	cp := eval.Cp(&c, 0) // J/kg-K
//
// # Precision
//
// Every type is generic over [numeric.Float]; float32 tables evaluate in
// single precision throughout. Temperatures are not validated: T <= 0 or T
// outside the tabulated range produces whatever the polynomials give.
//
// # Thread Safety
//
// Tables and evaluators are read-only once built and may be shared between
// goroutines. AddCurveFit must not run concurrently with evaluation. A
// TempCache belongs to the goroutine that created it.
package thermo
