package thermo

import (
	"math"
	"testing"

	"github.com/san-kum/thermochem/internal/chem"
)

var n2Coeffs = []float64{
	2.21037122e+04, -3.81846145e+02, 6.08273815e+00, -8.53091381e-03, 1.38464610e-05,
	-9.62579293e-09, 2.51970560e-12, 0.00000000e+00, 7.10845911e+02, -1.07600320e+01,
	5.87709908e+05, -2.23924255e+03, 6.06694267e+00, -6.13965296e-04, 1.49179819e-07,
	-1.92309442e-11, 1.06194871e-15, 0.00000000e+00, 1.28320618e+04, -1.58663484e+01,
	8.30971200e+08, -6.42048187e+05, 2.02020507e+02, -3.06501961e-02, 2.48685558e-06,
	-9.70579208e-11, 1.43751673e-15, 0.00000000e+00, 4.93850663e+06, -1.67204791e+03,
}

// monatomic returns a constant Cp/R = 2.5 block for n intervals.
func monatomic(n int, c8, c9 float64) []float64 {
	coeffs := make([]float64, 0, n*CoeffsPerInterval)
	for i := 0; i < n; i++ {
		coeffs = append(coeffs, 0, 0, 2.5, 0, 0, 0, 0, 0, c8, c9)
	}
	return coeffs
}

func newTestMixture(t testing.TB, names ...string) *chem.Mixture {
	t.Helper()
	mix, err := chem.NewMixture(names, chem.DefaultCatalog())
	if err != nil {
		t.Fatalf("mixture: %v", err)
	}
	return mix
}

func near(got, want, tol float64) bool {
	return math.Abs(got-want) <= tol*math.Max(1, math.Abs(want))
}
