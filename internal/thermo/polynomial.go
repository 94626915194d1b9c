package thermo

import "github.com/san-kum/thermochem/internal/numeric"

// Properties are the nondimensional values of one species at one temperature.
type Properties[F numeric.Float] struct {
	CpOverR F
	HOverRT F
	SOverR  F
}

func (f *CurveFit[F]) CpOverR(c *TempCache[F]) F {
	return cpOverR(f.Coefficients(f.interval(c)), c)
}

func (f *CurveFit[F]) HOverRT(c *TempCache[F]) F {
	return hOverRT(f.Coefficients(f.interval(c)), c)
}

func (f *CurveFit[F]) SOverR(c *TempCache[F]) F {
	return sOverR(f.Coefficients(f.interval(c)), c)
}

// Evaluate computes Cp/R, H/RT and S/R from one interval lookup.
func (f *CurveFit[F]) Evaluate(c *TempCache[F]) Properties[F] {
	return f.EvaluateInterval(f.interval(c), c)
}

// EvaluateInterval evaluates interval i regardless of where T falls.
func (f *CurveFit[F]) EvaluateInterval(i int, c *TempCache[F]) Properties[F] {
	a := f.Coefficients(i)
	return Properties[F]{
		CpOverR: cpOverR(a, c),
		HOverRT: hOverRT(a, c),
		SOverR:  sOverR(a, c),
	}
}

func (f *CurveFit[F]) DCpOverRDT(c *TempCache[F]) F {
	return dCpOverRDT(f.Coefficients(f.interval(c)), c)
}

func (f *CurveFit[F]) DHOverRTDT(c *TempCache[F]) F {
	return dHOverRTDT(f.Coefficients(f.interval(c)), c)
}

// DSOverRDT is (Cp/R)/T.
func (f *CurveFit[F]) DSOverRDT(c *TempCache[F]) F {
	return cpOverR(f.Coefficients(f.interval(c)), c) * c.InvT
}

// HRTMinusSR is H/RT - S/R, the nondimensional Gibbs energy.
func (f *CurveFit[F]) HRTMinusSR(c *TempCache[F]) F {
	a := f.Coefficients(f.interval(c))
	return hOverRT(a, c) - sOverR(a, c)
}

func (f *CurveFit[F]) DHRTMinusSRDT(c *TempCache[F]) F {
	a := f.Coefficients(f.interval(c))
	return dHOverRTDT(a, c) - cpOverR(a, c)*c.InvT
}

func cpOverR[F numeric.Float](a []F, c *TempCache[F]) F {
	return a[0]*c.InvT2 + a[1]*c.InvT + a[2] +
		a[3]*c.T + a[4]*c.T2 + a[5]*c.T3 + a[6]*c.T4
}

func hOverRT[F numeric.Float](a []F, c *TempCache[F]) F {
	return -a[0]*c.InvT2 + a[1]*c.InvT*c.LnT + a[2] +
		a[3]*c.T/2 + a[4]*c.T2/3 + a[5]*c.T3/4 + a[6]*c.T4/5 +
		a[8]*c.InvT
}

func sOverR[F numeric.Float](a []F, c *TempCache[F]) F {
	return -a[0]*c.InvT2/2 - a[1]*c.InvT + a[2]*c.LnT +
		a[3]*c.T + a[4]*c.T2/2 + a[5]*c.T3/3 + a[6]*c.T4/4 +
		a[9]
}

func dCpOverRDT[F numeric.Float](a []F, c *TempCache[F]) F {
	invT3 := c.InvT2 * c.InvT
	return -2*a[0]*invT3 - a[1]*c.InvT2 +
		a[3] + 2*a[4]*c.T + 3*a[5]*c.T2 + 4*a[6]*c.T3
}

func dHOverRTDT[F numeric.Float](a []F, c *TempCache[F]) F {
	invT3 := c.InvT2 * c.InvT
	return 2*a[0]*invT3 + a[1]*c.InvT2*(1-c.LnT) +
		a[3]/2 + 2*a[4]*c.T/3 + 3*a[5]*c.T2/4 + 4*a[6]*c.T3/5 -
		a[8]*c.InvT2
}
