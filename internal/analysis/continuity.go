package analysis

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/thermochem/internal/thermo"
)

// Jump is the mismatch between two neighbouring intervals at their shared
// boundary, relative to the lower interval's value.
type Jump struct {
	Species  string
	Boundary float64
	Interval int
	CpRel    float64
	HRel     float64
	SRel     float64
}

// Worst is the largest of the three relative jumps.
func (j Jump) Worst() float64 {
	return floats.Max([]float64{j.CpRel, j.HRel, j.SRel})
}

// Continuity compares each pair of adjacent intervals of species s at the
// upper bound of the lower one.
func Continuity(eval *Evaluator, s int) []Jump {
	fit := eval.Table().CurveFit(s)
	name := eval.Mixture().Species(s).Name

	var jumps []Jump
	for i := 0; i+1 < fit.NIntervals(); i++ {
		_, T := fit.Bounds(i)
		c := thermo.NewTempCache(T)
		lo := fit.EvaluateInterval(i, &c)
		hi := fit.EvaluateInterval(i+1, &c)
		jumps = append(jumps, Jump{
			Species:  name,
			Boundary: T,
			Interval: i,
			CpRel:    relDiff(lo.CpOverR, hi.CpOverR),
			HRel:     relDiff(lo.HOverRT, hi.HOverRT),
			SRel:     relDiff(lo.SOverR, hi.SOverR),
		})
	}
	return jumps
}

// ContinuityAll reports every boundary of every active species.
func ContinuityAll(eval *Evaluator) []Jump {
	var all []Jump
	for s := 0; s < eval.Mixture().NSpecies(); s++ {
		all = append(all, Continuity(eval, s)...)
	}
	return all
}

// MaxJump returns the jump with the largest Worst value. ok is false for an
// empty report.
func MaxJump(jumps []Jump) (j Jump, ok bool) {
	if len(jumps) == 0 {
		return Jump{}, false
	}
	worst := make([]float64, len(jumps))
	for i := range jumps {
		worst[i] = jumps[i].Worst()
	}
	return jumps[floats.MaxIdx(worst)], true
}

func relDiff(a, b float64) float64 {
	scale := math.Abs(a)
	if scale == 0 {
		return math.Abs(b - a)
	}
	return math.Abs(b-a) / scale
}
