// Package numeric holds the scalar constraints shared by the thermodynamic
// evaluators.
//
// Every evaluator is generic over [Float], so the same curve fits can be
// evaluated in single or double precision. Decomposition short-circuits never
// return a literal 0; they go through [ZeroLike] or [ZeroLikeSlice] so the
// result keeps the caller's precision and batch width.
package numeric

import "math"

// Float is the working precision of an evaluation.
type Float interface {
	~float32 | ~float64
}

// ZeroLike returns the additive identity of x's type.
func ZeroLike[F Float](F) F {
	var zero F
	return zero
}

// ZeroLikeSlice returns a zero batch with the same width as xs.
func ZeroLikeSlice[F Float](xs []F) []F {
	return make([]F, len(xs))
}

// Log is math.Log carried out in float64 and converted back to F.
func Log[F Float](x F) F {
	return F(math.Log(float64(x)))
}

// Max returns the larger of a and b.
func Max[F Float](a, b F) F {
	if a > b {
		return a
	}
	return b
}

// Dot returns sum(a[i]*b[i]) over the shorter of the two slices.
func Dot[F Float](a, b []F) F {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum F
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
