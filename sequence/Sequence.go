// Package sequence implements pure trajectory calculations over
// batches of sampled experience: sequence bookkeeping from terminal
// markers, discounted cumulative sums, generalized advantage
// estimation, and n-step reward folding.
//
// All functions leave their inputs unmodified and return fresh
// slices.
package sequence

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Lengths returns the length of each (sub)sequence in a batch, where
// a true terminal marker denotes the last step of a sequence. A
// trailing sequence cut off by the end of the batch is included.
//
// For example, terminals [false false true false true] gives lengths
// [3, 2].
func Lengths(terminals []bool) []int {
	lengths := make([]int, 0)
	length := 0
	for _, terminal := range terminals {
		length++
		if terminal {
			lengths = append(lengths, length)
			length = 0
		}
	}
	if length > 0 {
		lengths = append(lengths, length)
	}
	return lengths
}

// Decays returns the length of each (sub)sequence in a batch along
// with per-step decay values restarting at sequence boundaries. The
// decay for a step is decay^k where k is the number of steps since
// the sequence started.
//
// For example, decay 0.5 with terminals [false false true false true]
// gives lengths [3, 2] and decays [1 0.5 0.25 1 0.5].
func Decays(terminals []bool, decay float64) ([]int, []float64) {
	lengths := make([]int, 0)
	decays := make([]float64, 0, len(terminals))

	length := 0
	value := 1.0
	for _, terminal := range terminals {
		decays = append(decays, value)
		value *= decay
		length++
		if terminal {
			lengths = append(lengths, length)
			length = 0
			value = 1.0
		}
	}
	if length > 0 {
		lengths = append(lengths, length)
	}
	return lengths, decays
}

// DiscountedCumSum computes and returns the discounted cumulative
// sum of all elements of a vector. Given a vector x = [x0 x1 ... xN]
// and discount ℽ, this function computes and returns:
//
// [
//	x0 + ℽ x1 + ℽ^2 x2 + ... + ℽ^N xN
//	x1 + ℽ^1 x2 + ... + ℽ^(N-1) xN
//	x2 + ℽ^1 x3 + ... + ℽ^(N-2) xN
// ...
//	xN
// ]
func DiscountedCumSum(xs []float64, discount float64) []float64 {
	if len(xs) == 0 {
		return []float64{}
	}

	x := mat.NewVecDense(len(xs), xs)
	discounts := mat.NewVecDense(x.Len(), nil)
	cumSums := make([]float64, x.Len())
	nextScaled := mat.NewVecDense(x.Len(), nil)
	backing := nextScaled.RawVector().Data

	for i := 0; i < x.Len(); i++ {
		discounts.ScaleVec(discount, discounts)
		discounts.SetVec(x.Len()-i-1, 1)

		nextScaled.MulElemVec(discounts, x)
		cumSums[x.Len()-i-1] = floats.Sum(backing[x.Len()-i-1:])
	}

	return cumSums
}
