package sequence

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Advantages computes generalized advantage estimates - GAE(λ) - and
// rewards-to-go for a single trajectory, following
// https://arxiv.org/abs/1506.02438. The rewards and values arguments
// hold the reward received and the state value estimate at each step
// of the trajectory.
//
// The lastVal argument should be 0 if the trajectory ended because
// the agent reached a terminal state, and otherwise it should be
// v(s), the value estimate of the last state. This bootstraps the
// rewards-to-go calculation to account for timesteps beyond an
// arbitrary episode horizon or epoch cutoff.
func Advantages(rewards, values []float64, lastVal, gamma,
	lambda float64) ([]float64, []float64, error) {
	if len(rewards) != len(values) {
		return nil, nil, fmt.Errorf("advantages: rewards and values "+
			"must have equal length but got %v and %v", len(rewards),
			len(values))
	}
	if len(rewards) == 0 {
		return []float64{}, []float64{}, nil
	}

	rews := make([]float64, 0, len(rewards)+1)
	rews = append(append(rews, rewards...), lastVal)
	vals := make([]float64, 0, len(values)+1)
	vals = append(append(vals, values...), lastVal)

	// GAE-lambda advantage calculation
	stateVals := mat.NewVecDense(len(vals)-1, vals[:len(vals)-1])
	nextStateVals := mat.NewVecDense(len(vals)-1, vals[1:])
	rewardsVec := mat.NewVecDense(len(rews)-1, rews[:len(rews)-1])

	deltas := mat.NewVecDense(stateVals.Len(), nil)
	deltas.AddScaledVec(rewardsVec, gamma, nextStateVals)
	deltas.SubVec(deltas, stateVals)

	adv := DiscountedCumSum(deltas.RawVector().Data, gamma*lambda)

	// Rewards-to-go
	rewsToGo := DiscountedCumSum(rews, gamma)

	return adv, rewsToGo[:len(rewsToGo)-1], nil
}

// Standardize returns xs standardized to mean 0 and standard
// deviation 1. The standard deviation is guarded by a small constant,
// so standardizing a constant vector returns zeros.
func Standardize(xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)
	if len(xs) == 0 {
		return out
	}

	mean := stat.Mean(xs, nil)
	floats.AddConst(-mean, out)

	if len(xs) > 1 {
		std := stat.StdDev(xs, nil) + 1e-8
		floats.Scale(1/std, out)
	}
	return out
}
