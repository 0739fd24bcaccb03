package sequence

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLengths(t *testing.T) {
	tests := []struct {
		name      string
		terminals []bool
		expected  []int
	}{
		{"two sequences", []bool{false, false, true, false, true},
			[]int{3, 2}},
		{"cut off", []bool{false, false, false}, []int{3}},
		{"single steps", []bool{true, true}, []int{1, 1}},
		{"empty", []bool{}, []int{}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, Lengths(test.terminals))
		})
	}
}

func TestDecays(t *testing.T) {
	lengths, decays := Decays(
		[]bool{false, false, true, false, true},
		0.5,
	)
	require.Equal(t, []int{3, 2}, lengths)
	require.Equal(t, []float64{1, 0.5, 0.25, 1, 0.5}, decays)
}

func TestDiscountedCumSum(t *testing.T) {
	// Halving discounts stay exact in binary floating point
	require.Equal(t, []float64{2.75, 3.5, 3},
		DiscountedCumSum([]float64{1, 2, 3}, 0.5))

	out := DiscountedCumSum([]float64{1, 0, 0, 1}, 0.9)
	expected := []float64{1 + 0.9*0.9*0.9, 0.9 * 0.9, 0.9, 1}
	require.Len(t, out, len(expected))
	for i := range expected {
		require.InDelta(t, expected[i], out[i], 1e-12)
	}

	require.Empty(t, DiscountedCumSum([]float64{}, 0.9))
}

func TestDiscountedCumSumLeavesInput(t *testing.T) {
	xs := []float64{1, 2, 3}
	DiscountedCumSum(xs, 0.5)
	require.Equal(t, []float64{1, 2, 3}, xs)
}

func TestAdvantages(t *testing.T) {
	rewards := []float64{1, 1}
	values := []float64{0.5, 0.6}

	// With gamma = lambda = 1, advantages are cumulative sums of the
	// TD errors 1.1 and 1.1
	adv, returns, err := Advantages(rewards, values, 0.7, 1, 1)
	require.NoError(t, err)
	require.Len(t, adv, 2)
	require.InDelta(t, 2.2, adv[0], 1e-12)
	require.InDelta(t, 1.1, adv[1], 1e-12)
	require.Len(t, returns, 2)
	require.InDelta(t, 2.7, returns[0], 1e-12)
	require.InDelta(t, 1.7, returns[1], 1e-12)

	// gamma = lambda = 0.5: TD errors 0.8 and 0.75 decay by 0.25
	adv, returns, err = Advantages(rewards, values, 0.7, 0.5, 0.5)
	require.NoError(t, err)
	require.InDelta(t, 0.9875, adv[0], 1e-12)
	require.InDelta(t, 0.75, adv[1], 1e-12)
	require.InDelta(t, 1.675, returns[0], 1e-12)
	require.InDelta(t, 1.35, returns[1], 1e-12)
}

func TestAdvantagesLengthMismatch(t *testing.T) {
	_, _, err := Advantages([]float64{1, 2}, []float64{1}, 0, 0.9, 0.95)
	require.Error(t, err)
}

func TestAdvantagesEmpty(t *testing.T) {
	adv, returns, err := Advantages([]float64{}, []float64{}, 0, 0.9,
		0.95)
	require.NoError(t, err)
	require.Empty(t, adv)
	require.Empty(t, returns)
}

func TestStandardize(t *testing.T) {
	out := Standardize([]float64{1, 2, 3})
	require.Len(t, out, 3)
	require.InDelta(t, -1, out[0], 1e-6)
	require.InDelta(t, 0, out[1], 1e-6)
	require.InDelta(t, 1, out[2], 1e-6)

	// Constant vectors standardize to zero instead of dividing by a
	// zero deviation
	require.Equal(t, []float64{0, 0, 0}, Standardize([]float64{5, 5, 5}))

	require.Equal(t, []float64{0}, Standardize([]float64{7}))
	require.Empty(t, Standardize([]float64{}))
}

func nStepBatch() *Batch {
	return &Batch{
		States: [][]float64{{0}, {1}, {2}, {3}, {4}},
		Actions: [][]float64{
			{10}, {11}, {12}, {13}, {14},
		},
		Rewards: []float64{1, 2, 3, 4, 5},
		NextStates: [][]float64{
			{1}, {2}, {3}, {4}, {5},
		},
		Terminals: []bool{false, false, false, false, false},
	}
}

func TestNStepAdjust(t *testing.T) {
	batch := nStepBatch()
	require.NoError(t, batch.NStepAdjust(3, 0.9))

	require.Equal(t, 3, batch.Len())
	require.NoError(t, batch.Validate())

	// Each reward folds in the two discounted successors
	expected := []float64{
		1 + 0.9*2 + 0.9*0.9*3,
		2 + 0.9*3 + 0.9*0.9*4,
		3 + 0.9*4 + 0.9*0.9*5,
	}
	for i := range expected {
		require.InDelta(t, expected[i], batch.Rewards[i], 1e-9)
	}

	// Bootstrap states move n steps ahead
	require.Equal(t, [][]float64{{3}, {4}, {5}}, batch.NextStates)
	require.Equal(t, [][]float64{{0}, {1}, {2}}, batch.States)
	require.Equal(t, [][]float64{{10}, {11}, {12}}, batch.Actions)
}

func TestNStepAdjustTerminals(t *testing.T) {
	batch := nStepBatch()
	batch.Terminals[2] = true
	require.NoError(t, batch.NStepAdjust(3, 0.9))

	require.Equal(t, 3, batch.Len())

	// Folding consumes the terminal step's reward, then stops
	require.InDelta(t, 1+0.9*2+0.9*0.9*3, batch.Rewards[0], 1e-9)
	require.InDelta(t, 2+0.9*3, batch.Rewards[1], 1e-9)

	// Windows starting at a terminal are left alone
	require.Equal(t, 3.0, batch.Rewards[2])
	require.Equal(t, []float64{3}, batch.NextStates[2])

	require.Equal(t, []bool{false, false, true}, batch.Terminals)
}

func TestNStepAdjustNoOp(t *testing.T) {
	batch := nStepBatch()
	require.NoError(t, batch.NStepAdjust(1, 0.9))
	require.Equal(t, 5, batch.Len())
	require.Equal(t, []float64{1, 2, 3, 4, 5}, batch.Rewards)
}

func TestNStepAdjustErrors(t *testing.T) {
	require.Error(t, nStepBatch().NStepAdjust(0, 0.9))
	require.Error(t, nStepBatch().NStepAdjust(6, 0.9))

	short := nStepBatch()
	short.Terminals = short.Terminals[:4]
	require.Error(t, short.NStepAdjust(2, 0.9))
}
