package sequence

import (
	"fmt"
	"math"
)

// Batch holds a batch of sampled transitions as parallel slices.
type Batch struct {
	States     [][]float64
	Actions    [][]float64
	Rewards    []float64
	NextStates [][]float64
	Terminals  []bool
}

// Len returns the number of transitions in the batch.
func (b *Batch) Len() int { return len(b.Rewards) }

// Validate returns an error if the batch's slices disagree on the
// number of transitions.
func (b *Batch) Validate() error {
	n := b.Len()
	if len(b.States) != n || len(b.Actions) != n ||
		len(b.NextStates) != n || len(b.Terminals) != n {
		return fmt.Errorf("batch slice lengths disagree: states %v, "+
			"actions %v, rewards %v, next states %v, terminals %v",
			len(b.States), len(b.Actions), n, len(b.NextStates),
			len(b.Terminals))
	}
	return nil
}

// NStepAdjust folds each transition's reward together with the
// discounted rewards of the following n-1 transitions and shifts its
// bootstrap state forward accordingly, then truncates the batch's
// tail, which has too few successors to adjust. Transitions marked
// terminal are left alone, and folding stops after consuming the
// reward of a terminal step. Terminal flags themselves are not
// rewritten.
//
// With n equal to 1 the batch is unchanged. The batch must hold at
// least n transitions.
func (b *Batch) NStepAdjust(n int, discount float64) error {
	if err := b.Validate(); err != nil {
		return fmt.Errorf("n-step adjust: %v", err)
	}
	if n < 1 {
		return fmt.Errorf("n-step adjust: n must be positive but "+
			"got %v", n)
	}
	if n > b.Len() {
		return fmt.Errorf("n-step adjust: batch of %v transitions "+
			"is too short for %v-step returns", b.Len(), n)
	}
	if n == 1 {
		return nil
	}

	for i := 0; i < b.Len()-n+1; i++ {
		if b.Terminals[i] {
			continue
		}
		for j := 1; j < n; j++ {
			b.NextStates[i] = b.NextStates[i+j]
			b.Rewards[i] += math.Pow(discount, float64(j)) *
				b.Rewards[i+j]

			// The remaining reward past a terminal is 0
			if b.Terminals[i+j] {
				break
			}
		}
	}

	newLen := b.Len() - n + 1
	b.States = b.States[:newLen]
	b.Actions = b.Actions[:newLen]
	b.Rewards = b.Rewards[:newLen]
	b.NextStates = b.NextStates[:newLen]
	b.Terminals = b.Terminals[:newLen]
	return nil
}
