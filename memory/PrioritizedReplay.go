package memory

import "fmt"

// PrioritizedReplayConfig describes a replay memory whose sampling is
// prioritized by TD error.
//
// Alpha controls how strongly priorities skew sampling: 0 recovers
// uniform sampling. Beta controls the strength of the importance
// sampling correction, annealed towards 1 in practice.
type PrioritizedReplayConfig struct {
	Size  int     `json:"capacity"`
	Alpha float64 `json:"alpha"`
	Beta  float64 `json:"beta"`
}

// NewPrioritizedReplayConfig returns a PrioritizedReplayConfig with
// default hyperparameters
func NewPrioritizedReplayConfig() PrioritizedReplayConfig {
	return PrioritizedReplayConfig{Size: 10000, Alpha: 0.6, Beta: 0.4}
}

// NewPrioritizedReplay returns a new prioritized replay memory Spec
func NewPrioritizedReplay(capacity int, alpha,
	beta float64) (Spec, error) {
	return New(PrioritizedReplayConfig{
		Size:  capacity,
		Alpha: alpha,
		Beta:  beta,
	})
}

// Type returns the type tag the configuration decodes from
func (p PrioritizedReplayConfig) Type() Type { return PrioritizedReplay }

// Validate returns an error if the configuration describes an
// impossible memory
func (p PrioritizedReplayConfig) Validate() error {
	if err := validateCapacity(p.Size); err != nil {
		return err
	}
	if p.Alpha < 0 {
		return fmt.Errorf("alpha must be non-negative but got %v", p.Alpha)
	}
	if p.Beta < 0 || p.Beta > 1 {
		return fmt.Errorf("beta must be in [0, 1] but got %v", p.Beta)
	}
	return nil
}

// Capacity returns the maximum number of records the memory holds
func (p PrioritizedReplayConfig) Capacity() int { return p.Size }

// Prioritized returns whether sampling is prioritized by TD error
func (p PrioritizedReplayConfig) Prioritized() bool { return true }
