package optimizer

import (
	"fmt"

	G "gorgonia.org/gorgonia"
)

// RMSPropConfig describes a configuration of the RMSProp optimizer
type RMSPropConfig struct {
	LearningRate float64 `json:"learning_rate"`
	Decay        float64 `json:"decay"` // Discounting factor for the gradient history
	Momentum     float64 `json:"momentum"`
	Epsilon      float64 `json:"epsilon"`
}

// NewRMSPropConfig returns an RMSPropConfig with default
// hyperparameters
func NewRMSPropConfig() RMSPropConfig {
	return RMSPropConfig{
		LearningRate: 0.001,
		Decay:        0.9,
		Momentum:     0.0,
		Epsilon:      1e-10,
	}
}

// NewRMSProp returns a new RMSProp optimizer Spec
func NewRMSProp(learningRate, decay, momentum,
	epsilon float64) (Spec, error) {
	return New(RMSPropConfig{
		LearningRate: learningRate,
		Decay:        decay,
		Momentum:     momentum,
		Epsilon:      epsilon,
	})
}

// Type returns the type tag the configuration decodes from
func (r RMSPropConfig) Type() Type { return RMSProp }

// Validate returns an error if the configuration describes an
// impossible optimizer
func (r RMSPropConfig) Validate() error {
	if err := validateRate(r.LearningRate); err != nil {
		return err
	}
	if r.Decay <= 0 || r.Decay >= 1 {
		return fmt.Errorf("decay must be in (0, 1) but got %v", r.Decay)
	}
	if r.Momentum < 0 || r.Momentum >= 1 {
		return fmt.Errorf("momentum must be in [0, 1) but got %v",
			r.Momentum)
	}
	if r.Epsilon <= 0 {
		return fmt.Errorf("epsilon must be positive but got %v", r.Epsilon)
	}
	return nil
}

// Create returns a new Gorgonia RMSProp Solver as described by the
// RMSPropConfig. Momentum is not supported by the graph backend.
func (r RMSPropConfig) Create() (G.Solver, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("create: %v", err)
	}
	if r.Momentum != 0 {
		return nil, fmt.Errorf("create: rmsprop with momentum: %w",
			errUnsupported)
	}

	solver := G.NewRMSPropSolver(
		G.WithLearnRate(r.LearningRate),
		G.WithEps(r.Epsilon),
		G.WithRho(r.Decay),
	)
	return solver, nil
}
