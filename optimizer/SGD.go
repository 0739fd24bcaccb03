package optimizer

import (
	"fmt"

	G "gorgonia.org/gorgonia"
)

// SGDConfig describes a configuration of stochastic gradient descent
type SGDConfig struct {
	LearningRate float64 `json:"learning_rate"`
	Momentum     float64 `json:"momentum"`
	Nesterov     bool    `json:"nesterov"`
}

// NewSGDConfig returns an SGDConfig with default hyperparameters
func NewSGDConfig() SGDConfig {
	return SGDConfig{LearningRate: 0.01}
}

// NewSGD returns a new stochastic gradient descent optimizer Spec
func NewSGD(learningRate, momentum float64, nesterov bool) (Spec, error) {
	return New(SGDConfig{
		LearningRate: learningRate,
		Momentum:     momentum,
		Nesterov:     nesterov,
	})
}

// Type returns the type tag the configuration decodes from
func (s SGDConfig) Type() Type { return SGD }

// Validate returns an error if the configuration describes an
// impossible optimizer
func (s SGDConfig) Validate() error {
	if err := validateRate(s.LearningRate); err != nil {
		return err
	}
	if s.Momentum < 0 || s.Momentum >= 1 {
		return fmt.Errorf("momentum must be in [0, 1) but got %v",
			s.Momentum)
	}
	if s.Nesterov && s.Momentum == 0 {
		return fmt.Errorf("nesterov momentum needs a positive momentum")
	}
	return nil
}

// Create returns a new Gorgonia Vanilla Solver as described by the
// SGDConfig. Momentum is not supported by the graph backend.
func (s SGDConfig) Create() (G.Solver, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("create: %v", err)
	}
	if s.Momentum != 0 {
		return nil, fmt.Errorf("create: sgd with momentum: %w",
			errUnsupported)
	}

	solver := G.NewVanillaSolver(
		G.WithLearnRate(s.LearningRate),
	)
	return solver, nil
}
