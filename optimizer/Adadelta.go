package optimizer

import (
	"fmt"

	G "gorgonia.org/gorgonia"
)

// AdadeltaConfig describes a configuration of the Adadelta optimizer
type AdadeltaConfig struct {
	LearningRate float64 `json:"learning_rate"`
	Rho          float64 `json:"rho"` // Decay rate of the squared gradient average
	Epsilon      float64 `json:"epsilon"`
}

// NewAdadeltaConfig returns an AdadeltaConfig with default
// hyperparameters
func NewAdadeltaConfig() AdadeltaConfig {
	return AdadeltaConfig{
		LearningRate: 0.001,
		Rho:          0.95,
		Epsilon:      1e-8,
	}
}

// NewAdadelta returns a new Adadelta optimizer Spec
func NewAdadelta(learningRate, rho, epsilon float64) (Spec, error) {
	return New(AdadeltaConfig{
		LearningRate: learningRate,
		Rho:          rho,
		Epsilon:      epsilon,
	})
}

// Type returns the type tag the configuration decodes from
func (a AdadeltaConfig) Type() Type { return Adadelta }

// Validate returns an error if the configuration describes an
// impossible optimizer
func (a AdadeltaConfig) Validate() error {
	if err := validateRate(a.LearningRate); err != nil {
		return err
	}
	if a.Rho <= 0 || a.Rho >= 1 {
		return fmt.Errorf("rho must be in (0, 1) but got %v", a.Rho)
	}
	if a.Epsilon <= 0 {
		return fmt.Errorf("epsilon must be positive but got %v", a.Epsilon)
	}
	return nil
}

// Create reports that the graph backend has no Adadelta solver.
func (a AdadeltaConfig) Create() (G.Solver, error) {
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("create: %v", err)
	}
	return nil, fmt.Errorf("create: adadelta: %w", errUnsupported)
}
