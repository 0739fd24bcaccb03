package optimizer

import (
	"fmt"

	G "gorgonia.org/gorgonia"
)

// AdagradConfig describes a configuration of the Adagrad optimizer
type AdagradConfig struct {
	LearningRate            float64 `json:"learning_rate"`
	InitialAccumulatorValue float64 `json:"initial_accumulator_value"`
}

// NewAdagradConfig returns an AdagradConfig with default
// hyperparameters
func NewAdagradConfig() AdagradConfig {
	return AdagradConfig{
		LearningRate:            0.001,
		InitialAccumulatorValue: 0.1,
	}
}

// NewAdagrad returns a new Adagrad optimizer Spec
func NewAdagrad(learningRate,
	initialAccumulatorValue float64) (Spec, error) {
	return New(AdagradConfig{
		LearningRate:            learningRate,
		InitialAccumulatorValue: initialAccumulatorValue,
	})
}

// Type returns the type tag the configuration decodes from
func (a AdagradConfig) Type() Type { return Adagrad }

// Validate returns an error if the configuration describes an
// impossible optimizer
func (a AdagradConfig) Validate() error {
	if err := validateRate(a.LearningRate); err != nil {
		return err
	}
	if a.InitialAccumulatorValue <= 0 {
		return fmt.Errorf("initial_accumulator_value must be positive "+
			"but got %v", a.InitialAccumulatorValue)
	}
	return nil
}

// Create reports that the graph backend has no Adagrad solver.
func (a AdagradConfig) Create() (G.Solver, error) {
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("create: %v", err)
	}
	return nil, fmt.Errorf("create: adagrad: %w", errUnsupported)
}
