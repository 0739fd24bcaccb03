package optimizer

import (
	"fmt"

	G "gorgonia.org/gorgonia"
)

// AdamConfig describes a configuration of the Adam optimizer
type AdamConfig struct {
	LearningRate float64 `json:"learning_rate"`
	Beta1        float64 `json:"beta_1"`
	Beta2        float64 `json:"beta_2"`
	Epsilon      float64 `json:"epsilon"` // Smoothing factor
}

// NewAdamConfig returns an AdamConfig with default hyperparameters
func NewAdamConfig() AdamConfig {
	return AdamConfig{
		LearningRate: 0.001,
		Beta1:        0.9,
		Beta2:        0.999,
		Epsilon:      1e-7,
	}
}

// NewAdam returns a new Adam optimizer Spec
func NewAdam(learningRate, beta1, beta2, epsilon float64) (Spec, error) {
	return New(AdamConfig{
		LearningRate: learningRate,
		Beta1:        beta1,
		Beta2:        beta2,
		Epsilon:      epsilon,
	})
}

// Type returns the type tag the configuration decodes from
func (a AdamConfig) Type() Type { return Adam }

// Validate returns an error if the configuration describes an
// impossible optimizer
func (a AdamConfig) Validate() error {
	if err := validateRate(a.LearningRate); err != nil {
		return err
	}
	if a.Beta1 <= 0 || a.Beta1 >= 1 {
		return fmt.Errorf("beta_1 must be in (0, 1) but got %v", a.Beta1)
	}
	if a.Beta2 <= 0 || a.Beta2 >= 1 {
		return fmt.Errorf("beta_2 must be in (0, 1) but got %v", a.Beta2)
	}
	if a.Epsilon <= 0 {
		return fmt.Errorf("epsilon must be positive but got %v", a.Epsilon)
	}
	return nil
}

// Create returns a new Gorgonia Adam Solver as described by the
// AdamConfig
func (a AdamConfig) Create() (G.Solver, error) {
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("create: %v", err)
	}

	solver := G.NewAdamSolver(
		G.WithLearnRate(a.LearningRate),
		G.WithEps(a.Epsilon),
		G.WithBeta1(a.Beta1),
		G.WithBeta2(a.Beta2),
	)
	return solver, nil
}
