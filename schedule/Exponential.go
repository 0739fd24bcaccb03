package schedule

import (
	"fmt"
	"math"
)

// ExponentialConfig describes an exponential decay with a half-life:
//
//	value(t) = from * 0.5^(t/half_life)
//
// where t counts timesteps since the start of the decay window. The
// final value only applies once the decay window has elapsed; inside
// the window the value follows the half-life curve regardless of the
// configured final value.
//
// The half-life may be given directly through half_life or as a
// number of half-lives to fit into the decay window through
// num_half_lives. When both are set, half_life wins.
type ExponentialConfig struct {
	Decay
	HalfLife     float64 `json:"half_life,omitempty"`
	NumHalfLives int64   `json:"num_half_lives"`
}

// NewExponentialConfig returns an ExponentialConfig with default
// hyperparameters: a decay from 1 to 0 over the first 10000
// timesteps with 10 half-lives.
func NewExponentialConfig() ExponentialConfig {
	return ExponentialConfig{
		Decay: Decay{From: 1.0, To: 0.0, StartTimestep: 0,
			NumTimesteps: 10000},
		NumHalfLives: 10,
	}
}

// NewExponential returns an exponential decay Spec with an explicit
// half-life in timesteps.
func NewExponential(from, to float64, startTimestep, numTimesteps int64,
	halfLife float64) (Spec, error) {
	return New(ExponentialConfig{
		Decay: Decay{
			From:          from,
			To:            to,
			StartTimestep: startTimestep,
			NumTimesteps:  numTimesteps,
		},
		HalfLife: halfLife,
	})
}

// Type returns the type tag the configuration decodes from
func (e ExponentialConfig) Type() Type { return Exponential }

// Validate returns an error if the configuration describes an
// impossible schedule
func (e ExponentialConfig) Validate() error {
	if err := e.Decay.validate(); err != nil {
		return err
	}
	if e.HalfLife < 0 {
		return fmt.Errorf("half_life must be positive but got %v",
			e.HalfLife)
	}
	if e.HalfLife == 0 && e.NumHalfLives < 1 {
		return fmt.Errorf("num_half_lives must be positive but got %v",
			e.NumHalfLives)
	}
	return nil
}

// Value returns the schedule's value at global timestep t
func (e ExponentialConfig) Value(t int64) float64 {
	return e.value(t, func(in float64) float64 {
		return e.From * math.Pow(0.5, in/e.halfLife())
	})
}

// StartValue returns the value the schedule decays from
func (e ExponentialConfig) StartValue() float64 { return e.From }

// WithStartValue returns a copy of the configuration decaying from a
// new starting value
func (e ExponentialConfig) WithStartValue(from float64) Config {
	e.From = from
	return e
}

// halfLife returns the half-life period in timesteps.
func (e ExponentialConfig) halfLife() float64 {
	if e.HalfLife > 0 {
		return e.HalfLife
	}
	return float64(e.NumTimesteps) / float64(e.NumHalfLives)
}
