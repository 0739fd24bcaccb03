package schedule

import (
	"fmt"
	"math"
)

// PolynomialConfig describes a polynomial decay from an initial to a
// final value:
//
//	value(t) = (from - to) * (1 - t/num_timesteps)^power + to
//
// where t counts timesteps since the start of the decay window.
type PolynomialConfig struct {
	Decay
	Power float64 `json:"power"`
}

// NewPolynomialConfig returns a PolynomialConfig with default
// hyperparameters: a decay from 1 to 0 over the first 10000 timesteps
// with power 1.
func NewPolynomialConfig() PolynomialConfig {
	return PolynomialConfig{
		Decay: Decay{From: 1.0, To: 0.0, StartTimestep: 0,
			NumTimesteps: 10000},
		Power: 1.0,
	}
}

// NewPolynomial returns a polynomial decay Spec.
func NewPolynomial(from, to float64, startTimestep, numTimesteps int64,
	power float64) (Spec, error) {
	return New(PolynomialConfig{
		Decay: Decay{
			From:          from,
			To:            to,
			StartTimestep: startTimestep,
			NumTimesteps:  numTimesteps,
		},
		Power: power,
	})
}

// Type returns the type tag the configuration decodes from
func (p PolynomialConfig) Type() Type { return Polynomial }

// Validate returns an error if the configuration describes an
// impossible schedule
func (p PolynomialConfig) Validate() error {
	if err := p.Decay.validate(); err != nil {
		return err
	}
	if p.Power <= 0 {
		return fmt.Errorf("power must be positive but got %v", p.Power)
	}
	return nil
}

// Value returns the schedule's value at global timestep t
func (p PolynomialConfig) Value(t int64) float64 {
	return p.value(t, func(in float64) float64 {
		return polynomial(p.From, p.To, in, float64(p.NumTimesteps), p.Power)
	})
}

// StartValue returns the value the schedule decays from
func (p PolynomialConfig) StartValue() float64 { return p.From }

// WithStartValue returns a copy of the configuration decaying from a
// new starting value
func (p PolynomialConfig) WithStartValue(from float64) Config {
	p.From = from
	return p
}

// LinearConfig describes a linear decay from an initial to a final
// value. It is a polynomial decay with power fixed to 1.
type LinearConfig struct {
	Decay
}

// NewLinearConfig returns a LinearConfig with default
// hyperparameters: a decay from 1 to 0 over the first 10000
// timesteps.
func NewLinearConfig() LinearConfig {
	return LinearConfig{
		Decay: Decay{From: 1.0, To: 0.0, StartTimestep: 0,
			NumTimesteps: 10000},
	}
}

// NewLinear returns a linear decay Spec.
func NewLinear(from, to float64, startTimestep,
	numTimesteps int64) (Spec, error) {
	return New(LinearConfig{
		Decay: Decay{
			From:          from,
			To:            to,
			StartTimestep: startTimestep,
			NumTimesteps:  numTimesteps,
		},
	})
}

// Type returns the type tag the configuration decodes from
func (l LinearConfig) Type() Type { return Linear }

// Validate returns an error if the configuration describes an
// impossible schedule
func (l LinearConfig) Validate() error { return l.Decay.validate() }

// Value returns the schedule's value at global timestep t
func (l LinearConfig) Value(t int64) float64 {
	return l.value(t, func(in float64) float64 {
		return polynomial(l.From, l.To, in, float64(l.NumTimesteps), 1.0)
	})
}

// StartValue returns the value the schedule decays from
func (l LinearConfig) StartValue() float64 { return l.From }

// WithStartValue returns a copy of the configuration decaying from a
// new starting value
func (l LinearConfig) WithStartValue(from float64) Config {
	l.From = from
	return l
}

func polynomial(from, to, in, window, power float64) float64 {
	return (from-to)*math.Pow(1.0-in/window, power) + to
}
