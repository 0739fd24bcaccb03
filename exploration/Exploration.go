// Package exploration implements exploration configurations so that
// they can be JSON serialized into configuration files.
//
// The only exploration strategy described by the documents is
// epsilon-greedy action selection with an annealed epsilon, so an
// exploration_spec is a plain object holding an epsilon_spec, which
// in turn wraps a decay schedule.
package exploration

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/agentspec/agentspec/schedule"
)

// Config describes the exploration_spec section of an agent document.
type Config struct {
	EpsilonSpec *EpsilonConfig `json:"epsilon_spec,omitempty"`
}

// EpsilonConfig describes an annealed epsilon-greedy exploration.
type EpsilonConfig struct {
	DecaySpec schedule.Spec `json:"decay_spec"`
}

// NewEpsilonGreedy returns a Config annealing epsilon along the given
// schedule.
func NewEpsilonGreedy(decay schedule.Spec) (Config, error) {
	config := Config{EpsilonSpec: &EpsilonConfig{DecaySpec: decay}}
	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("new: %v", err)
	}
	return config, nil
}

// Validate returns an error if the configuration describes an
// impossible exploration.
func (c Config) Validate() error {
	if c.EpsilonSpec == nil {
		return nil
	}
	if c.EpsilonSpec.DecaySpec.Config == nil {
		return fmt.Errorf("epsilon_spec: no decay_spec")
	}
	if err := c.EpsilonSpec.DecaySpec.Validate(); err != nil {
		return fmt.Errorf("epsilon_spec: decay_spec: %v", err)
	}
	return nil
}

// EpsilonGreedy returns whether the configuration describes
// epsilon-greedy exploration.
func (c Config) EpsilonGreedy() bool { return c.EpsilonSpec != nil }

// EpsilonAt returns the exploration epsilon at global timestep t.
func (c Config) EpsilonAt(t int64) (float64, error) {
	if c.EpsilonSpec == nil {
		return 0, fmt.Errorf("epsilon at: no epsilon_spec")
	}
	if c.EpsilonSpec.DecaySpec.Config == nil {
		return 0, fmt.Errorf("epsilon at: no decay_spec")
	}
	return c.EpsilonSpec.DecaySpec.Value(t), nil
}

// SampleStart returns a copy of the configuration whose epsilon
// schedule decays from a fresh starting value, drawn uniformly from
// [minValue, from) where from is the current starting value. Workers
// of a distributed topology use this to spread their exploration.
//
// The starting value must not be below minValue.
func (c Config) SampleStart(minValue float64, seed uint64) (Config, error) {
	if c.EpsilonSpec == nil {
		return Config{}, fmt.Errorf("sample start: no epsilon_spec to " +
			"resample")
	}

	decaying, ok := c.EpsilonSpec.DecaySpec.Config.(schedule.Decaying)
	if !ok {
		return Config{}, fmt.Errorf("sample start: %v schedules have no "+
			"starting value to resample",
			c.EpsilonSpec.DecaySpec.Config.Type())
	}

	from := decaying.StartValue()
	if from < minValue {
		return Config{}, fmt.Errorf("sample start: minimum value %v must "+
			"not exceed the decay starting value %v", minValue, from)
	}

	dist := distuv.Uniform{
		Min: minValue,
		Max: from,
		Src: rand.NewSource(seed),
	}

	resampled, err := schedule.New(decaying.WithStartValue(dist.Rand()))
	if err != nil {
		return Config{}, fmt.Errorf("sample start: %v", err)
	}

	return Config{EpsilonSpec: &EpsilonConfig{DecaySpec: resampled}}, nil
}
