// Package schedule implements time-decaying hyperparameter schedules
// so that they can be JSON serialized into configuration files.
//
// A schedule maps a global timestep to a value, usually an exploration
// rate or a learning rate. Decaying schedules hold their initial value
// until a start timestep, decay over a fixed window of timesteps, and
// hold their final value afterwards.
package schedule

import (
	"fmt"

	"github.com/agentspec/agentspec/spec"
)

// Type describes different types of schedules that are available
type Type string

// Available schedule types
const (
	Constant    Type = "constant"
	Linear      Type = "linear_decay"
	Polynomial  Type = "polynomial_decay"
	Exponential Type = "exponential_decay"
)

// Config describes a schedule and evaluates it at a timestep.
type Config interface {
	// Type returns the type tag the configuration decodes from
	Type() Type

	// Validate returns an error if the configuration describes an
	// impossible schedule
	Validate() error

	// Value returns the schedule's value at global timestep t
	Value(t int64) float64
}

// Decaying is implemented by schedules that anneal away from a
// starting value. It lets callers derive a schedule with a new
// starting value without knowing the concrete decay shape.
type Decaying interface {
	Config

	// StartValue returns the value the schedule decays from
	StartValue() float64

	// WithStartValue returns a copy of the configuration decaying
	// from a new starting value
	WithStartValue(from float64) Config
}

var registry = spec.NewRegistry("schedule")

func init() {
	registry.Register(string(Constant), NewConstantConfig())
	registry.Register(string(Linear), NewLinearConfig())
	registry.Register(string(Polynomial), NewPolynomialConfig())
	registry.Register(string(Exponential), NewExponentialConfig())
}

// Types returns the type tags of all registered schedules.
func Types() []string { return registry.Tags() }

// Spec wraps a schedule Config so that it can be JSON marshalled and
// unmarshalled with an inline "type" tag.
type Spec struct {
	Config
}

// New returns a Spec wrapping the given configuration.
func New(c Config) (Spec, error) {
	if c == nil {
		return Spec{}, fmt.Errorf("new: no schedule configuration")
	}
	if err := c.Validate(); err != nil {
		return Spec{}, fmt.Errorf("new: %v", err)
	}
	return Spec{Config: c}, nil
}

// FromJSON returns the Spec described by a schedule node.
func FromJSON(data []byte) (Spec, error) {
	var s Spec
	if err := s.UnmarshalJSON(data); err != nil {
		return Spec{}, err
	}
	return s, nil
}

// MarshalJSON implements the json.Marshaler interface
func (s Spec) MarshalJSON() ([]byte, error) {
	if s.Config == nil {
		return nil, fmt.Errorf("marshal: no schedule configuration")
	}
	return spec.MarshalNode(string(s.Config.Type()), s.Config)
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (s *Spec) UnmarshalJSON(data []byte) error {
	decoded, _, err := registry.Decode(data)
	if err != nil {
		return err
	}
	s.Config = decoded.(Config)
	return nil
}

// Decay holds the decay window fields shared by all decaying
// schedules. Before StartTimestep the schedule's value is From; from
// StartTimestep+NumTimesteps onwards it is To.
type Decay struct {
	From          float64 `json:"from"`
	To            float64 `json:"to"`
	StartTimestep int64   `json:"start_timestep"`
	NumTimesteps  int64   `json:"num_timesteps"`
}

// value evaluates the decay window at global timestep t, delegating
// to decay for timesteps inside the window. The argument of decay is
// the number of timesteps since StartTimestep, cast to a float.
func (d Decay) value(t int64, decay func(in float64) float64) float64 {
	if t <= d.StartTimestep {
		return d.From
	}
	if t >= d.StartTimestep+d.NumTimesteps {
		return d.To
	}
	return decay(float64(t - d.StartTimestep))
}

// validate returns an error if the decay window is degenerate.
func (d Decay) validate() error {
	if d.StartTimestep < 0 {
		return fmt.Errorf("start_timestep must be non-negative but got %v",
			d.StartTimestep)
	}
	if d.NumTimesteps < 1 {
		return fmt.Errorf("num_timesteps must be positive but got %v",
			d.NumTimesteps)
	}
	return nil
}
