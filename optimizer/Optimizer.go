// Package optimizer implements gradient descent optimizer
// configurations so that they can be JSON serialized into
// configuration files and materialized as Gorgonia Solvers.
//
// A configuration is a description only. Decoding a document never
// touches the graph backend, so documents may describe optimizers the
// backend cannot build; Create reports those when asked.
package optimizer

import (
	"errors"
	"fmt"

	G "gorgonia.org/gorgonia"

	"github.com/agentspec/agentspec/spec"
)

// Type describes different types of optimizers that are available
type Type string

// Available optimizer types
const (
	Adam     Type = "adam"
	SGD      Type = "sgd"
	RMSProp  Type = "rmsprop"
	Adagrad  Type = "adagrad"
	Adadelta Type = "adadelta"
)

// Config describes an optimizer and can be used to create the
// Gorgonia Solver it describes.
type Config interface {
	// Type returns the type tag the configuration decodes from
	Type() Type

	// Validate returns an error if the configuration describes an
	// impossible optimizer
	Validate() error

	// Create returns the Gorgonia Solver the configuration
	// describes. Configurations the graph backend has no solver for
	// return an error for which IsUnsupported is true.
	Create() (G.Solver, error)
}

var registry = spec.NewRegistry("optimizer")

func init() {
	registry.Register(string(Adam), NewAdamConfig())
	registry.Register(string(SGD), NewSGDConfig())
	registry.Register(string(RMSProp), NewRMSPropConfig())
	registry.Register(string(Adagrad), NewAdagradConfig())
	registry.Register(string(Adadelta), NewAdadeltaConfig())
}

// Types returns the type tags of all registered optimizers.
func Types() []string { return registry.Tags() }

// Spec wraps an optimizer Config so that it can be JSON marshalled
// and unmarshalled with an inline "type" tag.
type Spec struct {
	Config
}

// New returns a Spec wrapping the given configuration.
func New(c Config) (Spec, error) {
	if c == nil {
		return Spec{}, fmt.Errorf("new: no optimizer configuration")
	}
	if err := c.Validate(); err != nil {
		return Spec{}, fmt.Errorf("new: %v", err)
	}
	return Spec{Config: c}, nil
}

// FromJSON returns the Spec described by an optimizer node.
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
		return nil, fmt.Errorf("marshal: no optimizer configuration")
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

var errUnsupported = errors.New("optimizer not supported by the graph " +
	"backend")

// IsUnsupported returns whether or not an error reports that a valid
// optimizer configuration has no Gorgonia Solver to materialize into.
func IsUnsupported(err error) bool {
	return errors.Is(err, errUnsupported)
}

// validateRate returns an error unless the learning rate is positive.
func validateRate(rate float64) error {
	if rate <= 0 {
		return fmt.Errorf("learning_rate must be positive but got %v", rate)
	}
	return nil
}
