// Package initializer implements weight initializer configurations so
// that they can be JSON serialized into configuration files and
// materialized as Gorgonia InitWFn.
package initializer

import (
	"fmt"

	G "gorgonia.org/gorgonia"

	"github.com/agentspec/agentspec/spec"
)

// Type describes different types of weight initializers that are
// available
type Type string

// Available initializer types
const (
	GlorotUniform Type = "glorot_uniform"
	GlorotNormal  Type = "glorot_normal"
	HeUniform     Type = "he_uniform"
	HeNormal      Type = "he_normal"
	Zeros         Type = "zeros"
	Ones          Type = "ones"
	Constant      Type = "constant"
	RandomUniform Type = "random_uniform"
	RandomNormal  Type = "random_normal"
)

// Config describes a weight initializer and can be used to create the
// Gorgonia InitWFn it describes.
type Config interface {
	// Type returns the type tag the configuration decodes from
	Type() Type

	// Validate returns an error if the configuration describes an
	// impossible initializer
	Validate() error

	// Create returns the Gorgonia InitWFn that the Config describes
	Create() G.InitWFn
}

var registry = spec.NewRegistry("initializer")

func init() {
	registry.Register(string(GlorotUniform), NewGlorotUniformConfig())
	registry.Register(string(GlorotNormal), NewGlorotNormalConfig())
	registry.Register(string(HeUniform), NewHeUniformConfig())
	registry.Register(string(HeNormal), NewHeNormalConfig())
	registry.Register(string(Zeros), ZerosConfig{})
	registry.Register(string(Ones), OnesConfig{})
	registry.Register(string(Constant), ConstantConfig{})
	registry.Register(string(RandomUniform), NewRandomUniformConfig())
	registry.Register(string(RandomNormal), NewRandomNormalConfig())
}

// Types returns the type tags of all registered initializers.
func Types() []string { return registry.Tags() }

// Spec wraps an initializer Config so that it can be JSON marshalled
// and unmarshalled with an inline "type" tag.
type Spec struct {
	Config
}

// New returns a Spec wrapping the given configuration.
func New(c Config) (Spec, error) {
	if c == nil {
		return Spec{}, fmt.Errorf("new: no initializer configuration")
	}
	if err := c.Validate(); err != nil {
		return Spec{}, fmt.Errorf("new: %v", err)
	}
	return Spec{Config: c}, nil
}

// FromJSON returns the Spec described by an initializer node.
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
		return nil, fmt.Errorf("marshal: no initializer configuration")
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
