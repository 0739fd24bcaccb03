// Package preprocess implements state preprocessing configurations
// and their evaluation.
//
// A preprocessing_spec is an ordered list of preprocessor nodes. A
// Stack materialized from the list applies each preprocessor to its
// predecessor's output. Preprocessors operate on dense float64
// tensors.
package preprocess

import (
	"encoding/json"
	"fmt"

	"gorgonia.org/tensor"

	"github.com/agentspec/agentspec/spec"
)

// Type describes different types of preprocessors that are available
type Type string

// Available preprocessor types
const (
	MovingStandardize Type = "moving_standardize"
	ImageResize       Type = "image_resize"
	Divide            Type = "divide"
	Multiply          Type = "multiply"
)

// Config describes a single preprocessor.
type Config interface {
	// Type returns the type tag the configuration decodes from
	Type() Type

	// Validate returns an error if the configuration describes an
	// impossible preprocessor
	Validate() error

	// Create returns a new Preprocessor described by the
	// configuration. The configuration should be validated before
	// preprocessors are created from it.
	Create() Preprocessor
}

// Preprocessor transforms states before an agent sees them.
// Preprocessors may track running statistics across calls to Apply.
type Preprocessor interface {
	// Apply returns the preprocessed form of x. The input tensor is
	// not modified.
	Apply(x *tensor.Dense) (*tensor.Dense, error)

	// Reset clears any running statistics
	Reset()
}

var registry = spec.NewRegistry("preprocessor")

func init() {
	registry.Register(string(MovingStandardize), MovingStandardizeConfig{})
	registry.Register(string(ImageResize), NewImageResizeConfig())
	registry.Register(string(Divide), NewDivideConfig())
	registry.Register(string(Multiply), NewMultiplyConfig())
}

// Types returns the type tags of all registered preprocessors.
func Types() []string { return registry.Tags() }

// Layer wraps a Config so that it can be JSON marshalled and
// unmarshalled with an inline "type" tag.
type Layer struct {
	Config
}

// NewLayer returns a Layer wrapping the given configuration.
func NewLayer(c Config) (Layer, error) {
	if c == nil {
		return Layer{}, fmt.Errorf("new: no preprocessor configuration")
	}
	if err := c.Validate(); err != nil {
		return Layer{}, fmt.Errorf("new: %v", err)
	}
	return Layer{Config: c}, nil
}

// MarshalJSON implements the json.Marshaler interface
func (l Layer) MarshalJSON() ([]byte, error) {
	if l.Config == nil {
		return nil, fmt.Errorf("marshal: no preprocessor configuration")
	}
	return spec.MarshalNode(string(l.Config.Type()), l.Config)
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (l *Layer) UnmarshalJSON(data []byte) error {
	decoded, _, err := registry.Decode(data)
	if err != nil {
		return err
	}
	l.Config = decoded.(Config)
	return nil
}

// Spec is an ordered list of preprocessor nodes, applied first to
// last.
type Spec []Layer

// FromJSON returns the Spec described by a preprocessing_spec array.
func FromJSON(data []byte) (Spec, error) {
	var s Spec
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate returns an error if any preprocessor of the stack is
// impossible.
func (s Spec) Validate() error {
	for i, layer := range s {
		if layer.Config == nil {
			return fmt.Errorf("preprocessor %v: no configuration", i)
		}
		if err := layer.Validate(); err != nil {
			return fmt.Errorf("preprocessor %v (%v): %v", i,
				layer.Type(), err)
		}
	}
	return nil
}

// Create returns a new Stack of the preprocessors the Spec describes.
func (s Spec) Create() (*Stack, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	preprocessors := make([]Preprocessor, len(s))
	for i, layer := range s {
		preprocessors[i] = layer.Config.Create()
	}
	return &Stack{preprocessors: preprocessors}, nil
}

// Stack applies a sequence of preprocessors in order.
type Stack struct {
	preprocessors []Preprocessor
}

// Apply runs x through each preprocessor of the stack in order and
// returns the final output.
func (s *Stack) Apply(x *tensor.Dense) (*tensor.Dense, error) {
	var err error
	for i, preprocessor := range s.preprocessors {
		x, err = preprocessor.Apply(x)
		if err != nil {
			return nil, fmt.Errorf("apply: preprocessor %v: %v", i, err)
		}
	}
	return x, nil
}

// Reset clears the running statistics of every preprocessor in the
// stack.
func (s *Stack) Reset() {
	for _, preprocessor := range s.preprocessors {
		preprocessor.Reset()
	}
}

// Len returns the number of preprocessors in the stack.
func (s *Stack) Len() int { return len(s.preprocessors) }
