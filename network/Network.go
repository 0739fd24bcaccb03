// Package network implements network and policy layer configurations
// so that they can be JSON serialized into configuration files.
//
// A network_spec is an ordered list of layer nodes. The
// configurations describe the layers only; no computation graph is
// built from them here.
package network

import (
	"encoding/json"
	"fmt"

	"github.com/agentspec/agentspec/spec"
)

// Type describes different types of network layers that are available
type Type string

// Available layer types
const (
	Dense  Type = "dense"
	Conv2D Type = "conv2d"
)

// LayerConfig describes a single network layer.
type LayerConfig interface {
	// Type returns the type tag the configuration decodes from
	Type() Type

	// Validate returns an error if the configuration describes an
	// impossible layer
	Validate() error
}

var layers = spec.NewRegistry("layer")

func init() {
	layers.Register(string(Dense), NewDenseConfig())
	layers.Register(string(Conv2D), NewConv2DConfig())
}

// LayerTypes returns the type tags of all registered layers.
func LayerTypes() []string { return layers.Tags() }

// Layer wraps a LayerConfig so that it can be JSON marshalled and
// unmarshalled with an inline "type" tag.
type Layer struct {
	LayerConfig
}

// NewLayer returns a Layer wrapping the given configuration.
func NewLayer(c LayerConfig) (Layer, error) {
	if c == nil {
		return Layer{}, fmt.Errorf("new: no layer configuration")
	}
	if err := c.Validate(); err != nil {
		return Layer{}, fmt.Errorf("new: %v", err)
	}
	return Layer{LayerConfig: c}, nil
}

// MarshalJSON implements the json.Marshaler interface
func (l Layer) MarshalJSON() ([]byte, error) {
	if l.LayerConfig == nil {
		return nil, fmt.Errorf("marshal: no layer configuration")
	}
	return spec.MarshalNode(string(l.LayerConfig.Type()), l.LayerConfig)
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (l *Layer) UnmarshalJSON(data []byte) error {
	decoded, _, err := layers.Decode(data)
	if err != nil {
		return err
	}
	l.LayerConfig = decoded.(LayerConfig)
	return nil
}

// Spec is an ordered list of layer nodes, input first.
type Spec []Layer

// FromJSON returns the Spec described by a network_spec array.
func FromJSON(data []byte) (Spec, error) {
	var s Spec
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate returns an error if any layer of the network is
// impossible.
func (s Spec) Validate() error {
	for i, layer := range s {
		if layer.LayerConfig == nil {
			return fmt.Errorf("layer %v: no configuration", i)
		}
		if err := layer.Validate(); err != nil {
			return fmt.Errorf("layer %v (%v): %v", i, layer.Type(), err)
		}
	}
	return nil
}

// OutputUnits returns the width of the last dense layer of the
// network, or 0 if the network has no dense layers.
func (s Spec) OutputUnits() int {
	for i := len(s) - 1; i >= 0; i-- {
		if dense, ok := s[i].LayerConfig.(DenseConfig); ok {
			return dense.Units
		}
	}
	return 0
}
