package network

import (
	"fmt"

	"github.com/agentspec/agentspec/initializer"
)

// DenseConfig describes a fully connected layer.
type DenseConfig struct {
	Units      int        `json:"units"`
	Activation Activation `json:"activation"`

	// WeightsSpec optionally overrides the backend's default weight
	// initializer
	WeightsSpec *initializer.Spec `json:"weights_spec,omitempty"`

	UseBias bool `json:"use_bias"`
}

// NewDenseConfig returns a DenseConfig with default hyperparameters:
// a linear layer of one unit with a bias.
func NewDenseConfig() DenseConfig {
	return DenseConfig{Units: 1, Activation: Linear, UseBias: true}
}

// NewDense returns a dense Layer of the given width.
func NewDense(units int, activation Activation) (Layer, error) {
	return NewLayer(DenseConfig{
		Units:      units,
		Activation: activation,
		UseBias:    true,
	})
}

// Type returns the type tag the configuration decodes from
func (d DenseConfig) Type() Type { return Dense }

// Validate returns an error if the configuration describes an
// impossible layer
func (d DenseConfig) Validate() error {
	if d.Units < 1 {
		return fmt.Errorf("units must be positive but got %v", d.Units)
	}
	if err := d.Activation.Validate(); err != nil {
		return err
	}
	if d.WeightsSpec != nil {
		if d.WeightsSpec.Config == nil {
			return fmt.Errorf("weights_spec: no configuration")
		}
		if err := d.WeightsSpec.Validate(); err != nil {
			return fmt.Errorf("weights_spec: %v", err)
		}
	}
	return nil
}
