package network

import (
	"fmt"

	"github.com/agentspec/agentspec/initializer"
)

// Padding schemes for convolutional layers
const (
	Same  string = "same"
	Valid string = "valid"
)

// Conv2DConfig describes a two dimensional convolutional layer.
// KernelSize and Strides are square: a kernel size of 8 denotes an
// (8, 8) filter window.
type Conv2DConfig struct {
	Filters    int        `json:"filters"`
	KernelSize int        `json:"kernel_size"`
	Strides    int        `json:"strides"`
	Padding    string     `json:"padding"`
	Activation Activation `json:"activation"`

	// WeightsSpec optionally overrides the backend's default kernel
	// initializer
	WeightsSpec *initializer.Spec `json:"weights_spec,omitempty"`
}

// NewConv2DConfig returns a Conv2DConfig with default
// hyperparameters.
func NewConv2DConfig() Conv2DConfig {
	return Conv2DConfig{
		Filters:    1,
		KernelSize: 1,
		Strides:    1,
		Padding:    Valid,
		Activation: Linear,
	}
}

// Type returns the type tag the configuration decodes from
func (c Conv2DConfig) Type() Type { return Conv2D }

// Validate returns an error if the configuration describes an
// impossible layer
func (c Conv2DConfig) Validate() error {
	if c.Filters < 1 {
		return fmt.Errorf("filters must be positive but got %v",
			c.Filters)
	}
	if c.KernelSize < 1 {
		return fmt.Errorf("kernel_size must be positive but got %v",
			c.KernelSize)
	}
	if c.Strides < 1 {
		return fmt.Errorf("strides must be positive but got %v",
			c.Strides)
	}
	if c.Padding != Same && c.Padding != Valid {
		return fmt.Errorf("padding must be %q or %q but got %q", Same,
			Valid, c.Padding)
	}
	if err := c.Activation.Validate(); err != nil {
		return err
	}
	if c.WeightsSpec != nil {
		if c.WeightsSpec.Config == nil {
			return fmt.Errorf("weights_spec: no configuration")
		}
		if err := c.WeightsSpec.Validate(); err != nil {
			return fmt.Errorf("weights_spec: %v", err)
		}
	}
	return nil
}
