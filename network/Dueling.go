package network

import (
	"fmt"

	"github.com/agentspec/agentspec/initializer"
)

// DuelingConfig describes a dueling policy: a shared trunk followed
// by separate state-value and advantage streams whose outputs are
// recombined into action values.
type DuelingConfig struct {
	// NetworkSpec optionally embeds the trunk shared by both streams
	NetworkSpec Spec `json:"network_spec,omitempty"`

	UnitsStateValueStream       int               `json:"units_state_value_stream"`
	ActivationStateValueStream  Activation        `json:"activation_state_value_stream"`
	WeightsSpecStateValueStream *initializer.Spec `json:"weights_spec_state_value_stream,omitempty"`

	UnitsAdvantageStream       int               `json:"units_advantage_stream"`
	ActivationAdvantageStream  Activation        `json:"activation_advantage_stream"`
	WeightsSpecAdvantageStream *initializer.Spec `json:"weights_spec_advantage_stream,omitempty"`
}

// NewDuelingConfig returns a DuelingConfig with default
// hyperparameters: single-unit ReLU streams.
func NewDuelingConfig() DuelingConfig {
	return DuelingConfig{
		UnitsStateValueStream:      1,
		ActivationStateValueStream: ReLU,
		UnitsAdvantageStream:       1,
		ActivationAdvantageStream:  ReLU,
	}
}

// Type returns the type tag the configuration decodes from
func (d DuelingConfig) Type() Type { return DuelingPolicy }

// Validate returns an error if the configuration describes an
// impossible policy
func (d DuelingConfig) Validate() error {
	if err := d.NetworkSpec.Validate(); err != nil {
		return fmt.Errorf("network_spec: %v", err)
	}
	if d.UnitsStateValueStream < 1 {
		return fmt.Errorf("units_state_value_stream must be positive "+
			"but got %v", d.UnitsStateValueStream)
	}
	if d.UnitsAdvantageStream < 1 {
		return fmt.Errorf("units_advantage_stream must be positive "+
			"but got %v", d.UnitsAdvantageStream)
	}
	if err := d.ActivationStateValueStream.Validate(); err != nil {
		return fmt.Errorf("state value stream: %v", err)
	}
	if err := d.ActivationAdvantageStream.Validate(); err != nil {
		return fmt.Errorf("advantage stream: %v", err)
	}
	for name, w := range map[string]*initializer.Spec{
		"weights_spec_state_value_stream": d.WeightsSpecStateValueStream,
		"weights_spec_advantage_stream":   d.WeightsSpecAdvantageStream,
	} {
		if w == nil {
			continue
		}
		if w.Config == nil {
			return fmt.Errorf("%v: no configuration", name)
		}
		if err := w.Validate(); err != nil {
			return fmt.Errorf("%v: %v", name, err)
		}
	}
	return nil
}
