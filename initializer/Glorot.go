package initializer

import (
	"fmt"

	G "gorgonia.org/gorgonia"
)

// GlorotUniformConfig describes a configuration of the Glorot uniform
// initialization algorithm.
type GlorotUniformConfig struct {
	Gain float64 `json:"gain"`
}

// NewGlorotUniformConfig returns a GlorotUniformConfig with unit gain
func NewGlorotUniformConfig() GlorotUniformConfig {
	return GlorotUniformConfig{Gain: 1.0}
}

// NewGlorotUniform returns a new Glorot uniform initializer Spec
func NewGlorotUniform(gain float64) (Spec, error) {
	return New(GlorotUniformConfig{Gain: gain})
}

// Type returns the type tag the configuration decodes from
func (g GlorotUniformConfig) Type() Type { return GlorotUniform }

// Validate returns an error if the configuration describes an
// impossible initializer
func (g GlorotUniformConfig) Validate() error { return validateGain(g.Gain) }

// Create returns the weight initialization algorithm as a Gorgonia
// InitWFn
func (g GlorotUniformConfig) Create() G.InitWFn {
	return G.GlorotU(g.Gain)
}

// GlorotNormalConfig describes a configuration of the Glorot normal
// initialization algorithm.
type GlorotNormalConfig struct {
	Gain float64 `json:"gain"`
}

// NewGlorotNormalConfig returns a GlorotNormalConfig with unit gain
func NewGlorotNormalConfig() GlorotNormalConfig {
	return GlorotNormalConfig{Gain: 1.0}
}

// NewGlorotNormal returns a new Glorot normal initializer Spec
func NewGlorotNormal(gain float64) (Spec, error) {
	return New(GlorotNormalConfig{Gain: gain})
}

// Type returns the type tag the configuration decodes from
func (g GlorotNormalConfig) Type() Type { return GlorotNormal }

// Validate returns an error if the configuration describes an
// impossible initializer
func (g GlorotNormalConfig) Validate() error { return validateGain(g.Gain) }

// Create returns the weight initialization algorithm as a Gorgonia
// InitWFn
func (g GlorotNormalConfig) Create() G.InitWFn {
	return G.GlorotN(g.Gain)
}

func validateGain(gain float64) error {
	if gain <= 0 {
		return fmt.Errorf("gain must be positive but got %v", gain)
	}
	return nil
}
