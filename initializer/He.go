package initializer

import G "gorgonia.org/gorgonia"

// HeUniformConfig describes a configuration of the He uniform
// initialization algorithm.
type HeUniformConfig struct {
	Gain float64 `json:"gain"`
}

// NewHeUniformConfig returns a HeUniformConfig with unit gain
func NewHeUniformConfig() HeUniformConfig {
	return HeUniformConfig{Gain: 1.0}
}

// NewHeUniform returns a new He uniform initializer Spec
func NewHeUniform(gain float64) (Spec, error) {
	return New(HeUniformConfig{Gain: gain})
}

// Type returns the type tag the configuration decodes from
func (h HeUniformConfig) Type() Type { return HeUniform }

// Validate returns an error if the configuration describes an
// impossible initializer
func (h HeUniformConfig) Validate() error { return validateGain(h.Gain) }

// Create returns the weight initialization algorithm as a Gorgonia
// InitWFn
func (h HeUniformConfig) Create() G.InitWFn {
	return G.HeU(h.Gain)
}

// HeNormalConfig describes a configuration of the He normal
// initialization algorithm.
type HeNormalConfig struct {
	Gain float64 `json:"gain"`
}

// NewHeNormalConfig returns a HeNormalConfig with unit gain
func NewHeNormalConfig() HeNormalConfig {
	return HeNormalConfig{Gain: 1.0}
}

// NewHeNormal returns a new He normal initializer Spec
func NewHeNormal(gain float64) (Spec, error) {
	return New(HeNormalConfig{Gain: gain})
}

// Type returns the type tag the configuration decodes from
func (h HeNormalConfig) Type() Type { return HeNormal }

// Validate returns an error if the configuration describes an
// impossible initializer
func (h HeNormalConfig) Validate() error { return validateGain(h.Gain) }

// Create returns the weight initialization algorithm as a Gorgonia
// InitWFn
func (h HeNormalConfig) Create() G.InitWFn {
	return G.HeN(h.Gain)
}
