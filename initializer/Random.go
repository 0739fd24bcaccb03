package initializer

import (
	"fmt"

	G "gorgonia.org/gorgonia"
)

// RandomUniformConfig describes an initializer that draws weights
// uniformly from [minval, maxval).
type RandomUniformConfig struct {
	MinVal float64 `json:"minval"`
	MaxVal float64 `json:"maxval"`
}

// NewRandomUniformConfig returns a RandomUniformConfig drawing from
// [-0.05, 0.05)
func NewRandomUniformConfig() RandomUniformConfig {
	return RandomUniformConfig{MinVal: -0.05, MaxVal: 0.05}
}

// NewRandomUniform returns a new uniform random initializer Spec
func NewRandomUniform(minVal, maxVal float64) (Spec, error) {
	return New(RandomUniformConfig{MinVal: minVal, MaxVal: maxVal})
}

// Type returns the type tag the configuration decodes from
func (r RandomUniformConfig) Type() Type { return RandomUniform }

// Validate returns an error if the configuration describes an
// impossible initializer
func (r RandomUniformConfig) Validate() error {
	if r.MinVal >= r.MaxVal {
		return fmt.Errorf("minval must be below maxval but got [%v, %v)",
			r.MinVal, r.MaxVal)
	}
	return nil
}

// Create returns the weight initialization algorithm as a Gorgonia
// InitWFn
func (r RandomUniformConfig) Create() G.InitWFn {
	return G.Uniform(r.MinVal, r.MaxVal)
}

// RandomNormalConfig describes an initializer that draws weights from
// a Gaussian.
type RandomNormalConfig struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
}

// NewRandomNormalConfig returns a RandomNormalConfig drawing from
// N(0, 0.05)
func NewRandomNormalConfig() RandomNormalConfig {
	return RandomNormalConfig{Mean: 0.0, StdDev: 0.05}
}

// NewRandomNormal returns a new Gaussian random initializer Spec
func NewRandomNormal(mean, stdDev float64) (Spec, error) {
	return New(RandomNormalConfig{Mean: mean, StdDev: stdDev})
}

// Type returns the type tag the configuration decodes from
func (r RandomNormalConfig) Type() Type { return RandomNormal }

// Validate returns an error if the configuration describes an
// impossible initializer
func (r RandomNormalConfig) Validate() error {
	if r.StdDev <= 0 {
		return fmt.Errorf("stddev must be positive but got %v", r.StdDev)
	}
	return nil
}

// Create returns the weight initialization algorithm as a Gorgonia
// InitWFn
func (r RandomNormalConfig) Create() G.InitWFn {
	return G.Gaussian(r.Mean, r.StdDev)
}
