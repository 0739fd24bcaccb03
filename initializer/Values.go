package initializer

import G "gorgonia.org/gorgonia"

// ZerosConfig describes an initializer that fills weights with zeros.
type ZerosConfig struct{}

// NewZeros returns a new zero-filling initializer Spec
func NewZeros() (Spec, error) {
	return New(ZerosConfig{})
}

// Type returns the type tag the configuration decodes from
func (z ZerosConfig) Type() Type { return Zeros }

// Validate returns an error if the configuration describes an
// impossible initializer
func (z ZerosConfig) Validate() error { return nil }

// Create returns the weight initialization algorithm as a Gorgonia
// InitWFn
func (z ZerosConfig) Create() G.InitWFn { return G.Zeroes() }

// OnesConfig describes an initializer that fills weights with ones.
type OnesConfig struct{}

// NewOnes returns a new one-filling initializer Spec
func NewOnes() (Spec, error) {
	return New(OnesConfig{})
}

// Type returns the type tag the configuration decodes from
func (o OnesConfig) Type() Type { return Ones }

// Validate returns an error if the configuration describes an
// impossible initializer
func (o OnesConfig) Validate() error { return nil }

// Create returns the weight initialization algorithm as a Gorgonia
// InitWFn
func (o OnesConfig) Create() G.InitWFn { return G.Ones() }

// ConstantConfig describes an initializer that fills weights with a
// single value.
type ConstantConfig struct {
	Value float64 `json:"value"`
}

// NewConstant returns a new constant-filling initializer Spec
func NewConstant(value float64) (Spec, error) {
	return New(ConstantConfig{Value: value})
}

// Type returns the type tag the configuration decodes from
func (c ConstantConfig) Type() Type { return Constant }

// Validate returns an error if the configuration describes an
// impossible initializer
func (c ConstantConfig) Validate() error { return nil }

// Create returns the weight initialization algorithm as a Gorgonia
// InitWFn
func (c ConstantConfig) Create() G.InitWFn { return G.ValuesOf(c.Value) }
