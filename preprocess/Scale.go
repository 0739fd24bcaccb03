package preprocess

import (
	"fmt"

	"gorgonia.org/tensor"
)

// DivideConfig describes a preprocessor that divides states by a
// constant divisor, e.g. to scale pixels from [0, 255] to [0, 1].
type DivideConfig struct {
	Divisor float64 `json:"divisor"`
}

// NewDivideConfig returns a DivideConfig with a unit divisor.
func NewDivideConfig() DivideConfig {
	return DivideConfig{Divisor: 1.0}
}

// Type returns the type tag the configuration decodes from
func (d DivideConfig) Type() Type { return Divide }

// Validate returns an error if the configuration describes an
// impossible preprocessor
func (d DivideConfig) Validate() error {
	if d.Divisor == 0 {
		return fmt.Errorf("divisor cannot be 0")
	}
	return nil
}

// Create returns a new divide preprocessor
func (d DivideConfig) Create() Preprocessor {
	return divider{divisor: d.Divisor}
}

type divider struct {
	divisor float64
}

func (d divider) Apply(x *tensor.Dense) (*tensor.Dense, error) {
	return x.DivScalar(d.divisor, true)
}

func (d divider) Reset() {}

// MultiplyConfig describes a preprocessor that multiplies states by a
// constant factor.
type MultiplyConfig struct {
	Factor float64 `json:"factor"`
}

// NewMultiplyConfig returns a MultiplyConfig with a unit factor.
func NewMultiplyConfig() MultiplyConfig {
	return MultiplyConfig{Factor: 1.0}
}

// Type returns the type tag the configuration decodes from
func (m MultiplyConfig) Type() Type { return Multiply }

// Validate returns an error if the configuration describes an
// impossible preprocessor
func (m MultiplyConfig) Validate() error { return nil }

// Create returns a new multiply preprocessor
func (m MultiplyConfig) Create() Preprocessor {
	return multiplier{factor: m.Factor}
}

type multiplier struct {
	factor float64
}

func (m multiplier) Apply(x *tensor.Dense) (*tensor.Dense, error) {
	return x.MulScalar(m.factor, true)
}

func (m multiplier) Reset() {}
