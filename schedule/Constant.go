package schedule

// ConstantConfig describes a schedule that holds a single value at
// every timestep.
type ConstantConfig struct {
	Val float64 `json:"value"`
}

// NewConstantConfig returns a ConstantConfig holding zero.
func NewConstantConfig() ConstantConfig {
	return ConstantConfig{}
}

// NewConstant returns a constant Spec holding the given value.
func NewConstant(value float64) (Spec, error) {
	return New(ConstantConfig{Val: value})
}

// Type returns the type tag the configuration decodes from
func (c ConstantConfig) Type() Type { return Constant }

// Validate returns an error if the configuration describes an
// impossible schedule
func (c ConstantConfig) Validate() error { return nil }

// Value returns the schedule's value at global timestep t
func (c ConstantConfig) Value(t int64) float64 { return c.Val }
