package network

import "fmt"

// Activation names an activation function by the identifier the
// documents use.
type Activation string

// Available activations
const (
	ReLU    Activation = "relu"
	TanH    Activation = "tanh"
	Sigmoid Activation = "sigmoid"
	Linear  Activation = "linear"
	ELU     Activation = "elu"
)

// activations is the closed set of known activation names.
var activations = map[Activation]bool{
	ReLU:    true,
	TanH:    true,
	Sigmoid: true,
	Linear:  true,
	ELU:     true,
}

// Validate returns an error if the name is not a known activation.
func (a Activation) Validate() error {
	if !activations[a] {
		return fmt.Errorf("unknown activation %q", string(a))
	}
	return nil
}

// IsLinear returns whether the activation is the identity function.
func (a Activation) IsLinear() bool { return a == Linear }

// String implements the fmt.Stringer interface
func (a Activation) String() string { return string(a) }
