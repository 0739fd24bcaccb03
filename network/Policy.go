package network

import (
	"fmt"

	"github.com/agentspec/agentspec/spec"
)

// Available policy types
const (
	DuelingPolicy Type = "dueling-policy"
)

// PolicyConfig describes a policy architecture. Policies may embed a
// network Spec describing their shared trunk.
type PolicyConfig interface {
	// Type returns the type tag the configuration decodes from
	Type() Type

	// Validate returns an error if the configuration describes an
	// impossible policy
	Validate() error
}

var policies = spec.NewRegistry("policy")

func init() {
	policies.Register(string(DuelingPolicy), NewDuelingConfig())
}

// PolicyTypes returns the type tags of all registered policies.
func PolicyTypes() []string { return policies.Tags() }

// Policy wraps a PolicyConfig so that it can be JSON marshalled and
// unmarshalled with an inline "type" tag.
type Policy struct {
	PolicyConfig
}

// NewPolicy returns a Policy wrapping the given configuration.
func NewPolicy(c PolicyConfig) (Policy, error) {
	if c == nil {
		return Policy{}, fmt.Errorf("new: no policy configuration")
	}
	if err := c.Validate(); err != nil {
		return Policy{}, fmt.Errorf("new: %v", err)
	}
	return Policy{PolicyConfig: c}, nil
}

// MarshalJSON implements the json.Marshaler interface
func (p Policy) MarshalJSON() ([]byte, error) {
	if p.PolicyConfig == nil {
		return nil, fmt.Errorf("marshal: no policy configuration")
	}
	return spec.MarshalNode(string(p.PolicyConfig.Type()), p.PolicyConfig)
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (p *Policy) UnmarshalJSON(data []byte) error {
	decoded, _, err := policies.Decode(data)
	if err != nil {
		return err
	}
	p.PolicyConfig = decoded.(PolicyConfig)
	return nil
}
