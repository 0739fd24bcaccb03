// Package agent implements the top-level agent configuration
// documents: typed JSON trees describing every hyperparameter of an
// agent, from network architecture to optimizer settings to execution
// topology.
//
// Each agent type lives in its own subpackage, which registers its
// configuration types with this package. Decoding dispatches on the
// document's inline "type" tag, so callers can load documents without
// declaring their concrete type beforehand.
package agent

import (
	"encoding/json"
	"fmt"
	"os"

	"dario.cat/mergo"

	"github.com/agentspec/agentspec/spec"
)

// Type represents a specific type of agent that a configuration
// document can describe.
type Type string

const (
	// PPO is a proximal policy optimization agent
	PPO Type = "ppo"

	// Apex is a distributed DQN-style agent with many parallel
	// sample workers feeding a prioritized replay memory
	Apex Type = "apex"
)

// Config represents a complete agent configuration document.
type Config interface {
	// Type returns the type tag of the agent the configuration
	// describes
	Type() Type

	// Validate returns an error if the configuration describes an
	// impossible agent
	Validate() error
}

// Registered agent types. Each agent subpackage registers its own
// default Config and ConfigList in its init function to avoid
// circular imports; this package registers none itself.
var (
	configs = spec.NewRegistry("agent")
	sweeps  = spec.NewRegistry("sweep")
)

// Register records an agent type's default configuration and default
// configuration list so that documents and sweeps with that type tag
// can be decoded. The default configuration's field values complete
// partial documents.
func Register(agentType Type, defaults Config, list ConfigList) {
	configs.Register(string(agentType), defaults)
	sweeps.Register(string(agentType), list)
}

// Types returns the type tags of all registered agents.
func Types() []string { return configs.Tags() }

// TypedConfig wraps a Config so that it can be JSON marshalled and
// unmarshalled with an inline "type" tag, without knowing or
// declaring its concrete type beforehand.
type TypedConfig struct {
	Config
}

// NewTypedConfig types and returns the argument Config.
func NewTypedConfig(c Config) (*TypedConfig, error) {
	if c == nil {
		return nil, fmt.Errorf("new: no agent configuration")
	}
	return &TypedConfig{Config: c}, nil
}

// MarshalJSON implements the json.Marshaler interface
func (t TypedConfig) MarshalJSON() ([]byte, error) {
	if t.Config == nil {
		return nil, fmt.Errorf("marshal: no agent configuration")
	}
	return spec.MarshalNode(string(t.Config.Type()), t.Config)
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (t *TypedConfig) UnmarshalJSON(data []byte) error {
	decoded, _, err := configs.Decode(data)
	if err != nil {
		return err
	}
	t.Config = decoded.(Config)
	return nil
}

// FromJSON returns the agent configuration described by a document,
// decoded by its "type" tag. Fields the document does not set keep
// the registered defaults for its agent type. The configuration is
// not validated; call Validate on the result to check it.
func FromJSON(data []byte) (*TypedConfig, error) {
	var t TypedConfig
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// FromFile reads and decodes the agent configuration document at
// path. Like FromJSON, the configuration is not validated.
func FromFile(path string) (*TypedConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	t, err := FromJSON(data)
	if err != nil {
		return nil, fmt.Errorf("load %v: %w", path, err)
	}
	return t, nil
}

// Marshal returns the canonical document for a configuration: object
// keys in sorted order with two-space indentation.
func Marshal(c Config) ([]byte, error) {
	data, err := json.Marshal(TypedConfig{Config: c})
	if err != nil {
		return nil, err
	}
	return spec.Canonical(data)
}

// Equal reports whether two configurations describe structurally
// equal documents.
func Equal(a, b Config) (bool, error) {
	da, err := json.Marshal(TypedConfig{Config: a})
	if err != nil {
		return false, err
	}
	db, err := json.Marshal(TypedConfig{Config: b})
	if err != nil {
		return false, err
	}
	return spec.Equal(da, db)
}

// Merge returns the document produced by deep-merging patch over
// base. Nested objects merge key by key, with values present in the
// patch overriding the base; arrays and scalars replace the base
// value outright.
func Merge(base, patch []byte) ([]byte, error) {
	var baseTree, patchTree map[string]interface{}
	if err := json.Unmarshal(base, &baseTree); err != nil {
		return nil, fmt.Errorf("merge: base document: %v", err)
	}
	if err := json.Unmarshal(patch, &patchTree); err != nil {
		return nil, fmt.Errorf("merge: patch document: %v", err)
	}

	if err := mergo.Merge(&baseTree, patchTree,
		mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("merge: %v", err)
	}
	return json.Marshal(baseTree)
}
