// Package memory implements replay memory configurations so that they
// can be JSON serialized into configuration files.
//
// The configurations describe the shape of an agent's memory only:
// its kind, capacity and sampling hyperparameters. They carry enough
// information for cross-field validation of agent documents, e.g.
// that a batch size fits the memory it samples from.
package memory

import (
	"fmt"

	"github.com/agentspec/agentspec/spec"
)

// Type describes different types of replay memories that are
// available
type Type string

// Available memory types
const (
	RingBuffer        Type = "ring_buffer"
	Replay            Type = "replay"
	PrioritizedReplay Type = "prioritized_replay"
)

// Config describes a replay memory.
type Config interface {
	// Type returns the type tag the configuration decodes from
	Type() Type

	// Validate returns an error if the configuration describes an
	// impossible memory
	Validate() error

	// Capacity returns the maximum number of records the memory
	// holds
	Capacity() int

	// Prioritized returns whether sampling is prioritized by TD
	// error
	Prioritized() bool
}

var registry = spec.NewRegistry("memory")

func init() {
	registry.Register(string(RingBuffer), NewRingBufferConfig())
	registry.Register(string(Replay), NewReplayConfig())
	registry.Register(string(PrioritizedReplay),
		NewPrioritizedReplayConfig())
}

// Types returns the type tags of all registered memories.
func Types() []string { return registry.Tags() }

// Spec wraps a memory Config so that it can be JSON marshalled and
// unmarshalled with an inline "type" tag.
type Spec struct {
	Config
}

// New returns a Spec wrapping the given configuration.
func New(c Config) (Spec, error) {
	if c == nil {
		return Spec{}, fmt.Errorf("new: no memory configuration")
	}
	if err := c.Validate(); err != nil {
		return Spec{}, fmt.Errorf("new: %v", err)
	}
	return Spec{Config: c}, nil
}

// FromJSON returns the Spec described by a memory node.
func FromJSON(data []byte) (Spec, error) {
	var s Spec
	if err := s.UnmarshalJSON(data); err != nil {
		return Spec{}, err
	}
	return s, nil
}

// MarshalJSON implements the json.Marshaler interface
func (s Spec) MarshalJSON() ([]byte, error) {
	if s.Config == nil {
		return nil, fmt.Errorf("marshal: no memory configuration")
	}
	return spec.MarshalNode(string(s.Config.Type()), s.Config)
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (s *Spec) UnmarshalJSON(data []byte) error {
	decoded, _, err := registry.Decode(data)
	if err != nil {
		return err
	}
	s.Config = decoded.(Config)
	return nil
}

// validateCapacity returns an error unless the capacity can hold at
// least one record.
func validateCapacity(capacity int) error {
	if capacity < 1 {
		return fmt.Errorf("capacity must hold at least one record but "+
			"got %v", capacity)
	}
	return nil
}

// RingBufferConfig describes a FIFO ring buffer memory, the memory
// backing on-policy agents.
type RingBufferConfig struct {
	Size int `json:"capacity"`
}

// NewRingBufferConfig returns a RingBufferConfig with default
// capacity
func NewRingBufferConfig() RingBufferConfig {
	return RingBufferConfig{Size: 1000}
}

// NewRingBuffer returns a new ring buffer memory Spec
func NewRingBuffer(capacity int) (Spec, error) {
	return New(RingBufferConfig{Size: capacity})
}

// Type returns the type tag the configuration decodes from
func (r RingBufferConfig) Type() Type { return RingBuffer }

// Validate returns an error if the configuration describes an
// impossible memory
func (r RingBufferConfig) Validate() error {
	return validateCapacity(r.Size)
}

// Capacity returns the maximum number of records the memory holds
func (r RingBufferConfig) Capacity() int { return r.Size }

// Prioritized returns whether sampling is prioritized by TD error
func (r RingBufferConfig) Prioritized() bool { return false }

// ReplayConfig describes a uniformly sampled replay memory.
type ReplayConfig struct {
	Size int `json:"capacity"`
}

// NewReplayConfig returns a ReplayConfig with default capacity
func NewReplayConfig() ReplayConfig {
	return ReplayConfig{Size: 10000}
}

// NewReplay returns a new uniform replay memory Spec
func NewReplay(capacity int) (Spec, error) {
	return New(ReplayConfig{Size: capacity})
}

// Type returns the type tag the configuration decodes from
func (r ReplayConfig) Type() Type { return Replay }

// Validate returns an error if the configuration describes an
// impossible memory
func (r ReplayConfig) Validate() error { return validateCapacity(r.Size) }

// Capacity returns the maximum number of records the memory holds
func (r ReplayConfig) Capacity() int { return r.Size }

// Prioritized returns whether sampling is prioritized by TD error
func (r ReplayConfig) Prioritized() bool { return false }
