package agent

import "fmt"

// ObserveConfig configures how an agent buffers observed timesteps
// before flushing them to its memory.
type ObserveConfig struct {
	BufferSize int `json:"buffer_size"`
}

// NewObserveConfig returns an ObserveConfig with the default buffer
// size.
func NewObserveConfig() ObserveConfig {
	return ObserveConfig{BufferSize: 100}
}

// Validate returns an error if the configuration describes an
// impossible observation buffer
func (o ObserveConfig) Validate() error {
	if o.BufferSize < 1 {
		return fmt.Errorf("buffer_size must be positive but got %v",
			o.BufferSize)
	}
	return nil
}
