// Package execution implements execution topology configurations for
// distributed agents so that they can be JSON serialized into
// configuration files.
//
// Unlike optimizer or memory nodes, execution sections carry no
// "type" tag: they are plain nested objects describing how many
// workers run, how work queues are sized and what hardware the
// topology requests. Only the description is implemented here; there
// is no runtime.
package execution

import "fmt"

// Config describes the execution_spec section of an agent document.
type Config struct {
	GPUsEnabled       bool       `json:"gpus_enabled"`
	DisableMonitoring bool       `json:"disable_monitoring"`
	RaySpec           *RayConfig `json:"ray_spec,omitempty"`
}

// NewConfig returns a Config with default hyperparameters and no ray
// section.
func NewConfig() Config {
	return Config{DisableMonitoring: true}
}

// Validate returns an error if the configuration describes an
// impossible topology.
func (c Config) Validate() error {
	if c.RaySpec == nil {
		return nil
	}
	if err := c.RaySpec.Validate(); err != nil {
		return fmt.Errorf("ray_spec: %v", err)
	}
	if !c.GPUsEnabled && c.RaySpec.ExecutorSpec.NumGPUs > 0 {
		return fmt.Errorf("ray_spec requests %v gpus but gpus_enabled "+
			"is false", c.RaySpec.ExecutorSpec.NumGPUs)
	}
	return nil
}

// Distributed returns whether the configuration describes a
// distributed topology.
func (c Config) Distributed() bool { return c.RaySpec != nil }

// CPUsRequested returns the number of CPUs the topology requests
// from the cluster, 0 meaning auto-detect.
func (c Config) CPUsRequested() int {
	if c.RaySpec == nil {
		return 0
	}
	return c.RaySpec.ExecutorSpec.NumCPUs
}

// GPUsRequested returns the number of GPUs the topology requests
// from the cluster.
func (c Config) GPUsRequested() int {
	if c.RaySpec == nil || !c.GPUsEnabled {
		return 0
	}
	return c.RaySpec.ExecutorSpec.NumGPUs
}
