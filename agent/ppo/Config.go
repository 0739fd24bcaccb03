// Package ppo implements the configuration document of a proximal
// policy optimization agent: an on-policy policy-gradient agent with
// a clipped surrogate objective, generalized advantage estimation and
// separate policy and value-function networks.
package ppo

import (
	"fmt"

	"github.com/agentspec/agentspec/agent"
	"github.com/agentspec/agentspec/memory"
	"github.com/agentspec/agentspec/network"
	"github.com/agentspec/agentspec/optimizer"
	"github.com/agentspec/agentspec/preprocess"
)

func init() {
	agent.Register(agent.PPO, DefaultConfig(), DefaultConfigList())
}

// Config implements the configuration document of a PPO agent.
type Config struct {
	Discount              float64 `json:"discount"`
	GAELambda             float64 `json:"gae_lambda"`
	ClipRatio             float64 `json:"clip_ratio"`
	StandardizeAdvantages bool    `json:"standardize_advantages"`

	// SampleEpisodes selects whole episodes instead of single steps
	// when sampling update batches from memory
	SampleEpisodes bool `json:"sample_episodes"`

	MemorySpec        memory.Spec     `json:"memory_spec"`
	PreprocessingSpec preprocess.Spec `json:"preprocessing_spec"`

	NetworkSpec       network.Spec `json:"network_spec"`
	ValueFunctionSpec network.Spec `json:"value_function_spec"`

	OptimizerSpec              optimizer.Spec `json:"optimizer_spec"`
	ValueFunctionOptimizerSpec optimizer.Spec `json:"value_function_optimizer_spec"`

	ObserveSpec agent.ObserveConfig `json:"observe_spec"`
	UpdateSpec  UpdateConfig        `json:"update_spec"`
}

// UpdateConfig configures how a PPO agent updates from its memory.
type UpdateConfig struct {
	// UpdateInterval is the number of observed timesteps between
	// updates
	UpdateInterval int `json:"update_interval"`

	// BatchSize is the number of records pulled from memory per
	// update
	BatchSize int `json:"batch_size"`

	// SampleSize is the size of the sub-samples iterated over during
	// one update
	SampleSize int `json:"sample_size"`

	// NumIterations is the number of optimization passes over the
	// batch per update
	NumIterations int `json:"num_iterations"`
}

// Validate returns an error if the configuration describes an
// impossible update schedule
func (u UpdateConfig) Validate() error {
	if u.UpdateInterval < 1 {
		return fmt.Errorf("update_interval must be positive but got %v",
			u.UpdateInterval)
	}
	if u.BatchSize < 1 {
		return fmt.Errorf("batch_size must be positive but got %v",
			u.BatchSize)
	}
	if u.SampleSize < 1 {
		return fmt.Errorf("sample_size must be positive but got %v",
			u.SampleSize)
	}
	if u.SampleSize > u.BatchSize {
		return fmt.Errorf("sample_size %v cannot exceed batch_size %v",
			u.SampleSize, u.BatchSize)
	}
	if u.NumIterations < 1 {
		return fmt.Errorf("num_iterations must be positive but got %v",
			u.NumIterations)
	}
	return nil
}

// adam returns an Adam optimizer node with the given learning rate
// and default moment hyperparameters.
func adam(learningRate float64) optimizer.Spec {
	config := optimizer.NewAdamConfig()
	config.LearningRate = learningRate
	return optimizer.Spec{Config: config}
}

// DefaultConfig returns the default PPO configuration document: a
// two-layer tanh policy network and a one-layer tanh value network
// over moving-standardized states, updating from a ring buffer.
func DefaultConfig() Config {
	return Config{
		Discount:              0.99,
		GAELambda:             1.0,
		ClipRatio:             0.2,
		StandardizeAdvantages: true,
		SampleEpisodes:        false,

		MemorySpec: memory.Spec{
			Config: memory.RingBufferConfig{Size: 1000},
		},
		PreprocessingSpec: preprocess.Spec{
			{Config: preprocess.MovingStandardizeConfig{}},
		},

		NetworkSpec: network.Spec{
			{LayerConfig: network.DenseConfig{
				Units: 64, Activation: network.TanH, UseBias: true,
			}},
			{LayerConfig: network.DenseConfig{
				Units: 64, Activation: network.TanH, UseBias: true,
			}},
		},
		ValueFunctionSpec: network.Spec{
			{LayerConfig: network.DenseConfig{
				Units: 64, Activation: network.TanH, UseBias: true,
			}},
		},

		OptimizerSpec:              adam(0.00025),
		ValueFunctionOptimizerSpec: adam(0.001),

		ObserveSpec: agent.NewObserveConfig(),
		UpdateSpec: UpdateConfig{
			UpdateInterval: 64,
			BatchSize:      64,
			SampleSize:     32,
			NumIterations:  10,
		},
	}
}

// Type returns the type tag of the agent the configuration describes
func (c Config) Type() agent.Type { return agent.PPO }

// Validate returns an error if the configuration describes an
// impossible PPO agent
func (c Config) Validate() error {
	if c.Discount < 0 || c.Discount > 1 {
		return fmt.Errorf("discount must be in [0, 1] but got %v",
			c.Discount)
	}
	if c.GAELambda < 0 || c.GAELambda > 1 {
		return fmt.Errorf("gae_lambda must be in [0, 1] but got %v",
			c.GAELambda)
	}
	if c.ClipRatio <= 0 {
		return fmt.Errorf("clip_ratio must be positive but got %v",
			c.ClipRatio)
	}

	if c.MemorySpec.Config == nil {
		return fmt.Errorf("memory_spec: no configuration")
	}
	if c.MemorySpec.Type() != memory.RingBuffer {
		return fmt.Errorf("memory_spec: on-policy updates require a "+
			"%v memory but got %v", memory.RingBuffer, c.MemorySpec.Type())
	}
	if err := c.MemorySpec.Validate(); err != nil {
		return fmt.Errorf("memory_spec: %v", err)
	}

	if err := c.PreprocessingSpec.Validate(); err != nil {
		return fmt.Errorf("preprocessing_spec: %v", err)
	}

	if len(c.NetworkSpec) == 0 {
		return fmt.Errorf("network_spec: no layers")
	}
	if err := c.NetworkSpec.Validate(); err != nil {
		return fmt.Errorf("network_spec: %v", err)
	}
	if len(c.ValueFunctionSpec) == 0 {
		return fmt.Errorf("value_function_spec: no layers")
	}
	if err := c.ValueFunctionSpec.Validate(); err != nil {
		return fmt.Errorf("value_function_spec: %v", err)
	}

	if c.OptimizerSpec.Config == nil {
		return fmt.Errorf("optimizer_spec: no configuration")
	}
	if err := c.OptimizerSpec.Validate(); err != nil {
		return fmt.Errorf("optimizer_spec: %v", err)
	}
	if c.ValueFunctionOptimizerSpec.Config == nil {
		return fmt.Errorf("value_function_optimizer_spec: no " +
			"configuration")
	}
	if err := c.ValueFunctionOptimizerSpec.Validate(); err != nil {
		return fmt.Errorf("value_function_optimizer_spec: %v", err)
	}

	if err := c.ObserveSpec.Validate(); err != nil {
		return fmt.Errorf("observe_spec: %v", err)
	}
	if err := c.UpdateSpec.Validate(); err != nil {
		return fmt.Errorf("update_spec: %v", err)
	}
	if c.UpdateSpec.BatchSize > c.MemorySpec.Capacity() {
		return fmt.Errorf("update_spec: batch_size %v cannot exceed "+
			"memory capacity %v", c.UpdateSpec.BatchSize,
			c.MemorySpec.Capacity())
	}

	return nil
}

// ConfigList implements a list of Config's in a more compact form
// than a slice of Config's: each field holds the candidate values of
// the corresponding Config field, and the list describes every
// combination of candidates.
type ConfigList struct {
	Discount              []float64 `json:"discount"`
	GAELambda             []float64 `json:"gae_lambda"`
	ClipRatio             []float64 `json:"clip_ratio"`
	StandardizeAdvantages []bool    `json:"standardize_advantages"`
	SampleEpisodes        []bool    `json:"sample_episodes"`

	MemorySpec        []memory.Spec     `json:"memory_spec"`
	PreprocessingSpec []preprocess.Spec `json:"preprocessing_spec"`

	NetworkSpec       []network.Spec `json:"network_spec"`
	ValueFunctionSpec []network.Spec `json:"value_function_spec"`

	OptimizerSpec              []optimizer.Spec `json:"optimizer_spec"`
	ValueFunctionOptimizerSpec []optimizer.Spec `json:"value_function_optimizer_spec"`

	ObserveSpec []agent.ObserveConfig `json:"observe_spec"`
	UpdateSpec  []UpdateConfig        `json:"update_spec"`
}

// DefaultConfigList returns a ConfigList holding a single candidate
// per field: the default configuration's value. Sweep documents only
// list the fields they sweep; the rest keep these defaults.
func DefaultConfigList() ConfigList {
	defaults := DefaultConfig()
	return ConfigList{
		Discount:              []float64{defaults.Discount},
		GAELambda:             []float64{defaults.GAELambda},
		ClipRatio:             []float64{defaults.ClipRatio},
		StandardizeAdvantages: []bool{defaults.StandardizeAdvantages},
		SampleEpisodes:        []bool{defaults.SampleEpisodes},

		MemorySpec:        []memory.Spec{defaults.MemorySpec},
		PreprocessingSpec: []preprocess.Spec{defaults.PreprocessingSpec},

		NetworkSpec:       []network.Spec{defaults.NetworkSpec},
		ValueFunctionSpec: []network.Spec{defaults.ValueFunctionSpec},

		OptimizerSpec: []optimizer.Spec{defaults.OptimizerSpec},
		ValueFunctionOptimizerSpec: []optimizer.Spec{
			defaults.ValueFunctionOptimizerSpec,
		},

		ObserveSpec: []agent.ObserveConfig{defaults.ObserveSpec},
		UpdateSpec:  []UpdateConfig{defaults.UpdateSpec},
	}
}

// Type returns the type tag of the agent the listed configurations
// describe
func (c ConfigList) Type() agent.Type { return agent.PPO }

// Config returns an empty Config of the type stored in the list
func (c ConfigList) Config() agent.Config { return Config{} }

// Len returns the number of configurations in the list
func (c ConfigList) Len() int {
	return len(c.Discount) * len(c.GAELambda) * len(c.ClipRatio) *
		len(c.StandardizeAdvantages) * len(c.SampleEpisodes) *
		len(c.MemorySpec) * len(c.PreprocessingSpec) *
		len(c.NetworkSpec) * len(c.ValueFunctionSpec) *
		len(c.OptimizerSpec) * len(c.ValueFunctionOptimizerSpec) *
		len(c.ObserveSpec) * len(c.UpdateSpec)
}
