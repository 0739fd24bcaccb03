// Package apex implements the configuration document of an Apex
// agent: a distributed DQN-style agent whose sample workers feed
// sharded prioritized replay memories, acting through a dueling
// policy with annealed epsilon-greedy exploration.
package apex

import (
	"fmt"

	"github.com/agentspec/agentspec/agent"
	"github.com/agentspec/agentspec/execution"
	"github.com/agentspec/agentspec/exploration"
	"github.com/agentspec/agentspec/memory"
	"github.com/agentspec/agentspec/network"
	"github.com/agentspec/agentspec/optimizer"
	"github.com/agentspec/agentspec/preprocess"
	"github.com/agentspec/agentspec/schedule"
)

func init() {
	agent.Register(agent.Apex, DefaultConfig(), DefaultConfigList())
}

// Config implements the configuration document of an Apex agent.
type Config struct {
	Discount float64 `json:"discount"`

	// NStep is the horizon of the n-step returns workers fold their
	// samples into before insertion
	NStep int `json:"n_step"`

	MemorySpec        memory.Spec     `json:"memory_spec"`
	PreprocessingSpec preprocess.Spec `json:"preprocessing_spec"`

	PolicySpec network.Policy `json:"policy_spec"`

	ExplorationSpec exploration.Config `json:"exploration_spec"`
	ExecutionSpec   execution.Config   `json:"execution_spec"`

	OptimizerSpec optimizer.Spec `json:"optimizer_spec"`

	ObserveSpec agent.ObserveConfig `json:"observe_spec"`
	UpdateSpec  UpdateConfig        `json:"update_spec"`
}

// UpdateConfig configures how the learner updates from replay.
type UpdateConfig struct {
	// DoUpdates turns learning on; workers can run sampling-only
	// topologies with updates off
	DoUpdates bool `json:"do_updates"`

	// UpdateInterval is the number of observed timesteps between
	// updates
	UpdateInterval int `json:"update_interval"`

	// StepsBeforeUpdate is the number of timesteps observed before
	// the first update
	StepsBeforeUpdate int `json:"steps_before_update"`

	// BatchSize is the number of records sampled from replay per
	// update
	BatchSize int `json:"batch_size"`

	// SyncInterval is the number of updates between target network
	// synchronizations
	SyncInterval int `json:"sync_interval"`
}

// Validate returns an error if the configuration describes an
// impossible update schedule
func (u UpdateConfig) Validate() error {
	if u.UpdateInterval < 1 {
		return fmt.Errorf("update_interval must be positive but got %v",
			u.UpdateInterval)
	}
	if u.StepsBeforeUpdate < 0 {
		return fmt.Errorf("steps_before_update must be non-negative but "+
			"got %v", u.StepsBeforeUpdate)
	}
	if u.BatchSize < 1 {
		return fmt.Errorf("batch_size must be positive but got %v",
			u.BatchSize)
	}
	if u.SyncInterval < 1 {
		return fmt.Errorf("sync_interval must be positive but got %v",
			u.SyncInterval)
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

// DefaultConfig returns the default Apex configuration document: a
// dueling policy over a convolutional trunk reading resized and
// rescaled image states, 4 sample workers folding 3-step returns
// into a prioritized replay of 2 million records.
func DefaultConfig() Config {
	executor := execution.NewExecutorConfig()
	executor.NumCPUs = 8
	executor.NumSampleWorkers = 4

	worker := execution.NewWorkerConfig()
	worker.NStepAdjustment = 3
	worker.SampleExploration = true

	replay := execution.NewApexReplayConfig()
	replay.MemorySpec = memory.PrioritizedReplayConfig{
		Size:  2000000,
		Alpha: 0.6,
		Beta:  0.4,
	}

	return Config{
		Discount: 0.99,
		NStep:    3,

		MemorySpec: memory.Spec{
			Config: memory.PrioritizedReplayConfig{
				Size:  2000000,
				Alpha: 0.6,
				Beta:  0.4,
			},
		},
		PreprocessingSpec: preprocess.Spec{
			{Config: preprocess.ImageResizeConfig{Width: 84, Height: 84}},
			{Config: preprocess.DivideConfig{Divisor: 255}},
		},

		PolicySpec: network.Policy{
			PolicyConfig: network.DuelingConfig{
				NetworkSpec: network.Spec{
					{LayerConfig: network.Conv2DConfig{
						Filters: 16, KernelSize: 8, Strides: 4,
						Padding: network.Same, Activation: network.ReLU,
					}},
					{LayerConfig: network.Conv2DConfig{
						Filters: 32, KernelSize: 4, Strides: 2,
						Padding: network.Same, Activation: network.ReLU,
					}},
					{LayerConfig: network.DenseConfig{
						Units: 256, Activation: network.ReLU, UseBias: true,
					}},
				},
				UnitsStateValueStream:      512,
				ActivationStateValueStream: network.ReLU,
				UnitsAdvantageStream:       512,
				ActivationAdvantageStream:  network.ReLU,
			},
		},

		ExplorationSpec: exploration.Config{
			EpsilonSpec: &exploration.EpsilonConfig{
				DecaySpec: schedule.Spec{
					Config: schedule.LinearConfig{
						Decay: schedule.Decay{
							From:          1.0,
							To:            0.02,
							StartTimestep: 0,
							NumTimesteps:  10000,
						},
					},
				},
			},
		},
		ExecutionSpec: execution.Config{
			GPUsEnabled:       false,
			DisableMonitoring: true,
			RaySpec: &execution.RayConfig{
				ExecutorSpec:   executor,
				WorkerSpec:     worker,
				ApexReplaySpec: replay,
			},
		},

		OptimizerSpec: adam(0.0001),

		ObserveSpec: agent.ObserveConfig{BufferSize: 1000},
		UpdateSpec: UpdateConfig{
			DoUpdates:         true,
			UpdateInterval:    4,
			StepsBeforeUpdate: 50000,
			BatchSize:         512,
			SyncInterval:      500000,
		},
	}
}

// Type returns the type tag of the agent the configuration describes
func (c Config) Type() agent.Type { return agent.Apex }

// Validate returns an error if the configuration describes an
// impossible Apex agent
func (c Config) Validate() error {
	if c.Discount < 0 || c.Discount > 1 {
		return fmt.Errorf("discount must be in [0, 1] but got %v",
			c.Discount)
	}
	if c.NStep < 1 {
		return fmt.Errorf("n_step must be positive but got %v", c.NStep)
	}

	if c.MemorySpec.Config == nil {
		return fmt.Errorf("memory_spec: no configuration")
	}
	if !c.MemorySpec.Prioritized() {
		return fmt.Errorf("memory_spec: distributed replay requires a "+
			"%v memory but got %v", memory.PrioritizedReplay,
			c.MemorySpec.Type())
	}
	if err := c.MemorySpec.Validate(); err != nil {
		return fmt.Errorf("memory_spec: %v", err)
	}

	if err := c.PreprocessingSpec.Validate(); err != nil {
		return fmt.Errorf("preprocessing_spec: %v", err)
	}

	if c.PolicySpec.PolicyConfig == nil {
		return fmt.Errorf("policy_spec: no configuration")
	}
	if err := c.PolicySpec.Validate(); err != nil {
		return fmt.Errorf("policy_spec: %v", err)
	}

	if err := c.ExplorationSpec.Validate(); err != nil {
		return fmt.Errorf("exploration_spec: %v", err)
	}
	if err := c.ExecutionSpec.Validate(); err != nil {
		return fmt.Errorf("execution_spec: %v", err)
	}

	if c.OptimizerSpec.Config == nil {
		return fmt.Errorf("optimizer_spec: no configuration")
	}
	if err := c.OptimizerSpec.Validate(); err != nil {
		return fmt.Errorf("optimizer_spec: %v", err)
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
	if c.UpdateSpec.StepsBeforeUpdate < c.UpdateSpec.BatchSize {
		return fmt.Errorf("update_spec: steps_before_update %v cannot "+
			"sample a first batch of %v records",
			c.UpdateSpec.StepsBeforeUpdate, c.UpdateSpec.BatchSize)
	}

	if c.ExecutionSpec.Distributed() {
		worker := c.ExecutionSpec.RaySpec.WorkerSpec
		if worker.NStepAdjustment != c.NStep {
			return fmt.Errorf("execution_spec: worker n_step_adjustment "+
				"%v does not match the agent's n_step %v",
				worker.NStepAdjustment, c.NStep)
		}
		if worker.SampleExploration && !c.ExplorationSpec.EpsilonGreedy() {
			return fmt.Errorf("execution_spec: workers sample their " +
				"exploration but the agent has no epsilon_spec")
		}

		replay := c.ExecutionSpec.RaySpec.ApexReplaySpec
		if replay.MinSampleMemorySize < c.UpdateSpec.BatchSize {
			return fmt.Errorf("execution_spec: replay shards serve "+
				"samples from %v records but updates need batches of %v",
				replay.MinSampleMemorySize, c.UpdateSpec.BatchSize)
		}
	}

	return nil
}

// ConfigList implements a list of Config's in a more compact form
// than a slice of Config's: each field holds the candidate values of
// the corresponding Config field, and the list describes every
// combination of candidates.
type ConfigList struct {
	Discount []float64 `json:"discount"`
	NStep    []int     `json:"n_step"`

	MemorySpec        []memory.Spec     `json:"memory_spec"`
	PreprocessingSpec []preprocess.Spec `json:"preprocessing_spec"`

	PolicySpec []network.Policy `json:"policy_spec"`

	ExplorationSpec []exploration.Config `json:"exploration_spec"`
	ExecutionSpec   []execution.Config   `json:"execution_spec"`

	OptimizerSpec []optimizer.Spec `json:"optimizer_spec"`

	ObserveSpec []agent.ObserveConfig `json:"observe_spec"`
	UpdateSpec  []UpdateConfig        `json:"update_spec"`
}

// DefaultConfigList returns a ConfigList holding a single candidate
// per field: the default configuration's value. Sweep documents only
// list the fields they sweep; the rest keep these defaults.
func DefaultConfigList() ConfigList {
	defaults := DefaultConfig()
	return ConfigList{
		Discount: []float64{defaults.Discount},
		NStep:    []int{defaults.NStep},

		MemorySpec:        []memory.Spec{defaults.MemorySpec},
		PreprocessingSpec: []preprocess.Spec{defaults.PreprocessingSpec},

		PolicySpec: []network.Policy{defaults.PolicySpec},

		ExplorationSpec: []exploration.Config{defaults.ExplorationSpec},
		ExecutionSpec:   []execution.Config{defaults.ExecutionSpec},

		OptimizerSpec: []optimizer.Spec{defaults.OptimizerSpec},

		ObserveSpec: []agent.ObserveConfig{defaults.ObserveSpec},
		UpdateSpec:  []UpdateConfig{defaults.UpdateSpec},
	}
}

// Type returns the type tag of the agent the listed configurations
// describe
func (c ConfigList) Type() agent.Type { return agent.Apex }

// Config returns an empty Config of the type stored in the list
func (c ConfigList) Config() agent.Config { return Config{} }

// Len returns the number of configurations in the list
func (c ConfigList) Len() int {
	return len(c.Discount) * len(c.NStep) * len(c.MemorySpec) *
		len(c.PreprocessingSpec) * len(c.PolicySpec) *
		len(c.ExplorationSpec) * len(c.ExecutionSpec) *
		len(c.OptimizerSpec) * len(c.ObserveSpec) * len(c.UpdateSpec)
}
