package execution

import (
	"fmt"

	"github.com/agentspec/agentspec/memory"
)

// RayConfig describes the ray_spec section of a distributed agent
// document: the executor driving the cluster, the sample workers and
// the replay shard workers between them.
type RayConfig struct {
	ExecutorSpec   ExecutorConfig   `json:"executor_spec"`
	WorkerSpec     WorkerConfig     `json:"worker_spec"`
	ApexReplaySpec ApexReplayConfig `json:"apex_replay_spec"`
}

// NewRayConfig returns a RayConfig with default hyperparameters
func NewRayConfig() RayConfig {
	return RayConfig{
		ExecutorSpec:   NewExecutorConfig(),
		WorkerSpec:     NewWorkerConfig(),
		ApexReplaySpec: NewApexReplayConfig(),
	}
}

// Validate returns an error if the configuration describes an
// impossible topology.
func (r RayConfig) Validate() error {
	if err := r.ExecutorSpec.Validate(); err != nil {
		return fmt.Errorf("executor_spec: %v", err)
	}
	if err := r.WorkerSpec.Validate(); err != nil {
		return fmt.Errorf("worker_spec: %v", err)
	}
	if err := r.ApexReplaySpec.Validate(); err != nil {
		return fmt.Errorf("apex_replay_spec: %v", err)
	}
	return nil
}

// TotalWorkers returns the number of remote workers the executor
// launches.
func (r RayConfig) TotalWorkers() int {
	return r.ExecutorSpec.NumSampleWorkers + r.ExecutorSpec.NumReplayWorkers
}

// ExecutorConfig describes the executor driving a ray cluster: its
// connection, its hardware request and its task pipeline depths.
type ExecutorConfig struct {
	// RedisAddress is the address of the cluster to join; null means
	// a local cluster is started instead
	RedisAddress *string `json:"redis_address"`

	// NumCPUs and NumGPUs are requested from the cluster on startup,
	// 0 CPUs meaning auto-detect
	NumCPUs int `json:"num_cpus"`
	NumGPUs int `json:"num_gpus"`

	NumSampleWorkers int `json:"num_sample_workers"`
	NumReplayWorkers int `json:"num_replay_workers"`

	// WeightSyncSteps is the number of environment steps between
	// pushes of learner weights to the sample workers
	WeightSyncSteps int `json:"weight_sync_steps"`

	// LearnQueueSize bounds the queue of sampled batches awaiting
	// the learner
	LearnQueueSize int `json:"learn_queue_size"`

	// Task depths control how many in-flight tasks of each kind the
	// executor keeps scheduled per worker
	ReplaySamplingTaskDepth int `json:"replay_sampling_task_depth"`
	EnvInteractionTaskDepth int `json:"env_interaction_task_depth"`
}

// NewExecutorConfig returns an ExecutorConfig with default
// hyperparameters
func NewExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		RedisAddress:            nil,
		NumCPUs:                 0,
		NumGPUs:                 0,
		NumSampleWorkers:        1,
		NumReplayWorkers:        1,
		WeightSyncSteps:         400,
		LearnQueueSize:          16,
		ReplaySamplingTaskDepth: 2,
		EnvInteractionTaskDepth: 2,
	}
}

// Validate returns an error if the configuration describes an
// impossible executor.
func (e ExecutorConfig) Validate() error {
	if e.NumCPUs < 0 {
		return fmt.Errorf("num_cpus must be non-negative but got %v",
			e.NumCPUs)
	}
	if e.NumGPUs < 0 {
		return fmt.Errorf("num_gpus must be non-negative but got %v",
			e.NumGPUs)
	}
	if e.NumSampleWorkers < 1 {
		return fmt.Errorf("num_sample_workers must be positive but got %v",
			e.NumSampleWorkers)
	}
	if e.NumReplayWorkers < 1 {
		return fmt.Errorf("num_replay_workers must be positive but got %v",
			e.NumReplayWorkers)
	}
	if e.WeightSyncSteps < 1 {
		return fmt.Errorf("weight_sync_steps must be positive but got %v",
			e.WeightSyncSteps)
	}
	if e.LearnQueueSize < 1 {
		return fmt.Errorf("learn_queue_size must be positive but got %v",
			e.LearnQueueSize)
	}
	if e.ReplaySamplingTaskDepth < 1 {
		return fmt.Errorf("replay_sampling_task_depth must be positive "+
			"but got %v", e.ReplaySamplingTaskDepth)
	}
	if e.EnvInteractionTaskDepth < 1 {
		return fmt.Errorf("env_interaction_task_depth must be positive "+
			"but got %v", e.EnvInteractionTaskDepth)
	}
	return nil
}

// WorkerConfig describes the sample workers of a distributed
// topology: how they interact with their environments and how they
// shape the samples they return.
type WorkerConfig struct {
	// NumWorkerSamples is the number of samples a worker returns per
	// sampling task
	NumWorkerSamples int `json:"num_worker_samples"`

	// WorkerComputesWeights selects worker-side computation of
	// initial importance weights for prioritized insertion
	WorkerComputesWeights bool `json:"worker_computes_weights"`

	// NStepAdjustment is the horizon of worker-side n-step reward
	// folding, 1 meaning no folding
	NStepAdjustment int `json:"n_step_adjustment"`

	// SampleExploration resamples each worker's starting exploration
	// epsilon from [ExplorationMinValue, decay from-value)
	SampleExploration   bool    `json:"sample_exploration"`
	ExplorationMinValue float64 `json:"exploration_min_value"`

	// Frameskip is how often a worker repeats a chosen action
	Frameskip int `json:"frameskip"`

	NumWorkerEnvironments int `json:"num_worker_environments"`
	NumBackgroundEnvs     int `json:"num_background_envs"`

	// RayConstantExploration holds each worker's epsilon constant at
	// its (possibly resampled) starting value
	RayConstantExploration bool `json:"ray_constant_exploration"`
}

// NewWorkerConfig returns a WorkerConfig with default hyperparameters
func NewWorkerConfig() WorkerConfig {
	return WorkerConfig{
		NumWorkerSamples:      100,
		WorkerComputesWeights: true,
		NStepAdjustment:       1,
		Frameskip:             1,
		NumWorkerEnvironments: 1,
		NumBackgroundEnvs:     0,
	}
}

// Validate returns an error if the configuration describes an
// impossible worker.
func (w WorkerConfig) Validate() error {
	if w.NumWorkerSamples < 1 {
		return fmt.Errorf("num_worker_samples must be positive but got %v",
			w.NumWorkerSamples)
	}
	if w.NStepAdjustment < 1 {
		return fmt.Errorf("n_step_adjustment must be positive but got %v",
			w.NStepAdjustment)
	}
	if w.ExplorationMinValue < 0 || w.ExplorationMinValue >= 1 {
		return fmt.Errorf("exploration_min_value must be in [0, 1) but "+
			"got %v", w.ExplorationMinValue)
	}
	if w.Frameskip < 1 {
		return fmt.Errorf("frameskip must be positive but got %v",
			w.Frameskip)
	}
	if w.NumWorkerEnvironments < 1 {
		return fmt.Errorf("num_worker_environments must be positive but "+
			"got %v", w.NumWorkerEnvironments)
	}
	if w.NumBackgroundEnvs < 0 {
		return fmt.Errorf("num_background_envs must be non-negative but "+
			"got %v", w.NumBackgroundEnvs)
	}
	return nil
}

// ApexReplayConfig describes the replay shard workers of a
// distributed topology.
type ApexReplayConfig struct {
	// MemorySpec describes each replay shard. Shards are always
	// prioritized, so the node carries no "type" tag.
	MemorySpec memory.PrioritizedReplayConfig `json:"memory_spec"`

	// ClipRewards clips inserted rewards to the sign function
	ClipRewards bool `json:"clip_rewards"`

	// MinSampleMemorySize is the number of records a shard holds
	// before it serves sampling tasks
	MinSampleMemorySize int `json:"min_sample_memory_size"`
}

// NewApexReplayConfig returns an ApexReplayConfig with default
// hyperparameters
func NewApexReplayConfig() ApexReplayConfig {
	return ApexReplayConfig{
		MemorySpec:          memory.NewPrioritizedReplayConfig(),
		ClipRewards:         true,
		MinSampleMemorySize: 1000,
	}
}

// Validate returns an error if the configuration describes an
// impossible replay shard.
func (a ApexReplayConfig) Validate() error {
	if err := a.MemorySpec.Validate(); err != nil {
		return fmt.Errorf("memory_spec: %v", err)
	}
	if a.MinSampleMemorySize < 1 {
		return fmt.Errorf("min_sample_memory_size must be positive but "+
			"got %v", a.MinSampleMemorySize)
	}
	if a.MinSampleMemorySize > a.MemorySpec.Capacity() {
		return fmt.Errorf("min_sample_memory_size %v exceeds the shard "+
			"capacity %v", a.MinSampleMemorySize, a.MemorySpec.Capacity())
	}
	return nil
}
