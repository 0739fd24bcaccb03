package ppo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agentspec/agentspec/agent"
	"github.com/agentspec/agentspec/memory"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	require.NoError(t, config.Validate())
	require.Equal(t, agent.PPO, config.Type())

	require.Equal(t, 0.99, config.Discount)
	require.Equal(t, 1.0, config.GAELambda)
	require.Equal(t, 0.2, config.ClipRatio)
	require.True(t, config.StandardizeAdvantages)
	require.False(t, config.SampleEpisodes)
	require.Equal(t, memory.RingBuffer, config.MemorySpec.Type())
	require.Equal(t, 1000, config.MemorySpec.Capacity())
	require.Len(t, config.NetworkSpec, 2)
	require.Len(t, config.ValueFunctionSpec, 1)
	require.Equal(t, 64, config.UpdateSpec.UpdateInterval)
	require.Equal(t, 64, config.UpdateSpec.BatchSize)
	require.Equal(t, 32, config.UpdateSpec.SampleSize)
	require.Equal(t, 10, config.UpdateSpec.NumIterations)
}

func TestFromJSONKeepsDefaults(t *testing.T) {
	document := []byte(`{"type": "ppo", "discount": 0.95}`)

	typed, err := agent.FromJSON(document)
	require.NoError(t, err)

	config, ok := typed.Config.(Config)
	require.True(t, ok)
	require.Equal(t, 0.95, config.Discount)

	defaults := DefaultConfig()
	require.Equal(t, defaults.ClipRatio, config.ClipRatio)
	require.Equal(t, defaults.UpdateSpec, config.UpdateSpec)
	require.Equal(t, defaults.MemorySpec, config.MemorySpec)
	require.Equal(t, defaults.NetworkSpec, config.NetworkSpec)
	require.Equal(t, defaults.OptimizerSpec, config.OptimizerSpec)
}

func TestRoundTrip(t *testing.T) {
	data, err := agent.Marshal(DefaultConfig())
	require.NoError(t, err)

	typed, err := agent.FromJSON(data)
	require.NoError(t, err)

	equal, err := agent.Equal(DefaultConfig(), typed.Config)
	require.NoError(t, err)
	require.True(t, equal)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative discount", func(c *Config) { c.Discount = -0.1 }},
		{"discount above one", func(c *Config) { c.Discount = 1.1 }},
		{"gae lambda above one", func(c *Config) { c.GAELambda = 1.5 }},
		{"zero clip ratio", func(c *Config) { c.ClipRatio = 0.0 }},
		{"no memory", func(c *Config) { c.MemorySpec = memory.Spec{} }},
		{"off-policy memory", func(c *Config) {
			c.MemorySpec = memory.Spec{Config: memory.NewReplayConfig()}
		}},
		{"batch larger than memory", func(c *Config) {
			c.UpdateSpec.BatchSize = 1001
		}},
		{"sample larger than batch", func(c *Config) {
			c.UpdateSpec.SampleSize = 128
		}},
		{"no policy network", func(c *Config) { c.NetworkSpec = nil }},
		{"no value network", func(c *Config) {
			c.ValueFunctionSpec = nil
		}},
		{"zero observe buffer", func(c *Config) {
			c.ObserveSpec.BufferSize = 0
		}},
		{"zero iterations", func(c *Config) {
			c.UpdateSpec.NumIterations = 0
		}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config := DefaultConfig()
			test.mutate(&config)
			require.Error(t, config.Validate())
		})
	}
}

func TestDefaultConfigList(t *testing.T) {
	list := DefaultConfigList()
	require.Equal(t, agent.PPO, list.Type())
	require.Equal(t, 1, list.Len())

	config, err := agent.ConfigAt(0, list)
	require.NoError(t, err)

	equal, err := agent.Equal(DefaultConfig(), config)
	require.NoError(t, err)
	require.True(t, equal)
}

func TestConfigAtOrder(t *testing.T) {
	list := DefaultConfigList()
	list.Discount = []float64{0.9, 0.99}
	list.ClipRatio = []float64{0.1, 0.2}
	require.Equal(t, 4, list.Len())

	// Candidates of earlier fields vary fastest
	wantDiscount := []float64{0.9, 0.99, 0.9, 0.99}
	wantClipRatio := []float64{0.1, 0.1, 0.2, 0.2}

	for i := 0; i < list.Len(); i++ {
		config, err := agent.ConfigAt(i, list)
		require.NoError(t, err)

		ppoConfig, ok := config.(Config)
		require.True(t, ok)
		require.Equal(t, wantDiscount[i], ppoConfig.Discount)
		require.Equal(t, wantClipRatio[i], ppoConfig.ClipRatio)
		require.Equal(t, DefaultConfig().UpdateSpec, ppoConfig.UpdateSpec)
	}

	_, err := agent.ConfigAt(4, list)
	require.Error(t, err)
}

func TestSweepFromJSON(t *testing.T) {
	document := []byte(`{
		"type": "ppo",
		"clip_ratio": [0.1, 0.2, 0.3]
	}`)

	sweep, err := agent.SweepFromJSON(document)
	require.NoError(t, err)
	require.NoError(t, sweep.Validate())
	require.Equal(t, 3, sweep.Len())

	config, err := sweep.At(1)
	require.NoError(t, err)

	ppoConfig, ok := config.(Config)
	require.True(t, ok)
	require.Equal(t, 0.2, ppoConfig.ClipRatio)
	require.Equal(t, DefaultConfig().Discount, ppoConfig.Discount)
}

func TestUpdateConfigValidate(t *testing.T) {
	valid := UpdateConfig{
		UpdateInterval: 64,
		BatchSize:      64,
		SampleSize:     32,
		NumIterations:  10,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*UpdateConfig)
	}{
		{"zero interval", func(u *UpdateConfig) { u.UpdateInterval = 0 }},
		{"zero batch", func(u *UpdateConfig) { u.BatchSize = 0 }},
		{"zero sample", func(u *UpdateConfig) { u.SampleSize = 0 }},
		{"sample above batch", func(u *UpdateConfig) { u.SampleSize = 65 }},
		{"zero iterations", func(u *UpdateConfig) { u.NumIterations = 0 }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			update := valid
			test.mutate(&update)
			require.Error(t, update.Validate())
		})
	}
}
