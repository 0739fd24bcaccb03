package exploration

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agentspec/agentspec/schedule"
	"github.com/agentspec/agentspec/spec"
)

const apexExploration = `{
	"epsilon_spec": {
		"decay_spec": {
			"type": "linear_decay",
			"from": 1.0,
			"to": 0.02,
			"start_timestep": 0,
			"num_timesteps": 10000
		}
	}
}`

func TestDecode(t *testing.T) {
	var config Config
	require.NoError(t, json.Unmarshal([]byte(apexExploration), &config))
	require.True(t, config.EpsilonGreedy())
	require.NoError(t, config.Validate())

	epsilon, err := config.EpsilonAt(0)
	require.NoError(t, err)
	require.Equal(t, 1.0, epsilon)

	epsilon, err = config.EpsilonAt(5000)
	require.NoError(t, err)
	require.InDelta(t, 0.51, epsilon, 1e-12)

	epsilon, err = config.EpsilonAt(20000)
	require.NoError(t, err)
	require.Equal(t, 0.02, epsilon)
}

func TestRoundTrip(t *testing.T) {
	var config Config
	require.NoError(t, json.Unmarshal([]byte(apexExploration), &config))

	encoded, err := json.Marshal(config)
	require.NoError(t, err)

	equal, err := spec.Equal([]byte(apexExploration), encoded)
	require.NoError(t, err)
	require.True(t, equal, "encoded to %s", encoded)
}

func TestValidate(t *testing.T) {
	// An empty exploration section is a valid greedy agent
	require.NoError(t, Config{}.Validate())
	require.False(t, Config{}.EpsilonGreedy())

	_, err := Config{}.EpsilonAt(0)
	require.Error(t, err)

	// An epsilon_spec without a schedule is not valid
	require.Error(t, Config{EpsilonSpec: &EpsilonConfig{}}.Validate())

	// Neither is one with a degenerate schedule
	bad := Config{EpsilonSpec: &EpsilonConfig{
		DecaySpec: schedule.Spec{Config: schedule.LinearConfig{}},
	}}
	require.Error(t, bad.Validate())
}

func TestSampleStart(t *testing.T) {
	decay, err := schedule.NewLinear(1.0, 0.02, 0, 10000)
	require.NoError(t, err)
	config, err := NewEpsilonGreedy(decay)
	require.NoError(t, err)

	derived, err := config.SampleStart(0.1, 42)
	require.NoError(t, err)

	start, err := derived.EpsilonAt(0)
	require.NoError(t, err)
	require.GreaterOrEqual(t, start, 0.1)
	require.Less(t, start, 1.0)

	// The derived schedule still anneals to the configured end value
	end, err := derived.EpsilonAt(10000)
	require.NoError(t, err)
	require.Equal(t, 0.02, end)

	// The source configuration is untouched
	original, err := config.EpsilonAt(0)
	require.NoError(t, err)
	require.Equal(t, 1.0, original)
}

func TestSampleStartDeterministic(t *testing.T) {
	decay, err := schedule.NewLinear(1.0, 0.0, 0, 10000)
	require.NoError(t, err)
	config, err := NewEpsilonGreedy(decay)
	require.NoError(t, err)

	first, err := config.SampleStart(0.0, 7)
	require.NoError(t, err)
	second, err := config.SampleStart(0.0, 7)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestSampleStartErrors(t *testing.T) {
	_, err := Config{}.SampleStart(0.0, 1)
	require.Error(t, err)

	constant, err := schedule.NewConstant(0.1)
	require.NoError(t, err)
	config, err := NewEpsilonGreedy(constant)
	require.NoError(t, err)
	_, err = config.SampleStart(0.0, 1)
	require.Error(t, err)

	decay, err := schedule.NewLinear(0.5, 0.0, 0, 10000)
	require.NoError(t, err)
	config, err = NewEpsilonGreedy(decay)
	require.NoError(t, err)

	// The minimum must sit below the decay starting value
	_, err = config.SampleStart(0.9, 1)
	require.Error(t, err)
}
