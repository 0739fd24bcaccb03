package schedule

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agentspec/agentspec/spec"
)

func TestLinearValue(t *testing.T) {
	s, err := NewLinear(1.0, 0.02, 0, 10000)
	require.NoError(t, err)

	tests := []struct {
		timestep int64
		want     float64
	}{
		{0, 1.0},     // before and at the start the initial value holds
		{2500, 0.755},
		{5000, 0.51},
		{10000, 0.02}, // at the end of the window the final value holds
		{250000, 0.02},
	}

	for _, test := range tests {
		require.InDelta(t, test.want, s.Value(test.timestep), 1e-12,
			"timestep %d", test.timestep)
	}
}

func TestLinearValueDelayedStart(t *testing.T) {
	s, err := NewLinear(1.0, 0.0, 1000, 10000)
	require.NoError(t, err)

	require.Equal(t, 1.0, s.Value(0))
	require.Equal(t, 1.0, s.Value(1000))
	require.InDelta(t, 0.5, s.Value(6000), 1e-12)
	require.Equal(t, 0.0, s.Value(11000))
}

func TestPolynomialValue(t *testing.T) {
	s, err := NewPolynomial(1.0, 0.0, 0, 10000, 2.0)
	require.NoError(t, err)

	require.Equal(t, 1.0, s.Value(0))
	require.InDelta(t, 0.25, s.Value(5000), 1e-12)
	require.InDelta(t, 0.0625, s.Value(7500), 1e-12)
	require.Equal(t, 0.0, s.Value(10000))
}

func TestExponentialValue(t *testing.T) {
	s, err := NewExponential(1.0, 0.0, 0, 10000, 1000)
	require.NoError(t, err)

	require.Equal(t, 1.0, s.Value(0))
	require.InDelta(t, 0.5, s.Value(1000), 1e-12)
	require.InDelta(t, 0.25, s.Value(2000), 1e-12)
	require.InDelta(t, 0.125, s.Value(3000), 1e-12)

	// Past the window the configured final value applies, not the
	// half-life curve
	require.Equal(t, 0.0, s.Value(10000))
}

func TestExponentialHalfLifeFromWindow(t *testing.T) {
	// 10 half-lives over 10000 timesteps is a half-life of 1000
	config := NewExponentialConfig()
	require.NoError(t, config.Validate())
	require.InDelta(t, 0.5, config.Value(1000), 1e-12)

	// An explicit half-life wins over num_half_lives
	config.HalfLife = 2000
	require.InDelta(t, 0.5, config.Value(2000), 1e-12)
}

func TestConstantValue(t *testing.T) {
	s, err := NewConstant(0.1)
	require.NoError(t, err)

	require.Equal(t, 0.1, s.Value(0))
	require.Equal(t, 0.1, s.Value(1_000_000_000))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{
			name: "zero decay window",
			config: LinearConfig{
				Decay: Decay{From: 1, To: 0, NumTimesteps: 0},
			},
		},
		{
			name: "negative start timestep",
			config: LinearConfig{
				Decay: Decay{From: 1, To: 0, StartTimestep: -5,
					NumTimesteps: 100},
			},
		},
		{
			name: "non-positive power",
			config: PolynomialConfig{
				Decay: Decay{From: 1, To: 0, NumTimesteps: 100},
				Power: 0,
			},
		},
		{
			name: "negative half life",
			config: ExponentialConfig{
				Decay:    Decay{From: 1, To: 0, NumTimesteps: 100},
				HalfLife: -1,
			},
		},
		{
			name: "no way to derive a half life",
			config: ExponentialConfig{
				Decay: Decay{From: 1, To: 0, NumTimesteps: 100},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Error(t, test.config.Validate())

			_, err := New(test.config)
			require.Error(t, err)
		})
	}
}

func TestDecodeDefaults(t *testing.T) {
	s, err := FromJSON([]byte(`{"type": "linear_decay"}`))
	require.NoError(t, err)

	config, ok := s.Config.(LinearConfig)
	require.True(t, ok)
	require.Equal(t, 1.0, config.From)
	require.Equal(t, 0.0, config.To)
	require.Equal(t, int64(0), config.StartTimestep)
	require.Equal(t, int64(10000), config.NumTimesteps)
}

func TestDecodeUnknownType(t *testing.T) {
	_, err := FromJSON([]byte(`{"type": "cosine_decay"}`))
	require.Error(t, err)
	require.True(t, spec.IsUnknownType(err))
}

func TestRoundTrip(t *testing.T) {
	documents := []string{
		`{"type": "linear_decay", "from": 1.0, "to": 0.02,
			"start_timestep": 0, "num_timesteps": 10000}`,
		`{"type": "polynomial_decay", "from": 1.0, "to": 0.0,
			"start_timestep": 0, "num_timesteps": 10000, "power": 2.0}`,
		`{"type": "exponential_decay", "from": 1.0, "to": 0.0,
			"start_timestep": 0, "num_timesteps": 10000,
			"num_half_lives": 10}`,
		`{"type": "constant", "value": 0.1}`,
	}

	for _, document := range documents {
		var s Spec
		require.NoError(t, json.Unmarshal([]byte(document), &s))

		encoded, err := json.Marshal(s)
		require.NoError(t, err)

		equal, err := spec.Equal([]byte(document), encoded)
		require.NoError(t, err)
		require.True(t, equal, "document %s encoded to %s", document,
			encoded)

		var again Spec
		require.NoError(t, json.Unmarshal(encoded, &again))
		require.Equal(t, s, again)
	}
}
