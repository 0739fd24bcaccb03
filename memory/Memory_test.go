package memory

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agentspec/agentspec/spec"
)

func TestDecode(t *testing.T) {
	s, err := FromJSON([]byte(`{"type": "ring_buffer", "capacity": 1000}`))
	require.NoError(t, err)
	require.Equal(t, RingBuffer, s.Type())
	require.Equal(t, 1000, s.Capacity())
	require.False(t, s.Prioritized())

	s, err = FromJSON([]byte(`{"type": "prioritized_replay",
		"capacity": 10000, "alpha": 0.6, "beta": 0.4}`))
	require.NoError(t, err)
	require.Equal(t, PrioritizedReplay, s.Type())
	require.Equal(t, 10000, s.Capacity())
	require.True(t, s.Prioritized())
}

func TestDecodeDefaults(t *testing.T) {
	s, err := FromJSON([]byte(`{"type": "prioritized_replay",
		"capacity": 50000}`))
	require.NoError(t, err)

	config, ok := s.Config.(PrioritizedReplayConfig)
	require.True(t, ok)
	require.Equal(t, 50000, config.Size)
	require.Equal(t, 0.6, config.Alpha)
	require.Equal(t, 0.4, config.Beta)
}

func TestDecodeUnknownType(t *testing.T) {
	_, err := FromJSON([]byte(`{"type": "episodic", "capacity": 100}`))
	require.Error(t, err)
	require.True(t, spec.IsUnknownType(err))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{"zero capacity ring buffer", RingBufferConfig{}},
		{"negative capacity replay", ReplayConfig{Size: -1}},
		{"negative alpha", PrioritizedReplayConfig{Size: 100,
			Alpha: -0.1, Beta: 0.4}},
		{"beta above one", PrioritizedReplayConfig{Size: 100,
			Alpha: 0.6, Beta: 1.1}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Error(t, test.config.Validate())

			_, err := New(test.config)
			require.Error(t, err)
		})
	}

	// Alpha of zero is uniform sampling, not an error
	require.NoError(t,
		PrioritizedReplayConfig{Size: 100, Alpha: 0, Beta: 0}.Validate())
}

func TestRoundTrip(t *testing.T) {
	documents := []string{
		`{"type": "ring_buffer", "capacity": 1000}`,
		`{"type": "replay", "capacity": 10000}`,
		`{"type": "prioritized_replay", "capacity": 2000000,
			"alpha": 0.6, "beta": 0.4}`,
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
	}
}
