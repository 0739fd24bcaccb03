package initializer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agentspec/agentspec/spec"
)

func TestDecode(t *testing.T) {
	s, err := FromJSON([]byte(`{"type": "glorot_uniform"}`))
	require.NoError(t, err)

	config, ok := s.Config.(GlorotUniformConfig)
	require.True(t, ok)
	require.Equal(t, 1.0, config.Gain)
	require.NotNil(t, s.Create())
}

func TestDecodeUnknownType(t *testing.T) {
	_, err := FromJSON([]byte(`{"type": "orthogonal"}`))
	require.Error(t, err)
	require.True(t, spec.IsUnknownType(err))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{"zero gain", GlorotUniformConfig{}},
		{"negative gain", HeNormalConfig{Gain: -1}},
		{"inverted uniform range", RandomUniformConfig{MinVal: 0.1,
			MaxVal: -0.1}},
		{"zero stddev", RandomNormalConfig{}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Error(t, test.config.Validate())

			_, err := New(test.config)
			require.Error(t, err)
		})
	}
}

func TestCreate(t *testing.T) {
	specs := []func() (Spec, error){
		func() (Spec, error) { return NewGlorotUniform(1.0) },
		func() (Spec, error) { return NewGlorotNormal(1.0) },
		func() (Spec, error) { return NewHeUniform(1.0) },
		func() (Spec, error) { return NewHeNormal(1.0) },
		NewZeros,
		NewOnes,
		func() (Spec, error) { return NewConstant(0.1) },
		func() (Spec, error) { return NewRandomUniform(-0.05, 0.05) },
		func() (Spec, error) { return NewRandomNormal(0.0, 0.05) },
	}

	for _, newSpec := range specs {
		s, err := newSpec()
		require.NoError(t, err)
		require.NotNil(t, s.Create(), "type %v", s.Type())
	}
}

func TestRoundTrip(t *testing.T) {
	documents := []string{
		`{"type": "glorot_uniform", "gain": 1.0}`,
		`{"type": "glorot_normal", "gain": 2.0}`,
		`{"type": "he_uniform", "gain": 1.0}`,
		`{"type": "he_normal", "gain": 1.0}`,
		`{"type": "zeros"}`,
		`{"type": "ones"}`,
		`{"type": "constant", "value": 0.5}`,
		`{"type": "random_uniform", "minval": -0.05, "maxval": 0.05}`,
		`{"type": "random_normal", "mean": 0.0, "stddev": 0.05}`,
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
