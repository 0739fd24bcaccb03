package agent_test

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agentspec/agentspec/agent"
	"github.com/agentspec/agentspec/agent/apex"
	"github.com/agentspec/agentspec/agent/ppo"
	"github.com/agentspec/agentspec/spec"
)

var documents = map[agent.Type]string{
	agent.PPO:  "testdata/ppo_agent.json",
	agent.Apex: "testdata/apex_agent.json",
}

func TestTypes(t *testing.T) {
	require.Equal(t, []string{"apex", "ppo"}, agent.Types())
}

func TestDocumentsParse(t *testing.T) {
	for agentType, path := range documents {
		t.Run(string(agentType), func(t *testing.T) {
			data, err := os.ReadFile(path)
			require.NoError(t, err)

			var tree map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &tree))
			require.Equal(t, string(agentType), tree["type"])
		})
	}
}

func TestDocumentsDecode(t *testing.T) {
	for agentType, path := range documents {
		t.Run(string(agentType), func(t *testing.T) {
			config, err := agent.FromFile(path)
			require.NoError(t, err)
			require.Equal(t, agentType, config.Type())
			require.NoError(t, config.Validate())
		})
	}
}

// Decoding a document and serializing it back must reproduce the
// document: same nesting, same keys, same values.
func TestDocumentsRoundTrip(t *testing.T) {
	for agentType, path := range documents {
		t.Run(string(agentType), func(t *testing.T) {
			data, err := os.ReadFile(path)
			require.NoError(t, err)

			config, err := agent.FromJSON(data)
			require.NoError(t, err)

			encoded, err := agent.Marshal(config.Config)
			require.NoError(t, err)

			equal, err := spec.Equal(data, encoded)
			require.NoError(t, err)
			require.True(t, equal)

			decoded, err := agent.FromJSON(encoded)
			require.NoError(t, err)

			equal, err = agent.Equal(config.Config, decoded.Config)
			require.NoError(t, err)
			require.True(t, equal)
		})
	}
}

// The registered defaults of each agent type are exactly the
// documents.
func TestDefaultsMatchDocuments(t *testing.T) {
	defaults := map[agent.Type]agent.Config{
		agent.PPO:  ppo.DefaultConfig(),
		agent.Apex: apex.DefaultConfig(),
	}

	for agentType, path := range documents {
		t.Run(string(agentType), func(t *testing.T) {
			data, err := os.ReadFile(path)
			require.NoError(t, err)

			encoded, err := agent.Marshal(defaults[agentType])
			require.NoError(t, err)

			equal, err := spec.Equal(data, encoded)
			require.NoError(t, err)
			require.True(t, equal)
		})
	}
}

// leaves flattens a JSON tree into path/value pairs, one per scalar.
func leaves(prefix string, value interface{}, out map[string]interface{}) {
	switch node := value.(type) {
	case map[string]interface{}:
		for key, child := range node {
			leaves(prefix+"/"+key, child, out)
		}
	case []interface{}:
		for i, child := range node {
			leaves(fmt.Sprintf("%v/%v", prefix, i), child, out)
		}
	default:
		out[prefix] = node
	}
}

// Every leaf of a document survives the typed decode with its value
// and type intact.
func TestDocumentLeaves(t *testing.T) {
	for agentType, path := range documents {
		t.Run(string(agentType), func(t *testing.T) {
			data, err := os.ReadFile(path)
			require.NoError(t, err)

			config, err := agent.FromJSON(data)
			require.NoError(t, err)
			encoded, err := agent.Marshal(config.Config)
			require.NoError(t, err)

			var document, roundTripped interface{}
			require.NoError(t, json.Unmarshal(data, &document))
			require.NoError(t, json.Unmarshal(encoded, &roundTripped))

			want := map[string]interface{}{}
			leaves("", document, want)
			got := map[string]interface{}{}
			leaves("", roundTripped, got)

			require.NotEmpty(t, want)
			for leafPath, value := range want {
				require.Contains(t, got, leafPath)
				require.Equal(t, value, got[leafPath],
					"leaf %v changed across the round trip", leafPath)
			}
			require.Len(t, got, len(want))
		})
	}
}

func TestMergePatch(t *testing.T) {
	base, err := os.ReadFile("testdata/ppo_agent.json")
	require.NoError(t, err)

	patch := []byte(`{
		"discount": 0.95,
		"update_spec": {"sample_size": 16}
	}`)

	merged, err := agent.Merge(base, patch)
	require.NoError(t, err)

	typed, err := agent.FromJSON(merged)
	require.NoError(t, err)

	config, ok := typed.Config.(ppo.Config)
	require.True(t, ok)
	require.Equal(t, 0.95, config.Discount)
	require.Equal(t, 16, config.UpdateSpec.SampleSize)

	// Siblings of the patched leaf survive
	require.Equal(t, 64, config.UpdateSpec.BatchSize)
	require.Equal(t, 10, config.UpdateSpec.NumIterations)
	require.NoError(t, config.Validate())
}

func TestMergeReplacesArrays(t *testing.T) {
	base, err := os.ReadFile("testdata/ppo_agent.json")
	require.NoError(t, err)

	patch := []byte(`{
		"network_spec": [
			{"type": "dense", "units": 128, "activation": "relu",
			 "use_bias": true}
		]
	}`)

	merged, err := agent.Merge(base, patch)
	require.NoError(t, err)

	typed, err := agent.FromJSON(merged)
	require.NoError(t, err)

	config := typed.Config.(ppo.Config)
	require.Len(t, config.NetworkSpec, 1)
	require.Equal(t, 128, config.NetworkSpec.OutputUnits())
}

func TestFromJSONUnknownType(t *testing.T) {
	_, err := agent.FromJSON([]byte(`{"type": "sarsa"}`))
	require.Error(t, err)
	require.True(t, spec.IsUnknownType(err))
}

func TestFromJSONMissingType(t *testing.T) {
	_, err := agent.FromJSON([]byte(`{"discount": 0.9}`))
	require.Error(t, err)
	require.True(t, spec.IsMissingType(err))
}

func TestFromFileMissing(t *testing.T) {
	_, err := agent.FromFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func ExampleFromFile() {
	config, err := agent.FromFile("testdata/ppo_agent.json")
	if err != nil {
		panic(err)
	}
	fmt.Println(config.Type())
	// Output: ppo
}

func ExampleMerge() {
	base := []byte(`{"type": "ppo", "discount": 0.99}`)
	patch := []byte(`{"discount": 0.95}`)

	merged, err := agent.Merge(base, patch)
	if err != nil {
		panic(err)
	}

	config, err := agent.FromJSON(merged)
	if err != nil {
		panic(err)
	}
	fmt.Println(config.Config.(ppo.Config).Discount)
	// Output: 0.95
}
