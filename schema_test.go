package mockmcp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type taggedArgs struct {
	Units string `json:"units,omitempty" description:"Measurement system" enum:"metric, imperial"`
	Limit int    `json:"limit,omitempty" description:"Maximum number of rows"`
}

func TestGenerateSchema_StructTagEnrichment(t *testing.T) {
	schema, _, err := generateSchema[taggedArgs](false)
	require.NoError(t, err)
	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)

	units, ok := props["units"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Measurement system", units["description"])
	assert.Equal(t, []any{"metric", "imperial"}, units["enum"])

	limit, ok := props["limit"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Maximum number of rows", limit["description"])
	assert.NotContains(t, limit, "enum")
}

func TestGenerateSchema_StrictMode(t *testing.T) {
	schema, _, err := generateSchema[taggedArgs](true)
	require.NoError(t, err)
	assert.Equal(t, false, schema["additionalProperties"])
	required, ok := schema["required"].([]any)
	require.True(t, ok)
	assert.ElementsMatch(t, []any{"units", "limit"}, required)
}

func TestRegisterType_CustomMapping(t *testing.T) {
	type withTime struct {
		At time.Time `json:"at"`
	}
	RegisterType(time.Time{}, "string", "date-time")
	schema, _, err := generateSchema[withTime](false)
	require.NoError(t, err)
	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	at, ok := props["at"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "string", at["type"])
	assert.Equal(t, "date-time", at["format"])
}

func TestRegisterType_Panics(t *testing.T) {
	assert.Panics(t, func() { RegisterType(nil, "string", "") })
	assert.Panics(t, func() { RegisterType(time.Time{}, "", "") })
}

func TestStripSchemaIDs(t *testing.T) {
	schemaMap := map[string]any{
		"$id":  "root",
		"type": "object",
		"properties": map[string]any{
			"inner": map[string]any{"id": "inner", "type": "string"},
		},
	}
	stripSchemaIDs(schemaMap)
	assert.NotContains(t, schemaMap, "$id")
	inner := schemaMap["properties"].(map[string]any)["inner"].(map[string]any)
	assert.NotContains(t, inner, "id")
}
