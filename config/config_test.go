package config

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mockmcp"
)

const echoYAML = `
tools:
  - name: echo_city
    description: Echo the city back.
    input_schema:
      type: object
      properties:
        city:
          type: string
        units:
          type: string
          default: metric
      required: [city]
    responses:
      - condition:
          city: atlantis
        error: "city {{ city }} is not on any map"
      - response:
          city: "{{ city }}"
          units: "{{ units }}"
          message: "weather for {{ city }}"
`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, "tools.yaml", echoYAML)
	tools, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, tools, 1)
	assert.Equal(t, "echo_city", tools[0].Name)
	assert.Len(t, tools[0].Responses, 2)
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing name", "tools:\n  - description: no name\n    responses:\n      - response: ok\n"},
		{"no responses", "tools:\n  - name: t\n"},
		{"empty response entry", "tools:\n  - name: t\n    responses:\n      - condition:\n          a: 1\n"},
		{"bad yaml", "tools: ["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, "bad.yaml", tt.content)
			_, err := LoadFile(path)
			require.Error(t, err)
		})
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	first := "tools:\n  - name: alpha\n    responses:\n      - response: ok\n"
	second := "tools:\n  - name: beta\n    responses:\n      - response: ok\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"), []byte(second), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yml"), []byte(first), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644))

	tools, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, tools, 2)
	// Files load in name order.
	assert.Equal(t, "alpha", tools[0].Name)
	assert.Equal(t, "beta", tools[1].Name)
}

func buildEchoTool(t *testing.T) mockmcp.Tool {
	t.Helper()
	path := writeConfig(t, "tools.yaml", echoYAML)
	cfgs, err := LoadFile(path)
	require.NoError(t, err)
	tool, err := BuildTool(cfgs[0])
	require.NoError(t, err)
	return tool
}

func TestBuildTool_TemplateAndDefaults(t *testing.T) {
	tool := buildEchoTool(t)
	out, err := tool.Execute(context.Background(), []byte(`{"city": "Oslo"}`))
	require.NoError(t, err)
	var result map[string]any
	require.NoError(t, json.Unmarshal(out, &result))
	assert.Equal(t, "Oslo", result["city"])
	assert.Equal(t, "metric", result["units"]) // schema default merged in
	assert.Equal(t, "weather for Oslo", result["message"])
}

func TestBuildTool_ConditionSelectsError(t *testing.T) {
	tool := buildEchoTool(t)
	_, err := tool.Execute(context.Background(), []byte(`{"city": "atlantis"}`))
	require.Error(t, err)
	assert.True(t, mockmcp.IsClientError(err))
	assert.Contains(t, err.Error(), "city atlantis is not on any map")
}

func TestBuildTool_SchemaRejectsMissingRequired(t *testing.T) {
	tool := buildEchoTool(t)
	_, err := tool.Execute(context.Background(), []byte(`{}`))
	require.Error(t, err)
	assert.True(t, mockmcp.IsClientError(err))
}

func TestBuildTool_NativeTypeSubstitution(t *testing.T) {
	cfg := ToolConfig{
		Name: "count",
		InputSchema: map[string]any{
			"type":       "object",
			"properties": map[string]any{"n": map[string]any{"type": "integer"}},
		},
		Responses: []ToolResponse{{Response: map[string]any{"n": "{{ n }}"}}},
	}
	tool, err := BuildTool(cfg)
	require.NoError(t, err)
	out, err := tool.Execute(context.Background(), []byte(`{"n": 7}`))
	require.NoError(t, err)
	var result map[string]any
	require.NoError(t, json.Unmarshal(out, &result))
	// Whole-string placeholder keeps the numeric type.
	assert.Equal(t, float64(7), result["n"])
}

func TestBuildTool_Delay(t *testing.T) {
	cfg := ToolConfig{
		Name:      "slow",
		Responses: []ToolResponse{{Response: "ok", Delay: "30ms"}},
	}
	tool, err := BuildTool(cfg)
	require.NoError(t, err)
	start := time.Now()
	_, err = tool.Execute(context.Background(), []byte(`{}`))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestBuildTool_DelayHonorsContext(t *testing.T) {
	cfg := ToolConfig{
		Name:      "slow",
		Responses: []ToolResponse{{Response: "ok", Delay: "5s"}},
	}
	tool, err := BuildTool(cfg)
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = tool.Execute(ctx, []byte(`{}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestBuildTool_FallbackIsFirstResponse(t *testing.T) {
	cfg := ToolConfig{
		Name: "router",
		Responses: []ToolResponse{
			{Condition: map[string]any{"mode": "a"}, Response: "A"},
			{Condition: map[string]any{"mode": "b"}, Response: "B"},
		},
	}
	tool, err := BuildTool(cfg)
	require.NoError(t, err)
	out, err := tool.Execute(context.Background(), []byte(`{"mode": "zzz"}`))
	require.NoError(t, err)
	assert.JSONEq(t, `"A"`, string(out))

	out, err = tool.Execute(context.Background(), []byte(`{"mode": "b"}`))
	require.NoError(t, err)
	assert.JSONEq(t, `"B"`, string(out))
}

func TestValuesEqual_LooseMatching(t *testing.T) {
	// YAML conditions carry ints; JSON arguments carry floats.
	assert.True(t, valuesEqual(1, float64(1)))
	assert.True(t, valuesEqual(true, true))
	assert.True(t, valuesEqual("x", "x"))
	assert.False(t, valuesEqual("x", "y"))
	assert.False(t, valuesEqual(1, float64(2)))
}

func TestRegisterAll(t *testing.T) {
	reg := mockmcp.NewRegistry(mockmcp.WithDefaultTimeout(time.Second))
	cfgs := []ToolConfig{
		{Name: "one", Responses: []ToolResponse{{Response: "1"}}},
		{Name: "two", Responses: []ToolResponse{{Response: "2"}}},
	}
	require.NoError(t, RegisterAll(reg, cfgs))
	assert.Len(t, reg.GetAllTools(), 2)

	res := reg.Execute(context.Background(), mockmcp.ToolCall{
		ID: "1", ToolName: "one", Args: []byte(`{}`),
	})
	require.NoError(t, res.Error)
	assert.JSONEq(t, `"1"`, string(res.Result))
}
