package nodecatalog

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mockmcp"
)

func catalogTools(t *testing.T) (getInfo, list mockmcp.Tool) {
	t.Helper()
	tools, err := Tools()
	require.NoError(t, err)
	require.Len(t, tools, 2)
	return tools[0], tools[1]
}

func TestGetNodeInfo(t *testing.T) {
	getInfo, _ := catalogTools(t)
	assert.Equal(t, "get_node_info", getInfo.Name())

	out, err := getInfo.Execute(context.Background(),
		[]byte(`{"nodeType": "nodes-base.httpRequest"}`))
	require.NoError(t, err)
	var info NodeInfo
	require.NoError(t, json.Unmarshal(out, &info))

	schema, ok := info.NodeSchema.(map[string]any)
	require.True(t, ok, "embedded schema JSON should decode to an object")
	assert.Equal(t, "httpRequest", schema["name"])

	caps, ok := info.AIToolCapabilities.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, caps["enabled"])

	require.Len(t, info.RequiredProperties, 2)
	assert.Equal(t, "url", info.RequiredProperties[0].Name)
	require.Len(t, info.Credentials, 2)
	assert.Equal(t, "httpBasicAuth", info.Credentials[0].Name)
	require.Len(t, info.Operations, 2)
	assert.Equal(t, "GET", info.Operations[0].Operation)
	assert.Equal(t, "nodes-base.httpRequest", info.NodeType)
	assert.True(t, info.HasConditionalLogic)
	assert.Equal(t, 156, info.RawSizeKB)
}

func TestGetNodeInfo_PrefixValidation(t *testing.T) {
	getInfo, _ := catalogTools(t)
	tests := []struct {
		name string
		args string
	}{
		{"no prefix", `{"nodeType": "httpRequest"}`},
		{"wrong prefix", `{"nodeType": "nodes-community.httpRequest"}`},
		{"empty", `{"nodeType": ""}`},
		{"missing", `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := getInfo.Execute(context.Background(), []byte(tt.args))
			require.Error(t, err)
			assert.True(t, mockmcp.IsClientError(err))
		})
	}
}

func TestListNodes(t *testing.T) {
	_, list := catalogTools(t)
	assert.Equal(t, "list_nodes", list.Name())

	out, err := list.Execute(context.Background(), []byte(`{}`))
	require.NoError(t, err)
	var result NodeList
	require.NoError(t, json.Unmarshal(out, &result))
	assert.Equal(t, 3, result.Total)
	require.Len(t, result.Nodes, 3)
	assert.Equal(t, "HTTP Request", result.Nodes[0]["displayName"])
}

func TestListNodes_CategoryFilter(t *testing.T) {
	_, list := catalogTools(t)
	out, err := list.Execute(context.Background(), []byte(`{"category": "trigger"}`))
	require.NoError(t, err)
	var result NodeList
	require.NoError(t, json.Unmarshal(out, &result))
	require.Len(t, result.Nodes, 1)
	assert.Equal(t, 1, result.Total)
	assert.Equal(t, "nodes-base.webhook", result.Nodes[0]["nodeType"])
}

func TestCatalogTools_MarkedStateful(t *testing.T) {
	getInfo, list := catalogTools(t)
	for _, tool := range []mockmcp.Tool{getInfo, list} {
		tm, ok := tool.(mockmcp.ToolMetadata)
		require.True(t, ok)
		assert.True(t, tm.IsStateful(), tool.Name())
	}
}
