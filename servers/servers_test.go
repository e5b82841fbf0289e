package servers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mockmcp"
	"mockmcp/mockapi"
	"mockmcp/testutil"
)

func TestRegisterAll(t *testing.T) {
	reg := testutil.NewTestRegistry()
	src := mockapi.NewSource(42)
	require.NoError(t, RegisterAll(reg, src))

	want := []string{
		"add_game_to_library",
		"coins_markets",
		"file_editor",
		"get_epic_free_games",
		"get_library_inventory",
		"get_node_info",
		"get_problem",
		"get_weather_by_coordinates",
		"list_nodes",
	}
	tools := reg.GetAllTools()
	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Name())
	}
	assert.Equal(t, want, names)

	res := reg.Execute(context.Background(), mockmcp.ToolCall{
		ID:       "1",
		ToolName: "get_problem",
		Args:     []byte(`{"titleSlug": "two-sum"}`),
	})
	require.NoError(t, res.Error)
	assert.NotEmpty(t, res.Result)
}
