package mockmcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestToolCall_ToolResult(t *testing.T) {
	call := ToolCall{ID: "call_1", ToolName: "get_weather_by_coordinates", Args: []byte(`{"latitude":40.7}`)}
	assert.Equal(t, "call_1", call.ID)
	assert.Equal(t, "get_weather_by_coordinates", call.ToolName)
	assert.JSONEq(t, `{"latitude":40.7}`, string(call.Args))

	res := ToolResult{CallID: call.ID, ToolName: call.ToolName, Result: []byte(`{"ok":true}`)}
	assert.Equal(t, "call_1", res.CallID)
	assert.Equal(t, "get_weather_by_coordinates", res.ToolName)
	assert.NoError(t, res.Error)
	assert.JSONEq(t, `{"ok":true}`, string(res.Result))
}
