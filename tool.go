package mockmcp

import (
	"context"
	"encoding/json"
	"time"
)

// Tool is the contract for a callable mock instrument.
// It is provider-agnostic (no knowledge of a specific MCP SDK or LLM vendor).
type Tool interface {
	Name() string
	Description() string
	// Parameters returns a valid JSON Schema as map (compatible with MCP tool definitions).
	Parameters() map[string]any
	// Execute runs the tool with raw JSON arguments and returns the marshaled result.
	Execute(ctx context.Context, argsJSON []byte) ([]byte, error)
}

// ToolMetadata is implemented by tools created with NewTool and provides optional per-tool
// settings. Registry uses Timeout() to override the default execution timeout when set.
// Other methods expose tags, version, and the stateful flag for orchestration or discovery.
type ToolMetadata interface {
	Timeout() time.Duration
	Tags() []string
	Version() string
	// IsStateful reports whether calls to this tool may touch the simulated state store.
	IsStateful() bool
}

// ToolCall is a single execution request (as produced by the agent).
type ToolCall struct {
	ID       string
	ToolName string
	Args     json.RawMessage // JSON payload of arguments
}

// ToolResult is the outcome of a single tool execution. Result holds the marshaled
// response when Error is nil. Registry sets CallID and ToolName when forwarding.
type ToolResult struct {
	CallID   string
	ToolName string
	Result   json.RawMessage
	Error    error
}
