// Package mockmcp provides a type-safe engine for registering, describing, and
// executing mock MCP tools: simulated tool calls that return fabricated external
// API responses instead of touching real services.
//
// # Overview
//
// Agents produce tool calls as JSON. This package turns that JSON into concrete Go
// function calls against mock handlers: unmarshal → validate (against the same JSON
// Schema advertised to the agent) → execute the mock → marshal the fabricated result
// or return a clear error for self-correction.
//
// Pipeline: Go function + argument struct → NewTool (reflection + schema) → Tool →
// Registry → Execute (unmarshal, validate, call, marshal) → ToolResult.
//
// # Key concepts
//
//   - Single Source of Truth: one argument struct drives both the schema shown to
//     the agent and the validation of incoming JSON.
//   - Partial Success: ExecuteBatch collects all results; one failure does not cancel others.
//   - Self-Correction: ClientError carries human-readable messages back to the agent.
//
// Mock response fabrication lives in the mockapi subpackage (flat scalar payloads and
// flat-to-nested reshaping); the stateful subpackage adds the heuristic dispatcher that
// routes side effects into a simulated state store. Concrete mock servers live under
// servers/, and cmd/mockmcp exposes a registry over MCP stdio.
//
// # Example
//
//	type Args struct { City string `json:"city" jsonschema:"required"` }
//	type Out  struct { Temp float64 `json:"temp"` }
//	tool, err := mockmcp.NewTool("weather", "Get weather", func(_ context.Context, a Args) (Out, error) {
//	    return Out{Temp: 22.5}, nil
//	})
//	if err != nil { ... }
//	reg := mockmcp.NewRegistry()
//	reg.Register(tool)
//	res := reg.Execute(ctx, mockmcp.ToolCall{ID: "1", ToolName: "weather", Args: []byte(`{"city":"Lisbon"}`)})
package mockmcp
