// Package mcpserver exposes a Registry's mock tools over the Model Context
// Protocol on stdio. tools/list is served from each tool's generated schema;
// tools/call routes through Registry.Execute so middleware (logging, stateful
// dispatch) applies to protocol traffic exactly as it does to direct calls.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"mockmcp"
)

// Server bridges a mockmcp.Registry to an MCP stdio server.
type Server struct {
	name      string
	version   string
	registry  *mockmcp.Registry
	mcpServer *server.MCPServer
	logger    *slog.Logger
}

// New builds a Server for registry. logger may be nil (slog.Default); it must not
// write to stdout, which belongs to the protocol.
func New(name, version string, registry *mockmcp.Registry, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	mcpServer := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithPromptCapabilities(false),
	)
	s := &Server{
		name:      name,
		version:   version,
		registry:  registry,
		mcpServer: mcpServer,
		logger:    logger,
	}
	for _, t := range registry.GetAllTools() {
		mcpServer.AddTool(toMCPTool(t), s.handlerFor(t.Name()))
	}
	return s
}

// Serve runs the stdio transport until the client disconnects.
func (s *Server) Serve() error {
	s.logger.Info("serving mock tools over stdio", "server", s.name, "tools", len(s.registry.GetAllTools()))
	return server.ServeStdio(s.mcpServer)
}

// handlerFor adapts one registered tool to the MCP call handler signature.
// ClientError becomes a tool-level error result the agent can read and correct;
// anything else is a protocol error.
func (s *Server) handlerFor(toolName string) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		argsJSON, err := json.Marshal(args)
		if err != nil {
			argsJSON = []byte("{}")
		}
		res := s.registry.Execute(ctx, mockmcp.ToolCall{
			ID:       uuid.NewString(),
			ToolName: toolName,
			Args:     argsJSON,
		})
		if res.Error != nil {
			if mockmcp.IsClientError(res.Error) {
				return mcp.NewToolResultError(res.Error.Error()), nil
			}
			return nil, res.Error
		}
		return mcp.NewToolResultText(string(res.Result)), nil
	}
}

// toMCPTool converts a registered tool's generated schema into the MCP wire shape.
func toMCPTool(t mockmcp.Tool) mcp.Tool {
	params := t.Parameters()
	properties, _ := params["properties"].(map[string]any)
	if properties == nil {
		properties = map[string]any{}
	}
	var required []string
	switch req := params["required"].(type) {
	case []any:
		for _, r := range req {
			required = append(required, fmt.Sprintf("%v", r))
		}
	case []string:
		required = req
	}
	return mcp.Tool{
		Name:        t.Name(),
		Description: t.Description(),
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: properties,
			Required:   required,
		},
	}
}
