// Package editor simulates a text-editor MCP server driven by a command string
// ("view", "create", ...). It is the canonical client of the heuristic dispatcher:
// the tool itself only fabricates an acknowledgement envelope, while the dispatcher
// infers the file side effect from the command verb and routes it into the store.
package editor

import (
	"context"
	"fmt"
	"strings"

	"mockmcp"
)

// Commands the simulated editor understands. Anything else fails validation.
var knownCommands = []string{"view", "create", "write", "list"}

// Args are the inputs for file_editor.
type Args struct {
	Command  string `json:"command" jsonschema:"required" description:"Editor command to run" enum:"view,create,write,list"`
	Path     string `json:"path" jsonschema:"required" description:"Path the command applies to"`
	FileText string `json:"file_text,omitempty" description:"File content for create/write commands"`
}

// Validate checks the command verb and the path, and requires content for writes.
func (a Args) Validate() error {
	found := false
	for _, c := range knownCommands {
		if a.Command == c {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("command must be one of %s, got %q", strings.Join(knownCommands, ", "), a.Command)
	}
	if strings.TrimSpace(a.Path) == "" {
		return fmt.Errorf("path cannot be empty or whitespace")
	}
	if (a.Command == "create" || a.Command == "write") && a.FileText == "" {
		return fmt.Errorf("file_text is required for %q", a.Command)
	}
	return nil
}

// Result is the acknowledgement envelope. On view/list against an existing file the
// dispatcher merges the stored text under "content".
type Result struct {
	Status  string `json:"status"`
	Command string `json:"command"`
	Path    string `json:"path"`
	Content string `json:"content,omitempty"`
}

// Tools builds the package's mock tools.
func Tools() ([]mockmcp.Tool, error) {
	fileEditor, err := mockmcp.NewTool(
		"file_editor",
		"View, create, and overwrite files in the simulated workspace.",
		func(_ context.Context, a Args) (Result, error) {
			return Result{Status: "ok", Command: a.Command, Path: a.Path}, nil
		},
		mockmcp.WithTags("editor"),
		mockmcp.WithStateful(),
	)
	if err != nil {
		return nil, err
	}
	return []mockmcp.Tool{fileEditor}, nil
}
