// Package stateful implements the heuristic side-effect dispatcher: a middleware
// that inspects a tool call's arguments after the mock response is produced and
// decides, by substring matching on a command string or the tool name, whether the
// call should also read or write the simulated state store.
//
// The dispatch is intent inference, not a protocol: "create"/"write"/"save"/"update"
// in the command means the call probably wrote a file, "read"/"view"/"cat"/"search"/
// "list" means it probably read one, "inventory"/"add"/"buy" in the tool name means
// it touched the inventory. Dispatch is best-effort: a store miss or malformed
// arguments never fail the call and never alter the mock response beyond the
// documented merges.
package stateful

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"mockmcp"
)

// Store is the contract of the externally-owned simulated environment.
// state.Store is the in-memory reference implementation.
type Store interface {
	ReadFile(path string) (string, bool)
	WriteFile(path, content string)
	Inventory() []string
	AddItem(item string)
}

// Verb sets the dispatcher matches against the command string or tool name.
var (
	writeVerbs = []string{"write", "create", "save", "update"}
	readVerbs  = []string{"read", "view", "cat", "search", "list"}
	addVerbs   = []string{"add", "buy"}
)

// Dispatcher returns a middleware routing side effects of stateful tools into store.
// Tools whose metadata reports IsStateful() == false are passed through unwrapped, so
// the middleware can be installed registry-wide. logger may be nil (slog.Default).
func Dispatcher(store Store, logger *slog.Logger) mockmcp.Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next mockmcp.Tool) mockmcp.Tool {
		if tm, ok := next.(mockmcp.ToolMetadata); ok && !tm.IsStateful() {
			return next
		}
		return &dispatchTool{ToolBase: mockmcp.NewToolBase(next), store: store, logger: logger}
	}
}

type dispatchTool struct {
	mockmcp.ToolBase
	store  Store
	logger *slog.Logger
}

func (d *dispatchTool) Execute(ctx context.Context, argsJSON []byte) ([]byte, error) {
	out, err := d.Next().Execute(ctx, argsJSON)
	if err != nil {
		return nil, err
	}
	merged, derr := d.dispatch(argsJSON, out)
	if derr != nil {
		// Best-effort contract: the mock response stands even when dispatch fails.
		d.logger.Debug("stateful dispatch skipped", "tool", d.Name(), "reason", derr)
		return out, nil
	}
	return merged, nil
}

// dispatch applies the verb heuristics and returns the (possibly merged) response.
func (d *dispatchTool) dispatch(argsJSON, out []byte) ([]byte, error) {
	var args map[string]any
	if len(argsJSON) > 0 {
		if err := json.Unmarshal(argsJSON, &args); err != nil {
			return nil, fmt.Errorf("arguments are not an object: %w", err)
		}
	}
	var result map[string]any
	if err := json.Unmarshal(out, &result); err != nil {
		return nil, fmt.Errorf("response is not an object: %w", err)
	}

	name := d.Name()
	cmd := stringArg(args, "command")
	if cmd == "" {
		cmd = name
	}
	dirty := false

	if containsAny(cmd, writeVerbs) {
		path := stringArg(args, "path")
		content := firstStringArg(args, "content", "file_text", "text")
		if path != "" && content != "" {
			d.store.WriteFile(path, content)
		}
	}
	if containsAny(cmd, readVerbs) {
		if path := stringArg(args, "path"); path != "" {
			if content, ok := d.store.ReadFile(path); ok {
				result["content"] = content
				dirty = true
			}
		}
	}
	if strings.Contains(name, "inventory") {
		inv := d.store.Inventory()
		result["inventory"] = inv
		result["content"] = fmt.Sprint(inv)
		dirty = true
	}
	if containsAny(name, addVerbs) {
		if item := stringArg(args, "item"); item != "" {
			d.store.AddItem(item)
		}
	}

	if !dirty {
		return out, nil
	}
	merged, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}
	return merged, nil
}

func containsAny(s string, verbs []string) bool {
	for _, v := range verbs {
		if strings.Contains(s, v) {
			return true
		}
	}
	return false
}

func stringArg(args map[string]any, key string) string {
	v, _ := args[key].(string)
	return v
}

func firstStringArg(args map[string]any, keys ...string) string {
	for _, key := range keys {
		if v := stringArg(args, key); v != "" {
			return v
		}
	}
	return ""
}
