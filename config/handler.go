package config

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"mockmcp"
)

// BuildTool turns a ToolConfig into a dynamic mock tool. The input schema drives
// Layer 1 validation; the handler merges schema defaults into the arguments, picks
// the first response whose condition matches, applies the configured delay, and
// renders the payload (or error) through the template.
func BuildTool(cfg ToolConfig) (mockmcp.Tool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	schema := cfg.InputSchema
	if schema == nil {
		schema = map[string]any{"type": "object"}
	}
	var opts []mockmcp.ToolOption
	if cfg.Stateful {
		opts = append(opts, mockmcp.WithStateful())
	}
	return mockmcp.NewDynamicTool(cfg.Name, cfg.Description, schema, func(ctx context.Context, argsJSON []byte) ([]byte, error) {
		var args map[string]any
		if len(argsJSON) > 0 {
			if err := json.Unmarshal(argsJSON, &args); err != nil {
				return nil, &mockmcp.ClientError{Reason: "arguments must be a JSON object: " + err.Error()}
			}
		}
		return handleCall(ctx, cfg, mergeDefaults(schema, args))
	}, opts...)
}

// RegisterAll builds and registers every definition in cfgs.
func RegisterAll(reg *mockmcp.Registry, cfgs []ToolConfig) error {
	for _, cfg := range cfgs {
		t, err := BuildTool(cfg)
		if err != nil {
			return fmt.Errorf("building tool %s: %w", cfg.Name, err)
		}
		reg.Register(t)
	}
	return nil
}

func handleCall(ctx context.Context, cfg ToolConfig, args map[string]any) ([]byte, error) {
	var selected *ToolResponse
	for i := range cfg.Responses {
		if matchesCondition(cfg.Responses[i].Condition, args) {
			selected = &cfg.Responses[i]
			break
		}
	}
	// No condition matched: first response is the fallback.
	if selected == nil {
		selected = &cfg.Responses[0]
	}

	if selected.Delay != "" {
		if d, err := time.ParseDuration(selected.Delay); err == nil {
			select {
			case <-time.After(d):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	if selected.Error != "" {
		rendered, err := renderTemplate(selected.Error, args)
		if err != nil {
			return nil, fmt.Errorf("failed to render error message: %w", err)
		}
		return nil, &mockmcp.ClientError{Reason: fmt.Sprintf("%v", rendered)}
	}

	rendered, err := renderTemplate(selected.Response, args)
	if err != nil {
		return nil, fmt.Errorf("failed to render response: %w", err)
	}
	out, err := json.Marshal(rendered)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}
	return out, nil
}

// mergeDefaults overlays the provided args on top of the schema's property defaults.
func mergeDefaults(schema, args map[string]any) map[string]any {
	merged := make(map[string]any)
	if props, ok := schema["properties"].(map[string]any); ok {
		for name, def := range props {
			if defMap, ok := def.(map[string]any); ok {
				if dv, has := defMap["default"]; has {
					merged[name] = dv
				}
			}
		}
	}
	for k, v := range args {
		merged[k] = v
	}
	return merged
}

// matchesCondition reports whether args satisfy every key of condition. An empty
// condition matches everything.
func matchesCondition(condition, args map[string]any) bool {
	for key, want := range condition {
		got, ok := args[key]
		if !ok || !valuesEqual(want, got) {
			return false
		}
	}
	return true
}

// valuesEqual compares loosely: deep equality first, then string forms, so YAML
// integers match JSON floats and booleans match their spellings.
func valuesEqual(want, got any) bool {
	if reflect.DeepEqual(want, got) {
		return true
	}
	return fmt.Sprintf("%v", want) == fmt.Sprintf("%v", got)
}
