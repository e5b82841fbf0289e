// Package config loads YAML-defined mock tools: a tool name, an input schema, and a
// list of conditional canned responses with {{ arg }} templating. Loaded definitions
// become dynamic tools in a Registry, so whole mock servers can be described in
// fixture files instead of Go code.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ToolConfig defines one YAML-configured mock tool.
type ToolConfig struct {
	// Name is the unique identifier for the tool.
	Name string `yaml:"name"`
	// Description describes what the tool does.
	Description string `yaml:"description"`
	// InputSchema is the expected input schema (JSON Schema).
	InputSchema map[string]any `yaml:"input_schema"`
	// Responses are the possible responses, checked in order.
	Responses []ToolResponse `yaml:"responses"`
	// Stateful routes the tool's calls through the heuristic dispatcher.
	Stateful bool `yaml:"stateful,omitempty"`
}

// ToolResponse defines one conditional response for a mock tool.
type ToolResponse struct {
	// Condition matches argument values (optional). An empty condition matches
	// everything, so a condition-free response acts as the fallback.
	Condition map[string]any `yaml:"condition,omitempty"`
	// Response is the payload to return. Strings support {{ arg }} substitution.
	Response any `yaml:"response,omitempty"`
	// Error is an error message to return instead of a response.
	Error string `yaml:"error,omitempty"`
	// Delay simulates response latency (e.g. "500ms").
	Delay string `yaml:"delay,omitempty"`
}

// Validate checks the parts a definition cannot work without.
func (c *ToolConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("tool name is required")
	}
	if len(c.Responses) == 0 {
		return fmt.Errorf("tool %s: at least one response is required", c.Name)
	}
	for i, r := range c.Responses {
		if r.Response == nil && r.Error == "" {
			return fmt.Errorf("tool %s: response %d has neither response nor error", c.Name, i)
		}
	}
	return nil
}

// LoadFile reads mock tool definitions from one YAML file. The file holds a
// top-level "tools" list.
func LoadFile(path string) ([]ToolConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mock config file %s: %w", path, err)
	}
	var doc struct {
		Tools []ToolConfig `yaml:"tools"`
	}
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse mock config file %s: %w", path, err)
	}
	for i := range doc.Tools {
		if err := doc.Tools[i].Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return doc.Tools, nil
}

// LoadDir reads every .yaml/.yml file in dir (non-recursive), in name order.
func LoadDir(dir string) ([]ToolConfig, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read mock config dir %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == ".yaml" || ext == ".yml" {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	var all []ToolConfig
	for _, p := range paths {
		tools, err := LoadFile(p)
		if err != nil {
			return nil, err
		}
		all = append(all, tools...)
	}
	return all, nil
}
