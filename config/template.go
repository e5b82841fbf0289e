package config

import (
	"fmt"
	"regexp"
	"strings"
)

// templatePattern matches {{ variableName }} with an optional leading dot.
var templatePattern = regexp.MustCompile(`\{\{\s*\.?([a-zA-Z_][a-zA-Z0-9_]*)\s*\}\}`)

// renderTemplate replaces {{ var }} placeholders in value with values from args,
// recursing through maps and slices. A string that is exactly one placeholder keeps
// the argument's native type; embedded placeholders are stringified.
func renderTemplate(value any, args map[string]any) (any, error) {
	switch v := value.(type) {
	case string:
		return renderString(v, args)
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, val := range v {
			rendered, err := renderTemplate(val, args)
			if err != nil {
				return nil, err
			}
			out[key] = rendered
		}
		return out, nil
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			rendered, err := renderTemplate(item, args)
			if err != nil {
				return nil, err
			}
			out[i] = rendered
		}
		return out, nil
	default:
		// Non-templatable types pass through as-is.
		return value, nil
	}
}

func renderString(tmpl string, args map[string]any) (any, error) {
	// Whole-string placeholder keeps the native argument type.
	if m := templatePattern.FindStringSubmatch(tmpl); m != nil && m[0] == strings.TrimSpace(tmpl) {
		if val, ok := args[m[1]]; ok {
			return val, nil
		}
		return nil, fmt.Errorf("template variable %q not found in arguments", m[1])
	}

	var missing []string
	result := templatePattern.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := templatePattern.FindStringSubmatch(match)[1]
		val, ok := args[name]
		if !ok {
			missing = append(missing, name)
			return match
		}
		return fmt.Sprintf("%v", val)
	})
	if len(missing) > 0 {
		return nil, fmt.Errorf("template variables not found in arguments: %s", strings.Join(missing, ", "))
	}
	return result, nil
}
