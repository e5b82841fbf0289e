package mockapi

// Flat is the flat scalar payload a simulated external API returns: string, int,
// float64, and bool values only, with compound keys encoding structure
// ("results_0_name", "meta_total"). Nested shapes are reconstructed by the tool
// handler, not by the fake API.
type Flat map[string]any

// Str returns the string value for key, or "" when missing or of another type.
func (f Flat) Str(key string) string {
	if v, ok := f[key].(string); ok {
		return v
	}
	return ""
}

// Int returns the integer value for key. Float values are truncated; missing or
// non-numeric keys yield 0.
func (f Flat) Int(key string) int {
	switch v := f[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// Float returns the float value for key, or 0 when missing or non-numeric.
func (f Flat) Float(key string) float64 {
	switch v := f[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

// Bool returns the bool value for key, or false when missing or of another type.
func (f Flat) Bool(key string) bool {
	if v, ok := f[key].(bool); ok {
		return v
	}
	return false
}

// Has reports whether key is present.
func (f Flat) Has(key string) bool {
	_, ok := f[key]
	return ok
}
