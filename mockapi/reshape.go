package mockapi

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Rows groups indexed compound keys under prefix into an ordered list of objects.
// Keys of the form "<prefix>_<i>_<field>" become rows[i][field]; indexes must be
// non-negative decimal integers. Gaps are dropped, so rows come back dense and in
// index order. Field names keep whatever underscores follow the index.
func (f Flat) Rows(prefix string) []map[string]any {
	byIndex := make(map[int]map[string]any)
	maxIdx := -1
	lead := prefix + "_"
	for key, val := range f {
		if !strings.HasPrefix(key, lead) {
			continue
		}
		rest := key[len(lead):]
		idxStr, field, ok := strings.Cut(rest, "_")
		if !ok || field == "" {
			continue
		}
		idx, err := strconv.Atoi(idxStr)
		if err != nil || idx < 0 {
			continue
		}
		row, ok := byIndex[idx]
		if !ok {
			row = make(map[string]any)
			byIndex[idx] = row
		}
		row[field] = val
		if idx > maxIdx {
			maxIdx = idx
		}
	}
	rows := make([]map[string]any, 0, len(byIndex))
	for i := 0; i <= maxIdx; i++ {
		if row, ok := byIndex[i]; ok {
			rows = append(rows, row)
		}
	}
	return rows
}

// Object collects keys "<prefix>_<field>" into a single nested object. Indexed keys
// (where the first segment after the prefix is a decimal integer) are skipped; use
// Rows for those.
func (f Flat) Object(prefix string) map[string]any {
	out := make(map[string]any)
	lead := prefix + "_"
	for key, val := range f {
		if !strings.HasPrefix(key, lead) {
			continue
		}
		field := key[len(lead):]
		if field == "" {
			continue
		}
		if head, _, ok := strings.Cut(field, "_"); ok {
			if _, err := strconv.Atoi(head); err == nil {
				continue
			}
		}
		out[field] = val
	}
	return out
}

// JSONField parses the string value under key as JSON and returns the decoded value.
// On a missing key or malformed payload it returns {"error": "Failed to parse <label> JSON"},
// matching the placeholder convention of the simulated upstream APIs.
func (f Flat) JSONField(key, label string) any {
	var decoded any
	if err := json.Unmarshal([]byte(f.Str(key)), &decoded); err != nil {
		return map[string]any{"error": "Failed to parse " + label + " JSON"}
	}
	return decoded
}
