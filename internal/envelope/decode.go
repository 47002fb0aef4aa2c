// Package envelope interprets raw agent-call results. The agent's reply is
// loosely structured and its wire shape shifts call-to-call: sometimes a
// parsed object, sometimes a JSON string, sometimes JSON inside markdown
// fencing, sometimes nested several envelopes deep, sometimes plain prose.
// This package extracts a typed dashboard snapshot when one exists and a
// human-readable message in all cases. All failures are value results; no
// error or panic crosses the package boundary.
package envelope

import (
	"encoding/json"
	"regexp"
	"strings"
)

// fencedBlock matches a markdown code fence with an optional json tag.
var fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*\\n(.*?)```")

// Decode turns a value that might be a string, an already-decoded structure,
// or text containing a fenced code block into a decoded structure.
//
//   - absent/empty input -> not ok
//   - an already-structured (non-string) value is returned unchanged
//   - a string is parsed strictly as JSON; if that fails, the first fenced
//     block is located and its body parsed strictly; otherwise not ok
//
// Decode is pure and deterministic: the same input always yields the same
// output.
func Decode(v any) (any, bool) {
	switch val := v.(type) {
	case nil:
		return nil, false
	case string:
		return decodeString(val)
	default:
		return val, true
	}
}

func decodeString(s string) (any, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}

	if out, ok := parseJSON(s); ok {
		return out, true
	}

	if m := fencedBlock.FindStringSubmatch(s); m != nil {
		if out, ok := parseJSON(strings.TrimSpace(m[1])); ok {
			return out, true
		}
	}

	return nil, false
}

func parseJSON(s string) (any, bool) {
	var out any
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, false
	}
	return out, true
}

// asObject narrows a decoded value to a JSON object.
func asObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// objectField returns a named field of v when v is an object.
func objectField(v any, key string) (any, bool) {
	m, ok := asObject(v)
	if !ok {
		return nil, false
	}
	val, ok := m[key]
	return val, ok
}

// stringField returns a named field of v when it is a non-empty string.
func stringField(v any, key string) (string, bool) {
	val, ok := objectField(v, key)
	if !ok {
		return "", false
	}
	s, ok := val.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}
