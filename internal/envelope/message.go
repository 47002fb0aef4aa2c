package envelope

import (
	"encoding/json"
	"strings"
)

// FallbackMessage is returned when no attempt produces usable text. The chat
// pane always has something to show, even for a completely opaque reply.
const FallbackMessage = "I received your request and I'm working on it."

// ExtractMessage returns a best-effort human-readable string for chat
// display, independent of whether structured resolution succeeded. It never
// returns the empty string.
//
// Attempts, in order: the message of a resolved snapshot, a message field on
// the envelope's response, a result.text field (stringified if needed), a
// result.message field, and finally a fixed fallback literal.
func ExtractMessage(raw any) string {
	if snap, ok := Resolve(raw); ok && snap.Message != "" {
		return snap.Message
	}

	resp, _ := objectField(raw, "response")

	if msg, ok := stringField(resp, "message"); ok {
		return msg
	}

	if result, ok := objectField(resp, "result"); ok {
		if text, ok := objectField(result, "text"); ok {
			if s := stringify(text); s != "" {
				return s
			}
		}
		if msg, ok := stringField(result, "message"); ok {
			return msg
		}
	}

	return FallbackMessage
}

// stringify renders a field as display text: strings pass through, anything
// else is re-encoded as compact JSON.
func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(data)
	}
}
