package envelope

import (
	"encoding/json"

	"stockdeck/internal/dashboard"
)

// snapshotKeys is the loose shape predicate: a decoded object carrying any
// one of these keys is accepted as dashboard data, even if the other fields
// are absent or malformed. This trades false-accepts for never rejecting
// legitimately useful partial data.
var snapshotKeys = []string{"message", "metrics", "lowStockAlerts", "inventoryItems"}

// A strategy is one candidate location/transformation inside the raw
// envelope. Strategies are pure; the resolver composes them
// first-success-wins in a fixed priority order.
type strategy func(raw any) (*dashboard.Snapshot, bool)

var strategies = []strategy{
	resolveResult,
	resolveResultText,
	resolveRawResponse,
	resolveResponse,
	resolveResponseMessage,
	resolveEnvelopeItself,
}

// Resolve extracts a dashboard snapshot from a raw agent-call result of
// unknown nested shape. The agent transport is not contract-bound to one
// wire shape, so an ordered list of extraction strategies is tried and the
// first one that both decodes and looks like dashboard data wins. Ties are
// broken by strategy order, never by best match.
//
// Not-ok means every strategy missed: a reportable advisory condition, not
// a crash.
func Resolve(raw any) (*dashboard.Snapshot, bool) {
	for _, s := range strategies {
		if snap, ok := s(raw); ok {
			return snap, true
		}
	}
	return nil, false
}

// Strategy 1: decode response.result directly.
func resolveResult(raw any) (*dashboard.Snapshot, bool) {
	resp, ok := objectField(raw, "response")
	if !ok {
		return nil, false
	}
	result, ok := objectField(resp, "result")
	if !ok {
		return nil, false
	}
	return decodeCandidate(result)
}

// Strategy 2: decode a nested text field under response.result.
func resolveResultText(raw any) (*dashboard.Snapshot, bool) {
	resp, ok := objectField(raw, "response")
	if !ok {
		return nil, false
	}
	result, ok := objectField(resp, "result")
	if !ok {
		return nil, false
	}
	decoded, ok := Decode(result)
	if !ok {
		return nil, false
	}
	text, ok := objectField(decoded, "text")
	if !ok {
		return nil, false
	}
	return decodeCandidate(text)
}

// Strategy 3: decode raw_response; if its response sub-field is itself
// string-encoded, unwrap that too. Either the inner or the outer decoded
// value is accepted, inner first.
func resolveRawResponse(raw any) (*dashboard.Snapshot, bool) {
	rr, ok := objectField(raw, "raw_response")
	if !ok {
		return nil, false
	}
	decoded, ok := Decode(rr)
	if !ok {
		return nil, false
	}
	if inner, ok := objectField(decoded, "response"); ok {
		if snap, ok := decodeCandidate(inner); ok {
			return snap, true
		}
	}
	return toSnapshot(decoded)
}

// Strategy 4: decode the response field directly.
func resolveResponse(raw any) (*dashboard.Snapshot, bool) {
	resp, ok := objectField(raw, "response")
	if !ok {
		return nil, false
	}
	return decodeCandidate(resp)
}

// Strategy 5: decode a response.message string as structured data; if that
// fails but the string is non-empty, synthesize a message-only snapshot.
// This is the one strategy that synthesizes rather than purely decodes.
func resolveResponseMessage(raw any) (*dashboard.Snapshot, bool) {
	resp, ok := objectField(raw, "response")
	if !ok {
		return nil, false
	}
	msg, ok := stringField(resp, "message")
	if !ok {
		return nil, false
	}
	if snap, ok := decodeCandidate(msg); ok {
		return snap, true
	}
	return &dashboard.Snapshot{Message: msg}, true
}

// Strategy 6: treat the raw envelope itself as the candidate.
func resolveEnvelopeItself(raw any) (*dashboard.Snapshot, bool) {
	return decodeCandidate(raw)
}

func decodeCandidate(v any) (*dashboard.Snapshot, bool) {
	decoded, ok := Decode(v)
	if !ok {
		return nil, false
	}
	return toSnapshot(decoded)
}

// toSnapshot applies the shape predicate and converts an accepted object
// into a typed snapshot. Type mismatches inside individual records are
// tolerated: json fills what it can and the rest stays zero-valued, which
// the UI renders as placeholders.
func toSnapshot(v any) (*dashboard.Snapshot, bool) {
	obj, ok := asObject(v)
	if !ok {
		return nil, false
	}

	recognized := false
	for _, key := range snapshotKeys {
		if _, present := obj[key]; present {
			recognized = true
			break
		}
	}
	if !recognized {
		return nil, false
	}

	data, err := json.Marshal(obj)
	if err != nil {
		return nil, false
	}
	var snap dashboard.Snapshot
	_ = json.Unmarshal(data, &snap)
	return &snap, true
}
