// Package session owns the page-session dashboard state: the current
// snapshot, the append-only chat transcript, and the latest failure
// advisory. The store lives for the whole session and is only ever added
// to, never reset.
package session

import (
	"time"

	"stockdeck/internal/agent"
	"stockdeck/internal/dashboard"
	"stockdeck/internal/envelope"
)

// AdvisoryResolutionMiss is shown when no extraction strategy matched the
// reply. It is an advisory, not an error: the UI stays interactive and the
// prior snapshot stays on screen.
const AdvisoryResolutionMiss = "Could not parse the agent response; try asking a question."

// Store holds the dashboard snapshot and chat transcript for one session.
// All mutation happens on the single TUI update goroutine, so there is no
// locking; the store must not be shared across goroutines.
type Store struct {
	snapshot   dashboard.Snapshot
	transcript []dashboard.ChatMessage
	advisory   string
	lastErr    string
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{}
}

// Snapshot returns the current dashboard snapshot by value. Callers render
// from the copy; they never hold a mutable reference into the store.
func (s *Store) Snapshot() dashboard.Snapshot {
	return s.snapshot
}

// Transcript returns a copy of the chat transcript in append order.
func (s *Store) Transcript() []dashboard.ChatMessage {
	out := make([]dashboard.ChatMessage, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Advisory returns the current resolution advisory, if any.
func (s *Store) Advisory() string {
	return s.advisory
}

// LastError returns the current transport error banner, if any.
func (s *Store) LastError() string {
	return s.lastErr
}

// AppendChat appends one message to the transcript.
func (s *Store) AppendChat(role, content string) {
	s.transcript = append(s.transcript, dashboard.ChatMessage{
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	})
}

// MergeSnapshot folds a resolved partial snapshot into the current one
// under the non-destructive merge policy.
func (s *Store) MergeSnapshot(in *dashboard.Snapshot) {
	s.snapshot = dashboard.Merge(s.snapshot, in)
}

// SetError records a transport failure for banner display. Existing
// snapshot data is left untouched: failures never clear prior state.
func (s *Store) SetError(msg string) {
	if msg == "" {
		msg = "agent call failed"
	}
	s.lastErr = msg
}

// Ingest runs one completed agent call through the resolve/extract/merge
// pipeline. It returns the chat reply text and whether structured data was
// found. The reply is appended to the transcript as an agent turn; a miss
// records an advisory and a success clears any stale banner state.
func (s *Store) Ingest(result *agent.CallResult) (string, bool) {
	if result == nil || !result.Success {
		errMsg := ""
		if result != nil {
			errMsg = result.Error
		}
		s.SetError(errMsg)
		return "", false
	}

	env := result.Envelope()
	reply := envelope.ExtractMessage(env)
	snap, ok := envelope.Resolve(env)

	if ok {
		s.MergeSnapshot(snap)
		s.advisory = ""
	} else {
		s.advisory = AdvisoryResolutionMiss
	}
	s.lastErr = ""

	s.AppendChat(dashboard.RoleAgent, reply)
	return reply, ok
}
