// Package agent is the transport to the upstream conversational inventory
// agent. Every field of a reply is untrusted and untyped: interpretation
// belongs to the envelope package, not here.
package agent

import (
	"context"
	"errors"
)

// ErrTransport marks network-level and protocol-level call failures.
// Callers branch on it to show an error banner with a retry hint while
// leaving previously displayed data untouched.
var ErrTransport = errors.New("agent transport failure")

// CallOptions carries per-call routing fields.
type CallOptions struct {
	AgentID   string
	SessionID string
}

// CallResult is the raw outcome of one agent call. Response and RawResponse
// have no fixed schema; either may hold string-encoded JSON at any depth,
// markdown fencing, or plain prose.
type CallResult struct {
	Success     bool   `json:"success"`
	Response    any    `json:"response,omitempty"`
	RawResponse any    `json:"raw_response,omitempty"`
	Error       string `json:"error,omitempty"`
}

// Envelope repackages the result for the resolver, which probes the
// response/raw_response locations by name.
func (r *CallResult) Envelope() map[string]any {
	env := map[string]any{}
	if r.Response != nil {
		env["response"] = r.Response
	}
	if r.RawResponse != nil {
		env["raw_response"] = r.RawResponse
	}
	return env
}

// Client is the agent call boundary.
type Client interface {
	Call(ctx context.Context, prompt string, opts CallOptions) (*CallResult, error)
}
