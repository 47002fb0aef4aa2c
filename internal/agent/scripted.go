package agent

import "context"

// ScriptedClient replays canned results in order. Used by store and TUI
// tests to exercise the ingest pipeline without a live agent.
type ScriptedClient struct {
	Results []*CallResult
	Errs    []error

	Prompts []string // prompts received, in call order
	calls   int
}

// Call returns the next scripted result/error pair. Past the end of the
// script it reports a transport failure.
func (c *ScriptedClient) Call(_ context.Context, prompt string, _ CallOptions) (*CallResult, error) {
	c.Prompts = append(c.Prompts, prompt)
	i := c.calls
	c.calls++

	var err error
	if i < len(c.Errs) {
		err = c.Errs[i]
	}
	if i < len(c.Results) {
		return c.Results[i], err
	}
	if err != nil {
		return nil, err
	}
	return nil, ErrTransport
}
