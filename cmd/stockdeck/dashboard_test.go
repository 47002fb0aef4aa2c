package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"stockdeck/cmd/stockdeck/config"
	"stockdeck/internal/agent"
	"stockdeck/internal/dashboard"
)

func testModel(client agent.Client) dashboardModel {
	cfg := config.DefaultConfig()
	cfg.Theme = "light"
	m := newDashboardModel(cfg, client, nil)
	m.width = 100
	m.height = 40
	m.ready = true
	return m
}

func structuredResult(body string) *agent.CallResult {
	return &agent.CallResult{
		Success:  true,
		Response: map[string]any{"result": body},
	}
}

func TestDashboardModel_IngestsReply(t *testing.T) {
	m := testModel(&agent.ScriptedClient{})
	m.loadPending = true

	next, _ := m.handleReply(agentReplyMsg{
		site:   siteInitialLoad,
		result: structuredResult(`{"message":"5 SKUs tracked","metrics":{"totalSKUs":5}}`),
	})
	m = next.(dashboardModel)

	if m.loadPending {
		t.Fatal("loadPending still set after reply")
	}
	snap := m.store.Snapshot()
	if snap.Metrics == nil || snap.Metrics.TotalSKUs != 5 {
		t.Fatalf("snapshot metrics = %+v, want totalSKUs 5", snap.Metrics)
	}
	if !strings.Contains(m.View(), "5 SKUs tracked") {
		t.Fatal("view missing latest agent summary")
	}
}

func TestDashboardModel_SendDisablesInputUntilReply(t *testing.T) {
	m := testModel(&agent.ScriptedClient{
		Results: []*agent.CallResult{structuredResult(`{"message":"on it"}`)},
	})
	m.loadPending = false
	m.textinput.SetValue("how are sales?")

	next, cmd := m.handleSend()
	m = next.(dashboardModel)

	if !m.chatPending {
		t.Fatal("chatPending not set after send")
	}
	if cmd == nil {
		t.Fatal("send produced no command")
	}

	// Enter while a chat call is in flight is a no-op.
	m.textinput.SetValue("another question")
	next, cmd2 := m.handleSend()
	m = next.(dashboardModel)
	if cmd2 != nil {
		t.Fatal("send while pending should be a no-op")
	}

	transcript := m.store.Transcript()
	if len(transcript) != 1 || transcript[0].Role != dashboard.RoleUser {
		t.Fatalf("transcript = %+v, want the single user turn", transcript)
	}
}

func TestDashboardModel_TransportFailureKeepsData(t *testing.T) {
	m := testModel(&agent.ScriptedClient{})
	m.store.MergeSnapshot(&dashboard.Snapshot{
		InventoryItems: []dashboard.InventoryItem{{Product: "Gloves", SKU: "GL-1"}},
	})

	next, _ := m.handleReply(agentReplyMsg{site: siteChat, err: agent.ErrTransport})
	m = next.(dashboardModel)

	if len(m.store.Snapshot().InventoryItems) != 1 {
		t.Fatal("transport failure cleared prior snapshot data")
	}
	view := m.View()
	if !strings.Contains(view, "Agent call failed") {
		t.Fatal("view missing error banner")
	}
	if !strings.Contains(view, "Gloves") {
		t.Fatal("view no longer shows prior inventory")
	}
}

func TestDashboardModel_OverlappingCompletions(t *testing.T) {
	// The initial load and a chat send settle in either order; the final
	// snapshot keeps the non-empty sales list regardless.
	withSales := structuredResult(`{"metrics":{"totalSKUs":5},"salesData":[{"product":"Tape","unitsSold":5}]}`)
	noSales := structuredResult(`{"metrics":{"totalSKUs":5},"salesData":[]}`)

	m := testModel(&agent.ScriptedClient{})
	m.chatPending = true

	next, _ := m.handleReply(agentReplyMsg{site: siteInitialLoad, result: withSales})
	m = next.(dashboardModel)
	next, _ = m.handleReply(agentReplyMsg{site: siteChat, result: noSales})
	m = next.(dashboardModel)

	if len(m.store.Snapshot().SalesData) != 1 {
		t.Fatal("empty late completion overwrote non-empty sales data")
	}
}

func TestDashboardModel_QuitKeys(t *testing.T) {
	m := testModel(&agent.ScriptedClient{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c produced no command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Fatalf("ctrl+c = %v, want tea.Quit", msg)
	}
}
