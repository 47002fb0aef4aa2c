// This file implements the interactive dashboard interface using bubbletea.
package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"stockdeck/cmd/stockdeck/config"
	"stockdeck/cmd/stockdeck/ui"
	"stockdeck/internal/agent"
	"stockdeck/internal/dashboard"
	"stockdeck/internal/session"
)

// initialPrompt is the dashboard-load question fired on startup.
const initialPrompt = "Give me a dashboard overview: inventory, sales, low stock alerts, and pending orders."

// callSite distinguishes the two independent call sites. The initial load
// and a chat send may overlap; their completions apply the merge policy in
// whatever order they settle.
type callSite int

const (
	siteInitialLoad callSite = iota
	siteChat
)

// agentReplyMsg carries one completed agent call back into the update loop.
type agentReplyMsg struct {
	site   callSite
	result *agent.CallResult
	err    error
}

// dashboardModel is the bubbletea model for the interactive dashboard.
type dashboardModel struct {
	// UI components
	textinput textinput.Model
	viewport  viewport.Model
	spinner   spinner.Model
	styles    ui.Styles
	renderer  *glamour.TermRenderer

	// State
	store       *session.Store
	chatPending bool // chat input is disabled while its call is in flight
	loadPending bool
	width       int
	height      int
	ready       bool

	// Backend
	client    agent.Client
	agentID   string
	sessionID string
	logger    *zap.Logger
}

// newDashboardModel wires the model from config. The session ID is minted
// once and shared by every call of this TUI session.
func newDashboardModel(cfg config.Config, client agent.Client, logger *zap.Logger) dashboardModel {
	styles := ui.DefaultStyles()
	switch cfg.Theme {
	case "dark":
		styles = ui.NewStyles(ui.DarkTheme())
	case "light":
		styles = ui.NewStyles(ui.LightTheme())
	}

	ti := textinput.New()
	ti.Placeholder = "Ask about your inventory... (Enter to send, Ctrl+C to exit)"
	ti.Focus()
	ti.Prompt = "│ "
	ti.CharLimit = 1024
	ti.Width = 80
	ti.PromptStyle = styles.Prompt
	ti.TextStyle = styles.UserInput

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	vp := viewport.New(80, 12)

	var renderer *glamour.TermRenderer
	if styles.Theme.IsDark {
		renderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
	} else {
		renderer, _ = glamour.NewTermRenderer(
			glamour.WithStylePath("light"),
			glamour.WithWordWrap(80),
		)
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return dashboardModel{
		textinput:   ti,
		viewport:    vp,
		spinner:     sp,
		styles:      styles,
		renderer:    renderer,
		store:       session.NewStore(),
		loadPending: true, // Init fires the dashboard load
		client:      client,
		agentID:     cfg.AgentID,
		sessionID:   uuid.NewString(),
		logger:      logger,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		m.callAgent(initialPrompt, siteInitialLoad),
	)
}

// callAgent fires one agent call off the update loop. There is no epoch
// guard: a late completion still lands on the store, which is safe because
// the merge never lets empty overwrite non-empty.
func (m dashboardModel) callAgent(prompt string, site callSite) tea.Cmd {
	client := m.client
	agentID := m.agentID
	sessionID := m.sessionID
	return func() tea.Msg {
		result, err := client.Call(context.Background(), prompt, agent.CallOptions{
			AgentID:   agentID,
			SessionID: sessionID,
		})
		return agentReplyMsg{site: site, result: result, err: err}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.handleSend()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textinput.Width = msg.Width - 4
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height/3, 6)
		m.ready = true
		m.refreshTranscript()
		return m, nil

	case spinner.TickMsg:
		if m.chatPending || m.loadPending {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case agentReplyMsg:
		return m.handleReply(msg)
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.textinput, cmd = m.textinput.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m dashboardModel) handleSend() (tea.Model, tea.Cmd) {
	if m.chatPending {
		return m, nil
	}
	prompt := strings.TrimSpace(m.textinput.Value())
	if prompt == "" {
		return m, nil
	}

	m.store.AppendChat(dashboard.RoleUser, prompt)
	m.textinput.Reset()
	m.chatPending = true
	m.refreshTranscript()

	return m, tea.Batch(m.spinner.Tick, m.callAgent(prompt, siteChat))
}

func (m dashboardModel) handleReply(msg agentReplyMsg) (tea.Model, tea.Cmd) {
	switch msg.site {
	case siteInitialLoad:
		m.loadPending = false
	case siteChat:
		m.chatPending = false
	}

	if msg.err != nil {
		m.logger.Warn("agent call failed", zap.Error(msg.err))
		m.store.SetError(msg.err.Error())
	} else {
		reply, resolved := m.store.Ingest(msg.result)
		m.logger.Debug("agent reply ingested",
			zap.Bool("resolved", resolved),
			zap.Int("reply_len", len(reply)))
	}

	m.refreshTranscript()
	return m, nil
}

// refreshTranscript re-renders the chat pane from the store transcript.
func (m *dashboardModel) refreshTranscript() {
	var sb strings.Builder
	for _, msg := range m.store.Transcript() {
		switch msg.Role {
		case dashboard.RoleUser:
			sb.WriteString(m.styles.Prompt.Render("You: "))
			sb.WriteString(m.styles.UserInput.Render(msg.Content))
			sb.WriteString("\n")
		default:
			content := msg.Content
			if m.renderer != nil {
				if rendered, err := m.renderer.Render(content); err == nil {
					content = strings.TrimSpace(rendered)
				}
			}
			sb.WriteString(m.styles.AgentResponse.Render(content))
			sb.WriteString("\n")
		}
	}
	m.viewport.SetContent(sb.String())
	m.viewport.GotoBottom()
}

func (m dashboardModel) View() string {
	if !m.ready {
		return "Loading stockdeck..."
	}

	var sb strings.Builder

	sb.WriteString(m.styles.Header.Render("STOCKDECK · Inventory Agent Dashboard"))
	sb.WriteString("\n\n")

	snap := m.store.Snapshot()
	if snap.Message != "" {
		sb.WriteString(m.styles.Subtitle.Render(snap.Message))
		sb.WriteString("\n\n")
	}
	sb.WriteString(ui.RenderDashboard(snap, m.styles))
	sb.WriteString("\n")

	if errMsg := m.store.LastError(); errMsg != "" {
		sb.WriteString(m.styles.Banner.Render(fmt.Sprintf("Agent call failed: %s. Press Enter to retry your question.", errMsg)))
		sb.WriteString("\n")
	}
	if advisory := m.store.Advisory(); advisory != "" {
		sb.WriteString(m.styles.Warning.Render(advisory))
		sb.WriteString("\n")
	}

	sb.WriteString(m.styles.Divider.Render(strings.Repeat("─", max(m.width, 10))))
	sb.WriteString("\n")
	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")

	if m.chatPending {
		sb.WriteString(m.spinner.View())
		sb.WriteString(m.styles.Muted.Render(" waiting for the agent..."))
	} else {
		sb.WriteString(m.textinput.View())
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.Footer.Render("Enter send · Ctrl+C quit"))

	return sb.String()
}

// runDashboard launches the interactive TUI.
func runDashboard() error {
	cfg := loadConfig()

	httpCfg := agent.DefaultHTTPConfig(cfg.APIKey, cfg.BaseURL)
	httpCfg.Logger = logger
	client := agent.NewHTTPClient(httpCfg)

	model := newDashboardModel(cfg, client, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
