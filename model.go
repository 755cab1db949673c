package main

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

const numTabs = 3

// Model is the root TUI model with tabs for chat, wire, and debug.
type Model struct {
	activeTab int // 0=chat, 1=wire, 2=debug
	width     int
	height    int
	client    *Client
	chat      ChatModel
	wire      WireModel
	debug     DebugModel
}

// NewModel creates the root model.
func NewModel(session *Session, store *Store, client *Client) Model {
	return Model{
		client: client,
		chat:   NewChatModel(session, store),
		wire:   NewWireModel(),
		debug:  NewDebugModel(),
	}
}

// checkHealth probes the backend once at startup.
func checkHealth(client *Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		detail, err := client.Health(ctx)
		if err != nil {
			return HealthMsg{Online: false, Detail: err.Error()}
		}
		return HealthMsg{Online: true, Detail: detail}
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.chat.Init(), checkHealth(m.client))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "tab":
			m.activeTab = (m.activeTab + 1) % numTabs
			if m.activeTab == 0 {
				cmds = append(cmds, m.chat.textarea.Focus())
			} else {
				m.chat.textarea.Blur()
			}
			return m, tea.Batch(cmds...)
		case "ctrl+1":
			m.activeTab = 0
			return m, m.chat.textarea.Focus()
		case "ctrl+2":
			m.activeTab = 1
			m.chat.textarea.Blur()
			return m, nil
		case "ctrl+3":
			m.activeTab = 2
			m.chat.textarea.Blur()
			return m, nil
		case "ctrl+c", "ctrl+q":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		tabBarHeight := 2
		contentHeight := m.height - tabBarHeight
		m.chat.SetSize(m.width, contentHeight)
		m.wire.SetSize(m.width, contentHeight)
		m.debug.SetSize(m.width, contentHeight)
		if m.activeTab == 0 {
			return m, m.chat.textarea.Focus()
		}
		return m, nil

	case StreamStartMsg, StreamEventMsg, StreamDoneMsg, DiagnosticMsg,
		UploadDoneMsg, ResetDoneMsg, HealthMsg:
		// Stream and lifecycle messages fan out to every tab; only the
		// chat tab re-arms the channel read.
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		m.wire, cmd = m.wire.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		m.debug, cmd = m.debug.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	// Delegate to active tab
	var cmd tea.Cmd
	switch m.activeTab {
	case 0:
		m.chat, cmd = m.chat.Update(msg)
	case 1:
		m.wire, cmd = m.wire.Update(msg)
	case 2:
		m.debug, cmd = m.debug.Update(msg)
	}
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() tea.View {
	if m.width == 0 {
		v := tea.NewView("Starting...")
		v.AltScreen = true
		v.MouseMode = tea.MouseModeCellMotion
		return v
	}

	tabBar := m.renderTabBar()

	var content string
	switch m.activeTab {
	case 0:
		content = m.chat.View()
	case 1:
		content = m.wire.View()
	case 2:
		content = m.debug.View()
	}

	v := tea.NewView(tabBar + "\n\n" + content)
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

func (m Model) renderTabBar() string {
	activeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color("4")).
		Padding(0, 1)
	inactiveStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("7")).
		Padding(0, 1)
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8"))

	tabs := []string{"Chat", "Wire", "Debug"}
	var parts []string
	for i, tab := range tabs {
		if i == m.activeTab {
			parts = append(parts, activeStyle.Render(tab))
		} else {
			parts = append(parts, inactiveStyle.Render(tab))
		}
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	help := helpStyle.Render("  Tab: switch | /upload /reset /quit | Ctrl+Q: quit")
	return bar + help
}
