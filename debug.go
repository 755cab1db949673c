package main

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// DebugModel is the debug tab: diagnostics that the chat view never
// surfaces. Transport failures, malformed lines, backend error events,
// upload and reset outcomes, and the health probe all land here.
type DebugModel struct {
	viewport viewport.Model
	lines    []string
	width    int
	height   int
}

// NewDebugModel creates the debug tab model.
func NewDebugModel() DebugModel {
	vp := viewport.New(viewport.WithWidth(80), viewport.WithHeight(20))
	return DebugModel{viewport: vp}
}

// Update handles messages for the debug tab.
func (m DebugModel) Update(msg tea.Msg) (DebugModel, tea.Cmd) {
	switch msg := msg.(type) {
	case DiagnosticMsg:
		m.addEntry(msg.Label, "11", msg.Message)
		return m, nil

	case StreamEventMsg:
		if msg.Diag != "" {
			m.addEntry("stream", "11", msg.Diag)
		}
		return m, nil

	case StreamDoneMsg:
		if msg.Err != nil {
			m.addEntry("stream", "9", msg.Err.Error())
		}
		m.addEntry("turn", "10", fmt.Sprintf(
			"assistant turn committed (%d sources)", len(msg.Message.Sources),
		))
		return m, nil

	case UploadDoneMsg:
		if msg.Err != nil {
			m.addEntry("upload", "9", fmt.Sprintf("%s: %v", msg.Name, msg.Err))
		} else {
			m.addEntry("upload", "10", msg.Name+" ingested")
		}
		return m, nil

	case ResetDoneMsg:
		if msg.Err != nil {
			m.addEntry("reset", "9", msg.Err.Error())
		} else {
			m.addEntry("reset", "10", "history and agent memory cleared")
		}
		return m, nil

	case HealthMsg:
		if msg.Online {
			m.addEntry("health", "10", msg.Detail)
		} else {
			m.addEntry("health", "9", msg.Detail)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *DebugModel) addEntry(label, color, text string) {
	ts := time.Now().Format("15:04:05.000")
	tsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	labelStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color))
	line := fmt.Sprintf("%s %s %s", tsStyle.Render(ts), labelStyle.Render(fmt.Sprintf("[%-6s]", label)), text)
	m.lines = append(m.lines, line)
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
	m.viewport.GotoBottom()
}

// SetSize updates the debug tab dimensions.
func (m *DebugModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.SetWidth(w)
	m.viewport.SetHeight(h)
}

// View renders the debug tab.
func (m DebugModel) View() string {
	return m.viewport.View()
}
