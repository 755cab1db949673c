package main

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/glamour"
)

// ChatModel is the chat tab: viewport (history) + textarea (input) +
// glamour rendering. All state mutation goes through the Session; this
// model only reflects the store and drives the stream channel.
type ChatModel struct {
	session  *Session
	store    *Store
	viewport viewport.Model
	textarea textarea.Model
	renderer *glamour.TermRenderer

	stream   <-chan StreamMsg
	thinking bool
	status   string
	online   bool
	backend  string // health detail for the header

	width  int
	height int
}

// NewChatModel creates the chat tab over the given session and store.
func NewChatModel(session *Session, store *Store) ChatModel {
	ta := textarea.New()
	ta.Placeholder = "Type your message here..."
	ta.SetHeight(3)
	ta.CharLimit = 0

	vp := viewport.New(viewport.WithWidth(80), viewport.WithHeight(20))
	vp.KeyMap.Left = key.NewBinding(key.WithDisabled())
	vp.KeyMap.Right = key.NewBinding(key.WithDisabled())

	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(76),
	)

	m := ChatModel{
		session:  session,
		store:    store,
		viewport: vp,
		textarea: ta,
		renderer: r,
	}
	m.refreshViewport()
	return m
}

// Init returns the initial command (focus textarea).
func (m ChatModel) Init() tea.Cmd {
	return m.textarea.Focus()
}

// Update handles messages for the chat tab.
func (m ChatModel) Update(msg tea.Msg) (ChatModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if msg.String() == "shift+enter" {
			m.textarea.InsertRune('\n')
			return m, nil
		}
		if msg.String() == "enter" {
			text := strings.TrimSpace(m.textarea.Value())
			if text == "" {
				return m, nil
			}
			if strings.HasPrefix(text, "/") {
				m.textarea.Reset()
				return m.handleCommand(text)
			}
			if m.session.Busy() {
				// Send affordance is disabled while streaming; the
				// session guard is the real authority.
				return m, nil
			}
			m.textarea.Reset()
			ch, err := m.session.Submit(text)
			if err != nil {
				return m, nil
			}
			m.stream = ch
			m.thinking = true
			m.status = statusStarting
			m.refreshViewport()
			return m, waitForStreamMsg(ch)
		}

	case StreamStartMsg:
		m.refreshViewport()
		return m, m.rearm()

	case StreamEventMsg:
		if msg.Status != "" {
			m.status = msg.Status
		}
		m.refreshViewport()
		return m, m.rearm()

	case DiagnosticMsg:
		return m, m.rearm()

	case StreamDoneMsg:
		m.stream = nil
		m.thinking = false
		m.status = ""
		m.refreshViewport()
		return m, nil

	case UploadDoneMsg, ResetDoneMsg:
		m.refreshViewport()
		return m, nil

	case HealthMsg:
		m.online = msg.Online
		m.backend = msg.Detail
		return m, nil
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	m.viewport, cmd = m.viewport.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// rearm re-issues the stream read command while a stream is open.
func (m *ChatModel) rearm() tea.Cmd {
	if m.stream == nil {
		return nil
	}
	return waitForStreamMsg(m.stream)
}

// handleCommand dispatches slash commands from the input line.
func (m ChatModel) handleCommand(text string) (ChatModel, tea.Cmd) {
	cmd, rest, _ := strings.Cut(text, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "/quit":
		return m, tea.Quit

	case "/reset":
		if m.session.Busy() {
			return m, nil
		}
		ch := m.session.Reset()
		m.refreshViewport()
		return m, func() tea.Msg { return <-ch }

	case "/upload":
		if rest == "" {
			return m, func() tea.Msg {
				return DiagnosticMsg{Label: "cmd", Message: "usage: /upload <path>"}
			}
		}
		ch := m.session.Upload(rest)
		m.refreshViewport()
		return m, func() tea.Msg { return <-ch }

	default:
		return m, func() tea.Msg {
			return DiagnosticMsg{Label: "cmd", Message: "unknown command " + cmd}
		}
	}
}

// SetSize updates the chat tab dimensions.
func (m *ChatModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	textareaHeight := 3
	headerHeight := 2
	viewportHeight := h - textareaHeight - headerHeight - 1

	m.viewport.SetWidth(w)
	m.viewport.SetHeight(viewportHeight)
	m.textarea.SetWidth(w)
	m.textarea.SetHeight(textareaHeight)

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(w-4),
	)
	if err == nil {
		m.renderer = r
	}
	m.refreshViewport()
}
