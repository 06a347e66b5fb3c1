package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shelfwise/shelfwise/internal/cli/formatter"
)

// defendChatModel is the interactive follow-up loop over one session.
// Each submitted question goes through the full defend pipeline; the
// transcript accumulates above the input line.
type defendChatModel struct {
	app       *App
	sessionID string
	input     textinput.Model
	messages  []string
	quitting  bool
}

func newDefendChatModel(app *App, sessionID string) *defendChatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500
	ti.Placeholder = "why not the cheaper slot?"

	return &defendChatModel{
		app:       app,
		sessionID: sessionID,
		input:     ti,
		messages: []string{
			formatter.Dim("Ask about the recommendation. Esc or \"exit\" to leave."),
		},
	}
}

func (m *defendChatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *defendChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			question := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if question == "" {
				return m, nil
			}
			return m.handleQuestion(question)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *defendChatModel) handleQuestion(question string) (tea.Model, tea.Cmd) {
	switch strings.ToLower(question) {
	case "exit", "quit", "/exit", "/quit", "/q":
		m.quitting = true
		return m, tea.Quit
	}

	m.messages = append(m.messages, formatter.Dim("You: ")+question)

	resp, err := m.app.Defend.Answer(context.Background(), m.sessionID, question)
	if err != nil {
		// Session gone or store failure; nothing more to chat about.
		m.messages = append(m.messages, formatter.StyleRed.Render("Error: "+err.Error()))
		m.quitting = true
		return m, tea.Quit
	}

	m.messages = append(m.messages, formatter.FormatDefend(resp))
	return m, nil
}

func (m *defendChatModel) View() string {
	var b strings.Builder

	for _, msg := range m.messages {
		b.WriteString(msg)
		b.WriteString("\n")
	}

	if m.quitting {
		return b.String()
	}

	prompt := formatter.StylePurple.Render("defend") + formatter.Dim("> ")
	b.WriteString(prompt)
	b.WriteString(m.input.View())

	return b.String()
}

// runDefendChat runs the chat program until the user leaves.
func runDefendChat(app *App, sessionID string) error {
	p := tea.NewProgram(newDefendChatModel(app, sessionID))
	_, err := p.Run()
	return err
}
