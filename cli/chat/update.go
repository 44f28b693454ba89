package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.dalton.dog/bubbleup"
	"golang.design/x/clipboard"

	"ragchat/internal/api"
)

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Always update the alert model with every message.
	outAlert, alertCmd := m.alert.Update(msg)
	m.alert = outAlert.(bubbleup.AlertModel)
	if alertCmd != nil {
		cmds = append(cmds, alertCmd)
	}

	switch msg := msg.(type) {
	case sessionReadyMsg:
		m.initialized = true
		m.busy = m.manager.Busy()
		m.entries = m.manager.History()
		m.clampSelection()
		m.renderer.Reset()
		m.refreshViewport(true)
		return m, nil

	case answerMsg:
		m.busy = false
		m.entries = m.manager.History()
		m.clampSelection()
		m.refreshViewport(true)
		return m, nil

	case historyRefreshedMsg:
		m.entries = msg.entries
		m.clampSelection()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.recalculateLayout()
		m.refreshViewport(true)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "ctrl+b":
			m.showSidebar = !m.showSidebar
			if !m.showSidebar && m.focus == focusSidebar {
				m.focusInput()
			}
			m.recalculateLayout()
			m.refreshViewport(false)
			return m, nil

		case "ctrl+n":
			if !m.busy {
				m.focusInput()
				return m, m.newSessionCmd()
			}
			return m, nil

		case "ctrl+r":
			return m, m.refreshHistoryCmd()

		case "tab":
			if m.showSidebar {
				if m.focus == focusInput {
					m.focus = focusSidebar
					m.textarea.Blur()
				} else {
					m.focusInput()
				}
			}
			return m, nil

		case "alt+w":
			if answer := m.lastAnswer(); answer != nil {
				clipboard.Write(clipboard.FmtText, []byte(answer.Text))
				cmds = append(cmds, m.alert.NewAlertCmd(bubbleup.InfoKey, "Copied to clipboard!"))
			}
			return m, tea.Batch(cmds...)
		}

		if m.focus == focusSidebar {
			return m.updateSidebar(msg)
		}

		switch msg.String() {
		case "ctrl+j":
			if text := strings.TrimSpace(m.textarea.Value()); text != "" {
				if cmd := m.submit(text); cmd != nil {
					return m, cmd
				}
			}
			return m, nil

		case "alt+p":
			if !m.busy {
				if entry, ok := m.history.Previous(m.textarea.Value()); ok {
					m.textarea.SetValue(entry)
					m.historyNavigating = true
					m.adjustTextareaHeight()
				}
			}
			return m, nil

		case "alt+n":
			if !m.busy {
				if entry, ok := m.history.Next(); ok {
					m.textarea.SetValue(entry)
					m.historyNavigating = true
					m.adjustTextareaHeight()
				}
			}
			return m, nil

		case "alt+1", "alt+2", "alt+3", "alt+4":
			// Quick questions, welcome screen only.
			if len(m.manager.Messages()) == 0 {
				index := int(msg.String()[4] - '1')
				if index < len(quickQuestions) {
					if cmd := m.submit(quickQuestions[index]); cmd != nil {
						return m, cmd
					}
				}
			}
			return m, nil
		}

		if m.historyNavigating {
			switch msg.Type {
			case tea.KeyRunes, tea.KeyBackspace, tea.KeyDelete:
				m.history.Reset()
				m.historyNavigating = false
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
		if m.busy {
			// The in-flight exchange mutates the manager's transcript
			// (optimistic user append); pick it up as the spinner ticks.
			m.refreshViewport(true)
		}
	}

	if m.focus == focusInput && !m.busy {
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		cmds = append(cmds, cmd)
		m.adjustTextareaHeight()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit starts one exchange. Returns nil when another one is in flight.
func (m *Model) submit(text string) tea.Cmd {
	if m.busy {
		return nil
	}
	m.busy = true
	m.history.Add(text)
	m.historyNavigating = false
	m.textarea.Reset()
	m.adjustTextareaHeight()
	return tea.Batch(m.sendCmd(text), m.spinner.Tick)
}

func (m *Model) updateSidebar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.entries)-1 {
			m.selected++
		}
	case "enter":
		if m.selected >= 0 && m.selected < len(m.entries) {
			entry := m.entries[m.selected]
			m.focusInput()
			return m, m.loadSessionCmd(entry.SessionID)
		}
	case "esc":
		m.focusInput()
	}
	return m, nil
}

func (m *Model) focusInput() {
	m.focus = focusInput
	m.textarea.Focus()
}

func (m *Model) clampSelection() {
	if m.selected >= len(m.entries) {
		m.selected = len(m.entries) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *Model) lastAnswer() *api.Message {
	messages := m.manager.Messages()
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Sender == api.SenderAssistant && !messages[i].IsError {
			return &messages[i]
		}
	}
	return nil
}
