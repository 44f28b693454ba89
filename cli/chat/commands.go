package chat

import (
	tea "github.com/charmbracelet/bubbletea"

	"ragchat/internal/api"
	"ragchat/internal/session"
)

// sessionReadyMsg signals that the current session changed (initialized,
// created, or loaded) and the transcript should be rebuilt.
type sessionReadyMsg struct{}

// answerMsg carries the outcome of one exchange. Answer is nil when the
// send was dropped or its response discarded.
type answerMsg struct {
	answer *api.Message
}

// historyRefreshedMsg carries a freshly reconciled history list.
type historyRefreshedMsg struct {
	entries []session.HistoryEntry
}

func (m *Model) initializeCmd() tea.Cmd {
	return func() tea.Msg {
		m.manager.Initialize(m.ctx)
		return sessionReadyMsg{}
	}
}

func (m *Model) sendCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return answerMsg{answer: m.manager.Send(m.ctx, text)}
	}
}

func (m *Model) newSessionCmd() tea.Cmd {
	return func() tea.Msg {
		m.manager.NewSession(m.ctx)
		return sessionReadyMsg{}
	}
}

func (m *Model) loadSessionCmd(sessionID string) tea.Cmd {
	return func() tea.Msg {
		m.manager.Load(m.ctx, sessionID)
		return sessionReadyMsg{}
	}
}

func (m *Model) refreshHistoryCmd() tea.Cmd {
	return func() tea.Msg {
		return historyRefreshedMsg{entries: m.manager.RefreshHistory(m.ctx)}
	}
}
