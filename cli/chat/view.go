package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ragchat/cli/chat/styles"
	"ragchat/internal/api"
	"ragchat/internal/session"
)

// View renders the model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready || !m.initialized {
		return "Connecting..."
	}

	var b strings.Builder
	b.WriteString(m.renderTitle())
	b.WriteString("\n")

	chat := styles.ViewportStyle.Render(m.viewport.View())
	if m.showSidebar {
		chat = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), chat)
	}
	b.WriteString(chat)
	b.WriteString("\n")

	if m.busy {
		b.WriteString(fmt.Sprintf("%s Thinking...\n", m.spinner.View()))
	} else {
		b.WriteString(styles.TextAreaStyle.Render(m.textarea.View()))
		b.WriteString("\n")
	}

	b.WriteString(m.renderHelp())
	return b.String()
}

func (m *Model) renderTitle() string {
	status := "synced"
	switch m.manager.Status() {
	case session.LocalOnly:
		status = "local"
	case session.Offline:
		status = "offline"
	case session.Uninitialized:
		status = "starting"
	}
	title := fmt.Sprintf(" ragchat │ %s │ %s ", shortID(m.manager.CurrentID()), status)
	return styles.TitleStyle.Width(m.width).Render(title)
}

func (m *Model) renderSidebar() string {
	var b strings.Builder
	b.WriteString(styles.SidebarHeaderStyle.Render("Chats"))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(styles.SidebarEntryStyle.Render("No previous chats"))
	}
	currentID := m.manager.CurrentID()
	for i, entry := range m.entries {
		title := styles.Truncate(session.DeriveTitle(entry), styles.SidebarWidth-4)
		line := "  " + title
		switch {
		case m.focus == focusSidebar && i == m.selected:
			line = styles.SidebarSelectedStyle.Render("> " + title)
		case entry.SessionID == currentID:
			line = styles.SidebarCurrentStyle.Render("* " + title)
		default:
			line = styles.SidebarEntryStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return styles.SidebarStyle.Height(m.viewport.Height).Render(b.String())
}

func (m *Model) renderMessages() string {
	messages := m.manager.Messages()
	if len(messages) == 0 {
		return m.renderWelcome()
	}

	var b strings.Builder
	for i, message := range messages {
		if i > 0 {
			b.WriteString("\n\n")
		}
		switch {
		case message.Sender == api.SenderUser:
			b.WriteString(styles.UserMessageStyle.Render(message.Text))

		case message.IsError:
			b.WriteString(styles.ErrorMessageStyle.Render(message.Text))

		default:
			rendered := m.renderer.Render(i, message.Text)
			b.WriteString(styles.AssistantMessageStyle.Render(rendered))
			if message.Source != "" {
				b.WriteString("\n")
				b.WriteString(styles.SourceStyle.Render("source: " + message.Source))
			}
		}
	}
	return b.String()
}

func (m *Model) renderWelcome() string {
	var b strings.Builder
	b.WriteString(styles.WelcomeTitleStyle.Render("Employee Data Assistant"))
	b.WriteString("\n\n")
	b.WriteString(styles.WelcomeStyle.Render("Ask questions about employee data or any general topic."))
	b.WriteString("\n\n")
	for i, question := range quickQuestions {
		b.WriteString(styles.QuickQuestionStyle.Render(fmt.Sprintf("  alt+%d  %s", i+1, question)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderHelp() string {
	help := "ctrl+j send │ ctrl+n new chat │ ctrl+b sidebar │ ctrl+r refresh │ tab focus │ alt+w copy │ ctrl+c quit"
	return styles.HelpStyle.Render(help)
}

func shortID(sessionID string) string {
	if len(sessionID) > 8 {
		return sessionID[:8]
	}
	if sessionID == "" {
		return "--------"
	}
	return sessionID
}
