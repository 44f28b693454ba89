package chat

import (
	"strings"

	"ragchat/cli/chat/styles"
)

// chatWidth returns the width available to the transcript column.
func (m *Model) chatWidth() int {
	width := m.width
	if m.showSidebar {
		width -= styles.SidebarWidth + 1
	}
	if width < 20 {
		width = 20
	}
	return width
}

// recalculateLayout adjusts viewport, textarea and renderer dimensions.
func (m *Model) recalculateLayout() {
	if m.width == 0 || m.height == 0 {
		return
	}

	chatWidth := m.chatWidth()
	viewportHeight := m.height - styles.HeaderHeight - m.textarea.Height() - styles.InputBorderHeight
	if viewportHeight < styles.MinViewportHeight {
		viewportHeight = styles.MinViewportHeight
	}

	m.viewport.Width = chatWidth
	m.viewport.Height = viewportHeight
	m.textarea.SetWidth(chatWidth - 2)

	if err := m.renderer.SetWidth(chatWidth - 4); err == nil {
		m.renderer.Reset()
	}
}

// adjustTextareaHeight resizes the textarea based on content line count.
func (m *Model) adjustTextareaHeight() {
	lineCount := strings.Count(m.textarea.Value(), "\n") + 1

	newHeight := lineCount
	if newHeight < styles.MinTextareaHeight {
		newHeight = styles.MinTextareaHeight
	}
	if newHeight > styles.MaxTextareaHeight {
		newHeight = styles.MaxTextareaHeight
	}

	if m.textarea.Height() != newHeight {
		m.textarea.SetHeight(newHeight)
		m.recalculateLayout()
	}
}

// refreshViewport rebuilds the transcript content.
func (m *Model) refreshViewport(gotoBottom bool) {
	if !m.ready {
		return
	}
	wasAtBottom := m.viewport.AtBottom()
	m.viewport.SetContent(m.renderMessages())
	if gotoBottom || wasAtBottom {
		m.viewport.GotoBottom()
	}
}
