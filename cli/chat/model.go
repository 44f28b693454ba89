package chat

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.dalton.dog/bubbleup"

	"ragchat/cli/chat/styles"
	"ragchat/internal/history"
	"ragchat/internal/markdown"
	"ragchat/internal/session"
)

// Quick questions offered on the welcome screen.
var quickQuestions = []string{
	"What is the median salary in the IT department?",
	"Which department has the highest-paid employee?",
	"How many employees are in the Finance department?",
	"What is RAG in the context of AI?",
}

type focusArea int

const (
	focusInput focusArea = iota
	focusSidebar
)

// Model is the Bubble Tea model for the chat screen.
type Model struct {
	ctx     context.Context
	manager *session.Manager

	// UI components
	textarea textarea.Model
	viewport viewport.Model
	spinner  spinner.Model
	renderer *markdown.Renderer
	alert    bubbleup.AlertModel

	// Reconciled history shown in the sidebar
	entries     []session.HistoryEntry
	selected    int
	showSidebar bool
	focus       focusArea

	// UI state
	width       int
	height      int
	ready       bool
	busy        bool
	initialized bool
	quitting    bool

	// Input history
	history           *history.History
	historyNavigating bool
}

// New creates the chat model.
func New(ctx context.Context, manager *session.Manager) (*Model, error) {
	ta := textarea.New()
	ta.Placeholder = "Ask a question... (Ctrl+J to send, Tab for sidebar, Ctrl+C to quit)"
	ta.Focus()
	ta.CharLimit = 0
	ta.SetHeight(styles.MinTextareaHeight)
	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline.SetEnabled(true)
	ta.Prompt = ""

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	renderer, err := markdown.NewRenderer(80)
	if err != nil {
		return nil, err
	}

	alert := bubbleup.NewAlertModel(25, true, 1)

	return &Model{
		ctx:         ctx,
		manager:     manager,
		textarea:    ta,
		spinner:     sp,
		renderer:    renderer,
		alert:       *alert,
		showSidebar: true,
		history:     history.New(),
	}, nil
}

// Init initializes the model and kicks off session initialization.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
		m.alert.Init(),
		m.initializeCmd(),
	)
}
