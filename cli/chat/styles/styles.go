package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Layout constants
const (
	// Textarea
	MinTextareaHeight = 1
	MaxTextareaHeight = 8

	// Sidebar
	SidebarWidth = 32

	// Layout
	HeaderHeight      = 2
	InputBorderHeight = 2
	MinViewportHeight = 1

	// Truncation
	TruncateSuffix = "..."
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#2563EB") // Blue
	SecondaryColor = lipgloss.Color("#06B6D4") // Cyan
	ErrorColor     = lipgloss.Color("#EF4444") // Red
	MutedColor     = lipgloss.Color("#6B7280") // Gray
	TextColor      = lipgloss.Color("#F9FAFB") // Light gray
	DimTextColor   = lipgloss.Color("#9CA3AF") // Dim gray
	BorderColor    = lipgloss.Color("#4B5563")
	SelectedColor  = lipgloss.Color("#10B981") // Green
	SourceColor    = lipgloss.Color("#F59E0B") // Amber
)

// Title bar
var (
	TitleStyle = lipgloss.NewStyle().
			Background(PrimaryColor).
			Foreground(TextColor).
			Bold(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(DimTextColor)
)

// Messages
var (
	messageStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder())

	UserMessageStyle = lipgloss.NewStyle().
				Inherit(messageStyle).
				BorderForeground(PrimaryColor).
				MarginLeft(8)

	AssistantMessageStyle = lipgloss.NewStyle().
				Inherit(messageStyle).
				BorderForeground(BorderColor)

	ErrorMessageStyle = lipgloss.NewStyle().
				Inherit(messageStyle).
				BorderForeground(ErrorColor).
				Foreground(ErrorColor)

	SourceStyle = lipgloss.NewStyle().
			Foreground(SourceColor).
			Italic(true)
)

// Sidebar
var (
	SidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(BorderColor).
			Width(SidebarWidth)

	SidebarHeaderStyle = lipgloss.NewStyle().
				Foreground(SecondaryColor).
				Bold(true)

	SidebarEntryStyle = lipgloss.NewStyle().
				Foreground(DimTextColor)

	SidebarSelectedStyle = lipgloss.NewStyle().
				Foreground(SelectedColor).
				Bold(true)

	SidebarCurrentStyle = lipgloss.NewStyle().
				Foreground(TextColor)
)

// Chrome
var (
	ViewportStyle = lipgloss.NewStyle()

	TextAreaStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	HelpStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WelcomeTitleStyle = lipgloss.NewStyle().
				Foreground(SecondaryColor).
				Bold(true)

	WelcomeStyle = lipgloss.NewStyle().
			Foreground(DimTextColor)

	QuickQuestionStyle = lipgloss.NewStyle().
				Foreground(TextColor)
)

// Truncate shortens s to at most limit runes, appending the suffix when
// something was cut.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + TruncateSuffix
}
