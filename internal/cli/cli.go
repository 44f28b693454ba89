// Package cli holds colored terminal output helpers for the plain
// (non-TUI) chat mode and the sessions listing.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/buger/goterm"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	// Colors for different types of output
	userInputColor  = color.New(color.FgWhite)
	answerColor     = color.New(color.FgCyan)
	sourceColor     = color.New(color.FgHiBlack)
	titleColor      = color.New(color.FgMagenta, color.Bold)
	separatorColor  = color.New(color.FgHiBlack)
	errorColor      = color.New(color.FgRed)
	infoColor       = color.New(color.FgYellow)
	promptColor     = color.New(color.FgHiBlue)
	sessionIDColor  = color.New(color.FgGreen)
	sessionMetColor = color.New(color.FgHiBlack)

	width = goterm.Width()
)

// Separator printed to cli.
func Separator() {
	separator := strings.Repeat("-", width)
	separatorColor.Println(separator)
}

// Title printed to cli.
func Title(text string, args ...any) {
	title := "      " + fmt.Sprintf(text, args...) + "      "
	leftWidth := (width - len(title)) / 2
	if leftWidth < 0 {
		leftWidth = 0
	}
	separator1 := strings.Repeat("-", leftWidth)
	separator2 := strings.Repeat("-", max(width-len(title)-len(separator1), 0))
	titleColor.Printf("%s%s%s\n", separator1, title, separator2)
}

// UserInput printed to cli.
func UserInput(text string, args ...any) {
	userInputColor.Printf(text, args...)
}

// Answer printed to cli.
func Answer(text string, args ...any) {
	text = strings.ReplaceAll(text, "%", "%%")
	answerColor.Printf(text, args...)
}

// Source annotation printed to cli.
func Source(text string, args ...any) {
	sourceColor.Printf(text, args...)
}

// Error printed to cli.
func Error(text string, args ...any) {
	errorColor.Printf(text, args...)
}

// Info printed to cli.
func Info(text string, args ...any) {
	infoColor.Printf(text, args...)
}

// SessionEntry prints one line of the sessions listing.
func SessionEntry(sessionID, title, createdAt string) {
	sessionIDColor.Printf("%s", sessionID)
	sessionMetColor.Printf("  %s\n", createdAt)
	userInputColor.Printf("  %s\n", title)
}

// PromptUser reads one line of input.
func PromptUser() (string, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            promptColor.Sprint("> "),
		InterruptPrompt:   "^C",
		HistoryFile:       filepath.Join(os.TempDir(), "ragchat.history"),
		HistorySearchFold: true,
	})
	if err != nil {
		return "", err
	}
	defer rl.Close()
	return rl.Readline()
}

// QueryUser a yes/no question.
func QueryUser(question string) bool {
	confirm := false
	survey.AskOne(&survey.Confirm{Message: question}, &confirm)
	return confirm
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
