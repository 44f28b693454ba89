// Package history manages input-recall history for the chat prompt.
package history

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	defaultFileName = "ragchat_input_history"
	maxSize         = 500
)

// History manages input history with persistence.
type History struct {
	entries []string
	index   int    // Current position in history (-1 means new input)
	current string // Stores current input when navigating history
	mu      sync.Mutex
	path    string
}

// New creates a History persisted in the system temp directory and loads
// any existing entries.
func New() *History {
	return NewAt(filepath.Join(os.TempDir(), defaultFileName))
}

// NewAt creates a History persisted at the given path.
func NewAt(path string) *History {
	h := &History{index: -1, path: path}
	h.load()
	return h
}

func (h *History) load() {
	h.mu.Lock()
	defer h.mu.Unlock()

	file, err := os.Open(h.path)
	if err != nil {
		return // No history yet.
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		line = strings.ReplaceAll(line, "\\n", "\n")
		line = strings.ReplaceAll(line, "\\\\", "\\")
		if line != "" {
			h.entries = append(h.entries, line)
		}
	}

	if len(h.entries) > maxSize {
		h.entries = h.entries[len(h.entries)-maxSize:]
	}
}

func (h *History) save() {
	h.mu.Lock()
	defer h.mu.Unlock()

	file, err := os.Create(h.path)
	if err != nil {
		return // History persistence is best effort.
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, entry := range h.entries {
		escaped := strings.ReplaceAll(entry, "\\", "\\\\")
		escaped = strings.ReplaceAll(escaped, "\n", "\\n")
		writer.WriteString(escaped + "\n")
	}
	writer.Flush()
}

// Add adds a new entry to history.
func (h *History) Add(entry string) {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return
	}

	h.mu.Lock()
	if len(h.entries) > 0 && h.entries[len(h.entries)-1] == entry {
		h.index = -1
		h.current = ""
		h.mu.Unlock()
		return
	}

	h.entries = append(h.entries, entry)
	if len(h.entries) > maxSize {
		h.entries = h.entries[len(h.entries)-maxSize:]
	}
	h.index = -1
	h.current = ""
	h.mu.Unlock()

	h.save()
}

// Previous returns the previous entry in history. currentInput is saved
// when first navigating so Next can restore it.
func (h *History) Previous(currentInput string) (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.entries) == 0 {
		return "", false
	}

	if h.index == -1 {
		h.current = currentInput
		h.index = len(h.entries) - 1
	} else if h.index > 0 {
		h.index--
	} else {
		return h.entries[0], false
	}
	return h.entries[h.index], true
}

// Next returns the next entry in history (toward present).
func (h *History) Next() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.index == -1 {
		return "", false
	}

	h.index++
	if h.index >= len(h.entries) {
		h.index = -1
		return h.current, true
	}
	return h.entries[h.index], true
}

// Reset resets the navigation index (call when input is modified).
func (h *History) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.index = -1
	h.current = ""
}
