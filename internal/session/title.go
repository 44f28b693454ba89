package session

import (
	"time"

	"ragchat/internal/api"
)

const titleMaxLength = 30

// DeriveTitle produces a human-readable label for a history entry: the
// first user message truncated to 30 characters, or a date label when the
// entry carries no user message. Pure; no storage or network access.
func DeriveTitle(entry HistoryEntry) string {
	for _, message := range entry.Messages {
		if message.Sender != api.SenderUser {
			continue
		}
		runes := []rune(message.Text)
		if len(runes) > titleMaxLength {
			return string(runes[:titleMaxLength]) + "..."
		}
		return message.Text
	}
	return "Chat " + formatDate(entry.CreatedAt)
}

func formatDate(timestamp string) string {
	parsed, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return timestamp
	}
	return parsed.Format("Jan 2, 2006")
}
