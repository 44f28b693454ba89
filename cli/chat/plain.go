package chat

import (
	"context"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"ragchat/internal/api"
	"ragchat/internal/cli"
	"ragchat/internal/session"
)

// runPlain drives the line-based chat loop used with --plain, for
// terminals where the TUI is unwanted.
func runPlain(ctx context.Context, manager *session.Manager) error {
	manager.Initialize(ctx)
	cli.Title("RAGCHAT [%s]", shortID(manager.CurrentID()))
	printTranscript(manager.Messages())

	for {
		text, err := cli.PromptUser()
		if err == readline.ErrInterrupt || err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		text = strings.TrimSpace(text)
		switch {
		case text == "":
			continue

		case text == "/quit" || text == "/exit":
			return nil

		case text == "/new":
			if !cli.QueryUser("Start a new chat? The previous one stays in your history.") {
				continue
			}
			manager.NewSession(ctx)
			cli.Title("RAGCHAT [%s]", shortID(manager.CurrentID()))

		case text == "/sessions":
			printSessions(ctx, manager)

		case strings.HasPrefix(text, "/open "):
			openSession(ctx, manager, strings.TrimSpace(strings.TrimPrefix(text, "/open ")))

		case strings.HasPrefix(text, "/"):
			cli.Info("commands: /new, /sessions, /open <id>, /quit\n")

		default:
			answer := manager.Send(ctx, text)
			if answer == nil {
				continue
			}
			printAnswer(answer)
		}
	}
}

func printTranscript(messages []api.Message) {
	for _, message := range messages {
		if message.Sender == api.SenderUser {
			cli.UserInput("> %s\n", message.Text)
			continue
		}
		printAnswer(&message)
	}
}

func printAnswer(answer *api.Message) {
	if answer.IsError {
		cli.Error("%s\n", answer.Text)
		return
	}
	cli.Answer(answer.Text)
	cli.Answer("\n")
	if answer.Source != "" {
		cli.Source("source: %s\n", answer.Source)
	}
	cli.Separator()
}

func printSessions(ctx context.Context, manager *session.Manager) {
	entries := manager.RefreshHistory(ctx)
	if len(entries) == 0 {
		cli.Info("no previous chats\n")
		return
	}
	for _, entry := range entries {
		cli.SessionEntry(entry.SessionID, session.DeriveTitle(entry), entry.CreatedAt)
	}
}

func openSession(ctx context.Context, manager *session.Manager, arg string) {
	sessionID := arg
	// Accept a prefix of a known session id.
	for _, entry := range manager.History() {
		if strings.HasPrefix(entry.SessionID, arg) {
			sessionID = entry.SessionID
			break
		}
	}
	manager.Load(ctx, sessionID)
	cli.Title("RAGCHAT [%s]", shortID(manager.CurrentID()))
	printTranscript(manager.Messages())
}
