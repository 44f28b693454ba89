package chat

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.design/x/clipboard"

	"ragchat/internal/api"
	"ragchat/internal/cache"
	"ragchat/internal/configuration"
	"ragchat/internal/debug"
	"ragchat/internal/session"
)

var log = debug.GetLogger()

// NewCmd instantiates and returns the chat command.
func NewCmd(config *configuration.Config) *cobra.Command {
	var opts struct {
		Plain bool
	}
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat with the question-answering assistant",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := cache.New(config.CachePath)
			cobra.CheckErr(err)
			defer store.Close()

			client := api.NewClient(config.APIBaseURL, time.Duration(config.RequestTimeout)*time.Second)
			manager := session.NewManager(store, client)

			if opts.Plain {
				return runPlain(ctx, manager)
			}

			if err := clipboard.Init(); err != nil {
				log.Debug("clipboard unavailable", "error", err)
			}

			m, err := New(ctx, manager)
			if err != nil {
				return err
			}
			p := tea.NewProgram(
				m,
				tea.WithAltScreen(),
				tea.WithContext(ctx),
				tea.WithMouseCellMotion(),
			)
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&opts.Plain, "plain", false, "Use the plain line-based interface instead of the TUI")
	cmd.AddCommand(newListCmd(config))
	return cmd
}
