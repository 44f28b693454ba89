package chat

import (
	"time"

	"github.com/spf13/cobra"

	"ragchat/internal/api"
	"ragchat/internal/cache"
	"ragchat/internal/configuration"
	"ragchat/internal/session"
)

// newListCmd instantiates and returns the list command.
func newListCmd(config *configuration.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List previous chats",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := cache.New(config.CachePath)
			cobra.CheckErr(err)
			defer store.Close()

			client := api.NewClient(config.APIBaseURL, time.Duration(config.RequestTimeout)*time.Second)
			manager := session.NewManager(store, client)
			printSessions(ctx, manager)
			return nil
		},
	}
}
