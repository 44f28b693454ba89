package main

import (
	"github.com/spf13/cobra"

	"ragchat/cli/chat"
	"ragchat/internal/configuration"
)

const configFilepath = "~/.ragchat/config.json"

var rootCmd = &cobra.Command{
	Use:   "ragchat",
	Short: "A CLI for the question-answering assistant",
}

func main() {
	config, err := configuration.Parse(configFilepath)
	if err != nil {
		panic(err)
	}

	rootCmd.AddCommand(chat.NewCmd(config))
	rootCmd.Execute()
}
