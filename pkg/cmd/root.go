package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "botcmd",
	Short: "Telegram bot dispatching commands, callbacks and replies to registered handlers",
}

func Execute() error {
	initVersionCmd()
	initTelegramCmd()
	initCommandsCmd()

	return rootCmd.Execute()
}
