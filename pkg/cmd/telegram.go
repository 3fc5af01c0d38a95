package cmd

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"botCommands/pkg/storage"
	"botCommands/pkg/telegram"

	logging "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var telegramCmd = &cobra.Command{
	Use:   "telegram",
	Short: "Starts a Telegram bot",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := storage.BuildClient()
		if err != nil {
			return err
		}

		registry, err := BuildRegistry(db)
		if err != nil {
			return err
		}

		bot, err := telegram.BuildBot(registry)
		if err != nil {
			return err
		}
		go bot.Start()

		logging.Info("started telegram bot")

		waitForSignal(bot, db)

		return nil
	},
}

func initTelegramCmd() {
	rootCmd.AddCommand(telegramCmd)
}

func waitForSignal(server *telegram.Bot, db storage.Client) {
	terminateSignals := make(chan os.Signal, 1)

	signal.Notify(terminateSignals, syscall.SIGINT, syscall.SIGTERM)

	s := <-terminateSignals
	logging.Infof("Got one of stop signals, shutting down bot gracefully, SIGNAL NAME : %v", s)
	server.Stop()
	closeStorage(db)
}

func closeStorage(db storage.Client) {
	c, ok := db.(io.Closer)
	if !ok {
		return
	}

	err := c.Close()
	if err != nil {
		logging.Errorf("failed to close storage: %v", err)
		return
	}

	logging.Info("closed storage connection")
}
