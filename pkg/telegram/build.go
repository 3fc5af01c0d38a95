package telegram

import "botCommands/pkg/command"

func BuildBot(r *command.Registry) (*Bot, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	bot, err := NewBot(config, r)
	if err != nil {
		return nil, err
	}

	return bot, nil
}
