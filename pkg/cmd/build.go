package cmd

import (
	"botCommands/pkg/command"
	"botCommands/pkg/help"
	"botCommands/pkg/notes"
	"botCommands/pkg/storage"
)

// BuildRegistry registers every command container of the bot. Help lists the
// registry itself, so it goes in last.
func BuildRegistry(db storage.Client) (*command.Registry, error) {
	r, err := command.BuildRegistry(
		notes.NewHandler(db),
	)
	if err != nil {
		return nil, err
	}

	err = r.RegisterAll(help.NewHandler(r))
	if err != nil {
		return nil, err
	}

	return r, nil
}
