package main

import (
	"os"

	"botCommands/pkg/cmd"
	"botCommands/pkg/errs"
	"botCommands/pkg/logging"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

var envFiles = []string{".env.default", ".env.secret", ".env.local"}

// loadEnv applies the env files that exist, later files overriding earlier ones.
func loadEnv() error {
	for _, f := range envFiles {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}

		err := godotenv.Overload(f)
		if err != nil {
			return errors.Wrapf(err, "failed to load %s", f)
		}
	}

	return nil
}

func main() {
	err := loadEnv()
	errs.Handle(err, true)

	logCfg, err := logging.LoadConfig()
	errs.Handle(err, true)

	err = logging.Init(logCfg)
	errs.Handle(err, true)

	err = cmd.Execute()
	errs.Handle(err, true)
}
