package telegram

import (
	"time"

	"botCommands/pkg/errs"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	APIToken    string        `envconfig:"TELEGRAM_ACCESS_TOKEN"`
	PollTimeout time.Duration `envconfig:"TELEGRAM_POLL_TIMEOUT" default:"10s"`
	// StartTimeout bounds the retries of the initial connection to the bot API.
	StartTimeout time.Duration `envconfig:"TELEGRAM_START_TIMEOUT" default:"1m"`
}

func (c *Config) Validate() *errs.Multi {
	e := errs.NewMulti()

	if c.APIToken == "" {
		e.Err("TELEGRAM_ACCESS_TOKEN cannot be empty")
	}
	if c.PollTimeout <= 0 {
		e.Errf("TELEGRAM_POLL_TIMEOUT must be positive, got %s", c.PollTimeout)
	}

	return e
}

func LoadConfig() (*Config, error) {
	cfg := new(Config)
	err := envconfig.Process("telegram", cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load telegram config")
	}

	return cfg, nil
}
