package command

import (
	"strings"

	"botCommands/pkg/errs"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	FoldCase bool `envconfig:"COMMANDS_FOLD_CASE"`
	// Priority overrides the category order of category-agnostic lookups,
	// e.g. "text,callback,reply".
	Priority []string `envconfig:"COMMANDS_PRIORITY"`
}

func (c *Config) Validate() *errs.Multi {
	e := errs.NewMulti()

	seen := map[string]bool{}
	for _, p := range c.priority() {
		if p == "" {
			e.Err("COMMANDS_PRIORITY cannot contain empty categories")
			continue
		}
		if seen[string(p)] {
			e.Errf("COMMANDS_PRIORITY contains category %q more than once", p)
		}
		seen[string(p)] = true
	}

	return e
}

func (c *Config) Options() []Option {
	var opts []Option
	if c.FoldCase {
		opts = append(opts, WithFoldCase())
	}

	if len(c.Priority) > 0 {
		opts = append(opts, WithPriority(c.priority()...))
	}

	return opts
}

// priority trims entries so "callback, text" names the built-in categories.
func (c *Config) priority() []Category {
	categories := make([]Category, len(c.Priority))
	for i, p := range c.Priority {
		categories[i] = Category(strings.TrimSpace(p))
	}

	return categories
}

func LoadConfig() (*Config, error) {
	cfg := new(Config)
	err := envconfig.Process("commands", cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load commands config")
	}

	return cfg, nil
}
