package storage

import "github.com/sirupsen/logrus"

// BuildClient connects to redis when REDIS_ADDR is set and falls back to
// process memory otherwise.
func BuildClient() (Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	if cfg.Addr == "" {
		logrus.Warn("REDIS_ADDR is empty, will keep data in memory")
		return NewMemoryClient(), nil
	}

	c, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}

	return c, nil
}
