package storage

import (
	"context"
	"encoding/json"
	"time"

	"botCommands/pkg/errs"
	"botCommands/pkg/utils"

	"github.com/cenkalti/backoff/v4"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	base "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type isNotLoggableKey string

// IsNotLoggableContentCtxKey marks contexts whose stored values must not be logged.
const IsNotLoggableContentCtxKey isNotLoggableKey = "is_not_loggable"

type RedisConfig struct {
	Addr string `envconfig:"REDIS_ADDR"`
	Pass string `envconfig:"REDIS_PASS"`
	DB   int    `envconfig:"REDIS_DB"`
	// PingTimeout bounds the total time spent retrying the startup ping.
	PingTimeout time.Duration `envconfig:"REDIS_PING_TIMEOUT" default:"1m"`
}

func (c *RedisConfig) Validate() *errs.Multi {
	e := errs.NewMulti()

	if c.Addr == "" {
		e.Err("REDIS_ADDR cannot be empty")
	}
	if c.DB < 0 {
		e.Errf("REDIS_DB cannot be negative, got %d", c.DB)
	}

	return e
}

func LoadConfig() (cfg *RedisConfig, err error) {
	cfg = new(RedisConfig)
	err = envconfig.Process("redis", cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load redis config")
	}

	return cfg, nil
}

type RedisClient struct {
	baseClient *base.Client
}

func NewClient(cfg *RedisConfig) (*RedisClient, error) {
	err := cfg.Validate()
	if err.HasErrors() {
		return nil, err
	}

	rdb := base.NewClient(&base.Options{
		Addr:     cfg.Addr,
		Password: cfg.Pass,
		DB:       cfg.DB,
	})

	redisCheckErr := checkRedis(rdb, cfg.PingTimeout)
	if redisCheckErr != nil {
		logrus.Errorf("failed to ping redis %q", cfg.Addr)
		return nil, redisCheckErr
	}

	logrus.Infof("ping to redis %q is successful", cfg.Addr)
	return &RedisClient{baseClient: rdb}, nil
}

func checkRedis(cl *base.Client, maxElapsed time.Duration) error {
	logrus.Infof("will ping redis")
	operation := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		err := cl.Ping(ctx).Err()
		if err != nil {
			logrus.Errorf("failed to connect to redis: %v", err)
			return err
		}

		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = maxElapsed

	err := backoff.Retry(operation, bo)
	if err != nil {
		return errors.Wrap(err, "failed to connect to redis")
	}

	return nil
}

func (c *RedisClient) Read(ctx context.Context, key string) (raw []byte, found bool, err error) {
	log := logrus.WithContext(ctx)

	val, err := c.baseClient.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, base.Nil) {
			log.Debugf("nothing found in redis under key %q", key)
			return nil, false, nil
		}
		return nil, false, errors.Wrapf(err, "failed to get data from redis under key %q", key)
	}

	if ctx.Value(IsNotLoggableContentCtxKey) != nil {
		log.Debugf("successfully read data from redis under key %q", key)
	} else {
		log.Debugf("successfully read data %q from redis under key %q", val, key)
	}

	return []byte(val), true, nil
}

func (c *RedisClient) Write(ctx context.Context, key string, raw []byte, exp time.Duration) error {
	log := logrus.WithContext(ctx)

	err := c.baseClient.Set(ctx, key, raw, exp).Err()
	if err != nil {
		return errors.Wrapf(err, "failed to write data to redis under key %q", key)
	}

	if ctx.Value(IsNotLoggableContentCtxKey) != nil {
		log.Debugf("wrote hidden data to redis under key %q", key)
	} else {
		log.Debugf("wrote data %q to redis under key %q", string(raw), key)
	}

	return nil
}

func (c *RedisClient) Delete(ctx context.Context, key string) error {
	err := c.baseClient.Del(ctx, key).Err()
	if err != nil {
		return errors.Wrapf(err, "failed to delete data from redis under key %q", key)
	}

	logrus.WithContext(ctx).Debugf("deleted data from redis under key %q", key)

	return nil
}

func (c *RedisClient) Load(ctx context.Context, key string, target interface{}) (found bool, err error) {
	return load(ctx, c, key, target)
}

func (c *RedisClient) Save(ctx context.Context, key string, data interface{}, validity time.Duration) error {
	return save(ctx, c, key, data, validity)
}

func (c *RedisClient) Close() error {
	return c.baseClient.Close()
}

type rawStore interface {
	Read(ctx context.Context, key string) (raw []byte, found bool, err error)
	Write(ctx context.Context, key string, raw []byte, exp time.Duration) error
}

func load(ctx context.Context, s rawStore, key string, target interface{}) (bool, error) {
	targetType := utils.GetType(target)
	logrus.WithContext(ctx).Debugf("will load %q for key %s", targetType, key)

	rawData, found, err := s.Read(ctx, key)
	if err != nil {
		return false, errors.Wrap(err, "failed to read data from storage")
	}

	if !found {
		return false, nil
	}

	err = json.Unmarshal(rawData, target)
	if err != nil {
		return false, errors.Wrapf(err, "failed to convert %q to %s", string(rawData), targetType)
	}

	return true, nil
}

func save(ctx context.Context, s rawStore, key string, data interface{}, validity time.Duration) error {
	rawBytes, err := json.Marshal(data)
	if err != nil {
		return errors.Wrapf(err, "failed to convert %q to json", utils.GetType(data))
	}

	return s.Write(ctx, key, rawBytes, validity)
}
