package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type loggingContextKey string

const TrackingIDKey loggingContextKey = "trackingID"

type Config struct {
	Level string `envconfig:"LOG_LEVEL" default:"debug"`
}

func LoadConfig() (*Config, error) {
	cfg := new(Config)
	err := envconfig.Process("log", cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load logging config")
	}

	return cfg, nil
}

// WithTrackingID tags the context with a fresh id, printed with every log line
// written through logrus.WithContext(ctx).
func WithTrackingID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TrackingIDKey, uuid.New().String())
}

func TrackingID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	trackingID, _ := ctx.Value(TrackingIDKey).(string)

	return trackingID
}

type trackingIDFormatter struct {
	logrus.TextFormatter
}

func (f *trackingIDFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	trackingID := TrackingID(entry.Context)
	if trackingID == "" {
		return f.TextFormatter.Format(entry)
	}

	entry.Data["trackingID"] = trackingID

	return f.TextFormatter.Format(entry)
}

func newFormatter() logrus.Formatter {
	return &trackingIDFormatter{
		TextFormatter: logrus.TextFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FullTimestamp:   true,
		},
	}
}

func Init(cfg *Config) error {
	if cfg.Level == "" {
		cfg.Level = logrus.DebugLevel.String()
	}

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return errors.Wrapf(err, "invalid LOG_LEVEL %q", cfg.Level)
	}

	logrus.SetLevel(level)
	logrus.SetFormatter(newFormatter())

	return nil
}
