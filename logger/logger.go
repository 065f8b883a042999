package logger

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/shapecraft/config"
)

// New builds a logger from config; LOG_LEVEL and LOG_FORMAT override the file values
// The terminal belongs to the renderer, so without log.file output is discarded
// The returned close func releases the log file
func New(cfg config.LogConfig) (*logrus.Logger, func() error, error) {
	log := logrus.New()

	levelName := cfg.Level
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok {
		levelName = v
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	format := cfg.Format
	if v, ok := os.LookupEnv("LOG_FORMAT"); ok {
		format = v
	}
	if strings.ToLower(format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}

	closeFn := func() error { return nil }
	if cfg.File == "" {
		log.SetOutput(io.Discard)
		return log, closeFn, nil
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open log file %s", cfg.File)
	}
	log.SetOutput(f)
	return log, f.Close, nil
}

// ForSystem scopes a run logger to one system
func ForSystem(base *logrus.Entry, name string) *logrus.Entry {
	return base.WithField("system", name)
}
