package options

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

// LogOptions configures the logrus root logger.
type LogOptions struct {
	Level  string `json:"level"  mapstructure:"level"`
	Format string `json:"format" mapstructure:"format"`
}

func NewLogOptions() *LogOptions {
	return &LogOptions{
		Level:  "info",
		Format: "text",
	}
}

func (o *LogOptions) Validate() []error {
	var errs []error
	if _, err := logrus.ParseLevel(o.Level); err != nil {
		errs = append(errs, fmt.Errorf("invalid log level %q: %w", o.Level, err))
	}
	if o.Format != "text" && o.Format != "json" {
		errs = append(errs, fmt.Errorf("invalid log format %q, must be 'text' or 'json'", o.Format))
	}
	return errs
}

func (o *LogOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Level, "log.level", o.Level, "Log level: trace, debug, info, warn, error.")
	fs.StringVar(&o.Format, "log.format", o.Format, "Log format: 'text' or 'json'.")
}

// NewLogger builds a configured logrus logger from the options. Validate
// must have passed before calling.
func (o *LogOptions) NewLogger() *logrus.Logger {
	log := logrus.New()
	level, err := logrus.ParseLevel(o.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	if o.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log
}
