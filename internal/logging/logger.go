package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

const DefaultLevel = "warning"

// Logger is silent below warning until Init runs so packages can log from
// tests without setup.
var Logger = newLogger(os.Stderr, logrus.WarnLevel)

func newLogger(w io.Writer, level logrus.Level) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return logger
}

func ParseLevel(level string) (logrus.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return logrus.DebugLevel, nil
	case "info":
		return logrus.InfoLevel, nil
	case "", "warning", "warn":
		return logrus.WarnLevel, nil
	case "error":
		return logrus.ErrorLevel, nil
	default:
		return logrus.WarnLevel, fmt.Errorf("unsupported log level %q", level)
	}
}

// Init replaces Logger. Diagnostics always go to w (stderr in the CLI) so
// command output on stdout stays parseable.
func Init(level string, w io.Writer) error {
	parsed, err := ParseLevel(level)
	if err != nil {
		return err
	}
	if w == nil {
		w = os.Stderr
	}

	Logger = newLogger(w, parsed)
	return nil
}
