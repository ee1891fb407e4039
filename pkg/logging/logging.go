// Package logging configures the process-wide logrus logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// Setup sets the level and formatter of the standard logger and directs it
// to out.
func Setup(level string, out io.Writer) error {
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	logrus.SetLevel(lvl)
	logrus.SetOutput(out)
	logrus.SetFormatter(formatter(out))
	return nil
}

func formatter(out io.Writer) logrus.Formatter {
	if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return &logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		}
	}
	return &logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	}
}

// SetupFile logs to the file at path, for when the terminal belongs to the
// UI. The returned function closes the file.
func SetupFile(level, path string) (func() error, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	if err := Setup(level, f); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f.Close, nil
}
