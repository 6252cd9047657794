package logging

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

// New returns a logger writing plain text lines to w at the named level.
func New(w io.Writer, level string) (*log.Logger, error) {
	if level == "" {
		level = "info"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	l := log.New()
	l.SetOutput(w)
	l.SetLevel(lvl)
	l.SetFormatter(Formatter())
	return l, nil
}

// Formatter is the line format shared by every logger in the process,
// including logrus's standard logger that reports the final error.
func Formatter() log.Formatter {
	return &log.TextFormatter{
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
	}
}
