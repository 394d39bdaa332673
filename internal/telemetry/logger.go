package telemetry

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// NewLogger returns a logr.Logger writing to w through the standard log package.
// V-levels above verbosity are discarded.
func NewLogger(w io.Writer, verbosity int) logr.Logger {
	stdr.SetVerbosity(verbosity)
	return stdr.New(log.New(w, serviceName+" ", log.LstdFlags|log.Lmicroseconds))
}

// OpenLogFile opens path for appending and returns a logger writing to it.
// The terminal belongs to the renderer, so logs never go to stderr while
// the game is running. The returned close function releases the file.
func OpenLogFile(path string, verbosity int) (logr.Logger, func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return logr.Discard(), func() error { return nil }, fmt.Errorf("open log file %s: %w", path, err)
	}
	return NewLogger(f, verbosity), f.Close, nil
}
