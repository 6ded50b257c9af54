// Package logger provides coloured, component-prefixed line logging.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/beka-birhanu/vinom-lattice/config"
)

// Logger writes lines of the form "[NAME] [LEVEL] message".
type Logger struct {
	out *log.Logger
}

// New creates a logger for the named component. The name is printed in color.
func New(name, color string, w io.Writer) (*Logger, error) {
	if name == "" {
		return nil, errors.New("logger name is empty")
	}
	if w == nil {
		return nil, errors.New("logger writer is nil")
	}

	prefix := fmt.Sprintf("%s[%s]%s ", color, name, config.ColorReset)
	return &Logger{out: log.New(w, prefix, log.LstdFlags)}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.print(config.LogInfoColor, "INFO", msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.print(config.LogWarningColor, "WARNING", msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.print(config.LogErrorColor, "ERROR", msg)
}

func (l *Logger) print(color, level, msg string) {
	l.out.Printf("%s[%s]%s %s", color, level, config.LogColorReset, msg)
}
