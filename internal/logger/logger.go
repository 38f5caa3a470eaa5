// Package logger writes report output and diagnostics to the command streams.
package logger

import (
	"fmt"
	"io"
)

// Logger sends messages to stdout and errors to stderr. Quiet drops
// non-forced messages unless debug is on.
type Logger struct {
	out   io.Writer
	err   io.Writer
	quiet bool
	debug bool
}

func New(out io.Writer, err io.Writer, quiet bool, debug bool) *Logger {
	return &Logger{
		out:   out,
		err:   err,
		quiet: quiet,
		debug: debug,
	}
}

func (logger *Logger) Log(message string, forceShow bool) {
	if logger.quiet && !forceShow && !logger.debug {
		return
	}
	_, _ = fmt.Fprintln(logger.out, message)
}

func (logger *Logger) Debug(message string) {
	if !logger.debug {
		return
	}
	_, _ = fmt.Fprintln(logger.out, message)
}

func (logger *Logger) IsDebug() bool {
	return logger.debug
}

func (logger *Logger) Error(message string) {
	_, _ = fmt.Fprintln(logger.err, message)
}
