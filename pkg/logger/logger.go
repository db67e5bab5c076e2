package logger

import (
	"log"
	"os"
)

// Verbosity levels, ordered. A logger built with a given level prints that
// level and everything above it; SILENCE prints nothing.
const (
	DEBUG int = iota
	INFO
	WARNING
	ERROR
	SILENCE
)

// Logger is the leveled logger carried through the request context.
type Logger interface {
	Debugf(msg string, a ...any)
	Infof(msg string, a ...any)
	Warnf(msg string, a ...any)
	Errorf(msg string, a ...any)
}

type leveledLogger struct {
	level int
	out   *log.Logger
}

func NewLogger(level int) *leveledLogger {
	return &leveledLogger{
		level: level,
		out:   log.New(os.Stderr, "", log.LstdFlags),
	}
}

func (l *leveledLogger) logf(level int, prefix, msg string, a ...any) {
	if l.level <= level {
		l.out.Printf(prefix+msg+"\n", a...)
	}
}

func (l *leveledLogger) Debugf(msg string, a ...any) {
	l.logf(DEBUG, "DEBUG: ", msg, a...)
}

func (l *leveledLogger) Infof(msg string, a ...any) {
	l.logf(INFO, "INFO: ", msg, a...)
}

func (l *leveledLogger) Warnf(msg string, a ...any) {
	l.logf(WARNING, "WARN: ", msg, a...)
}

func (l *leveledLogger) Errorf(msg string, a ...any) {
	l.logf(ERROR, "ERROR: ", msg, a...)
}
