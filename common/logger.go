package common

import (
	"fmt"
	"os"
)

// LogPrefix marks messages emitted by this library
const LogPrefix = `[openrazer] `

// Logger is the levelled logger the library writes to. *logrus.Logger and
// *logrus.Entry satisfy it.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	// Fatalf must exit the application
	Fatalf(format string, args ...interface{})
	// Panicf must panic
	Panicf(format string, args ...interface{})
}

// StubLogger discards everything below fatal. It is the default Logger.
type StubLogger struct{}

func (l *StubLogger) Debugf(format string, args ...interface{}) {}
func (l *StubLogger) Infof(format string, args ...interface{})  {}
func (l *StubLogger) Warnf(format string, args ...interface{})  {}
func (l *StubLogger) Errorf(format string, args ...interface{}) {}

// Fatalf exits with status 1
func (l *StubLogger) Fatalf(format string, args ...interface{}) {
	os.Exit(1)
}

// Panicf panics with the formatted message
func (l *StubLogger) Panicf(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}

// prefixed forwards to an underlying Logger with a fixed prefix prepended to
// every format string, so library output can be told apart in an
// application's log.
type prefixed struct {
	prefix string
	log    Logger
}

func (l *prefixed) Debugf(format string, args ...interface{}) {
	l.log.Debugf(l.prefix+format, args...)
}

func (l *prefixed) Infof(format string, args ...interface{}) {
	l.log.Infof(l.prefix+format, args...)
}

func (l *prefixed) Warnf(format string, args ...interface{}) {
	l.log.Warnf(l.prefix+format, args...)
}

func (l *prefixed) Errorf(format string, args ...interface{}) {
	l.log.Errorf(l.prefix+format, args...)
}

func (l *prefixed) Fatalf(format string, args ...interface{}) {
	l.log.Fatalf(l.prefix+format, args...)
}

func (l *prefixed) Panicf(format string, args ...interface{}) {
	l.log.Panicf(l.prefix+format, args...)
}

// Log is the library-wide logger. Replace it with SetLogger, before any
// Manager is created.
var Log Logger = &prefixed{prefix: LogPrefix, log: new(StubLogger)}

// SetLogger installs logger behind LogPrefix. A nil logger restores the
// StubLogger.
func SetLogger(logger Logger) {
	if logger == nil {
		logger = new(StubLogger)
	}
	Log = &prefixed{prefix: LogPrefix, log: logger}
}
