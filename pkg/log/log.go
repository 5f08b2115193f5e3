// Package log provides the logging facade used throughout the
// emulator. The default implementation is backed by logrus.
package log

import (
	"github.com/sirupsen/logrus"
)

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// Leveler is implemented by loggers whose verbosity can be changed
// after construction.
type Leveler interface {
	SetLevel(level logrus.Level)
}

// DebugLevel enables the debug messages the default level filters
// out.
const DebugLevel = logrus.DebugLevel

// New returns a logrus backed Logger.
func New() Logger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}
