// Package log defines the logging surface shared by the emulation
// packages, so that components don't depend on a concrete logging
// library.
package log

import "github.com/sirupsen/logrus"

// Logger is the minimal set of logging methods the emulation core needs.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a Logger backed by logrus, configured for plain
// terminal output.
func New() Logger {
	l := logrus.New()
	l.SetLevel(logrus.DebugLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}
