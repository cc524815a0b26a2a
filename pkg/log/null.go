package log

type nullLogger struct{}

// NewNullLogger returns a Logger that discards everything. Useful in
// tests and benchmarks.
func NewNullLogger() Logger {
	return nullLogger{}
}

func (nullLogger) Infof(format string, args ...interface{})  {}
func (nullLogger) Errorf(format string, args ...interface{}) {}
func (nullLogger) Debugf(format string, args ...interface{}) {}
