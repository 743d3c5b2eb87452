package calculation

// Logger lets the engines emit debug traces without binding to a
// concrete logging implementation.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// NopLogger discards all log output. It is the default for every
// engine; the CLI swaps in a real logger under --debug.
type NopLogger struct{}

func (l *NopLogger) Debugf(format string, args ...interface{}) {}
func (l *NopLogger) Infof(format string, args ...interface{})  {}
func (l *NopLogger) Errorf(format string, args ...interface{}) {}
