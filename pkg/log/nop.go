package log

// nopLogger discards everything. Used by tests and as a fallback when no
// logger is wired in.
type nopLogger struct{}

// NewNopLogger returns a Logger that discards all output.
func NewNopLogger() Logger {
	return nopLogger{}
}

func (nopLogger) Debugf(format string, args ...interface{}) {}
func (nopLogger) Infof(format string, args ...interface{})  {}
func (nopLogger) Warnf(format string, args ...interface{})  {}
func (nopLogger) Errorf(format string, args ...interface{}) {}
func (nopLogger) Fatalf(format string, args ...interface{}) {}

func (n nopLogger) WithField(key string, value interface{}) Logger  { return n }
func (n nopLogger) WithFields(fields map[string]interface{}) Logger { return n }
