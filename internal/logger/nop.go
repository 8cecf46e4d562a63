package logger

type nopLogger struct{}

// Nop returns a Logger that discards everything. Useful in tests and as a
// safe default.
func Nop() Logger {
	return nopLogger{}
}

func (nopLogger) Debug(component, message string, fields map[string]interface{})   {}
func (nopLogger) Info(component, message string, fields map[string]interface{})    {}
func (nopLogger) Warning(component, message string, fields map[string]interface{}) {}
func (nopLogger) Error(component string, err error, fields map[string]interface{}) {}
