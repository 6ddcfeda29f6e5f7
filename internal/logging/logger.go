// Package logging provides the structured logging abstraction used by every
// expensepro component. Commands and services depend on the Logger interface;
// the logrus-backed adapter is wired once by the container.
package logging

// Logger is the structured logger handed to every service and command.
//
// Entries carry Field values rather than formatted strings so that JSON output
// stays queryable. WithError, WithField and WithFields return a derived logger
// and leave the receiver unchanged.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	WithError(err error) Logger
	WithField(key string, value interface{}) Logger
	WithFields(fields ...Field) Logger

	// Fatal and Fatalf exit the process after logging.
	Fatal(msg string, fields ...Field)
	Fatalf(msg string, args ...interface{})
}

// Field is a key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// F is shorthand for building a Field inline.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}
