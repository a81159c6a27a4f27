package larcv

type Logger interface {
	Info(message string, module string)
	Error(string)
}

type nopLogger struct{}

func (nopLogger) Info(string, string) {}
func (nopLogger) Error(string)        {}

// Commands install their slog-backed logger at startup. The no-op default
// keeps the package usable without one.
var logger Logger = nopLogger{}

func SetLogger(l Logger) {
	logger = l
}
