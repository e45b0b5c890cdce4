package port

// Logger is the structured logger handed to services. Args are alternating key/value pairs.
type Logger interface {
	Info(msg string, args ...any)
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}
