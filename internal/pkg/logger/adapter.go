package logger

import "walletstate/internal/app/port"

// slogAdapter implements port.Logger on top of the package-level logger.
type slogAdapter struct {
	attrs []any
}

// NewSlogAdapter returns a port.Logger backed by the global logger.
// The given key/value pairs are attached to every record.
func NewSlogAdapter(attrs ...any) port.Logger {
	return &slogAdapter{attrs: attrs}
}

func (a *slogAdapter) with(args []any) []any {
	if len(a.attrs) == 0 {
		return args
	}
	out := make([]any, 0, len(a.attrs)+len(args))
	out = append(out, a.attrs...)
	return append(out, args...)
}

func (a *slogAdapter) Info(msg string, args ...any) {
	Info(msg, a.with(args)...)
}

func (a *slogAdapter) Debug(msg string, args ...any) {
	Debug(msg, a.with(args)...)
}

func (a *slogAdapter) Warn(msg string, args ...any) {
	Warn(msg, a.with(args)...)
}

func (a *slogAdapter) Error(msg string, args ...any) {
	Error(msg, a.with(args)...)
}

type nopLogger struct{}

// NewNop returns a port.Logger that discards everything.
func NewNop() port.Logger { return nopLogger{} }

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
