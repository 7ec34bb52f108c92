package llmcatalog

import "log/slog"

// Logger receives one human-readable diagnostic line. It is never used for
// control flow.
type Logger func(msg string)

// SlogLogger adapts a structured logger. A nil l uses slog.Default().
func SlogLogger(l *slog.Logger) Logger {
	if l == nil {
		l = slog.Default()
	}
	l = l.With("component", "models-cli")
	return func(msg string) {
		l.Warn(msg)
	}
}

func (l Logger) log(msg string) {
	if l != nil {
		l(msg)
	}
}
