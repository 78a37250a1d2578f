package logger

import (
	"log/slog"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// Empty ids produce an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Jurisdiction records a jurisdiction code as supplied by the caller.
func Jurisdiction(code string) slog.Attr {
	return slog.String("jurisdiction", code)
}

// Verdict records the outcome kind of an identifier check (valid, format_mismatch, ...).
func Verdict(kind string) slog.Attr {
	return slog.String("verdict", kind)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}
