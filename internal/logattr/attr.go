// Package logattr holds slog attribute helpers shared by the parser and the
// command line tool. Helpers return an empty Attr for zero inputs so call
// sites need no nil checks; slog drops empty attributes.
package logattr

import (
	"log/slog"
)

// Error creates an attribute for a single error under the key "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Reason names the class of a rejected operation, e.g. "malformed".
func Reason(reason string) slog.Attr {
	if reason == "" {
		return slog.Attr{}
	}
	return slog.String("reason", reason)
}

// Alg records an algorithm identifier as it appeared on the wire.
func Alg(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("alg", name)
}

// TokenLen records the length of a compact token, never its content.
func TokenLen(n int) slog.Attr {
	return slog.Int("token_len", n)
}

// Verify records whether signature and claim checks were requested.
func Verify(v bool) slog.Attr {
	return slog.Bool("verify", v)
}
