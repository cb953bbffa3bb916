package signing

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Separator joins the segments of a compact token.
const Separator = "."

var (
	toURLSafe = strings.NewReplacer("+", "-", "/", "_")
	toStd     = strings.NewReplacer("-", "+", "_", "/")
	strictStd = base64.StdEncoding.Strict()
)

// DecodeError reports a segment that is not valid unpadded base64url.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("base64url decode: %s: %v", e.Reason, e.Err)
	}
	return "base64url decode: " + e.Reason
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is makes every DecodeError match ErrMalformed.
func (e *DecodeError) Is(target error) bool {
	return target == ErrMalformed
}

// Encode returns the URL-safe, unpadded base64 form of data.
func Encode(data []byte) string {
	return strings.TrimRight(toURLSafe.Replace(base64.StdEncoding.EncodeToString(data)), "=")
}

// Decode reverses Encode. Input must use the URL-safe alphabet only and
// carry no padding; lengths of 1 mod 4 and non-zero trailing bits are
// rejected.
func Decode(s string) ([]byte, error) {
	if !isValidBase64URL(s) {
		return nil, &DecodeError{Reason: "invalid base64url characters"}
	}

	if len(s)%4 == 1 {
		return nil, &DecodeError{Reason: fmt.Sprintf("invalid length %d", len(s))}
	}

	padded := toStd.Replace(s)
	if rem := len(padded) % 4; rem != 0 {
		padded += strings.Repeat("=", 4-rem)
	}

	data, err := strictStd.DecodeString(padded)
	if err != nil {
		return nil, &DecodeError{Reason: "malformed input", Err: err}
	}
	return data, nil
}

// isValidBase64URL checks if string contains only valid base64url characters
func isValidBase64URL(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !((c >= 'A' && c <= 'Z') ||
			(c >= 'a' && c <= 'z') ||
			(c >= '0' && c <= '9') ||
			c == '-' || c == '_') {
			return false
		}
	}
	return true
}
