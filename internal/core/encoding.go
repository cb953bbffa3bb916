package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/cybergodev/jwtparser/internal/signing"
)

var errNotObject = errors.New("segment is not a JSON object")

// EncodeSegment marshals v to JSON and returns its base64url form. The
// encoding must be a JSON object.
func EncodeSegment(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if len(data) == 0 || data[0] != '{' {
		return "", errNotObject
	}

	return signing.Encode(data), nil
}

// DecodeSegment decodes a base64url JSON object segment. JSON integers
// become int64 and other numbers float64.
func DecodeSegment(segment string) (map[string]any, error) {
	if len(segment) == 0 {
		return nil, fmt.Errorf("%w: empty segment", signing.ErrMalformed)
	}

	data, err := signing.Decode(segment)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64url: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal JSON: %v", signing.ErrMalformed, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after JSON value", signing.ErrMalformed)
	}

	obj, ok := v.(map[string]any)
	if !ok {
		// covers the JSON literal null as well as arrays and scalars
		return nil, fmt.Errorf("%w: %w", signing.ErrMalformed, errNotObject)
	}

	return normalizeNumbers(obj).(map[string]any), nil
}

func normalizeNumbers(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, item := range x {
			x[k] = normalizeNumbers(item)
		}
		return x
	case []any:
		for i, item := range x {
			x[i] = normalizeNumbers(item)
		}
		return x
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x
	default:
		return v
	}
}
