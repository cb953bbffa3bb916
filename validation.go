package jwtparser

import (
	"bytes"
	"encoding/json"
	"reflect"
)

// encodePayload checks that payload is a non-empty map or struct and
// returns its JSON object encoding. The caller's value is only read.
func encodePayload(payload any) (json.RawMessage, error) {
	if payload == nil {
		return nil, &ArgumentError{Field: "payload", Message: "must not be nil"}
	}

	v := reflect.ValueOf(payload)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, &ArgumentError{Field: "payload", Message: "must not be nil"}
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, &ArgumentError{Field: "payload", Message: "map keys must be strings"}
		}
		if v.Len() == 0 {
			return nil, &ArgumentError{Field: "payload", Message: "must not be empty"}
		}
	case reflect.Struct:
	default:
		return nil, &ArgumentError{Field: "payload", Message: "must be a map or struct, got " + v.Kind().String()}
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, &ArgumentError{Field: "payload", Message: "not JSON serializable", Err: err}
	}

	if len(raw) == 0 || raw[0] != '{' {
		return nil, &ArgumentError{Field: "payload", Message: "must encode to a JSON object"}
	}
	if bytes.Equal(raw, []byte("{}")) {
		return nil, &ArgumentError{Field: "payload", Message: "must not be empty"}
	}

	return raw, nil
}

func validateKey(secretKey []byte) error {
	if len(secretKey) == 0 {
		return &ArgumentError{Field: "secretKey", Message: "must not be empty"}
	}
	return nil
}

func validateAlgorithm(alg Algorithm) error {
	if !alg.Valid() {
		return &ArgumentError{Field: "alg", Message: "unsupported algorithm " + alg.String(), Err: ErrInvalidAlgorithm}
	}
	return nil
}
