package security

import (
	"bytes"
	"strings"
)

// Weak key reasons returned by WeakKeyReason.
const (
	ReasonEmpty          = "empty key"
	ReasonTooShort       = "shorter than the hash output"
	ReasonRepeated       = "single repeated byte"
	ReasonSequence       = "ascending or descending sequence"
	ReasonShortPattern   = "short repeated pattern"
	ReasonLowEntropy     = "low entropy"
	ReasonCommonWord     = "contains a common word"
	ReasonKeyboardLayout = "keyboard pattern"
)

var commonWords = [...]string{
	"12345678", "87654321", "11111111", "00000000", "aaaaaaaa",
	"abcdefgh", "qwerty", "letmein", "welcome", "monkey", "dragon",
	"master", "sunshine", "iloveyou", "princess", "football",
	"default", "example", "sample", "secret", "changeme",
	"password", "test", "admin", "token",
}

var keyboardRows = [...]string{
	"qwertyuiop", "asdfghjkl", "zxcvbnm", "1234567890",
	"qwertz", "azerty",
}

// IsWeakKey reports whether key is too short for an HMAC whose hash output
// is minLen bytes, or shows an obvious low-entropy pattern.
func IsWeakKey(key []byte, minLen int) bool {
	return WeakKeyReason(key, minLen) != ""
}

// WeakKeyReason returns why key looks weak, or "" when no check fires.
// It is a heuristic for warnings; it never rejects a key on its own.
func WeakKeyReason(key []byte, minLen int) string {
	if len(key) == 0 {
		return ReasonEmpty
	}
	if len(key) < minLen {
		return ReasonTooShort
	}
	if bytes.Count(key, key[:1]) == len(key) {
		return ReasonRepeated
	}
	if isSequence(key) {
		return ReasonSequence
	}
	if hasShortPattern(key) {
		return ReasonShortPattern
	}
	if hasLowEntropy(key) {
		return ReasonLowEntropy
	}

	lower := strings.ToLower(string(key))
	for _, w := range commonWords {
		if strings.Contains(lower, w) {
			return ReasonCommonWord
		}
	}
	for _, row := range keyboardRows {
		if strings.Contains(lower, row) || strings.Contains(lower, reverse(row)) {
			return ReasonKeyboardLayout
		}
	}
	return ""
}

func isSequence(key []byte) bool {
	if len(key) < 8 {
		return false
	}
	ascending, descending := true, true
	for i := 1; i < 8; i++ {
		if key[i] != key[i-1]+1 {
			ascending = false
		}
		if key[i] != key[i-1]-1 {
			descending = false
		}
	}
	return ascending || descending
}

// hasShortPattern detects keys made of a 2-4 byte unit repeated at least
// three times, e.g. "abcabcabc".
func hasShortPattern(key []byte) bool {
	for n := 2; n <= 4; n++ {
		if len(key) < n*3 {
			continue
		}
		unit := key[:n]
		repeated := true
		for i := n; i < len(key); i += n {
			end := min(i+n, len(key))
			if !bytes.Equal(key[i:end], unit[:end-i]) {
				repeated = false
				break
			}
		}
		if repeated {
			return true
		}
	}
	return false
}

func hasLowEntropy(key []byte) bool {
	if len(key) < 8 {
		return true
	}

	var seen [256]bool
	unique := 0
	for _, b := range key {
		if !seen[b] {
			seen[b] = true
			unique++
		}
	}
	if float64(unique)/float64(len(key)) < 0.3 {
		return true
	}

	var lower, upper, digit, other int
	for _, b := range key {
		switch {
		case b >= 'a' && b <= 'z':
			lower = 1
		case b >= 'A' && b <= 'Z':
			upper = 1
		case b >= '0' && b <= '9':
			digit = 1
		default:
			other = 1
		}
	}

	minClasses := 2
	if len(key) >= 32 {
		minClasses = 3
	}
	return lower+upper+digit+other < minClasses
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
