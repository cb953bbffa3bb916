package security

import (
	"crypto/subtle"
	"runtime"
)

// ZeroBytes overwrites data with zeros.
func ZeroBytes(data []byte) {
	if len(data) == 0 {
		return
	}
	clear(data)
	runtime.KeepAlive(data)
}

// Equal reports whether a and b hold the same bytes. The comparison time
// depends only on the lengths, never on the contents.
func Equal(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
