package chainmap

import (
	"unicode"
	"unicode/utf16"
)

const hashMultiplier = 31

// HashFunc maps a key to a bucket index in [0, capacity).
// Capacity is passed in on every call, so an index is only valid for the
// capacity it was computed with.
type HashFunc func(key string, capacity uintptr) uintptr

// PolynomialHash is the default HashFunc: a rolling polynomial hash over the
// UTF-16 code units of the key, reduced modulo capacity at every step.
func PolynomialHash(key string, capacity uintptr) uintptr {
	var h uintptr

	for _, r := range key {
		if r1, r2 := utf16.EncodeRune(r); r1 != unicode.ReplacementChar {
			h = (h*hashMultiplier + uintptr(r1)) % capacity
			h = (h*hashMultiplier + uintptr(r2)) % capacity

			continue
		}

		h = (h*hashMultiplier + uintptr(r)) % capacity
	}

	return h
}
