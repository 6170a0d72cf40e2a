// Package ctcodec provides the building blocks for the
// constant-time codecs implemented by its subpackages.
//
// The execution time and memory-access pattern of every codec in
// this module depend only on the length of the input, never on
// its contents, making them suitable for encoding and decoding
// secrets like keys, tokens, and digests.
//
// The byte comparators in this package evaluate a relation
// between two bytes and return a mask, 0xff if the relation
// holds and 0x00 otherwise. The codecs combine these masks with
// AND and OR to select alphabet characters without branching on
// the values being translated.
package ctcodec

import (
	"crypto/subtle"
	"errors"
)

var (
	// ErrOverflow is returned when the destination buffer is
	// too small for the result, or when a length computation
	// does not fit in an int.
	ErrOverflow = errors.New("ctcodec: buffer overflow")

	// ErrInvalidInput is returned when the input is not valid
	// for the encoding being decoded.
	ErrInvalidInput = errors.New("ctcodec: invalid input")
)

// ByteEq returns 0xff if x == y and 0x00 otherwise.
func ByteEq(x, y byte) byte {
	// x^y is zero iff x == y. Negating zero stays zero, while
	// negating any value in [1, 255] borrows into bits [15:8].
	return byte(^((0 - (uint16(x) ^ uint16(y))) >> 8))
}

// ByteGt returns 0xff if x > y and 0x00 otherwise.
func ByteGt(x, y byte) byte {
	// y-x underflows iff x > y, setting bits [15:8].
	return byte((uint16(y) - uint16(x)) >> 8)
}

// ByteGe returns 0xff if x >= y and 0x00 otherwise.
func ByteGe(x, y byte) byte {
	return ^ByteGt(y, x)
}

// ByteLt returns 0xff if x < y and 0x00 otherwise.
func ByteLt(x, y byte) byte {
	return ByteGt(y, x)
}

// ByteLe returns 0xff if x <= y and 0x00 otherwise.
func ByteLe(x, y byte) byte {
	return ByteGe(y, x)
}

// Verify reports whether x and y have equal contents.
//
// The time taken is a function of the length of the slices and
// is independent of the contents.
func Verify(x, y []byte) bool {
	return subtle.ConstantTimeCompare(x, y) == 1
}
