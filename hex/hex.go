// Package hex implements constant-time hexadecimal encoding and
// decoding.
//
// Encoding emits lowercase characters; decoding accepts both
// cases. The API mirrors this module's base64 package: callers
// own the destination buffer, Encode and Decode return the
// prefix that was written, and Decode accepts an ignore set.
package hex

import (
	"bytes"
	"math"
	"slices"

	"github.com/ericlagergren/ctcodec"
)

// EncodedLen returns the exact size in bytes of the hexadecimal
// encoding of n source bytes.
//
// It returns ctcodec.ErrOverflow if the size does not fit in an
// int.
func EncodedLen(n int) (int, error) {
	if n > math.MaxInt/2 {
		return 0, ctcodec.ErrOverflow
	}
	return n * 2, nil
}

// DecodedLen returns the maximum length in bytes of the decoding
// of n hexadecimal bytes.
func DecodedLen(n int) int {
	return n / 2
}

// Encode encodes src into dst, returning the prefix of dst that
// was written.
//
// If dst is smaller than EncodedLen(len(src)), Encode returns
// ctcodec.ErrOverflow without writing anything.
//
// Encode runs in constant time for the length of src.
func Encode(dst, src []byte) ([]byte, error) {
	n, err := EncodedLen(len(src))
	if err != nil {
		return nil, err
	}
	if len(dst) < n {
		return nil, ctcodec.ErrOverflow
	}
	j := 0
	for _, v := range src {
		b := uint(v >> 4)
		c := uint(v & 0x0f)

		// 87+x is 'a'-10+x, correct for x in [10, 15]. For
		// x in [0, 9] the mask subtracts 39, landing on '0'+x.
		const mask = ^uint(38)
		dst[j] = byte(87 + b + (((b - 10) >> 8) & mask))
		dst[j+1] = byte(87 + c + (((c - 10) >> 8) & mask))
		j += 2
	}
	return dst[:j], nil
}

// EncodeToString returns the hexadecimal encoding of src.
//
// EncodeToString runs in constant time for the length of src.
func EncodeToString(src []byte) (string, error) {
	n, err := EncodedLen(len(src))
	if err != nil {
		return "", err
	}
	dst := make([]byte, n)
	if _, err := Encode(dst, src); err != nil {
		return "", err
	}
	return string(dst), nil
}

// AppendEncode appends the hexadecimal encoding of src to dst
// and returns the extended buffer.
func AppendEncode(dst, src []byte) ([]byte, error) {
	n, err := EncodedLen(len(src))
	if err != nil {
		return nil, err
	}
	orig := len(dst)
	dst = slices.Grow(dst, n)
	dst = dst[:orig+n]
	if _, err := Encode(dst[orig:], src); err != nil {
		return nil, err
	}
	return dst, nil
}

// Decode decodes src into dst, returning the prefix of dst that
// was written. Bytes in ignore are skipped wherever they appear
// in src; a nil or empty ignore set means no byte is skippable.
//
// Decode returns ctcodec.ErrInvalidInput if src contains a byte
// outside both the hexadecimal alphabet and the ignore set, or
// if it contains an odd number of hexadecimal characters. It
// returns ctcodec.ErrOverflow if dst fills up before src is
// consumed.
//
// Decode runs in constant time for the length of src.
func Decode(dst, src, ignore []byte) ([]byte, error) {
	// acc holds the high nibble between halves of a pair.
	var acc byte
	var half bool
	pos := 0
	for _, c := range src {
		// num0 is 0xff iff c is in '0'..'9'.
		num := uint16(c) ^ '0'
		num0 := byte((num - 10) >> 8)

		// alpha0 is 0xff iff c, with bit 5 masked off to fold
		// lowercase into uppercase, is in 'A'..'F'.
		alpha := (c &^ 32) - 55
		a := uint16(alpha)
		alpha0 := byte(((a - 10) ^ (a - 16)) >> 8)

		if num0|alpha0 == 0 {
			if ignored(ignore, c) {
				continue
			}
			return nil, ctcodec.ErrInvalidInput
		}
		val := byte(num)&num0 | alpha&alpha0
		if !half {
			acc = val << 4
		} else {
			if pos >= len(dst) {
				return nil, ctcodec.ErrOverflow
			}
			dst[pos] = acc | val
			pos++
		}
		half = !half
	}
	if half {
		// Odd number of hexadecimal characters.
		return nil, ctcodec.ErrInvalidInput
	}
	return dst[:pos], nil
}

// DecodeString decodes the hexadecimal string s with the given
// ignore set.
//
// DecodeString runs in constant time for the length of s.
func DecodeString(s string, ignore []byte) ([]byte, error) {
	dst := make([]byte, DecodedLen(len(s)))
	return Decode(dst, []byte(s), ignore)
}

// AppendDecode appends the decoding of src to dst and returns
// the extended buffer.
func AppendDecode(dst, src, ignore []byte) ([]byte, error) {
	n := DecodedLen(len(src))
	orig := len(dst)
	dst = slices.Grow(dst, n)
	out, err := Decode(dst[orig:orig+n], src, ignore)
	if err != nil {
		return nil, err
	}
	return dst[:orig+len(out)], nil
}

func ignored(ignore []byte, c byte) bool {
	return bytes.IndexByte(ignore, c) >= 0
}
