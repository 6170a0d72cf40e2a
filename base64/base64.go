package base64

import (
	"bytes"
	"math"
	"slices"

	"github.com/ericlagergren/ctcodec"
)

// Pad is the padding character.
const Pad = '='

// StdEncoding is the standard Base64 encoding.
//
// It uses the following alphabet:
//
//	ABCDEFGHIJKLMNOPQRSTUVWXYZ
//	abcdefghijklmnopqrstuvwxyz
//	0123456789
//	+/
var StdEncoding = &Encoding{
	char:  stdChar,
	value: stdValue,
	pad:   true,
}

// RawStdEncoding is the unpadded standard Base64 encoding.
var RawStdEncoding = &Encoding{
	char:  stdChar,
	value: stdValue,
}

// URLEncoding is the base64url encoding.
//
// It uses the following alphabet:
//
//	ABCDEFGHIJKLMNOPQRSTUVWXYZ
//	abcdefghijklmnopqrstuvwxyz
//	0123456789
//	-_
var URLEncoding = &Encoding{
	char:  urlChar,
	value: urlValue,
	pad:   true,
}

// RawURLEncoding is the unpadded base64url encoding.
var RawURLEncoding = &Encoding{
	char:  urlChar,
	value: urlValue,
}

// Encoding is a particular Base64 encoding.
//
// The set of encodings is fixed; use one of the package-level
// Encoding variables.
type Encoding struct {
	char  func(byte) byte // 6-bit value to character
	value func(byte) byte // character to 6-bit value
	pad   bool
}

// EncodedLen returns the exact size in bytes of the Base64
// encoding of n source bytes.
//
// It returns ctcodec.ErrOverflow if the size does not fit in an
// int.
func (e *Encoding) EncodedLen(n int) (int, error) {
	if e.pad {
		if n > math.MaxInt-2 || (n+2)/3 > math.MaxInt/4 {
			return 0, ctcodec.ErrOverflow
		}
		return (n + 2) / 3 * 4, nil
	}
	if n/3 > (math.MaxInt-3)/4 {
		return 0, ctcodec.ErrOverflow
	}
	// A 1-byte remainder encodes to 2 characters, a 2-byte
	// remainder to 3.
	return n/3*4 + (n%3*8+5)/6, nil
}

// DecodedLen returns the maximum length in bytes of the decoding
// of n Base64-encoded bytes.
//
// The bound holds for any input, including inputs padded or
// sprinkled with ignored bytes.
func (e *Encoding) DecodedLen(n int) int {
	// floor(n*6/8), written so that n*6 cannot overflow.
	return n/4*3 + n%4*6/8
}

// Encode encodes src into dst, returning the prefix of dst that
// was written.
//
// If dst is smaller than EncodedLen(len(src)), Encode returns
// ctcodec.ErrOverflow without writing anything.
//
// Encode runs in constant time for the length of src.
func (e *Encoding) Encode(dst, src []byte) ([]byte, error) {
	n, err := e.EncodedLen(len(src))
	if err != nil {
		return nil, err
	}
	if len(dst) < n {
		return nil, ctcodec.ErrOverflow
	}

	var acc uint16
	var nbits uint
	pos := 0
	for _, v := range src {
		acc = acc<<8 | uint16(v)
		nbits += 8
		for nbits >= 6 {
			nbits -= 6
			dst[pos] = e.char(byte(acc>>nbits) & 0x3f)
			pos++
		}
	}
	if nbits > 0 {
		// Left-justify the leftover bits in a final group.
		dst[pos] = e.char(byte(acc<<(6-nbits)) & 0x3f)
		pos++
	}
	for pos < n {
		dst[pos] = Pad
		pos++
	}
	return dst[:pos], nil
}

// EncodeToString returns the Base64 encoding of src.
//
// EncodeToString runs in constant time for the length of src.
func (e *Encoding) EncodeToString(src []byte) (string, error) {
	n, err := e.EncodedLen(len(src))
	if err != nil {
		return "", err
	}
	dst := make([]byte, n)
	if _, err := e.Encode(dst, src); err != nil {
		return "", err
	}
	return string(dst), nil
}

// AppendEncode appends the Base64 encoding of src to dst and
// returns the extended buffer.
func (e *Encoding) AppendEncode(dst, src []byte) ([]byte, error) {
	n, err := e.EncodedLen(len(src))
	if err != nil {
		return nil, err
	}
	orig := len(dst)
	dst = slices.Grow(dst, n)
	dst = dst[:orig+n]
	if _, err := e.Encode(dst[orig:], src); err != nil {
		return nil, err
	}
	return dst, nil
}

// Decode decodes src into dst, returning the prefix of dst that
// was written. Bytes in ignore are skipped wherever they appear
// in src; a nil or empty ignore set means no byte is skippable.
//
// Decode returns ctcodec.ErrInvalidInput if src is not a valid
// encoding: a byte outside both the alphabet and the ignore
// set, nonzero padding bits, a missing, short, or excess pad
// sequence for a padded Encoding, or any pad character for an
// unpadded Encoding. It returns ctcodec.ErrOverflow if dst
// fills up before src is consumed.
//
// Decode runs in constant time for the length of src.
func (e *Encoding) Decode(dst, src, ignore []byte) ([]byte, error) {
	var acc uint16
	var nbits uint
	pos := 0
	end := -1
	for i := 0; i < len(src); i++ {
		c := src[i]
		d := e.value(c)
		if d == invalid {
			if ignored(ignore, c) {
				continue
			}
			// Either the pad sequence or garbage; the
			// epilogue below decides which.
			end = i
			break
		}
		acc = acc<<6 | uint16(d)
		nbits += 6
		if nbits >= 8 {
			nbits -= 8
			if pos >= len(dst) {
				return nil, ctcodec.ErrOverflow
			}
			dst[pos] = byte(acc >> nbits)
			pos++
		}
	}

	// A lone trailing character can never carry data, and the
	// bits beyond the last full byte must be zero. Anything
	// else would let distinct encodings decode to the same
	// bytes.
	if nbits > 4 || acc&(1<<nbits-1) != 0 {
		return nil, ctcodec.ErrInvalidInput
	}

	if end >= 0 {
		rest := src[end:]
		if e.pad {
			rest, err := skipPad(rest, int(nbits/2), ignore)
			if err != nil {
				return nil, err
			}
			if !allIgnored(rest, ignore) {
				return nil, ctcodec.ErrInvalidInput
			}
		} else if !allIgnored(rest, ignore) {
			return nil, ctcodec.ErrInvalidInput
		}
	} else if e.pad && nbits != 0 {
		// Ran out of input where a pad sequence was due.
		return nil, ctcodec.ErrInvalidInput
	}
	return dst[:pos], nil
}

// DecodeString decodes the Base64 string s with the given
// ignore set.
//
// DecodeString runs in constant time for the length of s.
func (e *Encoding) DecodeString(s string, ignore []byte) ([]byte, error) {
	dst := make([]byte, e.DecodedLen(len(s)))
	return e.Decode(dst, []byte(s), ignore)
}

// AppendDecode appends the decoding of src to dst and returns
// the extended buffer.
func (e *Encoding) AppendDecode(dst, src, ignore []byte) ([]byte, error) {
	n := e.DecodedLen(len(src))
	orig := len(dst)
	dst = slices.Grow(dst, n)
	out, err := e.Decode(dst[orig:orig+n], src, ignore)
	if err != nil {
		return nil, err
	}
	return dst[:orig+len(out)], nil
}

// skipPad consumes exactly npad pad characters from the front of
// src, allowing ignored bytes in between, and returns the
// remainder.
func skipPad(src []byte, npad int, ignore []byte) ([]byte, error) {
	i := 0
	for npad > 0 {
		if i >= len(src) {
			return nil, ctcodec.ErrInvalidInput
		}
		switch c := src[i]; {
		case c == Pad:
			npad--
		case !ignored(ignore, c):
			return nil, ctcodec.ErrInvalidInput
		}
		i++
	}
	return src[i:], nil
}

func ignored(ignore []byte, c byte) bool {
	return bytes.IndexByte(ignore, c) >= 0
}

func allIgnored(src, ignore []byte) bool {
	for _, c := range src {
		if !ignored(ignore, c) {
			return false
		}
	}
	return true
}
