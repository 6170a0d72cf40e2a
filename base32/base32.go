// Package base32 implements constant-time Base32 encoding and
// decoding as specified by RFC 4648, for both the standard and
// the extended hex alphabets.
//
// The API mirrors this module's base64 package: callers own the
// destination buffer, Encode and Decode return the prefix that
// was written, decoding is strict about padding bits and pad
// counts, and Decode accepts an ignore set.
package base32

import (
	"bytes"
	"math"
	"slices"

	"github.com/ericlagergren/ctcodec"
)

// Pad is the padding character.
const Pad = '='

// StdEncoding is the standard Base32 encoding.
//
// It uses the following alphabet:
//
//	ABCDEFGHIJKLMNOPQRSTUVWXYZ
//	234567
var StdEncoding = &Encoding{
	char:  stdChar,
	value: stdValue,
	pad:   true,
}

// RawStdEncoding is the unpadded standard Base32 encoding.
var RawStdEncoding = &Encoding{
	char:  stdChar,
	value: stdValue,
}

// HexEncoding is the "base32hex" encoding.
//
// It uses the following alphabet:
//
//	0123456789
//	ABCDEFGHIJKLMNOPQRSTUV
//
// Decoding also accepts the corresponding lowercase letters.
var HexEncoding = &Encoding{
	char:  hexChar,
	value: hexValue,
	pad:   true,
}

// RawHexEncoding is the unpadded "base32hex" encoding.
var RawHexEncoding = &Encoding{
	char:  hexChar,
	value: hexValue,
}

// Encoding is a particular Base32 encoding.
//
// The set of encodings is fixed; use one of the package-level
// Encoding variables.
type Encoding struct {
	char  func(byte) byte // 5-bit value to character
	value func(byte) byte // character to 5-bit value
	pad   bool
}

// padLens is the number of pad characters that must follow a
// final quantum with the given number of data characters
// (indexed mod 8). Remainders 1, 3, and 6 cannot occur in a
// valid encoding and are rejected by the leftover-bit check in
// Decode before this table is consulted.
var padLens = [8]int8{0, 0, 6, 0, 4, 3, 0, 1}

// EncodedLen returns the exact size in bytes of the Base32
// encoding of n source bytes.
//
// It returns ctcodec.ErrOverflow if the size does not fit in an
// int.
func (e *Encoding) EncodedLen(n int) (int, error) {
	if n > (math.MaxInt-4)/8 {
		return 0, ctcodec.ErrOverflow
	}
	chars := (n*8 + 4) / 5
	if !e.pad {
		return chars, nil
	}
	if chars > math.MaxInt-7 {
		return 0, ctcodec.ErrOverflow
	}
	// Round up to a full 8-character quantum.
	return (chars + 7) &^ 7, nil
}

// DecodedLen returns the maximum length in bytes of the decoding
// of n Base32-encoded bytes.
//
// The bound holds for any input, including inputs padded or
// sprinkled with ignored bytes.
func (e *Encoding) DecodedLen(n int) int {
	// floor(n*5/8), written so that n*5 cannot overflow.
	return n/8*5 + n%8*5/8
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
		for nbits >= 5 {
			nbits -= 5
			dst[pos] = e.char(byte(acc>>nbits) & 0x1f)
			pos++
		}
	}
	if nbits > 0 {
		dst[pos] = e.char(byte(acc<<(5-nbits)) & 0x1f)
		pos++
	}
	for pos < n {
		dst[pos] = Pad
		pos++
	}
	return dst[:pos], nil
}

// EncodeToString returns the Base32 encoding of src.
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

// AppendEncode appends the Base32 encoding of src to dst and
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
// set, nonzero padding bits, a data length that no encoding
// produces, a pad count other than the one the data length
// requires for a padded Encoding, or any pad character for an
// unpadded Encoding. It returns ctcodec.ErrOverflow if dst
// fills up before src is consumed.
//
// Decode runs in constant time for the length of src.
func (e *Encoding) Decode(dst, src, ignore []byte) ([]byte, error) {
	var acc uint16
	var nbits uint
	var nchars int
	pos := 0
	end := -1
	for i := 0; i < len(src); i++ {
		c := src[i]
		d := e.value(c)
		if d == invalid {
			if ignored(ignore, c) {
				continue
			}
			end = i
			break
		}
		acc = acc<<5 | uint16(d)
		nbits += 5
		nchars++
		if nbits >= 8 {
			nbits -= 8
			if pos >= len(dst) {
				return nil, ctcodec.ErrOverflow
			}
			dst[pos] = byte(acc >> nbits)
			pos++
		}
	}

	// Data lengths of 1, 3, or 6 mod 8 characters leave 5 or
	// more bits over, which no input can produce; shorter
	// leftovers must be zero padding bits.
	if nbits >= 5 || acc&(1<<nbits-1) != 0 {
		return nil, ctcodec.ErrInvalidInput
	}

	if end >= 0 {
		rest := src[end:]
		if e.pad {
			rest, err := skipPad(rest, int(padLens[nchars%8]), ignore)
			if err != nil {
				return nil, err
			}
			if !allIgnored(rest, ignore) {
				return nil, ctcodec.ErrInvalidInput
			}
		} else if !allIgnored(rest, ignore) {
			return nil, ctcodec.ErrInvalidInput
		}
	} else if e.pad && nchars%8 != 0 {
		// Ran out of input where a pad sequence was due.
		return nil, ctcodec.ErrInvalidInput
	}
	return dst[:pos], nil
}

// DecodeString decodes the Base32 string s with the given
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
