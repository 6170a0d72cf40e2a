package base64

import "github.com/ericlagergren/ctcodec"

// invalid is returned by the char->value maps for bytes outside
// the alphabet, including the pad character.
const invalid = 0xff

// stdChar converts the 6-bit value v to its character in the
// standard Base64 alphabet.
//
// v must be in [0, 63].
//
// Exactly one of the sub-range masks is 0xff for any valid v,
// so OR-ing the masked candidates yields the character without
// branching on v.
func stdChar(v byte) byte {
	return ctcodec.ByteLt(v, 26)&(v+'A') |
		ctcodec.ByteGe(v, 26)&ctcodec.ByteLt(v, 52)&(v+('a'-26)) |
		ctcodec.ByteGe(v, 52)&ctcodec.ByteLt(v, 62)&(v-52+'0') |
		ctcodec.ByteEq(v, 62)&'+' |
		ctcodec.ByteEq(v, 63)&'/'
}

// stdValue converts the character c to its 6-bit value in the
// standard Base64 alphabet, or invalid if c is not in the
// alphabet.
//
// The value mask alone cannot distinguish 'A' (value zero) from
// a byte outside the alphabet, so the sentinel is OR-ed in only
// when the value is zero and c is not the alphabet's zero
// character.
func stdValue(c byte) byte {
	x := ctcodec.ByteGe(c, 'A')&ctcodec.ByteLe(c, 'Z')&(c-'A') |
		ctcodec.ByteGe(c, 'a')&ctcodec.ByteLe(c, 'z')&(c-'a'+26) |
		ctcodec.ByteGe(c, '0')&ctcodec.ByteLe(c, '9')&(c-'0'+52) |
		ctcodec.ByteEq(c, '+')&62 |
		ctcodec.ByteEq(c, '/')&63
	return x | ctcodec.ByteEq(x, 0)&^ctcodec.ByteEq(c, 'A')
}

// urlChar is stdChar for the base64url alphabet.
func urlChar(v byte) byte {
	return ctcodec.ByteLt(v, 26)&(v+'A') |
		ctcodec.ByteGe(v, 26)&ctcodec.ByteLt(v, 52)&(v+('a'-26)) |
		ctcodec.ByteGe(v, 52)&ctcodec.ByteLt(v, 62)&(v-52+'0') |
		ctcodec.ByteEq(v, 62)&'-' |
		ctcodec.ByteEq(v, 63)&'_'
}

// urlValue is stdValue for the base64url alphabet.
func urlValue(c byte) byte {
	x := ctcodec.ByteGe(c, 'A')&ctcodec.ByteLe(c, 'Z')&(c-'A') |
		ctcodec.ByteGe(c, 'a')&ctcodec.ByteLe(c, 'z')&(c-'a'+26) |
		ctcodec.ByteGe(c, '0')&ctcodec.ByteLe(c, '9')&(c-'0'+52) |
		ctcodec.ByteEq(c, '-')&62 |
		ctcodec.ByteEq(c, '_')&63
	return x | ctcodec.ByteEq(x, 0)&^ctcodec.ByteEq(c, 'A')
}
