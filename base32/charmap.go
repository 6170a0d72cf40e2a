package base32

import "github.com/ericlagergren/ctcodec"

// invalid is returned by the char->value maps for bytes outside
// the alphabet, including the pad character.
const invalid = 0xff

// stdChar converts the 5-bit value v to its character in the
// standard Base32 alphabet ('A'-'Z', '2'-'7').
//
// v must be in [0, 31].
func stdChar(v byte) byte {
	return ctcodec.ByteLt(v, 26)&(v+'A') |
		ctcodec.ByteGe(v, 26)&ctcodec.ByteLt(v, 32)&(v-26+'2')
}

// stdValue converts the character c to its 5-bit value in the
// standard Base32 alphabet, or invalid if c is not in the
// alphabet.
//
// A separate validity term distinguishes 'A' (value zero) from
// bytes outside the alphabet; see the base64 maps for the same
// construction.
func stdValue(c byte) byte {
	x := ctcodec.ByteGe(c, 'A')&ctcodec.ByteLe(c, 'Z')&(c-'A') |
		ctcodec.ByteGe(c, '2')&ctcodec.ByteLe(c, '7')&(c-'2'+26)
	return x | ctcodec.ByteEq(x, 0)&^ctcodec.ByteEq(c, 'A')
}

// hexChar converts the 5-bit value v to its character in the
// extended hex Base32 alphabet ('0'-'9', 'A'-'V').
//
// v must be in [0, 31].
func hexChar(v byte) byte {
	return ctcodec.ByteLt(v, 10)&(v+'0') |
		ctcodec.ByteGe(v, 10)&ctcodec.ByteLt(v, 32)&(v-10+'A')
}

// hexValue converts the character c to its 5-bit value in the
// extended hex Base32 alphabet, or invalid if c is not in the
// alphabet. Lowercase 'a'-'v' are accepted.
func hexValue(c byte) byte {
	x := ctcodec.ByteGe(c, '0')&ctcodec.ByteLe(c, '9')&(c-'0') |
		ctcodec.ByteGe(c, 'A')&ctcodec.ByteLe(c, 'V')&(c-'A'+10) |
		ctcodec.ByteGe(c, 'a')&ctcodec.ByteLe(c, 'v')&(c-'a'+10)
	return x | ctcodec.ByteEq(x, 0)&^ctcodec.ByteEq(c, '0')
}
