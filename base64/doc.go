// Package base64 implements constant-time Base64 encoding and
// decoding as specified by RFC 4648.
//
// # Comparison with encoding/base64
//
// This package is not a drop-in replacement for encoding/base64.
//
// Encode and Decode take the destination buffer as an argument
// and return the prefix that was actually written; neither ever
// allocates.
//
// Decoding is strict: padding bits must be zero, padded
// encodings must carry exactly the pad characters their length
// class requires, and unpadded encodings must not contain the
// pad character at all. Inputs that encoding/base64 silently
// truncates or partially decodes are rejected here.
//
// Decode also accepts an ignore set, a caller-supplied set of
// bytes (typically whitespace) that are skipped wherever they
// appear instead of being treated as data or as an error.
package base64
