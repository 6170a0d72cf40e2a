package ctcodec

import "runtime"

// Wipe sets every byte in x to zero.
//
// Callers that decode key material into a scratch buffer can use
// Wipe to discard it once the key has been consumed.
//
//go:noinline
func Wipe(x []byte) {
	// Marked "noinline" so that the compiler (hopefully) won't
	// peer inside it, notice x is never read again, and DCE the
	// stores.
	for i := range x {
		x[i] = 0
	}
	// KeepAlive should (hopefully) also nudge the compiler away
	// from eliminating the loop.
	runtime.KeepAlive(x)
}
