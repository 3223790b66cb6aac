package mlkem

import "crypto/subtle"

// ctBytesEqual reports whether a and b are equal, in constant time with
// respect to their contents (not their lengths, which are always public
// here — both sides are always 32-byte public-key hashes). Used for
// key-parsing validation and key comparison (pkhash comparisons), where
// reporting a bool and returning an error on mismatch is already the
// required behavior. Decapsulate's implicit-rejection step (§4.H step 5)
// does NOT go through this function: see ctEqMask below.
func ctBytesEqual(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

// ctEqMask returns 0xFF if equal == 1, 0x00 if equal == 0, where equal is
// the raw result of subtle.ConstantTimeCompare. It takes that int
// directly rather than a bool so the security-sensitive call site
// (Decapsulate's ciphertext comparison) never materializes a Go bool —
// i.e. never branches on "is this ciphertext the legitimate one" — per
// §9's masking discipline and the sign-bit mask field.go's reduceOnce
// already uses for the same reason.
func ctEqMask(equal int) byte {
	return byte(0) - byte(equal)
}

// ctSelectBytes merges a and b byte-for-byte under mask: output[i] = a[i]
// where mask == 0xFF, b[i] where mask == 0x00. a and b MUST be the same
// length. This is the masked merge required by §4.H step 5 and §5's
// constant-time contract: both K' and failureKey are always fully
// computed by the caller, and this function never branches on which one
// "wins".
func ctSelectBytes(mask byte, a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range out {
		out[i] = (a[i] & mask) | (b[i] &^ mask)
	}
	return out
}
