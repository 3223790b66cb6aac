package mlkem

import "runtime"

// zeroize overwrites buf with zeros. It is used on every exit path that
// releases a secret-bearing buffer (s, z, and the scratch vectors that
// briefly hold y, e, e1, e2, mu, or the masking product), per §5's
// resource discipline. runtime.KeepAlive prevents the compiler from
// treating the final write as a dead store just because buf is not read
// again afterwards (§9, "Secret zeroing").
func zeroize(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}

// zeroizeU16 overwrites a coefficient slice with zeros.
func zeroizeU16(buf []uint16) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}
