package mlkem

// Component C: rejection sampling of uniform polynomials from a SHAKE128
// stream, and centred binomial sampling of noise/secret polynomials from
// SHAKE256 output (§4.C).

// squeezeBlock is the number of bytes pulled from the XOF per rejection
// sampling round. 168 is SHAKE128's native block rate; it is also a
// multiple of 3, which this loop requires to decode whole 12-bit pairs.
const squeezeBlock = 168

// sampleUniform draws a polynomial whose coefficients are uniform in
// [0, q) by rejection-sampling a SHAKE128 stream, interpreting each 3
// bytes as two 12-bit candidates and discarding any candidate >= q. The
// input is public (a matrix cell seed), so this loop is not required to
// be constant time, per §4.C.
func sampleUniform(x *xof) *poly {
	var out poly
	count := 0
	for count < n {
		block := x.squeeze(squeezeBlock)
		for i := 0; i+2 < len(block) && count < n; i += 3 {
			b0, b1, b2 := uint16(block[i]), uint16(block[i+1]), uint16(block[i+2])
			d1 := b0 | ((b1 & 0x0f) << 8)
			d2 := (b1 >> 4) | (b2 << 4)
			if d1 < q {
				out[count] = d1
				count++
			}
			if count < n && d2 < q {
				out[count] = d2
				count++
			}
		}
	}
	return &out
}

// sampleCBD draws a polynomial from the centred binomial distribution
// with parameter eta (2 or 3), seeded by PRF(seed || counter). Each
// coefficient is (sum of eta bits) - (sum of the next eta bits), reduced
// into [0, q) by adding q before a final reduceOnce, per §4.C.
func sampleCBD(seed []byte, counter byte, eta int) *poly {
	buf := prf(seed, counter, 64*eta)
	var out poly

	getBit := func(pos int) uint16 {
		byteIdx := pos / 8
		bitIdx := uint(pos % 8)
		return uint16((buf[byteIdx] >> bitIdx) & 1)
	}

	for i := 0; i < n; i++ {
		var a, b uint16
		base := 2 * eta * i
		for k := 0; k < eta; k++ {
			a += getBit(base + k)
		}
		for k := 0; k < eta; k++ {
			b += getBit(base + eta + k)
		}
		out[i] = reduceOnce(a + q - b)
	}
	return &out
}
