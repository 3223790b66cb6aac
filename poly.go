package mlkem

// poly is a scalar of the data model (§3): 256 coefficients, each
// maintained in [0, q) on entry and exit of every operation below. The
// domain (natural or NTT) is not carried in the type; it is determined by
// which operations a caller has applied, exactly as §3 specifies.
type poly [n]uint16

// addMod reduces a+b into [0, q).
func addMod(a, b uint16) uint16 {
	return reduceOnce(a + b)
}

// subMod reduces a-b into [0, q), per §4.B ("sub adds q before reducing").
func subMod(a, b uint16) uint16 {
	return reduceOnce(a + q - b)
}

// mulMod reduces a*b into [0, q) via Barrett reduction.
func mulMod(a, b uint16) uint16 {
	return barrettReduce(int32(a) * int32(b))
}

// add returns the coefficient-wise sum of a and b.
func (a *poly) add(b *poly) *poly {
	var out poly
	for i := range out {
		out[i] = addMod(a[i], b[i])
	}
	return &out
}

// sub returns the coefficient-wise difference a-b.
func (a *poly) sub(b *poly) *poly {
	var out poly
	for i := range out {
		out[i] = subMod(a[i], b[i])
	}
	return &out
}

// ntt performs the in-place-style forward NTT described in §4.B: 7
// decimation-in-time butterfly layers (q has no 512th root of unity, so
// the usual final layer is omitted), leaving the result in bit-reversed
// order representing the polynomial modulo 128 quadratic factors
// X^2 - zeta^(2*brv7(i)+1).
func (a *poly) ntt() *poly {
	out := *a
	k := 1
	for length := n / 2; length >= 2; length /= 2 {
		for start := 0; start < n; start += 2 * length {
			zeta := zetas[k]
			k++
			for j := start; j < start+length; j++ {
				t := mulMod(zeta, out[j+length])
				out[j+length] = subMod(out[j], t)
				out[j] = addMod(out[j], t)
			}
		}
	}
	return &out
}

// inverseNTT performs the corresponding inverse butterfly, ending with a
// per-coefficient multiplication by 128^-1 mod q (§4.B).
func (a *poly) inverseNTT() *poly {
	out := *a
	k := 127
	for length := 2; length <= n/2; length *= 2 {
		for start := 0; start < n; start += 2 * length {
			zeta := zetas[k]
			k--
			for j := start; j < start+length; j++ {
				t := out[j]
				out[j] = addMod(t, out[j+length])
				out[j+length] = mulMod(zeta, subMod(out[j+length], t))
			}
		}
	}
	for i := range out {
		out[i] = mulMod(out[i], nInvMod128)
	}
	return &out
}

// multiplyNTT multiplies two NTT-domain scalars, per §4.B: the 128
// quadratic components are multiplied pairwise using the zetas table
// reinterpreted as the 2*brv7(i)+1 powers (see ntt_tables.go), three
// Barrett reductions per output pair.
func (a *poly) multiplyNTT(b *poly) *poly {
	var out poly
	k := 64
	for i := 0; i+3 < n; i += 4 {
		gamma := zetas[k]
		k++

		out[i] = barrettReduce(int32(a[i])*int32(b[i]) + int32(mulMod(a[i+1], b[i+1]))*int32(gamma))
		out[i+1] = barrettReduce(int32(a[i])*int32(b[i+1]) + int32(a[i+1])*int32(b[i]))

		negGamma := uint16(q) - gamma
		out[i+2] = barrettReduce(int32(a[i+2])*int32(b[i+2]) + int32(mulMod(a[i+3], b[i+3]))*int32(negGamma))
		out[i+3] = barrettReduce(int32(a[i+2])*int32(b[i+3]) + int32(a[i+3])*int32(b[i+2]))
	}
	return &out
}

// multiplyAddNTT returns acc + a*b (NTT domain), per §4.B's
// multiply_add_ntt, matching how inner products over a vector are built
// up in §4.E. The product and the sum are fresh scalars; acc itself is
// not modified, so callers use the returned value.
func multiplyAddNTT(acc *poly, a, b *poly) *poly {
	prod := a.multiplyNTT(b)
	return acc.add(prod)
}
