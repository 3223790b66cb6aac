package mlkem

import (
	"golang.org/x/crypto/sha3"
)

// Component K: a uniform facade over the four hash oracles the core
// consumes as external collaborators (§1, §4.K). All four are backed by
// golang.org/x/crypto/sha3, the same package eth2030 already depends on
// and already uses in streaming Write/Read form (pkg/consensus/
// jeanvm_aggregation.go's jeanVMGenerateProof: "h := sha3.NewShake256();
// h.Write(...); h.Read(buf)").

// hashH is SHA3-256(x) -> 32 bytes, used for the public-key hash pkhash
// and component I's wire validation.
func hashH(x ...[]byte) [32]byte {
	h := sha3.New256()
	for _, part := range x {
		h.Write(part)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// hashG is SHA3-512(x) -> 64 bytes, split by the caller into two 32-byte
// halves (rho/sigma at keygen, K/r at encapsulation, K'/r' at
// decapsulation).
func hashG(x ...[]byte) (a, b [32]byte) {
	h := sha3.New512()
	for _, part := range x {
		h.Write(part)
	}
	sum := h.Sum(nil)
	copy(a[:], sum[:32])
	copy(b[:], sum[32:])
	return a, b
}

// prf is SHAKE256(seed || counter) squeezed to outLen bytes, used to
// derive CBD sampling randomness (§4.C) with a monotonically increasing
// counter byte per §4.G.
func prf(seed []byte, counter byte, outLen int) []byte {
	h := sha3.NewShake256()
	h.Write(seed)
	h.Write([]byte{counter})
	out := make([]byte, outLen)
	if _, err := h.Read(out); err != nil {
		// sha3's ShakeHash.Read never returns an error for a
		// software XOF; this is unreachable in practice. If it were
		// reached, prf would return nil.
		return nil
	}
	return out
}

// j is SHAKE256(z || ciphertext) squeezed to 32 bytes: the implicit
// rejection failure key of §4.H.
func j(z, ciphertext []byte) [32]byte {
	h := sha3.NewShake256()
	h.Write(z)
	h.Write(ciphertext)
	var out [32]byte
	h.Read(out[:])
	return out
}

// xof wraps a SHAKE128 absorb/squeeze session for matrix expansion and
// uniform rejection sampling (§4.C, §4.F). It supports a single absorb
// followed by any number of incremental squeezes, as §4.K requires,
// because rejection sampling may need arbitrarily many blocks.
type xof struct {
	h sha3.ShakeHash
}

// newXOF absorbs seed and returns a stream ready to be squeezed.
func newXOF(seed ...[]byte) *xof {
	h := sha3.NewShake128()
	for _, part := range seed {
		h.Write(part)
	}
	return &xof{h: h}
}

// squeeze reads the next n bytes of output. Successive calls continue
// the same stream; it is not rewound.
func (x *xof) squeeze(n int) []byte {
	out := make([]byte, n)
	x.h.Read(out)
	return out
}
