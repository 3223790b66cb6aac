package mlkem

import (
	"crypto/rand"
	"crypto/subtle"

	"github.com/eth2030/mlkem/internal/obslog"
)

var kemLog = obslog.Default().Module("mlkem.kem")

// Component H: the Fujisaki-Okamoto wrapper that lifts the CPA-secure
// K-PKE core (pke.go) to an IND-CCA2 key encapsulation mechanism, per
// §4.H. GenerateFromSeed/GenerateFromEntropy produce a Key with both
// public and private material installed; Encapsulate/EncapsulateRandom
// produce a ciphertext and shared secret from a public key; Decapsulate
// recovers the shared secret with implicit rejection.

// GenerateFromSeed implements §6's generate_from_seed and §4.H's keygen.
// seed is the 64-byte d‖z: the first 32 bytes are the K-PKE seed d, the
// last 32 are the implicit-rejection secret z.
func GenerateFromSeed(variant Variant, seed [seedLen]byte) (*Key, error) {
	p, err := ParamsFor(variant)
	if err != nil {
		return nil, err
	}
	var d, z [32]byte
	copy(d[:], seed[:32])
	copy(z[:], seed[32:])

	rho, sigma := hashG(d[:], []byte{byte(p.K)})
	mat := expandMatrix(rho[:], p.K)

	s := newPolyVec(p.K)
	e := newPolyVec(p.K)
	counter := byte(0)
	for i := 0; i < p.K; i++ {
		s[i] = *sampleCBD(sigma[:], counter, p.Eta1)
		counter++
	}
	for i := 0; i < p.K; i++ {
		e[i] = *sampleCBD(sigma[:], counter, p.Eta1)
		counter++
	}

	sNTT := s.ntt()
	eNTT := e.ntt()
	// t = A*s + e. The stored matrix is A^T (§4.F), so A*s is obtained
	// with the transpose-iterating primitive.
	tNTT := matrixTransposeMulNTT(mat, p.K, sNTT).add(eNTT)

	key := &Key{variant: variant, params: p}
	key.rho = rho
	key.mat = mat
	key.t = tNTT
	key.pkh = hashH(key.encodePublicLocked())
	key.hasPublic = true
	key.s = sNTT
	key.z = z
	key.hasPrivate = true

	for i := range s {
		zeroizeU16(s[i][:])
	}
	for i := range e {
		zeroizeU16(e[i][:])
	}
	for i := range eNTT {
		zeroizeU16(eNTT[i][:])
	}
	zeroize(sigma[:])

	return key, nil
}

// GenerateFromEntropy implements §6's generate_from_entropy: draw a
// 64-byte seed from a cryptographic random source and call
// GenerateFromSeed.
func GenerateFromEntropy(variant Variant) (*Key, error) {
	var seed [seedLen]byte
	if _, err := rand.Read(seed[:]); err != nil {
		kemLog.Warn("oracle_failure", "variant", variant.String(), "op", "generate_from_entropy")
		return nil, ErrAllocationFailure
	}
	key, err := GenerateFromSeed(variant, seed)
	zeroize(seed[:])
	return key, err
}

// encapsulateCore implements the shared body of §4.H's encaps: derive
// (Kbar, r) from the message and the cached public-key hash, then run
// K-PKE encryption. pub.pkh is already H(ek) from installPublic, so it is
// reused directly rather than recomputed.
func encapsulateCore(pub *Key, m [32]byte) ([]byte, [32]byte) {
	kbar, r := hashG(m[:], pub.pkh[:])
	ciphertext := encryptCPA(pub.params, pub.t, pub.mat, m, r)
	zeroize(r[:])
	return ciphertext, kbar
}

// Encapsulate implements §6's encapsulate: run the FO encapsulation using
// caller-supplied randomness entropy, for deterministic test vectors.
func Encapsulate(pub *Key, entropy [32]byte) (ciphertext []byte, shared [32]byte, err error) {
	if !pub.hasPublic {
		return nil, [32]byte{}, ErrInvalidLength
	}
	ciphertext, shared = encapsulateCore(pub, entropy)
	return ciphertext, shared, nil
}

// EncapsulateRandom implements §6's encapsulate_random: draw the
// encapsulation randomness from a cryptographic random source internally.
func EncapsulateRandom(pub *Key) (ciphertext []byte, shared [32]byte, err error) {
	if !pub.hasPublic {
		return nil, [32]byte{}, ErrInvalidLength
	}
	var m [32]byte
	if _, err := rand.Read(m[:]); err != nil {
		kemLog.Warn("oracle_failure", "variant", pub.variant.String(), "op", "encapsulate_random")
		return nil, [32]byte{}, ErrAllocationFailure
	}
	ciphertext, shared = encapsulateCore(pub, m)
	zeroize(m[:])
	return ciphertext, shared, nil
}

// Decapsulate implements §6's decapsulate and §4.H's decaps with implicit
// rejection. On a structural error (no private material, or a
// wrong-length ciphertext) the output secret is randomized and an error
// is returned. On a successful structural decapsulation, the function
// always returns success: if the implicit-rejection check fails, the
// returned secret is the failure key j(z, ciphertext) rather than an
// error, matching §4.H's requirement that decaps never signals which
// branch was taken.
func Decapsulate(priv *Key, ciphertext []byte) ([32]byte, error) {
	var out [32]byte
	if !priv.hasPrivate {
		rand.Read(out[:])
		return out, ErrInvalidLength
	}
	if len(ciphertext) != priv.params.CiphertextBytes {
		rand.Read(out[:])
		return out, ErrInvalidLength
	}

	mPrime, err := decryptCPA(priv.params, priv.s, ciphertext)
	if err != nil {
		rand.Read(out[:])
		return out, err
	}

	kPrime, rPrime := hashG(mPrime[:], priv.pkh[:])
	failureKey := j(priv.z[:], ciphertext)
	cPrime := encryptCPA(priv.params, priv.t, priv.mat, mPrime, rPrime)

	mask := ctEqMask(subtle.ConstantTimeCompare(cPrime, ciphertext))
	selected := ctSelectBytes(mask, kPrime[:], failureKey[:])
	copy(out[:], selected)

	zeroize(mPrime[:])
	zeroize(rPrime[:])
	zeroize(kPrime[:])
	zeroize(failureKey[:])
	zeroize(cPrime)

	return out, nil
}
