package mlkem

import (
	"fmt"

	"github.com/eth2030/mlkem/internal/obslog"
)

var keyLog = obslog.Default().Module("mlkem.key")

// Key is the in-memory key object of §3/§4.I. It is born empty (only a
// variant), becomes a public key when public material is installed, and
// additionally becomes a private key when private material is installed.
// A Key is immutable once any material is installed: installing twice
// fails with ErrImmutableKey (§3 "Lifecycle").
//
// Key exclusively owns its vector/matrix buffers (§3 "Ownership"); Free
// erases secrets and releases them.
type Key struct {
	variant Variant
	params  Params

	hasPublic  bool
	hasPrivate bool

	t   polyVec // public vector, NTT domain
	mat []poly  // pre-expanded matrix, NTT domain, row-major, stored transposed (§4.F)
	rho [32]byte
	pkh [32]byte // pkhash = H(encoded public key)

	s polyVec  // secret vector, NTT domain; private only
	z [32]byte // implicit-rejection secret; private only
}

// NewKey constructs an empty key for the given variant, per §6's new_key.
// The "oracle handles" §6 mentions are the package-level hash adapter of
// component K; this implementation has no per-call oracle context to
// thread through, so NewKey takes only the variant.
func NewKey(variant Variant) (*Key, error) {
	p, err := ParamsFor(variant)
	if err != nil {
		return nil, err
	}
	return &Key{variant: variant, params: p}, nil
}

// Variant returns the key's parameter set selector.
func (k *Key) Variant() Variant { return k.variant }

// HasPublic reports whether public material has been installed.
func (k *Key) HasPublic() bool { return k.hasPublic }

// HasPrivate reports whether private material has been installed.
func (k *Key) HasPrivate() bool { return k.hasPrivate }

// Free erases the key's secrets and releases its storage, per §6's
// free_key and §3's destruction contract: s and z are zeroed before
// release; matrix/vector storage is dropped unconditionally.
func (k *Key) Free() {
	for i := range k.s {
		zeroizeU16(k.s[i][:])
	}
	zeroize(k.z[:])
	k.s = nil
	k.t = nil
	k.mat = nil
	k.hasPublic = false
	k.hasPrivate = false
}

// DuplicateMode selects what material Duplicate copies.
type DuplicateMode int

const (
	// DuplicateNone copies only the variant selector.
	DuplicateNone DuplicateMode = iota
	// DuplicatePublic copies public material only.
	DuplicatePublic
	// DuplicatePrivate copies public and private material.
	DuplicatePrivate
)

// Duplicate implements §6's duplicate_key.
func (k *Key) Duplicate(mode DuplicateMode) *Key {
	out := &Key{variant: k.variant, params: k.params}
	if mode == DuplicateNone {
		return out
	}
	if k.hasPublic {
		out.hasPublic = true
		out.rho = k.rho
		out.pkh = k.pkh
		out.t = append(polyVec(nil), k.t...)
		out.mat = append([]poly(nil), k.mat...)
	}
	if mode == DuplicatePrivate && k.hasPrivate {
		out.hasPrivate = true
		out.s = append(polyVec(nil), k.s...)
		out.z = k.z
	}
	return out
}

// installPublic populates public material from already-validated,
// already-derived values. Fails with ErrImmutableKey if public material
// is already present. Callers MUST fully decode and validate wire input
// into locals (see decodePublicWire) before calling this, so a rejected
// parse never leaves partially-installed state on k (§7).
func (k *Key) installPublic(t polyVec, rho [32]byte, mat []poly, pkh [32]byte) error {
	if k.hasPublic {
		keyLog.Warn("immutable_key", "variant", k.variant.String(), "op", "install_public")
		return ErrImmutableKey
	}
	k.t = t
	k.rho = rho
	k.mat = mat
	k.pkh = pkh
	k.hasPublic = true
	return nil
}

// decodePublicWire decodes a public-key wire blob into the values
// installPublic needs, without mutating any Key. t is validated (every
// 12-bit field < q); pkh is H(wire), the pkhash §4.I defines, computed
// directly over the input bytes rather than by re-encoding t — the two
// are identical for any wire that decodes successfully, since ByteEncode/
// ByteDecode are mutual inverses on valid fields.
func decodePublicWire(p Params, wire []byte) (t polyVec, rho [32]byte, mat []poly, pkh [32]byte, err error) {
	if len(wire) != p.PublicKeyBytes {
		return nil, rho, nil, pkh, ErrInvalidLength
	}
	tLen := p.K * polyBytes
	t, err = decodeVec(wire[:tLen], p.K, 12)
	if err != nil {
		return nil, rho, nil, pkh, err
	}
	copy(rho[:], wire[tLen:])
	mat = expandMatrix(rho[:], p.K)
	pkh = hashH(wire)
	return t, rho, mat, pkh, nil
}

// installPrivate populates private material. Requires public material to
// already be installed (ParsePrivateKey ensures this ordering;
// GenerateFromSeed sets the key's fields directly instead). Fails with ErrImmutableKey if private material is
// already present.
func (k *Key) installPrivate(s polyVec, z [32]byte) error {
	if k.hasPrivate {
		keyLog.Warn("immutable_key", "variant", k.variant.String(), "op", "install_private")
		return ErrImmutableKey
	}
	k.s = s
	k.z = z
	k.hasPrivate = true
	return nil
}

// encodePublicLocked serializes t || rho without validating hasPublic;
// callers must already hold valid public material (used by
// GenerateFromSeed before hasPublic is set, and by EncodePublicKey and
// EncodePrivateKey).
func (k *Key) encodePublicLocked() []byte {
	out := make([]byte, 0, k.params.PublicKeyBytes)
	out = append(out, k.t.encode(12)...)
	out = append(out, k.rho[:]...)
	return out
}

// EncodePublicKey implements §6's encode_public_key: ByteEncode_12(t) ||
// rho.
func (k *Key) EncodePublicKey() ([]byte, error) {
	if !k.hasPublic {
		return nil, fmt.Errorf("%w: key has no public material", ErrInvalidLength)
	}
	return k.encodePublicLocked(), nil
}

// EncodePrivateKey implements §6's encode_private_key: ByteEncode_12(s)
// || public-key-wire || pkhash || z.
func (k *Key) EncodePrivateKey() ([]byte, error) {
	if !k.hasPrivate {
		return nil, fmt.Errorf("%w: key has no private material", ErrInvalidLength)
	}
	out := make([]byte, 0, k.params.PrivateKeyBytes)
	out = append(out, k.s.encode(12)...)
	out = append(out, k.encodePublicLocked()...)
	out = append(out, k.pkh[:]...)
	out = append(out, k.z[:]...)
	return out, nil
}

// ParsePublicKey implements §6's parse_public_key: decode t (rejecting
// any 12-bit field >= q), copy rho, compute pkhash over the wire bytes,
// and expand the matrix.
func (k *Key) ParsePublicKey(wire []byte) error {
	if k.hasPublic {
		return ErrImmutableKey
	}
	t, rho, mat, pkh, err := decodePublicWire(k.params, wire)
	if err != nil {
		keyLog.Warn("invalid_encoding", "variant", k.variant.String(), "op", "parse_public_key")
		return err
	}
	return k.installPublic(t, rho, mat, pkh)
}

// ParsePrivateKey implements §6's parse_private_key: decode s (same
// validation as t), parse the embedded public-key bytes, require the
// parsed pkhash to match the one stored in the wire input byte-for-byte,
// and copy z.
func (k *Key) ParsePrivateKey(wire []byte) error {
	if k.hasPublic || k.hasPrivate {
		return ErrImmutableKey
	}
	if len(wire) != k.params.PrivateKeyBytes {
		return ErrInvalidLength
	}
	sLen := k.params.K * polyBytes
	pkLen := k.params.PublicKeyBytes
	hashLen := 32
	zLen := 32

	if sLen+pkLen+hashLen+zLen != len(wire) {
		return ErrInvalidLength
	}

	s, err := decodeVec(wire[:sLen], k.params.K, 12)
	if err != nil {
		return err
	}

	pkWire := wire[sLen : sLen+pkLen]
	storedHash := wire[sLen+pkLen : sLen+pkLen+hashLen]
	var z [32]byte
	copy(z[:], wire[sLen+pkLen+hashLen:])

	// Decode the embedded public key into locals and verify its pkhash
	// before touching k at all, so a rejected parse (wrong encoding or
	// mismatched hash) leaves k exactly as it was (§7's no-side-effects
	// rule) instead of leaving hasPublic permanently set on a key whose
	// private-key parse failed.
	t, rho, mat, pkh, err := decodePublicWire(k.params, pkWire)
	if err != nil {
		keyLog.Warn("invalid_encoding", "variant", k.variant.String(), "op", "parse_private_key")
		return err
	}
	if !ctBytesEqual(pkh[:], storedHash) {
		keyLog.Warn("invalid_encoding", "variant", k.variant.String(), "op", "parse_private_key", "reason", "pkhash_mismatch")
		return ErrInvalidEncoding
	}
	if err := k.installPublic(t, rho, mat, pkh); err != nil {
		return err
	}
	return k.installPrivate(s, z)
}

// ComparePublicKeys implements §6's compare_public_keys: two keys are
// equal iff their pkhash bytes match.
func ComparePublicKeys(a, b *Key) bool {
	if !a.hasPublic || !b.hasPublic {
		return false
	}
	return ctBytesEqual(a.pkh[:], b.pkh[:])
}
