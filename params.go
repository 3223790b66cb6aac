package mlkem

import "fmt"

// Variant selects one of the three ML-KEM parameter sets (FIPS 203
// Table 2). It generalizes the single hardcoded KyberParams of the
// teacher's pqc/key_exchange.go into a closed, selectable enum.
type Variant uint8

const (
	// Variant512 is ML-KEM-512, NIST security category 1.
	Variant512 Variant = iota
	// Variant768 is ML-KEM-768, NIST security category 3.
	Variant768
	// Variant1024 is ML-KEM-1024, NIST security category 5.
	Variant1024
)

// String returns the conventional variant name.
func (v Variant) String() string {
	switch v {
	case Variant512:
		return "ML-KEM-512"
	case Variant768:
		return "ML-KEM-768"
	case Variant1024:
		return "ML-KEM-1024"
	default:
		return fmt.Sprintf("Variant(%d)", uint8(v))
	}
}

// n is the fixed polynomial degree for every variant.
const n = 256

// q is the fixed coefficient modulus for every variant.
const q = 3329

// eta2 is the fixed CBD parameter for encapsulation noise e1/e2 across
// every variant; eta1 (secret s, keygen noise e, and the encapsulator's y)
// varies.
const eta2 = 2

// seedLen is the length in bytes of the combined keygen seed d ∥ z.
const seedLen = 64

// sharedSecretLen is the length in bytes of the KEM shared secret.
const sharedSecretLen = 32

// Params holds the per-variant constants of DATA MODEL §3: rank, the
// ciphertext compression widths du/dv, the CBD parameter eta1, and the
// derived wire-format byte lengths.
type Params struct {
	Variant Variant

	// K is the module rank (2, 3, or 4).
	K int
	// Du is the compression width for the ciphertext's u component.
	Du int
	// Dv is the compression width for the ciphertext's v component.
	Dv int
	// Eta1 is the CBD parameter used for the secret vector s (and, in
	// K-PKE, the encapsulator's y).
	Eta1 int

	// PublicKeyBytes is the encoded public-key wire length.
	PublicKeyBytes int
	// PrivateKeyBytes is the encoded private-key wire length.
	PrivateKeyBytes int
	// CiphertextBytes is the encoded ciphertext wire length.
	CiphertextBytes int
}

// polyBytes is the lossless ByteEncode_12 length of one polynomial.
const polyBytes = 384 // 32 * 12

// paramTable holds the three ML-KEM parameter sets, indexed by Variant.
var paramTable = [3]Params{
	Variant512: {
		Variant: Variant512,
		K:       2, Du: 10, Dv: 4, Eta1: 3,
		PublicKeyBytes:  2*polyBytes + 32,
		PrivateKeyBytes: 2*polyBytes + (2*polyBytes + 32) + 32 + 32,
		CiphertextBytes: 2*compressedBytes(10) + compressedBytes(4),
	},
	Variant768: {
		Variant: Variant768,
		K:       3, Du: 10, Dv: 4, Eta1: 2,
		PublicKeyBytes:  3*polyBytes + 32,
		PrivateKeyBytes: 3*polyBytes + (3*polyBytes + 32) + 32 + 32,
		CiphertextBytes: 3*compressedBytes(10) + compressedBytes(4),
	},
	Variant1024: {
		Variant: Variant1024,
		K:       4, Du: 11, Dv: 5, Eta1: 2,
		PublicKeyBytes:  4*polyBytes + 32,
		PrivateKeyBytes: 4*polyBytes + (4*polyBytes + 32) + 32 + 32,
		CiphertextBytes: 4*compressedBytes(11) + compressedBytes(5),
	},
}

// compressedBytes returns ceil(n*d/8), the packed byte length of one
// d-bit-compressed polynomial.
func compressedBytes(d int) int {
	return (n*d + 7) / 8
}

// ParamsFor returns the parameter set for the given variant.
func ParamsFor(v Variant) (Params, error) {
	if int(v) < 0 || int(v) >= len(paramTable) {
		return Params{}, fmt.Errorf("%w: unknown variant %d", ErrInvalidLength, v)
	}
	return paramTable[v], nil
}
