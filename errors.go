package mlkem

import "errors"

// Sentinel errors for the five error kinds of §7. Returned errors are one
// of these, either directly or wrapped with fmt.Errorf("%w: ...", ...), so
// callers can use errors.Is without matching strings, following the
// convention in
// eth2030's node package (ErrDependencyMissing, ErrCfgMgrInvalidPort).
var (
	// ErrInvalidLength is returned when a caller-supplied buffer does not
	// match the length a variant requires.
	ErrInvalidLength = errors.New("mlkem: invalid length")

	// ErrInvalidEncoding is returned when a 12-bit coefficient field is
	// >= q, or when an embedded public-key hash does not match.
	ErrInvalidEncoding = errors.New("mlkem: invalid encoding")

	// ErrImmutableKey is returned when install is attempted on a key
	// that already carries public or private material.
	ErrImmutableKey = errors.New("mlkem: key is immutable once populated")

	// ErrAllocationFailure is returned when scratch or storage could not
	// be obtained.
	ErrAllocationFailure = errors.New("mlkem: allocation failure")

	// ErrOracleFailure is returned when a symmetric primitive reports
	// failure. Decapsulate never returns this directly — on oracle
	// failure it masks to the failure key and reports success, per
	// §4.H and §7.
	ErrOracleFailure = errors.New("mlkem: oracle failure")
)
