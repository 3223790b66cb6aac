package mlkem

// Component F: deterministic expansion of the public matrix from the
// 32-byte seed rho (§4.F).
//
// The stored matrix is the TRANSPOSE of FIPS 203's A: stored[i][j] is
// sampled from rho || j || i rather than rho || i || j, i.e. i and j are
// swapped in the absorb relative to the naive (non-transposed) layout.
// This is a storage and clarity optimisation only: keygen's t = A*s + e
// is computed with the transpose-iterating primitive (matrixTranspose
// MulNTT, since stored = A^T and (A^T)^T = A), while encapsulation's
// u = A^T*y + e1 is computed with the plain primitive (matrixMulNTT,
// since stored already equals A^T). Both computations read the same
// stored matrix; which FIPS 203 direction each represents is determined
// by which of the two multiply primitives is used, not by the storage
// layout. See §4.F and the keygen/encrypt_cpa call sites in kem.go and
// pke.go.
func expandMatrix(rho []byte, k int) []poly {
	mat := make([]poly, k*k)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			x := newXOF(rho, []byte{byte(j)}, []byte{byte(i)})
			mat[i*k+j] = *sampleUniform(x)
		}
	}
	return mat
}
