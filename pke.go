package mlkem

// Component G: the underlying CPA-secure K-PKE scheme FIPS 203 builds its
// FO transform on top of (§4.G). encryptCPA and decryptCPA operate on
// already-expanded key material (the matrix and public/secret vectors),
// leaving key lifecycle and wire decoding to key.go.

// encryptCPA implements §4.G's encrypt_cpa. message and r are each 32
// bytes. t is the public vector (NTT domain) and mat the stored matrix
// of §4.F. The counter byte threaded through the PRF calls starts at 0
// and increases monotonically, as required.
func encryptCPA(p Params, t polyVec, mat []poly, message, r [32]byte) []byte {
	k := p.K
	counter := byte(0)

	y := newPolyVec(k)
	for i := 0; i < k; i++ {
		y[i] = *sampleCBD(r[:], counter, p.Eta1)
		counter++
	}
	yNTT := y.ntt()

	v := innerProductNTT(t, yNTT)
	vTime := *v.inverseNTT()

	u := matrixMulNTT(mat, k, yNTT)
	uTime := u.inverseNTT()

	e1 := newPolyVec(k)
	for i := 0; i < k; i++ {
		e1[i] = *sampleCBD(r[:], counter, eta2)
		counter++
	}
	uTime = uTime.add(e1)

	e2 := sampleCBD(r[:], counter, eta2)
	vTime = *vTime.add(e2)

	msgPacked, _ := byteDecode(message[:], 1)
	mu := decompress(msgPacked, 1)
	vTime = *vTime.add(mu)

	ct := make([]byte, 0, p.CiphertextBytes)
	ct = append(ct, uTime.compressBytes(p.Du)...)
	ct = append(ct, compressBytes(&vTime, p.Dv)...)

	for i := range y {
		zeroizeU16(y[i][:])
	}
	for i := range e1 {
		zeroizeU16(e1[i][:])
	}
	zeroizeU16(e2[:])
	for i := range yNTT {
		zeroizeU16(yNTT[i][:])
	}
	zeroizeU16(mu[:])
	return ct
}

// decryptCPA implements §4.G's decrypt_cpa. s is the secret vector, kept
// by the caller in NTT domain per the data model. All arithmetic here
// operates on secret intermediate values and MUST be constant time: there
// is no rejection, no data-dependent branch, only fixed arithmetic over a
// fixed-size ciphertext.
func decryptCPA(p Params, s polyVec, ciphertext []byte) ([32]byte, error) {
	k := p.K
	uLen := k * compressedBytes(p.Du)
	if len(ciphertext) != p.CiphertextBytes {
		return [32]byte{}, ErrInvalidLength
	}

	u, err := decompressVec(ciphertext[:uLen], k, p.Du)
	if err != nil {
		return [32]byte{}, err
	}
	v, err := decompressBytes(ciphertext[uLen:], p.Dv)
	if err != nil {
		for i := range u {
			zeroizeU16(u[i][:])
		}
		return [32]byte{}, err
	}

	uNTT := u.ntt()
	mask := innerProductNTT(s, uNTT)
	maskTime := mask.inverseNTT()

	mp := v.sub(maskTime)
	compressed := compress(mp, 1)
	packed := byteEncode(compressed, 1)

	var message [32]byte
	copy(message[:], packed)

	for i := range u {
		zeroizeU16(u[i][:])
	}
	for i := range uNTT {
		zeroizeU16(uNTT[i][:])
	}
	zeroizeU16(mask[:])
	zeroizeU16(maskTime[:])
	zeroizeU16(v[:])
	zeroizeU16(mp[:])
	zeroizeU16(compressed[:])
	zeroize(packed)

	return message, nil
}
