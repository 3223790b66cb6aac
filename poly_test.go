package mlkem

import "testing"

func samplePoly(seed byte) *poly {
	var p poly
	x := uint16(seed) + 1
	for i := range p {
		x = uint16((uint32(x)*1103515245 + 12345) % q)
		p[i] = x
	}
	return &p
}

func TestNTTRoundTrip(t *testing.T) {
	for seed := byte(0); seed < 8; seed++ {
		p := samplePoly(seed)
		back := p.ntt().inverseNTT()
		for i := range p {
			if back[i] != p[i] {
				t.Fatalf("seed %d: coefficient %d: got %d, want %d", seed, i, back[i], p[i])
			}
		}
	}
}

func TestNTTIsLinear(t *testing.T) {
	a := samplePoly(1)
	b := samplePoly(2)
	sumThenNTT := a.add(b).ntt()
	nttThenSum := a.ntt().add(b.ntt())
	for i := range sumThenNTT {
		if sumThenNTT[i] != nttThenSum[i] {
			t.Fatalf("coefficient %d: NTT(a+b)=%d, NTT(a)+NTT(b)=%d", i, sumThenNTT[i], nttThenSum[i])
		}
	}
}

func TestMultiplyNTTMatchesSchoolbook(t *testing.T) {
	a := samplePoly(3)
	b := samplePoly(4)

	got := a.ntt().multiplyNTT(b.ntt()).inverseNTT()

	// Schoolbook negacyclic convolution mod (X^256 + 1): c[k] = sum_{i+j=k}
	// a[i]b[j] - sum_{i+j=k+256} a[i]b[j], reduced mod q.
	var want poly
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			prod := mulMod(a[i], b[j])
			k := i + j
			if k < n {
				want[k] = addMod(want[k], prod)
			} else {
				want[k-n] = subMod(want[k-n], prod)
			}
		}
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("coefficient %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestMultiplyAddNTTAccumulates(t *testing.T) {
	a := samplePoly(5)
	b := samplePoly(6)
	acc := &poly{}
	acc = multiplyAddNTT(acc, a, b)
	direct := a.multiplyNTT(b)
	for i := range acc {
		if acc[i] != direct[i] {
			t.Fatalf("coefficient %d: got %d, want %d", i, acc[i], direct[i])
		}
	}
}
