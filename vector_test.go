package mlkem

import "testing"

func sampleVec(k int, base byte) polyVec {
	v := newPolyVec(k)
	for i := 0; i < k; i++ {
		v[i] = *samplePoly(base + byte(i))
	}
	return v
}

func TestVectorNTTRoundTrip(t *testing.T) {
	v := sampleVec(3, 10)
	back := v.ntt().inverseNTT()
	for i := range v {
		for j := range v[i] {
			if back[i][j] != v[i][j] {
				t.Fatalf("element %d coefficient %d: got %d, want %d", i, j, back[i][j], v[i][j])
			}
		}
	}
}

func TestVectorEncodeDecodeRoundTrip(t *testing.T) {
	v := sampleVec(4, 20)
	for i := range v {
		for j := range v[i] {
			v[i][j] %= q
		}
	}
	encoded := v.encode(12)
	decoded, err := decodeVec(encoded, 4, 12)
	if err != nil {
		t.Fatalf("decodeVec failed: %v", err)
	}
	for i := range v {
		for j := range v[i] {
			if decoded[i][j] != v[i][j] {
				t.Fatalf("element %d coefficient %d: got %d, want %d", i, j, decoded[i][j], v[i][j])
			}
		}
	}
}

func TestInnerProductNTTMatchesManualSum(t *testing.T) {
	k := 3
	a := sampleVec(k, 1).ntt()
	b := sampleVec(k, 7).ntt()

	got := innerProductNTT(a, b)

	want := &poly{}
	for i := 0; i < k; i++ {
		want = multiplyAddNTT(want, &a[i], &b[i])
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("coefficient %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestMatrixMulAndTransposeMulAreDuals(t *testing.T) {
	k := 3
	mat := make([]poly, k*k)
	idx := byte(0)
	for i := range mat {
		mat[i] = *samplePoly(idx)
		idx++
	}
	v := sampleVec(k, 50).ntt()

	// matrixTransposeMulNTT(m, v) must equal matrixMulNTT(transpose(m), v).
	transposed := make([]poly, k*k)
	for row := 0; row < k; row++ {
		for col := 0; col < k; col++ {
			transposed[row*k+col] = mat[col*k+row]
		}
	}

	a := matrixTransposeMulNTT(mat, k, v)
	b := matrixMulNTT(transposed, k, v)
	for i := range a {
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				t.Fatalf("element %d coefficient %d: got %d, want %d", i, j, a[i][j], b[i][j])
			}
		}
	}
}
