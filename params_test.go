package mlkem

import "testing"

func TestParamsForWireSizes(t *testing.T) {
	cases := []struct {
		variant                        Variant
		pkBytes, skBytes, ctBytes, k   int
	}{
		{Variant512, 800, 1632, 768, 2},
		{Variant768, 1184, 2400, 1088, 3},
		{Variant1024, 1568, 3168, 1568, 4},
	}
	for _, c := range cases {
		p, err := ParamsFor(c.variant)
		if err != nil {
			t.Fatalf("%s: ParamsFor failed: %v", c.variant, err)
		}
		if p.K != c.k {
			t.Errorf("%s: K: got %d, want %d", c.variant, p.K, c.k)
		}
		if p.PublicKeyBytes != c.pkBytes {
			t.Errorf("%s: PublicKeyBytes: got %d, want %d", c.variant, p.PublicKeyBytes, c.pkBytes)
		}
		if p.PrivateKeyBytes != c.skBytes {
			t.Errorf("%s: PrivateKeyBytes: got %d, want %d", c.variant, p.PrivateKeyBytes, c.skBytes)
		}
		if p.CiphertextBytes != c.ctBytes {
			t.Errorf("%s: CiphertextBytes: got %d, want %d", c.variant, p.CiphertextBytes, c.ctBytes)
		}
	}
}

func TestParamsForUnknownVariant(t *testing.T) {
	_, err := ParamsFor(Variant(99))
	if err == nil {
		t.Fatal("expected error for unknown variant")
	}
}

func TestVariantString(t *testing.T) {
	want := map[Variant]string{
		Variant512:  "ML-KEM-512",
		Variant768:  "ML-KEM-768",
		Variant1024: "ML-KEM-1024",
	}
	for v, s := range want {
		if got := v.String(); got != s {
			t.Errorf("%d.String(): got %q, want %q", v, got, s)
		}
	}
}
