package secp256k1

import (
	"testing"
)

func affineFromHex(t testing.TB, xHex, yHex string) GroupElementAffine {
	t.Helper()
	var x, y FieldElement
	x.setB32(mustHex(xHex))
	y.setB32(mustHex(yHex))
	var p GroupElementAffine
	p.setXY(&x, &y)
	return p
}

var (
	twoGX   = "c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5"
	twoGY   = "1ae168fea63dc339a3c58419466ceaeef7f632653266d0e1236431a950cfe52a"
	threeGX = "f9308a019258c31049344f85f89d5229b531c845836f99b08601f113bce036f9"
	threeGY = "388f7b0f632de8140fe337e62a37f3566500a99934c2231b6cb9fd7584b8e672"
)

func TestGeneratorIsValid(t *testing.T) {
	if !Generator.isValid() {
		t.Error("generator should be on the curve")
	}
	if Generator.isInfinity() {
		t.Error("generator should not be infinity")
	}
}

func TestGroupDoubleAndAdd(t *testing.T) {
	twoG := affineFromHex(t, twoGX, twoGY)
	threeG := affineFromHex(t, threeGX, threeGY)

	var g, d GroupElementProjective
	g.setGE(&Generator)
	d.double(&g)
	var got GroupElementAffine
	got.setProjective(&d)
	if !got.equal(&twoG) {
		t.Error("2*G mismatch")
	}

	// G + G goes through the addition formula and must agree with doubling
	var s GroupElementProjective
	s.add(&g, &g)
	got.setProjective(&s)
	if !got.equal(&twoG) {
		t.Error("G + G mismatch")
	}

	s.add(&d, &g)
	got.setProjective(&s)
	if !got.equal(&threeG) {
		t.Error("2G + G mismatch")
	}
	if !got.isValid() {
		t.Error("3G should be on the curve")
	}
}

func TestGroupIdentity(t *testing.T) {
	var inf GroupElementAffine
	inf.setInfinity()

	testCases := []struct {
		name string
		a, b GroupElementAffine
		want func() GroupElementAffine
	}{
		{
			name: "infinity_plus_G",
			a:    inf,
			b:    Generator,
			want: func() GroupElementAffine { return Generator },
		},
		{
			name: "G_plus_infinity",
			a:    Generator,
			b:    inf,
			want: func() GroupElementAffine { return Generator },
		},
		{
			name: "G_plus_negG",
			a:    Generator,
			b: func() GroupElementAffine {
				var n GroupElementAffine
				n.negate(&Generator)
				return n
			}(),
			want: func() GroupElementAffine { return inf },
		},
		{
			name: "infinity_plus_infinity",
			a:    inf,
			b:    inf,
			want: func() GroupElementAffine { return inf },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var r GroupElementAffine
			r.add(&tc.a, &tc.b)
			want := tc.want()
			if !r.equal(&want) {
				t.Errorf("got infinity=%v, want infinity=%v", r.infinity, want.infinity)
			}
		})
	}
}

func TestGroupDoubleInfinity(t *testing.T) {
	var inf, r GroupElementProjective
	inf.setInfinity()
	r.double(&inf)
	if !r.isInfinity() {
		t.Error("2 * infinity should be infinity")
	}
}

func TestGroupSetXOVar(t *testing.T) {
	var p GroupElementAffine
	if !p.setXOVar(&GeneratorX, false) {
		t.Fatal("generator x should decompress")
	}
	if !p.equal(&Generator) {
		t.Error("even root should be the generator")
	}

	if !p.setXOVar(&GeneratorX, true) {
		t.Fatal("generator x should decompress")
	}
	var neg GroupElementAffine
	neg.negate(&Generator)
	if !p.equal(&neg) {
		t.Error("odd root should be -G")
	}

	// x = 5 gives x^3 + 7 = 132, which is not a square mod p
	var x FieldElement
	x.setInt(5)
	if p.setXOVar(&x, false) {
		t.Error("x = 5 should not be on the curve")
	}
}

func TestGroupIsValid(t *testing.T) {
	p := Generator
	p.y.add(&FieldElementOne)
	if p.isValid() {
		t.Error("perturbed generator should not be on the curve")
	}
	var inf GroupElementAffine
	inf.setInfinity()
	if inf.isValid() {
		t.Error("infinity has no coordinates to validate")
	}
}

func BenchmarkGroupAdd(b *testing.B) {
	var g, d GroupElementProjective
	g.setGE(&Generator)
	d.double(&g)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.add(&d, &g)
	}
}
