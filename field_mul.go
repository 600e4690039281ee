package secp256k1

import "math/bits"

// mul512 computes the full 512-bit product of two 256-bit limb vectors
func mul512(a, b *[4]uint64) (l [8]uint64) {
	for i := 0; i < 4; i++ {
		var carry uint64
		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul64(a[i], b[j])
			var c uint64
			lo, c = bits.Add64(lo, l[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			l[i+j] = lo
			carry = hi
		}
		l[i+4] = carry
	}
	return l
}

// reduceFromWide reduces a 512-bit value mod p using 2^256 = 2^32 + 977 (mod p)
func (r *FieldElement) reduceFromWide(l *[8]uint64) {
	// t = l[0:4] + l[4:8] * C, at most 2^256 * 2^34
	var t [5]uint64
	var carry uint64
	for i := 0; i < 4; i++ {
		hi, lo := bits.Mul64(l[4+i], fieldReductionConstant)
		var c uint64
		lo, c = bits.Add64(lo, l[i], 0)
		hi += c
		lo, c = bits.Add64(lo, carry, 0)
		hi += c
		t[i] = lo
		carry = hi
	}
	t[4] = carry

	// fold the fifth limb
	hi, lo := bits.Mul64(t[4], fieldReductionConstant)
	var c uint64
	r.n[0], c = bits.Add64(t[0], lo, 0)
	r.n[1], c = bits.Add64(t[1], hi, c)
	r.n[2], c = bits.Add64(t[2], 0, c)
	r.n[3], c = bits.Add64(t[3], 0, c)

	// a final wrap leaves a small value, so adding C cannot carry again
	r.n[0], c = bits.Add64(r.n[0], c*fieldReductionConstant, 0)
	r.n[1], c = bits.Add64(r.n[1], 0, c)
	r.n[2], c = bits.Add64(r.n[2], 0, c)
	r.n[3], _ = bits.Add64(r.n[3], 0, c)

	r.condSubP(0)
}

// mul multiplies two field elements: r = a * b
func (r *FieldElement) mul(a, b *FieldElement) {
	l := mul512(&a.n, &b.n)
	r.reduceFromWide(&l)
}

// sqr squares a field element: r = a^2
func (r *FieldElement) sqr(a *FieldElement) {
	l := mul512(&a.n, &a.n)
	r.reduceFromWide(&l)
}

// sqrN squares r n times in place
func (r *FieldElement) sqrN(n int) {
	for i := 0; i < n; i++ {
		r.sqr(r)
	}
}

// powBlocks computes a^(2^2-1), a^(2^22-1) and a^(2^223-1).  The binary
// expansions of both p-2 and (p+1)/4 are assembled from these blocks.
//
// Addition chain: 1, [2], 3, 6, 9, 11, [22], 44, 88, 176, 220, [223]
func powBlocks(a *FieldElement) (x2, x22, x223 FieldElement) {
	var x3, x6, x9, x11, x44, x88, x176, x220 FieldElement

	x2.sqr(a)
	x2.mul(&x2, a)

	x3.sqr(&x2)
	x3.mul(&x3, a)

	x6 = x3
	x6.sqrN(3)
	x6.mul(&x6, &x3)

	x9 = x6
	x9.sqrN(3)
	x9.mul(&x9, &x3)

	x11 = x9
	x11.sqrN(2)
	x11.mul(&x11, &x2)

	x22 = x11
	x22.sqrN(11)
	x22.mul(&x22, &x11)

	x44 = x22
	x44.sqrN(22)
	x44.mul(&x44, &x22)

	x88 = x44
	x88.sqrN(44)
	x88.mul(&x88, &x44)

	x176 = x88
	x176.sqrN(88)
	x176.mul(&x176, &x88)

	x220 = x176
	x220.sqrN(44)
	x220.mul(&x220, &x44)

	x223 = x220
	x223.sqrN(3)
	x223.mul(&x223, &x3)
	return
}

// inv computes the modular inverse of a field element as a^(p-2).  The
// inverse of zero is zero.
func (r *FieldElement) inv(a *FieldElement) {
	x2, x22, x223 := powBlocks(a)
	base := *a

	// p-2 = [223 ones] 0 [22 ones] 0000 1 0 11 0 1
	t := x223
	t.sqrN(23)
	t.mul(&t, &x22)
	t.sqrN(5)
	t.mul(&t, &base)
	t.sqrN(3)
	t.mul(&t, &x2)
	t.sqrN(2)
	r.mul(&t, &base)
}

// sqrt computes a square root of a.  Since p = 3 mod 4 the candidate is
// a^((p+1)/4); it is checked by squaring and false is returned when a is not
// a quadratic residue.  r is undefined in that case.
func (r *FieldElement) sqrt(a *FieldElement) bool {
	base := *a
	x2, x22, x223 := powBlocks(&base)

	// (p+1)/4 = [223 ones] 0 [22 ones] 0000 11 00
	t := x223
	t.sqrN(23)
	t.mul(&t, &x22)
	t.sqrN(6)
	t.mul(&t, &x2)
	t.sqr(&t)
	r.sqr(&t)

	var check FieldElement
	check.sqr(r)
	return check.equal(&base)
}
