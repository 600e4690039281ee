package secp256k1

import (
	"encoding/binary"
	"math/bits"
	"unsafe"
)

// Scalar represents a scalar modulo the group order n of the secp256k1 curve.
// It is held as 4 uint64 limbs in little endian order, always reduced into
// [0, n).
type Scalar struct {
	d [4]uint64
}

// Group order constants (secp256k1 curve order n)
const (
	// Limbs of the secp256k1 order
	scalarN0 = 0xBFD25E8CD0364141
	scalarN1 = 0xBAAEDCE6AF48A03B
	scalarN2 = 0xFFFFFFFFFFFFFFFE
	scalarN3 = 0xFFFFFFFFFFFFFFFF

	// Limbs of 2^256 minus the secp256k1 order
	scalarNC0 = 0x402DA1732FC9BEBF
	scalarNC1 = 0x4551231950B75FC4
	scalarNC2 = 0x0000000000000001

	// Limbs of half the secp256k1 order
	scalarNH0 = 0xDFE92F46681B20A0
	scalarNH1 = 0x5D576E7357A4501D
	scalarNH2 = 0xFFFFFFFFFFFFFFFF
	scalarNH3 = 0x7FFFFFFFFFFFFFFF
)

var (
	// ScalarZero represents the scalar 0
	ScalarZero = Scalar{}

	scalarNC = [3]uint64{scalarNC0, scalarNC1, scalarNC2}
)

// setB32 sets a scalar from a 32-byte big-endian array, reducing modulo the
// group order.  The returned flag reports whether the input was >= n.
func (r *Scalar) setB32(bin []byte) (overflow bool) {
	return r.loadB32(bin) == 1
}

// loadB32 is setB32 with the overflow reported as a 0/1 word
func (r *Scalar) loadB32(bin []byte) uint64 {
	if len(bin) != 32 {
		panic("input must be 32 bytes")
	}
	r.d[0] = binary.BigEndian.Uint64(bin[24:32])
	r.d[1] = binary.BigEndian.Uint64(bin[16:24])
	r.d[2] = binary.BigEndian.Uint64(bin[8:16])
	r.d[3] = binary.BigEndian.Uint64(bin[0:8])
	return r.condSubN(0)
}

// setB32Seckey sets a scalar from a 32-byte array and returns true if it's a
// valid secret key, i.e. in [1, n-1].  Both checks are evaluated on every
// call.
func (r *Scalar) setB32Seckey(bin []byte) bool {
	overflow := r.loadB32(bin)
	return (overflow^1)&r.nonzeroFlag() == 1
}

// getB32 converts a scalar to a 32-byte big-endian array
func (r *Scalar) getB32(bin []byte) {
	if len(bin) != 32 {
		panic("output buffer must be 32 bytes")
	}
	binary.BigEndian.PutUint64(bin[0:8], r.d[3])
	binary.BigEndian.PutUint64(bin[8:16], r.d[2])
	binary.BigEndian.PutUint64(bin[16:24], r.d[1])
	binary.BigEndian.PutUint64(bin[24:32], r.d[0])
}

// setInt sets a scalar to an unsigned integer value
func (r *Scalar) setInt(v uint64) {
	r.d = [4]uint64{v, 0, 0, 0}
}

// condSubN subtracts n when carry*2^256 + r >= n and reports 1 if it did.
// The borrow chain runs the same way for every input.
func (r *Scalar) condSubN(carry uint64) uint64 {
	var t [4]uint64
	var b uint64
	t[0], b = bits.Sub64(r.d[0], scalarN0, 0)
	t[1], b = bits.Sub64(r.d[1], scalarN1, b)
	t[2], b = bits.Sub64(r.d[2], scalarN2, b)
	t[3], b = bits.Sub64(r.d[3], scalarN3, b)

	take := carry | (b ^ 1)
	mask := -take
	r.d[0] ^= mask & (r.d[0] ^ t[0])
	r.d[1] ^= mask & (r.d[1] ^ t[1])
	r.d[2] ^= mask & (r.d[2] ^ t[2])
	r.d[3] ^= mask & (r.d[3] ^ t[3])
	return take
}

// add adds two scalars: r = a + b.  It returns true if the sum wrapped the
// group order.
func (r *Scalar) add(a, b *Scalar) bool {
	var c uint64
	r.d[0], c = bits.Add64(a.d[0], b.d[0], 0)
	r.d[1], c = bits.Add64(a.d[1], b.d[1], c)
	r.d[2], c = bits.Add64(a.d[2], b.d[2], c)
	r.d[3], c = bits.Add64(a.d[3], b.d[3], c)
	return r.condSubN(c) == 1
}

// sub subtracts two scalars: r = a - b
func (r *Scalar) sub(a, b *Scalar) {
	var negB Scalar
	negB.negate(b)
	r.add(a, &negB)
}

// negate negates a scalar: r = -a.  Zero maps to zero.
func (r *Scalar) negate(a *Scalar) {
	x := a.d[0] | a.d[1] | a.d[2] | a.d[3]
	nonzero := (x | -x) >> 63
	mask := -nonzero

	var b uint64
	r.d[0], b = bits.Sub64(scalarN0, a.d[0], 0)
	r.d[1], b = bits.Sub64(scalarN1, a.d[1], b)
	r.d[2], b = bits.Sub64(scalarN2, a.d[2], b)
	r.d[3], _ = bits.Sub64(scalarN3, a.d[3], b)

	r.d[0] &= mask
	r.d[1] &= mask
	r.d[2] &= mask
	r.d[3] &= mask
}

// mul multiplies two scalars: r = a * b
func (r *Scalar) mul(a, b *Scalar) {
	l := mul512(&a.d, &b.d)
	r.reduceWide(&l)
}

// mulAddNC computes out = lo + hi*(2^256 - n) for 4-limb lo and hi.  out
// must have room for the full result.
func mulAddNC(out *[8]uint64, lo, hi []uint64) {
	*out = [8]uint64{}
	copy(out[:], lo)
	for i, h := range hi {
		var carry uint64
		for j := 0; j < 3; j++ {
			ph, pl := bits.Mul64(h, scalarNC[j])
			var c uint64
			pl, c = bits.Add64(pl, out[i+j], 0)
			ph += c
			pl, c = bits.Add64(pl, carry, 0)
			ph += c
			out[i+j] = pl
			carry = ph
		}
		for k := i + 3; k < len(out); k++ {
			out[k], carry = bits.Add64(out[k], carry, 0)
		}
	}
}

// reduceWide reduces a 512-bit value modulo the group order by folding the
// high half with 2^256 = 2^256 - n (mod n) three times.
func (r *Scalar) reduceWide(l *[8]uint64) {
	var m, p, q [8]uint64

	// m < 2^386
	mulAddNC(&m, l[0:4], l[4:8])
	// p < 2^260
	mulAddNC(&p, m[0:4], m[4:8])
	// q < 2^256 + 2^133
	mulAddNC(&q, p[0:4], p[4:8])

	r.d[0], r.d[1], r.d[2], r.d[3] = q[0], q[1], q[2], q[3]
	r.condSubN(q[4])
}

// inverse computes the modular inverse of a scalar as a^(n-2).  The
// exponent is public, so the square-and-multiply sequence is the same for
// every input.
func (r *Scalar) inverse(a *Scalar) {
	e := [4]uint64{scalarN0 - 2, scalarN1, scalarN2, scalarN3}
	base := *a
	var acc Scalar
	acc.setInt(1)
	for i := 255; i >= 0; i-- {
		acc.mul(&acc, &acc)
		if (e[i/64]>>(uint(i)%64))&1 == 1 {
			acc.mul(&acc, &base)
		}
	}
	*r = acc
	base.clear()
	acc.clear()
}

// isZero returns true if the scalar is zero
func (r *Scalar) isZero() bool {
	return (r.d[0] | r.d[1] | r.d[2] | r.d[3]) == 0
}

// nonzeroFlag returns 1 if the scalar is nonzero and 0 otherwise
func (r *Scalar) nonzeroFlag() uint64 {
	x := r.d[0] | r.d[1] | r.d[2] | r.d[3]
	return (x | -x) >> 63
}

// isHigh returns true if the scalar is > n/2
func (r *Scalar) isHigh() bool {
	var b uint64
	_, b = bits.Sub64(scalarNH0, r.d[0], 0)
	_, b = bits.Sub64(scalarNH1, r.d[1], b)
	_, b = bits.Sub64(scalarNH2, r.d[2], b)
	_, b = bits.Sub64(scalarNH3, r.d[3], b)
	return b == 1
}

// condNegate negates the scalar in place when flag is 1
func (r *Scalar) condNegate(flag int) {
	var neg Scalar
	neg.negate(r)
	r.cmov(&neg, flag)
}

// equal returns true if two scalars are equal
func (r *Scalar) equal(a *Scalar) bool {
	x := (r.d[0] ^ a.d[0]) | (r.d[1] ^ a.d[1]) | (r.d[2] ^ a.d[2]) | (r.d[3] ^ a.d[3])
	return x == 0
}

// nibble returns the i'th 4-bit window of the scalar, counting from the
// least significant end.
func (r *Scalar) nibble(i int) uint {
	return uint(r.d[i/16]>>(uint(i%16)*4)) & 0xF
}

// cmov conditionally moves a scalar. If flag is true, r = a; otherwise r is unchanged.
func (r *Scalar) cmov(a *Scalar, flag int) {
	mask := uint64(-(int64(flag) & 1))
	r.d[0] ^= mask & (r.d[0] ^ a.d[0])
	r.d[1] ^= mask & (r.d[1] ^ a.d[1])
	r.d[2] ^= mask & (r.d[2] ^ a.d[2])
	r.d[3] ^= mask & (r.d[3] ^ a.d[3])
}

// clear clears a scalar to prevent leaking sensitive information
func (r *Scalar) clear() {
	memclear(unsafe.Pointer(&r.d[0]), unsafe.Sizeof(r.d))
}
