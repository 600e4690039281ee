package secp256k1

import (
	"encoding/binary"
	"math/bits"
	"unsafe"
)

// FieldElement represents a field element modulo the secp256k1 field prime
// p = 2^256 - 2^32 - 977.  The value is held as 4 uint64 limbs in little
// endian order and is kept fully reduced into [0, p) by every operation, so
// two elements are equal exactly when their limbs are equal.
type FieldElement struct {
	n [4]uint64
}

// Field constants
const (
	// fieldReductionConstant is 2^256 mod p = 2^32 + 977
	fieldReductionConstant = 0x1000003D1

	fieldModulusLimb0 = 0xFFFFFFFEFFFFFC2F
	fieldModulusLimb1 = 0xFFFFFFFFFFFFFFFF
	fieldModulusLimb2 = 0xFFFFFFFFFFFFFFFF
	fieldModulusLimb3 = 0xFFFFFFFFFFFFFFFF
)

var (
	// FieldElementOne represents the field element 1
	FieldElementOne = FieldElement{n: [4]uint64{1, 0, 0, 0}}

	// FieldElementZero represents the field element 0
	FieldElementZero = FieldElement{}

	// fieldB is the curve constant b = 7
	fieldB = FieldElement{n: [4]uint64{7, 0, 0, 0}}
)

// setB32 sets a field element from a 32-byte big-endian array.  The returned
// flag reports whether the encoded value was >= p; in that case the element
// holds the value reduced mod p.
func (r *FieldElement) setB32(b []byte) (overflow bool) {
	if len(b) != 32 {
		panic("field element byte array must be 32 bytes")
	}
	var d [4]uint64
	d[3] = binary.BigEndian.Uint64(b[0:8])
	d[2] = binary.BigEndian.Uint64(b[8:16])
	d[1] = binary.BigEndian.Uint64(b[16:24])
	d[0] = binary.BigEndian.Uint64(b[24:32])
	r.n = d
	return r.condSubP(0) == 1
}

// getB32 converts a field element to a 32-byte big-endian array
func (r *FieldElement) getB32(b []byte) {
	if len(b) != 32 {
		panic("field element byte array must be 32 bytes")
	}
	binary.BigEndian.PutUint64(b[0:8], r.n[3])
	binary.BigEndian.PutUint64(b[8:16], r.n[2])
	binary.BigEndian.PutUint64(b[16:24], r.n[1])
	binary.BigEndian.PutUint64(b[24:32], r.n[0])
}

// condSubP subtracts p from r when the 257-bit value carry*2^256 + r is at
// least p.  It returns 1 when the subtraction happened.
func (r *FieldElement) condSubP(carry uint64) uint64 {
	var d [4]uint64
	var b uint64
	d[0], b = bits.Sub64(r.n[0], fieldModulusLimb0, 0)
	d[1], b = bits.Sub64(r.n[1], fieldModulusLimb1, b)
	d[2], b = bits.Sub64(r.n[2], fieldModulusLimb2, b)
	d[3], b = bits.Sub64(r.n[3], fieldModulusLimb3, b)

	take := carry | (b ^ 1)
	mask := -take
	r.n[0] ^= mask & (r.n[0] ^ d[0])
	r.n[1] ^= mask & (r.n[1] ^ d[1])
	r.n[2] ^= mask & (r.n[2] ^ d[2])
	r.n[3] ^= mask & (r.n[3] ^ d[3])
	return take
}

// isZero returns true if the field element represents zero
func (r *FieldElement) isZero() bool {
	return (r.n[0] | r.n[1] | r.n[2] | r.n[3]) == 0
}

// isOdd returns true if the field element is odd
func (r *FieldElement) isOdd() bool {
	return r.n[0]&1 == 1
}

// equal returns true if two field elements are equal.  The comparison does
// not branch on the limb values.
func (r *FieldElement) equal(a *FieldElement) bool {
	x := (r.n[0] ^ a.n[0]) | (r.n[1] ^ a.n[1]) | (r.n[2] ^ a.n[2]) | (r.n[3] ^ a.n[3])
	return x == 0
}

// setInt sets a field element to a small integer value
func (r *FieldElement) setInt(a uint64) {
	r.n = [4]uint64{a, 0, 0, 0}
}

// clear clears a field element to prevent leaking sensitive information
func (r *FieldElement) clear() {
	memclear(unsafe.Pointer(&r.n[0]), unsafe.Sizeof(r.n))
}

// add adds a field element: r += a
func (r *FieldElement) add(a *FieldElement) {
	var c uint64
	r.n[0], c = bits.Add64(r.n[0], a.n[0], 0)
	r.n[1], c = bits.Add64(r.n[1], a.n[1], c)
	r.n[2], c = bits.Add64(r.n[2], a.n[2], c)
	r.n[3], c = bits.Add64(r.n[3], a.n[3], c)
	r.condSubP(c)
}

// sub subtracts a field element: r -= a
func (r *FieldElement) sub(a *FieldElement) {
	var b uint64
	r.n[0], b = bits.Sub64(r.n[0], a.n[0], 0)
	r.n[1], b = bits.Sub64(r.n[1], a.n[1], b)
	r.n[2], b = bits.Sub64(r.n[2], a.n[2], b)
	r.n[3], b = bits.Sub64(r.n[3], a.n[3], b)

	// add p back when the subtraction wrapped
	mask := -b
	var c uint64
	r.n[0], c = bits.Add64(r.n[0], fieldModulusLimb0&mask, 0)
	r.n[1], c = bits.Add64(r.n[1], fieldModulusLimb1&mask, c)
	r.n[2], c = bits.Add64(r.n[2], fieldModulusLimb2&mask, c)
	r.n[3], _ = bits.Add64(r.n[3], fieldModulusLimb3&mask, c)
}

// negate negates a field element: r = -a
func (r *FieldElement) negate(a *FieldElement) {
	var t FieldElement
	t.sub(a)
	*r = t
}

// mulInt multiplies a field element by a small integer
func (r *FieldElement) mulInt(a uint64) {
	var t FieldElement
	t.setInt(a)
	r.mul(r, &t)
}

// cmov conditionally moves a field element. If flag is true, r = a; otherwise r is unchanged.
func (r *FieldElement) cmov(a *FieldElement, flag int) {
	mask := uint64(-(int64(flag) & 1))
	r.n[0] ^= mask & (r.n[0] ^ a.n[0])
	r.n[1] ^= mask & (r.n[1] ^ a.n[1])
	r.n[2] ^= mask & (r.n[2] ^ a.n[2])
	r.n[3] ^= mask & (r.n[3] ^ a.n[3])
}

// memclear clears memory to prevent leaking sensitive information
func memclear(ptr unsafe.Pointer, n uintptr) {
	for i := uintptr(0); i < n; i++ {
		*(*byte)(unsafe.Pointer(uintptr(ptr) + i)) = 0
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// batchInverse computes the inverses of a slice of nonzero FieldElements
// with a single field inversion (Montgomery's trick).
func batchInverse(out []FieldElement, a []FieldElement) {
	n := len(a)
	if n == 0 {
		return
	}

	// s_i = a_0 * a_1 * ... * a_{i-1}
	s := make([]FieldElement, n)
	s[0].setInt(1)
	for i := 1; i < n; i++ {
		s[i].mul(&s[i-1], &a[i-1])
	}

	// u = (a_0 * a_1 * ... * a_{n-1})^-1
	var u FieldElement
	u.mul(&s[n-1], &a[n-1])
	u.inv(&u)

	// Loop backwards so out may alias a.
	for i := n - 1; i >= 0; i-- {
		ai := a[i]
		out[i].mul(&u, &s[i])
		u.mul(&u, &ai)
	}
}
