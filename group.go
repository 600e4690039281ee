package secp256k1

// GroupElementAffine represents a point on the secp256k1 curve in affine
// coordinates (x, y).  The point at infinity has no affine coordinates and is
// marked by the infinity flag.
type GroupElementAffine struct {
	x, y     FieldElement
	infinity bool
}

// GroupElementProjective represents a point in homogeneous projective
// coordinates (X:Y:Z) with affine coordinates (X/Z, Y/Z).  The point at
// infinity is (0:1:0); any element with Z = 0 is the point at infinity.
type GroupElementProjective struct {
	x, y, z FieldElement
}

// curveB3 is 3*b for the curve y^2 = x^3 + 7
const curveB3 = 21

// Generator point G for secp256k1 curve
var (
	GeneratorX FieldElement
	GeneratorY FieldElement
	Generator  GroupElementAffine
)

func init() {
	// Generator X coordinate: 0x79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798
	gxBytes := []byte{
		0x79, 0xBE, 0x66, 0x7E, 0xF9, 0xDC, 0xBB, 0xAC, 0x55, 0xA0, 0x62, 0x95, 0xCE, 0x87, 0x0B, 0x07,
		0x02, 0x9B, 0xFC, 0xDB, 0x2D, 0xCE, 0x28, 0xD9, 0x59, 0xF2, 0x81, 0x5B, 0x16, 0xF8, 0x17, 0x98,
	}

	// Generator Y coordinate: 0x483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8
	gyBytes := []byte{
		0x48, 0x3A, 0xDA, 0x77, 0x26, 0xA3, 0xC4, 0x65, 0x5D, 0xA4, 0xFB, 0xFC, 0x0E, 0x11, 0x08, 0xA8,
		0xFD, 0x17, 0xB4, 0x48, 0xA6, 0x85, 0x54, 0x19, 0x9C, 0x47, 0xD0, 0x8F, 0xFB, 0x10, 0xD4, 0xB8,
	}

	GeneratorX.setB32(gxBytes)
	GeneratorY.setB32(gyBytes)
	Generator.setXY(&GeneratorX, &GeneratorY)
}

// setXY sets a group element to the point with given coordinates
func (r *GroupElementAffine) setXY(x, y *FieldElement) {
	r.x = *x
	r.y = *y
	r.infinity = false
}

// setXOVar sets a group element to the point with given X coordinate and Y
// oddness.  It returns false when x is not the abscissa of a curve point.
func (r *GroupElementAffine) setXOVar(x *FieldElement, odd bool) bool {
	var y2, y FieldElement
	curveRHS(&y2, x)
	if !y.sqrt(&y2) {
		return false
	}

	var negY FieldElement
	negY.negate(&y)
	y.cmov(&negY, boolToInt(y.isOdd() != odd))

	r.setXY(x, &y)
	return true
}

// curveRHS sets r = x^3 + 7
func curveRHS(r, x *FieldElement) {
	var x2 FieldElement
	x2.sqr(x)
	r.mul(&x2, x)
	r.add(&fieldB)
}

// isInfinity returns true if the group element is the point at infinity
func (r *GroupElementAffine) isInfinity() bool {
	return r.infinity
}

// isValid checks that the group element is on the curve: y^2 = x^3 + 7
func (r *GroupElementAffine) isValid() bool {
	if r.infinity {
		return false
	}
	var lhs, rhs FieldElement
	lhs.sqr(&r.y)
	curveRHS(&rhs, &r.x)
	return lhs.equal(&rhs)
}

// negate sets r to the negation of a (mirror around X axis)
func (r *GroupElementAffine) negate(a *GroupElementAffine) {
	r.x = a.x
	r.y.negate(&a.y)
	r.infinity = a.infinity
}

// setInfinity sets the group element to the point at infinity
func (r *GroupElementAffine) setInfinity() {
	r.x = FieldElementZero
	r.y = FieldElementZero
	r.infinity = true
}

// equal returns true if two group elements are equal
func (r *GroupElementAffine) equal(a *GroupElementAffine) bool {
	if r.infinity || a.infinity {
		return r.infinity == a.infinity
	}
	return r.x.equal(&a.x) && r.y.equal(&a.y)
}

// setProjective converts a projective point to affine coordinates
func (r *GroupElementAffine) setProjective(a *GroupElementProjective) {
	if a.isInfinity() {
		r.setInfinity()
		return
	}
	var zinv FieldElement
	zinv.inv(&a.z)
	r.x.mul(&a.x, &zinv)
	r.y.mul(&a.y, &zinv)
	r.infinity = false
}

// add sets r = a + b.  Identity operands, doubling and inverse pairs are
// all covered by the complete projective formulas.
func (r *GroupElementAffine) add(a, b *GroupElementAffine) {
	var pa, pb, sum GroupElementProjective
	pa.setGE(a)
	pb.setGE(b)
	sum.add(&pa, &pb)
	r.setProjective(&sum)
}

// clear clears a group element to prevent leaking sensitive information
func (r *GroupElementAffine) clear() {
	r.x.clear()
	r.y.clear()
	r.infinity = false
}

// Projective coordinate operations

// setInfinity sets the projective group element to the point at infinity
func (r *GroupElementProjective) setInfinity() {
	r.x = FieldElementZero
	r.y = FieldElementOne
	r.z = FieldElementZero
}

// isInfinity returns true if the projective element is the point at infinity
func (r *GroupElementProjective) isInfinity() bool {
	return r.z.isZero()
}

// setGE sets a projective group element from an affine one
func (r *GroupElementProjective) setGE(a *GroupElementAffine) {
	if a.infinity {
		r.setInfinity()
		return
	}
	r.x = a.x
	r.y = a.y
	r.z = FieldElementOne
}

// negate sets r = -a
func (r *GroupElementProjective) negate(a *GroupElementProjective) {
	r.x = a.x
	r.y.negate(&a.y)
	r.z = a.z
}

// cmov conditionally moves a projective element. If flag is 1, r = a.
func (r *GroupElementProjective) cmov(a *GroupElementProjective, flag int) {
	r.x.cmov(&a.x, flag)
	r.y.cmov(&a.y, flag)
	r.z.cmov(&a.z, flag)
}

// clear clears a projective element to prevent leaking sensitive information
func (r *GroupElementProjective) clear() {
	r.x.clear()
	r.y.clear()
	r.z.clear()
}

// add sets r = a + b using the complete addition formula for short
// Weierstrass curves with a = 0 (Renes, Costello, Batina 2015, algorithm 7).
// It is valid for every pair of inputs, including the point at infinity and
// a = b, and performs the same operations regardless of the inputs.
func (r *GroupElementProjective) add(a, b *GroupElementProjective) {
	var t0, t1, t2, t3, t4, x3, y3, z3 FieldElement

	t0.mul(&a.x, &b.x)
	t1.mul(&a.y, &b.y)
	t2.mul(&a.z, &b.z)

	t3 = a.x
	t3.add(&a.y)
	t4 = b.x
	t4.add(&b.y)
	t3.mul(&t3, &t4)
	t4 = t0
	t4.add(&t1)
	t3.sub(&t4) // t3 = x1*y2 + x2*y1

	t4 = a.y
	t4.add(&a.z)
	x3 = b.y
	x3.add(&b.z)
	t4.mul(&t4, &x3)
	x3 = t1
	x3.add(&t2)
	t4.sub(&x3) // t4 = y1*z2 + y2*z1

	x3 = a.x
	x3.add(&a.z)
	y3 = b.x
	y3.add(&b.z)
	x3.mul(&x3, &y3)
	y3 = t0
	y3.add(&t2)
	y3.negate(&y3)
	y3.add(&x3) // y3 = x1*z2 + x2*z1

	x3 = t0
	x3.add(&t0)
	t0.add(&x3) // t0 = 3*x1*x2
	t2.mulInt(curveB3)
	z3 = t1
	z3.add(&t2)
	t1.sub(&t2)
	y3.mulInt(curveB3)
	x3.mul(&t4, &y3)
	t2.mul(&t3, &t1)
	x3.negate(&x3)
	x3.add(&t2)
	y3.mul(&y3, &t0)
	t1.mul(&t1, &z3)
	y3.add(&t1)
	t0.mul(&t0, &t3)
	z3.mul(&z3, &t4)
	z3.add(&t0)

	r.x, r.y, r.z = x3, y3, z3
}

// double sets r = 2*a using the complete doubling formula for a = 0
// (Renes, Costello, Batina 2015, algorithm 9).
func (r *GroupElementProjective) double(a *GroupElementProjective) {
	var t0, t1, t2, x3, y3, z3 FieldElement

	t0.sqr(&a.y)
	z3 = t0
	z3.add(&z3)
	z3.add(&z3)
	z3.add(&z3) // z3 = 8*y^2
	t1.mul(&a.y, &a.z)
	t2.sqr(&a.z)
	t2.mulInt(curveB3)
	x3.mul(&t2, &z3)
	y3 = t0
	y3.add(&t2)
	z3.mul(&t1, &z3)
	t1 = t2
	t1.add(&t2)
	t2.add(&t1) // t2 = 3*b3*z^2
	t0.sub(&t2)
	y3.mul(&t0, &y3)
	y3.add(&x3)
	t1.mul(&a.x, &a.y)
	x3.mul(&t0, &t1)
	x3.add(&x3)

	r.x, r.y, r.z = x3, y3, z3
}
