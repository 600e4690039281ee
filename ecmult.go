package secp256k1

// ctEqual returns 1 if a == b and 0 otherwise without branching on the values
func ctEqual(a, b uint) int {
	x := uint64(a ^ b)
	return int(((x | -x) >> 63) ^ 1)
}

// pointMultTable holds 0*P .. 15*P in projective coordinates
type pointMultTable [genWindowSize]GroupElementProjective

func newPointMultTable(p *GroupElementProjective) *pointMultTable {
	var tbl pointMultTable
	tbl[0].setInfinity()
	tbl[1] = *p
	for j := 2; j < genWindowSize; j++ {
		tbl[j].add(&tbl[j-1], p)
	}
	return &tbl
}

// selectAndAdd sets r = r + tbl[idx], reading every entry of the table
func (tbl *pointMultTable) selectAndAdd(r *GroupElementProjective, idx uint) {
	var pt GroupElementProjective
	pt.setInfinity()
	for j := 1; j < genWindowSize; j++ {
		pt.cmov(&tbl[j], ctEqual(uint(j), idx))
	}
	r.add(r, &pt)
}

func (tbl *pointMultTable) clear() {
	for i := range tbl {
		tbl[i].clear()
	}
}

// EcmultConst computes r = k * a with a 4-bit fixed window, most significant
// window first.  The doublings, table scans and additions do not depend on
// the value of k.
func EcmultConst(r *GroupElementProjective, a *GroupElementAffine, k *Scalar) {
	var p GroupElementProjective
	p.setGE(a)
	tbl := newPointMultTable(&p)
	defer tbl.clear()

	var acc GroupElementProjective
	acc.setInfinity()
	for i := genWindows - 1; i >= 0; i-- {
		if i != genWindows-1 {
			for j := 0; j < genWindowBits; j++ {
				acc.double(&acc)
			}
		}
		tbl.selectAndAdd(&acc, k.nibble(i))
	}
	*r = acc
}

// EcmultDouble computes r = u1 * G + u2 * q, the combination needed by
// signature verification.
func EcmultDouble(r *GroupElementProjective, u1, u2 *Scalar, q *GroupElementAffine) {
	var u1g, u2q GroupElementProjective
	EcmultGen(&u1g, u1)
	EcmultConst(&u2q, q, u2)
	r.add(&u1g, &u2q)
}
