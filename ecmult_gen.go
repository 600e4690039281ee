package secp256k1

import (
	"sync"
)

const (
	// genWindowBits is the width of each window of the scalar
	genWindowBits = 4
	// genWindows is the number of windows covering a 256-bit scalar
	genWindows = 256 / genWindowBits
	// genWindowSize is the number of table entries per window
	genWindowSize = 1 << genWindowBits
)

// EcmultGenContext holds precomputed multiples of the generator.
// points[i][j] = j * 16^i * G, with every finite entry normalized to Z = 1
// and points[i][0] the point at infinity.
type EcmultGenContext struct {
	points [genWindows][genWindowSize]GroupElementProjective
}

var (
	// Global context for generator multiplication (initialized once)
	globalGenContext *EcmultGenContext
	genContextOnce   sync.Once
)

// initGenContext fills the precomputed table
func (ctx *EcmultGenContext) initGenContext() {
	var base GroupElementProjective
	base.setGE(&Generator)

	for i := 0; i < genWindows; i++ {
		ctx.points[i][0].setInfinity()
		ctx.points[i][1] = base
		for j := 2; j < genWindowSize; j++ {
			ctx.points[i][j].add(&ctx.points[i][j-1], &base)
		}

		// next base = 16 * base
		for k := 0; k < genWindowBits; k++ {
			base.double(&base)
		}
	}

	// Normalize every finite entry with a single inversion. None of them is
	// the point at infinity since j * 16^i < n.
	zs := make([]FieldElement, 0, genWindows*(genWindowSize-1))
	for i := 0; i < genWindows; i++ {
		for j := 1; j < genWindowSize; j++ {
			zs = append(zs, ctx.points[i][j].z)
		}
	}
	batchInverse(zs, zs)

	k := 0
	for i := 0; i < genWindows; i++ {
		for j := 1; j < genWindowSize; j++ {
			p := &ctx.points[i][j]
			p.x.mul(&p.x, &zs[k])
			p.y.mul(&p.y, &zs[k])
			p.z = FieldElementOne
			k++
		}
	}
}

// getGlobalGenContext returns the global precomputed context
func getGlobalGenContext() *EcmultGenContext {
	genContextOnce.Do(func() {
		globalGenContext = &EcmultGenContext{}
		globalGenContext.initGenContext()
	})
	return globalGenContext
}

// NewEcmultGenContext creates a new generator multiplication context
func NewEcmultGenContext() *EcmultGenContext {
	ctx := &EcmultGenContext{}
	ctx.initGenContext()
	return ctx
}

// ecmultGen computes r = n * G.  Every window performs a full scan of its
// table row and one addition, so the sequence of operations is the same for
// every scalar.
func (ctx *EcmultGenContext) ecmultGen(r *GroupElementProjective, n *Scalar) {
	var acc, pt GroupElementProjective
	acc.setInfinity()

	for i := 0; i < genWindows; i++ {
		digit := n.nibble(i)
		pt.setInfinity()
		for j := 1; j < genWindowSize; j++ {
			pt.cmov(&ctx.points[i][j], ctEqual(uint(j), digit))
		}
		acc.add(&acc, &pt)
	}

	*r = acc
	pt.clear()
}

// EcmultGen computes r = n * G using the global precomputed table
func EcmultGen(r *GroupElementProjective, n *Scalar) {
	getGlobalGenContext().ecmultGen(r, n)
}
