package secp256k1

// Engine is the byte-level secp256k1 API: key validation, key tweaking and
// combination, public key derivation and deterministic ECDSA.  Results that
// are mathematically degenerate (a zero private key, the point at infinity)
// come back as nil with a nil error; malformed inputs come back as an Error.
type Engine interface {
	IsPoint(p []byte) bool
	IsPointCompressed(p []byte) bool
	IsPrivate(d []byte) bool

	PointAdd(a, b []byte) ([]byte, error)
	PointAddScalar(p, tweak []byte) ([]byte, error)
	PointCompress(p []byte, compressed bool) ([]byte, error)
	PointFromScalar(d []byte, compressed bool) ([]byte, error)
	PointMultiply(p, tweak []byte) ([]byte, error)

	PointAddCompressed(a, b []byte, compressed bool) ([]byte, error)
	PointAddScalarCompressed(p, tweak []byte, compressed bool) ([]byte, error)
	PointMultiplyCompressed(p, tweak []byte, compressed bool) ([]byte, error)

	PrivateAdd(d, tweak []byte) ([]byte, error)
	PrivateSub(d, tweak []byte) ([]byte, error)

	Sign(hash, d []byte) ([]byte, error)
	SignWithEntropy(hash, d, entropy []byte) ([]byte, error)
	Verify(hash, q, sig []byte, strict bool) (bool, error)
}

type engine struct{}

// New returns the Engine backed by this package.  It also builds the
// generator table so the first signing call does not pay for it.
func New() Engine {
	getGlobalGenContext()
	return engine{}
}

func (engine) IsPoint(p []byte) bool           { return IsPoint(p) }
func (engine) IsPointCompressed(p []byte) bool { return IsPointCompressed(p) }
func (engine) IsPrivate(d []byte) bool         { return IsPrivate(d) }

func (engine) PointAdd(a, b []byte) ([]byte, error) {
	return PointAdd(a, b)
}

func (engine) PointAddScalar(p, tweak []byte) ([]byte, error) {
	return PointAddScalar(p, tweak)
}

func (engine) PointMultiply(p, tweak []byte) ([]byte, error) {
	return PointMultiply(p, tweak)
}

func (engine) PointAddCompressed(a, b []byte, compressed bool) ([]byte, error) {
	return PointAddCompressed(a, b, compressed)
}

func (engine) PointAddScalarCompressed(p, tweak []byte, compressed bool) ([]byte, error) {
	return PointAddScalarCompressed(p, tweak, compressed)
}

func (engine) PointMultiplyCompressed(p, tweak []byte, compressed bool) ([]byte, error) {
	return PointMultiplyCompressed(p, tweak, compressed)
}

func (engine) PointCompress(p []byte, compressed bool) ([]byte, error) {
	return PointCompress(p, compressed)
}

func (engine) PointFromScalar(d []byte, compressed bool) ([]byte, error) {
	return PointFromScalar(d, compressed)
}

func (engine) PrivateAdd(d, tweak []byte) ([]byte, error) { return PrivateAdd(d, tweak) }
func (engine) PrivateSub(d, tweak []byte) ([]byte, error) { return PrivateSub(d, tweak) }

func (engine) Sign(hash, d []byte) ([]byte, error) { return Sign(hash, d) }

func (engine) SignWithEntropy(hash, d, entropy []byte) ([]byte, error) {
	return SignWithEntropy(hash, d, entropy)
}

func (engine) Verify(hash, q, sig []byte, strict bool) (bool, error) {
	return Verify(hash, q, sig, strict)
}
