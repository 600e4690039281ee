package secp256k1

// parseSeckey decodes a private key, which must be 32 bytes in [1, n-1]
func parseSeckey(r *Scalar, seckey []byte) error {
	if len(seckey) != 32 || !r.setB32Seckey(seckey) {
		r.clear()
		return makeError(ErrPrivateKeyInvalid, descExpectedPrivate)
	}
	return nil
}

// parseTweak decodes a 32-byte tweak.  A value that is not less than the
// group order is well formed but unusable and is reported by ok = false.
func parseTweak(r *Scalar, tweak []byte) (ok bool, err error) {
	if len(tweak) != 32 {
		return false, makeError(ErrTweakInvalid, descExpectedTweak)
	}
	return !r.setB32(tweak), nil
}

// ECSeckeyVerify verifies that a 32-byte array is a valid secret key
func ECSeckeyVerify(seckey []byte) bool {
	if len(seckey) != 32 {
		return false
	}
	var scalar Scalar
	defer scalar.clear()
	return scalar.setB32Seckey(seckey)
}

// IsPrivate reports whether d is exactly 32 bytes encoding a scalar in
// [1, n-1].
func IsPrivate(d []byte) bool {
	return ECSeckeyVerify(d)
}

// IsPoint reports whether p is a valid compressed or uncompressed encoding
// of a curve point.
func IsPoint(p []byte) bool {
	var pt GroupElementAffine
	return parsePoint(&pt, p) == nil
}

// IsPointCompressed reports whether p is a valid 33-byte compressed point.
func IsPointCompressed(p []byte) bool {
	return len(p) == PubKeyBytesLenCompressed && IsPoint(p)
}

// ECPubkeyCreate computes the public key seckey * G
func ECPubkeyCreate(seckey []byte) (*PublicKey, error) {
	var sec Scalar
	defer sec.clear()
	if err := parseSeckey(&sec, seckey); err != nil {
		return nil, err
	}

	var point GroupElementProjective
	defer point.clear()
	EcmultGen(&point, &sec)

	var pk PublicKey
	pk.point.setProjective(&point)
	return &pk, nil
}

// PointFromScalar returns the encoding of d * G
func PointFromScalar(d []byte, compressed bool) ([]byte, error) {
	pk, err := ECPubkeyCreate(d)
	if err != nil {
		return nil, err
	}
	return serializePoint(&pk.point, compressed)
}

// PointCompress re-encodes a point in the requested form
func PointCompress(p []byte, compressed bool) ([]byte, error) {
	var pt GroupElementAffine
	if err := parsePoint(&pt, p); err != nil {
		return nil, err
	}
	return serializePoint(&pt, compressed)
}

// PointAdd returns a + b encoded in a's form, or nil when the sum is the
// point at infinity.
func PointAdd(a, b []byte) ([]byte, error) {
	return PointAddCompressed(a, b, len(a) == PubKeyBytesLenCompressed)
}

// PointAddCompressed is PointAdd with the output form chosen by the caller.
func PointAddCompressed(a, b []byte, compressed bool) ([]byte, error) {
	var pa, pb, sum GroupElementAffine
	if err := parsePoint(&pa, a); err != nil {
		return nil, err
	}
	if err := parsePoint(&pb, b); err != nil {
		return nil, err
	}
	sum.add(&pa, &pb)
	if sum.isInfinity() {
		return nil, nil
	}
	return serializePoint(&sum, compressed)
}

// PointAddScalar returns p + tweak*G encoded in p's form.  The result is nil
// when the sum is the point at infinity or the tweak is not less than n.
func PointAddScalar(p, tweak []byte) ([]byte, error) {
	return PointAddScalarCompressed(p, tweak, len(p) == PubKeyBytesLenCompressed)
}

// PointAddScalarCompressed is PointAddScalar with the output form chosen by
// the caller.
func PointAddScalarCompressed(p, tweak []byte, compressed bool) ([]byte, error) {
	var pt GroupElementAffine
	if err := parsePoint(&pt, p); err != nil {
		return nil, err
	}
	var tw Scalar
	defer tw.clear()
	ok, err := parseTweak(&tw, tweak)
	if err != nil || !ok {
		return nil, err
	}

	var tG, pp, sum GroupElementProjective
	EcmultGen(&tG, &tw)
	pp.setGE(&pt)
	sum.add(&pp, &tG)

	var res GroupElementAffine
	res.setProjective(&sum)
	if res.isInfinity() {
		return nil, nil
	}
	return serializePoint(&res, compressed)
}

// PointMultiply returns tweak*p encoded in p's form.  The result is nil when
// the tweak is zero or not less than n.
func PointMultiply(p, tweak []byte) ([]byte, error) {
	return PointMultiplyCompressed(p, tweak, len(p) == PubKeyBytesLenCompressed)
}

// PointMultiplyCompressed is PointMultiply with the output form chosen by the
// caller.
func PointMultiplyCompressed(p, tweak []byte, compressed bool) ([]byte, error) {
	var pt GroupElementAffine
	if err := parsePoint(&pt, p); err != nil {
		return nil, err
	}
	var tw Scalar
	defer tw.clear()
	ok, err := parseTweak(&tw, tweak)
	if err != nil || !ok || tw.equal(&ScalarZero) {
		return nil, err
	}

	var prod GroupElementProjective
	EcmultConst(&prod, &pt, &tw)

	var res GroupElementAffine
	res.setProjective(&prod)
	if res.isInfinity() {
		return nil, nil
	}
	return serializePoint(&res, compressed)
}

// PrivateAdd returns (d + tweak) mod n, or nil when the result is zero or
// the tweak is not less than n.
func PrivateAdd(d, tweak []byte) ([]byte, error) {
	return privateTweak(d, tweak, false)
}

// PrivateSub returns (d - tweak) mod n, or nil when the result is zero or
// the tweak is not less than n.
func PrivateSub(d, tweak []byte) ([]byte, error) {
	return privateTweak(d, tweak, true)
}

func privateTweak(d, tweak []byte, subtract bool) ([]byte, error) {
	var sec, tw Scalar
	defer sec.clear()
	defer tw.clear()

	if err := parseSeckey(&sec, d); err != nil {
		return nil, err
	}
	ok, err := parseTweak(&tw, tweak)
	if err != nil || !ok {
		return nil, err
	}

	tw.condNegate(boolToInt(subtract))
	sec.add(&sec, &tw)
	if sec.isZero() {
		return nil, nil
	}
	out := make([]byte, 32)
	sec.getB32(out)
	return out, nil
}
