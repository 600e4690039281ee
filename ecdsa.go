package secp256k1

import (
	"unsafe"
)

// SignatureSize is the length of a compact r || s signature
const SignatureSize = 64

// Signature represents an ECDSA signature with both components in [1, n-1]
type Signature struct {
	r, s Scalar
}

// ParseCompactSignature parses a 64-byte r || s signature.  Each component
// must be nonzero and less than the group order.
func ParseCompactSignature(sig []byte) (*Signature, error) {
	if len(sig) != SignatureSize {
		return nil, makeError(ErrSigInvalidLen, descExpectedSignature)
	}

	var s Signature
	if s.r.setB32(sig[:32]) {
		return nil, makeError(ErrSigRTooBig, "signature r is not less than the group order")
	}
	if s.r.isZero() {
		return nil, makeError(ErrSigRIsZero, "signature r is zero")
	}
	if s.s.setB32(sig[32:]) {
		return nil, makeError(ErrSigSTooBig, "signature s is not less than the group order")
	}
	if s.s.isZero() {
		return nil, makeError(ErrSigSIsZero, "signature s is zero")
	}
	return &s, nil
}

// Serialize returns the 64-byte r || s encoding of the signature
func (sig *Signature) Serialize() []byte {
	out := make([]byte, SignatureSize)
	sig.r.getB32(out[:32])
	sig.s.getB32(out[32:])
	return out
}

// IsLowS reports whether s is at most half the group order
func (sig *Signature) IsLowS() bool {
	return !sig.s.isHigh()
}

// Normalize replaces s with n - s when s is above half the group order.  It
// reports whether the signature changed.
func (sig *Signature) Normalize() bool {
	high := sig.s.isHigh()
	sig.s.condNegate(boolToInt(high))
	return high
}

// nonceRFC6979 prepares the deterministic nonce generator for a key and a
// message: the HMAC_DRBG is seeded with seckey || (msg mod n) || extra.
func nonceRFC6979(seckey *Scalar, msg *Scalar, extra []byte) *RFC6979HMACSHA256 {
	var keyData [96]byte
	defer memclear(unsafe.Pointer(&keyData), unsafe.Sizeof(keyData))

	seckey.getB32(keyData[0:32])
	msg.getB32(keyData[32:64])
	n := 64
	if extra != nil {
		n += copy(keyData[64:], extra)
	}
	return NewRFC6979HMACSHA256(keyData[:n])
}

// signInner produces a low-S signature for msg under sec, drawing nonces
// from rng until one yields nonzero r and s.
func signInner(sig *Signature, sec, msg *Scalar, rng *RFC6979HMACSHA256) {
	var nonceBytes [32]byte
	var nonce, nonceInv, t Scalar
	var rp GroupElementProjective
	var ra GroupElementAffine
	defer func() {
		memclear(unsafe.Pointer(&nonceBytes), unsafe.Sizeof(nonceBytes))
		nonce.clear()
		nonceInv.clear()
		t.clear()
		rp.clear()
		ra.clear()
	}()

	for {
		rng.Generate(nonceBytes[:])
		if !nonce.setB32Seckey(nonceBytes[:]) {
			continue
		}

		// r = x(k * G) mod n
		EcmultGen(&rp, &nonce)
		ra.setProjective(&rp)
		var xb [32]byte
		ra.x.getB32(xb[:])
		sig.r.setB32(xb[:])
		if sig.r.isZero() {
			continue
		}

		// s = k^-1 * (msg + r * d)
		t.mul(&sig.r, sec)
		t.add(&t, msg)
		nonceInv.inverse(&nonce)
		sig.s.mul(&nonceInv, &t)
		if sig.s.isZero() {
			continue
		}

		sig.Normalize()
		return
	}
}

// ECDSASign creates a deterministic low-S signature of a 32-byte message
// hash.  extra, when non-nil, must be 32 bytes and is mixed into the nonce
// derivation.
func ECDSASign(hash, seckey, extra []byte) (*Signature, error) {
	if len(hash) != 32 {
		return nil, makeError(ErrHashInvalidLen, descExpectedHash)
	}
	if extra != nil && len(extra) != 32 {
		return nil, makeError(ErrExtraDataInvalidLen, descExpectedExtraData)
	}

	var sec, msg Scalar
	defer sec.clear()
	defer msg.clear()
	if err := parseSeckey(&sec, seckey); err != nil {
		return nil, err
	}
	msg.setB32(hash)

	rng := nonceRFC6979(&sec, &msg, extra)
	defer rng.Clear()

	var sig Signature
	signInner(&sig, &sec, &msg, rng)
	return &sig, nil
}

// ECDSAVerify verifies sig over a 32-byte message hash.  s must already be
// low; callers that accept high-S signatures normalize first.
func ECDSAVerify(sig *Signature, hash []byte, pubkey *PublicKey) bool {
	if len(hash) != 32 || !sig.IsLowS() {
		return false
	}

	var msg, sInv, u1, u2 Scalar
	msg.setB32(hash)
	sInv.inverse(&sig.s)
	u1.mul(&msg, &sInv)
	u2.mul(&sig.r, &sInv)

	var rp GroupElementProjective
	EcmultDouble(&rp, &u1, &u2, &pubkey.point)

	var ra GroupElementAffine
	ra.setProjective(&rp)
	if ra.isInfinity() {
		return false
	}

	var xb [32]byte
	var xr Scalar
	ra.x.getB32(xb[:])
	xr.setB32(xb[:])
	return xr.equal(&sig.r)
}

// Sign returns the 64-byte compact signature of hash under the private key d
func Sign(hash, d []byte) ([]byte, error) {
	sig, err := ECDSASign(hash, d, nil)
	if err != nil {
		return nil, err
	}
	return sig.Serialize(), nil
}

// SignWithEntropy is Sign with 32 bytes of additional data mixed into the
// nonce.  A nil entropy produces exactly the signature of Sign; an all-zero
// entropy is a distinct input.
func SignWithEntropy(hash, d, entropy []byte) ([]byte, error) {
	sig, err := ECDSASign(hash, d, entropy)
	if err != nil {
		return nil, err
	}
	return sig.Serialize(), nil
}

// Verify checks a 64-byte compact signature of hash against the encoded
// public key q.  A malformed hash or key is an error; a malformed or
// mismatching signature is simply invalid.  With strict set, signatures with
// a high s are rejected rather than normalized.
func Verify(hash, q, sig []byte, strict bool) (bool, error) {
	if len(hash) != 32 {
		return false, makeError(ErrHashInvalidLen, descExpectedHash)
	}
	pk, err := ParsePublicKey(q)
	if err != nil {
		return false, err
	}
	s, err := ParseCompactSignature(sig)
	if err != nil {
		return false, nil
	}
	if s.Normalize() && strict {
		return false, nil
	}
	return ECDSAVerify(s, hash, pk), nil
}
