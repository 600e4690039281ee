package secp256k1

// Serialized public key prefixes and lengths
const (
	ECCompressedEven = 0x02
	ECCompressedOdd  = 0x03
	ECUncompressed   = 0x04

	PubKeyBytesLenCompressed   = 33
	PubKeyBytesLenUncompressed = 65
)

// PublicKey represents a secp256k1 public key, which is always a finite
// point on the curve.
type PublicKey struct {
	point GroupElementAffine
}

// parsePoint decodes a compressed (33 byte) or uncompressed (65 byte) point
// encoding into r.  The point at infinity has no encoding.
func parsePoint(r *GroupElementAffine, input []byte) error {
	var x, y FieldElement

	switch len(input) {
	case PubKeyBytesLenCompressed:
		if input[0] != ECCompressedEven && input[0] != ECCompressedOdd {
			return makeError(ErrPubKeyInvalidFormat, "invalid compressed public key prefix")
		}
		if x.setB32(input[1:33]) {
			return makeError(ErrPubKeyXTooBig, "public key x coordinate is not less than the field prime")
		}
		if !r.setXOVar(&x, input[0] == ECCompressedOdd) {
			return makeError(ErrPubKeyNotOnCurve, "public key x coordinate is not on the curve")
		}

	case PubKeyBytesLenUncompressed:
		if input[0] != ECUncompressed {
			return makeError(ErrPubKeyInvalidFormat, "invalid uncompressed public key prefix")
		}
		if x.setB32(input[1:33]) {
			return makeError(ErrPubKeyXTooBig, "public key x coordinate is not less than the field prime")
		}
		if y.setB32(input[33:65]) {
			return makeError(ErrPubKeyYTooBig, "public key y coordinate is not less than the field prime")
		}
		r.setXY(&x, &y)
		if !r.isValid() {
			return makeError(ErrPubKeyNotOnCurve, "public key is not on the curve")
		}

	default:
		return makeError(ErrPubKeyInvalidLen, descExpectedPoint)
	}
	return nil
}

// serializePoint encodes a finite point, 33 bytes when compressed and 65
// bytes otherwise.
func serializePoint(p *GroupElementAffine, compressed bool) ([]byte, error) {
	if p.isInfinity() {
		return nil, makeError(ErrPubKeyIsInfinity, "the point at infinity has no encoding")
	}
	if compressed {
		out := make([]byte, PubKeyBytesLenCompressed)
		out[0] = ECCompressedEven
		if p.y.isOdd() {
			out[0] = ECCompressedOdd
		}
		p.x.getB32(out[1:33])
		return out, nil
	}
	out := make([]byte, PubKeyBytesLenUncompressed)
	out[0] = ECUncompressed
	p.x.getB32(out[1:33])
	p.y.getB32(out[33:65])
	return out, nil
}

// ParsePublicKey parses a public key in compressed or uncompressed form
func ParsePublicKey(input []byte) (*PublicKey, error) {
	var pk PublicKey
	if err := parsePoint(&pk.point, input); err != nil {
		return nil, err
	}
	return &pk, nil
}

// SerializeCompressed returns the 33-byte compressed encoding of the key
func (k *PublicKey) SerializeCompressed() []byte {
	out, _ := serializePoint(&k.point, true)
	return out
}

// SerializeUncompressed returns the 65-byte uncompressed encoding of the key
func (k *PublicKey) SerializeUncompressed() []byte {
	out, _ := serializePoint(&k.point, false)
	return out
}

// IsEqual reports whether two public keys are the same point
func (k *PublicKey) IsEqual(other *PublicKey) bool {
	return k.point.equal(&other.point)
}
