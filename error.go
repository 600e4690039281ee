package secp256k1

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrPrivateKeyInvalid is returned when a private key is not 32 bytes or
	// is not in the range [1, n-1].
	ErrPrivateKeyInvalid = ErrorKind("ErrPrivateKeyInvalid")

	// ErrTweakInvalid is returned when a tweak is not 32 bytes or is greater
	// than or equal to the group order.
	ErrTweakInvalid = ErrorKind("ErrTweakInvalid")

	// ErrHashInvalidLen is returned when a message hash is not 32 bytes.
	ErrHashInvalidLen = ErrorKind("ErrHashInvalidLen")

	// ErrExtraDataInvalidLen is returned when extra entropy supplied to the
	// nonce function is not 32 bytes.
	ErrExtraDataInvalidLen = ErrorKind("ErrExtraDataInvalidLen")

	// ErrPubKeyInvalidLen is returned when a serialized public key is not
	// one of the recognized lengths.
	ErrPubKeyInvalidLen = ErrorKind("ErrPubKeyInvalidLen")

	// ErrPubKeyInvalidFormat is returned when a serialized public key has an
	// unrecognized prefix byte.
	ErrPubKeyInvalidFormat = ErrorKind("ErrPubKeyInvalidFormat")

	// ErrPubKeyXTooBig is returned when the x coordinate of a public key is
	// greater than or equal to the field prime.
	ErrPubKeyXTooBig = ErrorKind("ErrPubKeyXTooBig")

	// ErrPubKeyYTooBig is returned when the y coordinate of a public key is
	// greater than or equal to the field prime.
	ErrPubKeyYTooBig = ErrorKind("ErrPubKeyYTooBig")

	// ErrPubKeyNotOnCurve is returned when a public key is not a point on the
	// curve.
	ErrPubKeyNotOnCurve = ErrorKind("ErrPubKeyNotOnCurve")

	// ErrPubKeyIsInfinity is returned when an encoding is requested for the
	// point at infinity, which has none.
	ErrPubKeyIsInfinity = ErrorKind("ErrPubKeyIsInfinity")

	// ErrSigInvalidLen is returned when a compact signature is not 64 bytes.
	ErrSigInvalidLen = ErrorKind("ErrSigInvalidLen")

	// ErrSigRIsZero is returned when a signature has R set to the value zero.
	ErrSigRIsZero = ErrorKind("ErrSigRIsZero")

	// ErrSigRTooBig is returned when a signature has R with a value that is
	// greater than or equal to the group order.
	ErrSigRTooBig = ErrorKind("ErrSigRTooBig")

	// ErrSigSIsZero is returned when a signature has S set to the value zero.
	ErrSigSIsZero = ErrorKind("ErrSigSIsZero")

	// ErrSigSTooBig is returned when a signature has S with a value that is
	// greater than or equal to the group order.
	ErrSigSTooBig = ErrorKind("ErrSigSTooBig")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to keys, tweaks and signatures.  It has
// full support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

// Descriptions shared by every operation that rejects the same input.
const (
	descExpectedPrivate   = "Expected Private"
	descExpectedPoint     = "Expected Point"
	descExpectedTweak     = "Expected Tweak"
	descExpectedHash      = "Expected Hash"
	descExpectedSignature = "Expected Signature"
	descExpectedExtraData = "Expected Extra Data (32 bytes)"
)
