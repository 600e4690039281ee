// Package signer provides key-holding ECDSA signers over secp256k1, used to
// abstract the signature implementation from the usage.
package signer

// I is a signer that holds a secret key, or only a public key when used for
// verification.  Public keys are exchanged in their 33-byte compressed form
// and signatures as 64-byte compact r || s.
type I interface {
	// Generate creates a fresh key pair from system entropy.
	Generate() error
	// InitSec initialises the secret (signing) key from raw bytes and derives
	// the public key.
	InitSec(sec []byte) error
	// InitPub initialises the public (verification) key from a compressed or
	// uncompressed encoding.
	InitPub(pub []byte) error
	// Sec returns the secret key bytes, or nil for a verify-only signer.
	Sec() []byte
	// Pub returns the compressed public key bytes.
	Pub() []byte
	// Sign creates a low-S signature of a 32-byte message hash.
	Sign(msg []byte) (sig []byte, err error)
	// Verify checks a message hash and signature match the stored public key.
	Verify(msg, sig []byte) (valid bool, err error)
	// Tweak adds t to the secret key, or t*G to the public key of a
	// verify-only signer.
	Tweak(t []byte) error
	// Zero wipes the secret key.
	Zero()
}
