package signer

import (
	"errors"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// BtcecSigner implements the I interface using btcec (pure Go implementation)
type BtcecSigner struct {
	privKey   *btcec.PrivateKey
	pubKey    *btcec.PublicKey
	hasSecret bool
}

// NewBtcecSigner creates a new BtcecSigner instance
func NewBtcecSigner() *BtcecSigner {
	return &BtcecSigner{}
}

// Generate creates a fresh new key pair from system entropy
func (s *BtcecSigner) Generate() error {
	privKey, err := btcec.NewPrivateKey()
	if err != nil {
		return err
	}
	s.privKey = privKey
	s.pubKey = privKey.PubKey()
	s.hasSecret = true
	return nil
}

// InitSec initialises the secret (signing) key from the raw bytes, and also derives the public key
func (s *BtcecSigner) InitSec(sec []byte) error {
	if len(sec) != 32 {
		return errors.New("secret key must be 32 bytes")
	}
	var k btcec.ModNScalar
	if overflow := k.SetByteSlice(sec); overflow || k.IsZero() {
		return errors.New("secret key is not in the range [1, n-1]")
	}
	k.Zero()

	s.privKey, s.pubKey = btcec.PrivKeyFromBytes(sec)
	s.hasSecret = true
	return nil
}

// InitPub initializes the public (verification) key from its compressed or uncompressed encoding
func (s *BtcecSigner) InitPub(pub []byte) error {
	pubKey, err := btcec.ParsePubKey(pub)
	if err != nil {
		return err
	}
	s.Zero()
	s.pubKey = pubKey
	return nil
}

// Sec returns the secret key bytes
func (s *BtcecSigner) Sec() []byte {
	if !s.hasSecret || s.privKey == nil {
		return nil
	}
	return s.privKey.Serialize()
}

// Pub returns the compressed public key bytes
func (s *BtcecSigner) Pub() []byte {
	if s.pubKey == nil {
		return nil
	}
	return s.pubKey.SerializeCompressed()
}

// Sign creates a signature using the stored secret key
func (s *BtcecSigner) Sign(msg []byte) (sig []byte, err error) {
	if !s.hasSecret || s.privKey == nil {
		return nil, errors.New("no secret key available for signing")
	}
	if len(msg) != 32 {
		return nil, errors.New("message must be 32 bytes")
	}

	// The compact form carries a recovery code in front of r || s.
	compact := ecdsa.SignCompact(s.privKey, msg, true)
	return compact[1:], nil
}

// Verify checks a message hash and signature match the stored public key
func (s *BtcecSigner) Verify(msg, sig []byte) (valid bool, err error) {
	if s.pubKey == nil {
		return false, errors.New("no public key available for verification")
	}
	if len(msg) != 32 {
		return false, errors.New("message must be 32 bytes")
	}
	if len(sig) != 64 {
		return false, nil
	}

	var r, sv btcec.ModNScalar
	if r.SetByteSlice(sig[:32]) || r.IsZero() {
		return false, nil
	}
	if sv.SetByteSlice(sig[32:]) || sv.IsZero() || sv.IsOverHalfOrder() {
		return false, nil
	}
	return ecdsa.NewSignature(&r, &sv).Verify(msg, s.pubKey), nil
}

// Tweak adds t to the secret key and recomputes the public key.  A
// verify-only signer moves its public key by t*G instead.
func (s *BtcecSigner) Tweak(t []byte) error {
	if len(t) != 32 {
		return errors.New("tweak must be 32 bytes")
	}
	var tw btcec.ModNScalar
	if tw.SetByteSlice(t) {
		return errors.New("tweak is not less than the group order")
	}

	if !s.hasSecret {
		if s.pubKey == nil {
			return errors.New("no key available to tweak")
		}
		var p, tG, sum btcec.JacobianPoint
		s.pubKey.AsJacobian(&p)
		btcec.ScalarBaseMultNonConst(&tw, &tG)
		btcec.AddNonConst(&p, &tG, &sum)
		if (sum.X.IsZero() && sum.Y.IsZero()) || sum.Z.IsZero() {
			return errors.New("tweak does not produce a valid public key")
		}
		sum.ToAffine()
		s.pubKey = btcec.NewPublicKey(&sum.X, &sum.Y)
		return nil
	}

	key := s.privKey.Key
	key.Add(&tw)
	if key.IsZero() {
		return errors.New("tweak does not produce a valid secret key")
	}
	s.privKey.Zero()
	s.privKey = &btcec.PrivateKey{Key: key}
	s.pubKey = s.privKey.PubKey()
	return nil
}

// Zero wipes the secret key to prevent memory leaks
func (s *BtcecSigner) Zero() {
	if s.privKey != nil {
		s.privKey.Zero()
		s.privKey = nil
	}
	s.hasSecret = false
	s.pubKey = nil
}
