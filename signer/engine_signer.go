package signer

import (
	"crypto/rand"
	"errors"

	"github.com/secpcore/secp256k1"
)

// EngineSigner implements I on top of the secp256k1 package
type EngineSigner struct {
	engine    secp256k1.Engine
	sec       []byte
	pub       []byte // compressed
	hasSecret bool   // Whether we have the secret key (if false, can only verify)
}

// NewEngineSigner creates a new EngineSigner instance
func NewEngineSigner() *EngineSigner {
	return &EngineSigner{engine: secp256k1.New()}
}

// Generate creates a fresh new key pair from system entropy
func (s *EngineSigner) Generate() error {
	sec := make([]byte, 32)
	for {
		if _, err := rand.Read(sec); err != nil {
			return err
		}
		if s.engine.IsPrivate(sec) {
			break
		}
	}
	defer clearBytes(sec)
	return s.InitSec(sec)
}

// InitSec initialises the secret (signing) key from the raw bytes, and also derives the public key
func (s *EngineSigner) InitSec(sec []byte) error {
	pub, err := s.engine.PointFromScalar(sec, true)
	if err != nil {
		return err
	}
	s.Zero()
	s.sec = append([]byte(nil), sec...)
	s.pub = pub
	s.hasSecret = true
	return nil
}

// InitPub initializes the public (verification) key from its compressed or uncompressed encoding
func (s *EngineSigner) InitPub(pub []byte) error {
	cmpr, err := s.engine.PointCompress(pub, true)
	if err != nil {
		return err
	}
	s.Zero()
	s.pub = cmpr
	return nil
}

// Sec returns the secret key bytes
func (s *EngineSigner) Sec() []byte {
	if !s.hasSecret {
		return nil
	}
	return append([]byte(nil), s.sec...)
}

// Pub returns the compressed public key bytes
func (s *EngineSigner) Pub() []byte {
	return s.pub
}

// Sign creates a signature using the stored secret key
func (s *EngineSigner) Sign(msg []byte) (sig []byte, err error) {
	if !s.hasSecret {
		return nil, errors.New("no secret key available for signing")
	}
	return s.engine.Sign(msg, s.sec)
}

// Verify checks a message hash and signature match the stored public key
func (s *EngineSigner) Verify(msg, sig []byte) (valid bool, err error) {
	if s.pub == nil {
		return false, errors.New("no public key available for verification")
	}
	return s.engine.Verify(msg, s.pub, sig, true)
}

// Tweak adds t to the secret key and recomputes the public key.  A
// verify-only signer moves its public key by t*G instead.
func (s *EngineSigner) Tweak(t []byte) error {
	if !s.hasSecret {
		if s.pub == nil {
			return errors.New("no key available to tweak")
		}
		pub, err := s.engine.PointAddScalar(s.pub, t)
		if err != nil {
			return err
		}
		if pub == nil {
			return errors.New("tweak does not produce a valid public key")
		}
		s.pub = pub
		return nil
	}

	sec, err := s.engine.PrivateAdd(s.sec, t)
	if err != nil {
		return err
	}
	if sec == nil {
		return errors.New("tweak does not produce a valid secret key")
	}
	defer clearBytes(sec)
	return s.InitSec(sec)
}

// Zero wipes the secret key to prevent memory leaks
func (s *EngineSigner) Zero() {
	clearBytes(s.sec)
	s.sec = nil
	s.pub = nil
	s.hasSecret = false
}

func clearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
