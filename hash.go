package secp256k1

import (
	"hash"
	"unsafe"

	sha256simd "github.com/minio/sha256-simd"
)

// HMACSHA256 represents an HMAC-SHA256 context
type HMACSHA256 struct {
	inner, outer hash.Hash
}

// NewHMACSHA256 creates a new HMAC-SHA256 context with the given key
func NewHMACSHA256(key []byte) *HMACSHA256 {
	h := &HMACSHA256{
		inner: sha256simd.New(),
		outer: sha256simd.New(),
	}

	// Keys longer than a block are hashed first
	var rkey [64]byte
	if len(key) <= len(rkey) {
		copy(rkey[:], key)
	} else {
		sum := sha256simd.Sum256(key)
		copy(rkey[:], sum[:])
		memclear(unsafe.Pointer(&sum), unsafe.Sizeof(sum))
	}

	for i := range rkey {
		rkey[i] ^= 0x5c
	}
	h.outer.Write(rkey[:])

	for i := range rkey {
		rkey[i] ^= 0x5c ^ 0x36
	}
	h.inner.Write(rkey[:])

	memclear(unsafe.Pointer(&rkey), unsafe.Sizeof(rkey))
	return h
}

// Write writes data to the inner hash
func (h *HMACSHA256) Write(data []byte) {
	h.inner.Write(data)
}

// Finalize finalizes the HMAC and writes the result to out32 (must be 32 bytes)
func (h *HMACSHA256) Finalize(out32 []byte) {
	if len(out32) != 32 {
		panic("output buffer must be 32 bytes")
	}
	var temp [32]byte
	h.inner.Sum(temp[:0])
	h.outer.Write(temp[:])
	h.outer.Sum(out32[:0])
	memclear(unsafe.Pointer(&temp), unsafe.Sizeof(temp))
}

// Clear wipes the keyed hash states.  Reset puts both digests back to the
// SHA-256 initial value, which overwrites the key-dependent midstate.
func (h *HMACSHA256) Clear() {
	if h.inner != nil {
		h.inner.Reset()
		h.outer.Reset()
	}
	h.inner, h.outer = nil, nil
}

// hmacSHA256 computes HMAC_key(parts...) into out32
func hmacSHA256(out32, key []byte, parts ...[]byte) {
	h := NewHMACSHA256(key)
	for _, p := range parts {
		h.Write(p)
	}
	h.Finalize(out32)
	h.Clear()
}

// RFC6979HMACSHA256 implements the HMAC_DRBG of RFC 6979 section 3.2.  The
// generator keeps its state across calls so a caller that rejects a candidate
// continues the same stream (step h.3).
type RFC6979HMACSHA256 struct {
	v     [32]byte
	k     [32]byte
	retry bool
}

// NewRFC6979HMACSHA256 initializes a new RFC6979 HMAC-SHA256 context
func NewRFC6979HMACSHA256(key []byte) *RFC6979HMACSHA256 {
	rng := &RFC6979HMACSHA256{}

	// RFC6979 3.2.b and 3.2.c
	for i := range rng.v {
		rng.v[i] = 0x01
	}

	// RFC6979 3.2.d: K = HMAC_K(V || 0x00 || key); V = HMAC_K(V)
	hmacSHA256(rng.k[:], rng.k[:], rng.v[:], []byte{0x00}, key)
	hmacSHA256(rng.v[:], rng.k[:], rng.v[:])

	// RFC6979 3.2.f: K = HMAC_K(V || 0x01 || key); V = HMAC_K(V)
	hmacSHA256(rng.k[:], rng.k[:], rng.v[:], []byte{0x01}, key)
	hmacSHA256(rng.v[:], rng.k[:], rng.v[:])

	return rng
}

// Generate fills out with the next bytes of the stream
func (rng *RFC6979HMACSHA256) Generate(out []byte) {
	// RFC6979 3.2.h.3: K = HMAC_K(V || 0x00); V = HMAC_K(V)
	if rng.retry {
		hmacSHA256(rng.k[:], rng.k[:], rng.v[:], []byte{0x00})
		hmacSHA256(rng.v[:], rng.k[:], rng.v[:])
	}

	for len(out) > 0 {
		hmacSHA256(rng.v[:], rng.k[:], rng.v[:])
		n := copy(out, rng.v[:])
		out = out[n:]
	}

	rng.retry = true
}

// Clear clears the RFC6979 context
func (rng *RFC6979HMACSHA256) Clear() {
	memclear(unsafe.Pointer(rng), unsafe.Sizeof(*rng))
}
