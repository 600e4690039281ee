package secp256k1

import (
	"encoding/hex"
	"testing"
)

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func hexOf(b []byte) string {
	return hex.EncodeToString(b)
}

// scalarFromHex parses a 32-byte scalar, failing the test on overflow
func scalarFromHex(t testing.TB, s string) Scalar {
	t.Helper()
	var r Scalar
	if r.setB32(mustHex(s)) {
		t.Fatalf("scalar %s overflows the group order", s)
	}
	return r
}
