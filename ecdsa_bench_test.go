package secp256k1

import (
	"crypto/rand"
	"testing"
)

var (
	benchSeckey    []byte
	benchPubkey    []byte
	benchMsghash   []byte
	benchSignature []byte
)

func initBenchmarkData() {
	// Generate a fixed secret key for benchmarks
	benchSeckey = []byte{
		0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01,
		0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01,
		0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01,
		0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01,
	}

	var err error
	if benchPubkey, err = PointFromScalar(benchSeckey, true); err != nil {
		panic(err)
	}

	benchMsghash = make([]byte, 32)
	if _, err := rand.Read(benchMsghash); err != nil {
		panic(err)
	}

	if benchSignature, err = Sign(benchMsghash, benchSeckey); err != nil {
		panic(err)
	}
}

func BenchmarkSign(b *testing.B) {
	if benchSeckey == nil {
		initBenchmarkData()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Sign(benchMsghash, benchSeckey); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSignWithEntropy(b *testing.B) {
	if benchSeckey == nil {
		initBenchmarkData()
	}
	entropy := make([]byte, 32)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := SignWithEntropy(benchMsghash, benchSeckey, entropy); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVerify(b *testing.B) {
	if benchSeckey == nil {
		initBenchmarkData()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ok, err := Verify(benchMsghash, benchPubkey, benchSignature, true)
		if err != nil || !ok {
			b.Fatal("verification failed")
		}
	}
}

func BenchmarkPointFromScalar(b *testing.B) {
	if benchSeckey == nil {
		initBenchmarkData()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := PointFromScalar(benchSeckey, true); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPointMultiply(b *testing.B) {
	if benchSeckey == nil {
		initBenchmarkData()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := PointMultiply(benchPubkey, benchMsghash); err != nil {
			b.Fatal(err)
		}
	}
}
