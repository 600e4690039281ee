package bench

import (
	"crypto/rand"
	"testing"

	"github.com/secpcore/secp256k1/signer"
)

// Benchmarks comparing the two signer implementations:
// 1. EngineSigner (this module's constant-time engine)
// 2. BtcecSigner (pure Go btcec wrapper)

var (
	benchSeckey      []byte
	benchMsghash     []byte
	benchTweak       []byte
	compSignerEngine *signer.EngineSigner
	compSignerBtcec  *signer.BtcecSigner
	compSigEngine    []byte
	compSigBtcec     []byte
)

var compSigners = map[string]signer.I{}

func initComparisonBenchData() {
	if benchSeckey == nil {
		benchSeckey = make([]byte, 32)
		for i := range benchSeckey {
			benchSeckey[i] = 0x01
		}

		benchMsghash = make([]byte, 32)
		if _, err := rand.Read(benchMsghash); err != nil {
			panic(err)
		}
		benchTweak = make([]byte, 32)
		if _, err := rand.Read(benchTweak); err != nil {
			panic(err)
		}
		benchTweak[0] &= 0x7f
	}

	s1 := signer.NewEngineSigner()
	if err := s1.InitSec(benchSeckey); err != nil {
		panic(err)
	}
	compSignerEngine = s1

	var err error
	if compSigEngine, err = s1.Sign(benchMsghash); err != nil {
		panic(err)
	}

	s2 := signer.NewBtcecSigner()
	if err := s2.InitSec(benchSeckey); err != nil {
		panic(err)
	}
	compSignerBtcec = s2

	if compSigBtcec, err = s2.Sign(benchMsghash); err != nil {
		panic(err)
	}

	compSigners["engine"] = s1
	compSigners["btcec"] = s2
}

func newSigner(name string) signer.I {
	if name == "engine" {
		return signer.NewEngineSigner()
	}
	return signer.NewBtcecSigner()
}

func benchmarkPubkeyDerivation(b *testing.B, name string) {
	if benchSeckey == nil {
		initComparisonBenchData()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := newSigner(name)
		if err := s.InitSec(benchSeckey); err != nil {
			b.Fatalf("failed to create signer: %v", err)
		}
		_ = s.Pub()
	}
}

func BenchmarkPubkeyDerivation_Engine(b *testing.B) { benchmarkPubkeyDerivation(b, "engine") }
func BenchmarkPubkeyDerivation_Btcec(b *testing.B)  { benchmarkPubkeyDerivation(b, "btcec") }

func benchmarkSign(b *testing.B, name string) {
	if compSignerEngine == nil {
		initComparisonBenchData()
	}
	s := compSigners[name]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Sign(benchMsghash); err != nil {
			b.Fatalf("failed to sign: %v", err)
		}
	}
}

// BenchmarkSign compares deterministic ECDSA signing
func BenchmarkSign_Engine(b *testing.B) { benchmarkSign(b, "engine") }
func BenchmarkSign_Btcec(b *testing.B)  { benchmarkSign(b, "btcec") }

func benchmarkVerify(b *testing.B, name string, sig []byte) {
	verifier := newSigner(name)
	if err := verifier.InitPub(compSigners[name].Pub()); err != nil {
		b.Fatalf("failed to create verifier: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		valid, err := verifier.Verify(benchMsghash, sig)
		if err != nil {
			b.Fatalf("verification error: %v", err)
		}
		if !valid {
			b.Fatalf("verification failed")
		}
	}
}

// BenchmarkVerify compares ECDSA verification
func BenchmarkVerify_Engine(b *testing.B) {
	if compSignerEngine == nil {
		initComparisonBenchData()
	}
	benchmarkVerify(b, "engine", compSigEngine)
}

func BenchmarkVerify_Btcec(b *testing.B) {
	if compSignerBtcec == nil {
		initComparisonBenchData()
	}
	benchmarkVerify(b, "btcec", compSigBtcec)
}

func benchmarkTweak(b *testing.B, name string) {
	if benchSeckey == nil {
		initComparisonBenchData()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := newSigner(name)
		if err := s.InitSec(benchSeckey); err != nil {
			b.Fatalf("failed to create signer: %v", err)
		}
		if err := s.Tweak(benchTweak); err != nil {
			b.Fatalf("tweak failed: %v", err)
		}
	}
}

// BenchmarkTweak compares additive key tweaking
func BenchmarkTweak_Engine(b *testing.B) { benchmarkTweak(b, "engine") }
func BenchmarkTweak_Btcec(b *testing.B)  { benchmarkTweak(b, "btcec") }
