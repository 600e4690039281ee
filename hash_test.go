package secp256k1

import (
	"bytes"
	"crypto/hmac"
	"crypto/rand"
	"testing"

	dcrsecp "github.com/decred/dcrd/dcrec/secp256k1/v4"
	sha256simd "github.com/minio/sha256-simd"
)

func TestHMACSHA256(t *testing.T) {
	// RFC 4231 test cases 1 and 2
	testCases := []struct {
		name string
		key  []byte
		data []byte
		want string
	}{
		{
			name: "case_1",
			key:  bytes.Repeat([]byte{0x0b}, 20),
			data: []byte("Hi There"),
			want: "b0344c61d8db38535ca8afceaf0bf12b881dc200c9833da726e9376c2e32cff7",
		},
		{
			name: "case_2",
			key:  []byte("Jefe"),
			data: []byte("what do ya want for nothing?"),
			want: "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843",
		},
		{
			name: "case_6_long_key",
			key:  bytes.Repeat([]byte{0xaa}, 131),
			data: []byte("Test Using Larger Than Block-Size Key - Hash Key First"),
			want: "60e431591ee0b67f0d8a26aacbf5b77f8e0bc6213728c5140546040f0ee37f54",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out [32]byte
			h := NewHMACSHA256(tc.key)
			h.Write(tc.data[:3])
			h.Write(tc.data[3:])
			h.Finalize(out[:])
			h.Clear()
			if got := hexOf(out[:]); got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}

			hmacSHA256(out[:], tc.key, tc.data)
			if got := hexOf(out[:]); got != tc.want {
				t.Errorf("one-shot: got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestHMACSHA256MatchesStdlib(t *testing.T) {
	data := []byte("secp256k1 nonce derivation")
	for _, keyLen := range []int{0, 1, 32, 63, 64, 65, 96, 200} {
		key := bytes.Repeat([]byte{byte(keyLen) | 0x80}, keyLen)
		var got [32]byte
		hmacSHA256(got[:], key, data)

		ref := hmac.New(sha256simd.New, key)
		ref.Write(data)
		if want := ref.Sum(nil); !bytes.Equal(got[:], want) {
			t.Errorf("key length %d: got %x, want %x", keyLen, got, want)
		}
	}
}

func TestHMACSHA256ClearWipesKeyedState(t *testing.T) {
	h := NewHMACSHA256(bytes.Repeat([]byte{0x42}, 32))
	h.Write([]byte("data"))
	inner, outer := h.inner, h.outer
	h.Clear()

	if h.inner != nil || h.outer != nil {
		t.Fatal("Clear should drop the hash states")
	}
	// both digests are back at the SHA-256 initial value
	empty := sha256simd.Sum256(nil)
	for name, d := range map[string]interface{ Sum([]byte) []byte }{"inner": inner, "outer": outer} {
		if got := d.Sum(nil); !bytes.Equal(got, empty[:]) {
			t.Errorf("%s digest still keyed: %x", name, got)
		}
	}
}

// TestRFC6979AgainstDecred checks the nonce stream, including the retry
// continuation, against decred's NonceRFC6979.
func TestRFC6979AgainstDecred(t *testing.T) {
	for i := 0; i < 10; i++ {
		sec := make([]byte, 32)
		hash := make([]byte, 32)
		extra := make([]byte, 32)
		for _, b := range [][]byte{sec, hash, extra} {
			if _, err := rand.Read(b); err != nil {
				t.Fatal(err)
			}
		}
		// keep both below n so neither side reduces them
		sec[0] &= 0x7f
		hash[0] &= 0x7f

		for _, ex := range [][]byte{nil, extra} {
			key := append(append(append([]byte{}, sec...), hash...), ex...)
			rng := NewRFC6979HMACSHA256(key)
			for iter := uint32(0); iter < 3; iter++ {
				var got [32]byte
				rng.Generate(got[:])
				want := dcrsecp.NonceRFC6979(sec, hash, ex, nil, iter).Bytes()
				if got != want {
					t.Fatalf("iteration %d (extra=%v): got %x want %x", iter, ex != nil, got, want)
				}
			}
			rng.Clear()
		}
	}
}

func TestRFC6979Clear(t *testing.T) {
	rng := NewRFC6979HMACSHA256([]byte("key"))
	var out [32]byte
	rng.Generate(out[:])
	rng.Clear()
	if rng.v != [32]byte{} || rng.k != [32]byte{} || rng.retry {
		t.Error("Clear should zero the generator state")
	}
}

func BenchmarkRFC6979(b *testing.B) {
	key := make([]byte, 64)
	var out [32]byte
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rng := NewRFC6979HMACSHA256(key)
		rng.Generate(out[:])
		rng.Clear()
	}
}
