package bench

import (
	"testing"

	"github.com/madars/zkdilithium-signer/zkdilithium"
)

func BenchmarkGen(b *testing.B) {
	seed := make([]byte, zkdilithium.SeedSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seed[0] = byte(i)
		zkdilithium.Gen(seed)
	}
}

func BenchmarkSign(b *testing.B) {
	_, sk := zkdilithium.Gen(make([]byte, zkdilithium.SeedSize))
	msg := []byte("benchmark message")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := zkdilithium.Sign(sk, msg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVerify(b *testing.B) {
	pk, sk := zkdilithium.Gen(make([]byte, zkdilithium.SeedSize))
	msg := []byte("benchmark message")
	sig, err := zkdilithium.Sign(sk, msg)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !zkdilithium.Verify(pk, msg, sig) {
			b.Fatal("signature rejected")
		}
	}
}
