package zkdilithium

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"

	"github.com/madars/zkdilithium-signer/codec"
	"github.com/madars/zkdilithium-signer/ring"
	"github.com/madars/zkdilithium-signer/sponge"
	"github.com/madars/zkdilithium-signer/xof"
)

// Transcript domain separators absorbed as the first sponge element.
const (
	domMu        = 0
	domChallenge = 2
)

// GenerateKey creates a keypair from fresh system randomness.
func GenerateKey() (pk, sk []byte, err error) {
	seed := make([]byte, SeedSize)
	if _, err := rand.Read(seed); err != nil {
		return nil, nil, fmt.Errorf("zkdilithium: reading seed: %w", err)
	}
	pk, sk = Gen(seed)
	return pk, sk, nil
}

// Gen deterministically derives a keypair from a 32-byte seed.
func Gen(seed []byte) (pk, sk []byte) {
	if len(seed) != SeedSize {
		panic("zkdilithium: seed must be 32 bytes")
	}
	exp := xof.H(seed, 32+64+32)
	rho, rho2, key := exp[:32], exp[32:96], exp[96:]

	mat := SampleMatrix(rho)
	s1, s2 := SampleSecret(rho2)
	s1Hat := s1.NTT()

	t := make(ring.Vec, K)
	for i := 0; i < K; i++ {
		acc := ring.DotNTT(mat[i], s1Hat).InvNTT()
		t[i] = ring.AddPoly(acc, s2[i])
	}

	pk = make([]byte, 0, PublicKeySize)
	pk = append(pk, rho...)
	t0 := make(ring.Vec, K)
	for i := 0; i < K; i++ {
		t1, lo := t[i].Power2Round()
		t0[i] = lo
		pk = append(pk, codec.PackPolyT1(&t1)...)
	}

	tr := xof.H(pk, 32)
	sk = make([]byte, 0, SecretKeySize)
	sk = append(sk, rho...)
	sk = append(sk, key...)
	sk = append(sk, tr...)
	for i := 0; i < L; i++ {
		sk = append(sk, codec.PackPolyLeqEta(&s1[i])...)
	}
	for i := 0; i < K; i++ {
		sk = append(sk, codec.PackPolyLeqEta(&s2[i])...)
	}
	for i := 0; i < K; i++ {
		sk = append(sk, codec.PackPolyT0(&t0[i])...)
	}
	return pk, sk
}

// computeMu binds tr and the message into the transcript. tr and msg are
// kept in separate sponge segments by an explicit permutation.
func computeMu(tr, msg []byte) []uint32 {
	h := sponge.New([]uint32{domMu})
	h.Write(codec.BytesToFes(tr))
	h.Permute()
	h.Write(codec.BytesToFes(msg))
	return h.Read(MuSize)
}

// challengeHash absorbs mu and the rounded commitment w1, interleaved
// coefficient-major so the verifier circuit can stream it row by row.
func challengeHash(mu []uint32, w1 []ring.Poly) []uint32 {
	h := sponge.New(nil)
	h.Write(mu)
	for j := 0; j < ring.N; j++ {
		for i := 0; i < K; i++ {
			h.Write(w1[i][j : j+1])
		}
	}
	return h.Read(CTildeSize)
}

// challengePoly maps cTilde to the sparse challenge polynomial. ok is
// false when the in-ball draw rejects.
func challengePoly(cTilde []uint32) (ring.Poly, bool) {
	h := sponge.New(append([]uint32{domChallenge}, cTilde...))
	return SampleInBall(h)
}

// Sign produces a deterministic signature on msg. The rejection loop has
// no attempt cap; each iteration succeeds with constant probability so the
// expected number of rounds is small.
func Sign(sk, msg []byte) ([]byte, error) {
	if len(sk) != SecretKeySize {
		return nil, fmt.Errorf("zkdilithium: secret key has %d bytes, want %d", len(sk), SecretKeySize)
	}
	rho, key, tr := sk[:32], sk[32:64], sk[64:96]

	off := 96
	s1 := make(ring.Vec, L)
	for i := 0; i < L; i++ {
		s1[i] = codec.UnpackPolyLeqEta(sk[off : off+codec.PolyLeqEtaSize])
		off += codec.PolyLeqEtaSize
	}
	s2 := make(ring.Vec, K)
	for i := 0; i < K; i++ {
		s2[i] = codec.UnpackPolyLeqEta(sk[off : off+codec.PolyLeqEtaSize])
		off += codec.PolyLeqEtaSize
	}
	t0 := make(ring.Vec, K)
	for i := 0; i < K; i++ {
		t0[i] = codec.UnpackPolyT0(sk[off : off+codec.PolyT0Size])
		off += codec.PolyT0Size
	}

	mat := SampleMatrix(rho)
	mu := computeMu(tr, msg)
	s1Hat := s1.NTT()
	s2Hat := s2.NTT()
	t0Hat := t0.NTT()

	trMsg := make([]byte, 0, len(tr)+len(msg))
	trMsg = append(trMsg, tr...)
	trMsg = append(trMsg, msg...)
	rho2 := xof.H(append(append([]byte{}, key...), xof.H(trMsg, 64)...), 64)

	for kappa := uint16(0); ; kappa += L {
		y := SampleY(rho2, kappa)
		yHat := y.NTT()

		w := make(ring.Vec, K)
		w1 := make([]ring.Poly, K)
		for i := 0; i < K; i++ {
			w[i] = ring.DotNTT(mat[i], yHat).InvNTT()
			_, w1[i] = w[i].Decompose()
		}

		cTilde := challengeHash(mu, w1)
		c, ok := challengePoly(cTilde)
		if !ok {
			continue
		}
		cHat := c.NTT()

		z := make(ring.Vec, L)
		for i := 0; i < L; i++ {
			cs1 := ring.MulNTT(cHat, s1Hat[i]).InvNTT()
			z[i] = ring.AddPoly(y[i], cs1)
		}
		if z.Norm() >= ring.Gamma1-ring.Beta {
			continue
		}

		wcs2 := make(ring.Vec, K)
		reject := false
		for i := 0; i < K; i++ {
			cs2 := ring.MulNTT(cHat, s2Hat[i]).InvNTT()
			wcs2[i] = ring.SubPoly(w[i], cs2)
			lo, _ := wcs2[i].Decompose()
			if lo.Norm() >= ring.Gamma2-ring.Beta {
				reject = true
				break
			}
		}
		if reject {
			continue
		}

		ct0 := make(ring.Vec, K)
		for i := 0; i < K; i++ {
			ct0[i] = ring.MulNTT(cHat, t0Hat[i]).InvNTT()
		}
		if ct0.Norm() >= ring.Gamma2 {
			continue
		}

		hints := make([]ring.Poly, K)
		weight := 0
		for i := 0; i < K; i++ {
			for j := 0; j < ring.N; j++ {
				h := ring.MakeHint(ring.Neg(ct0[i][j]), ring.Add(wcs2[i][j], ct0[i][j]))
				hints[i][j] = h
				weight += int(h)
			}
		}
		if weight > Omega {
			continue
		}

		sig := make([]byte, 0, SignatureSize)
		sig = append(sig, codec.PackFes(cTilde)...)
		for i := 0; i < L; i++ {
			sig = append(sig, codec.PackPolyLeGamma1(&z[i])...)
		}
		sig = append(sig, codec.PackHint(hints, Omega)...)
		return sig, nil
	}
}

// Verify reports whether sig is a valid signature on msg under pk. Any
// malformed input yields false.
func Verify(pk, msg, sig []byte) bool {
	if len(sig) != SignatureSize || len(pk) != PublicKeySize {
		return false
	}
	cTilde := codec.UnpackFes(sig[:CTildeSize*3])
	off := CTildeSize * 3
	z := make(ring.Vec, L)
	for i := 0; i < L; i++ {
		z[i] = codec.UnpackPolyLeGamma1(sig[off : off+codec.PolyLeGamma1Size])
		off += codec.PolyLeGamma1Size
	}
	hints, ok := codec.UnpackHint(sig[off:], K, Omega)
	if !ok {
		return false
	}
	if z.Norm() >= ring.Gamma1-ring.Beta {
		return false
	}

	rho := pk[:32]
	t1 := make(ring.Vec, K)
	for i := 0; i < K; i++ {
		t1[i] = codec.UnpackPolyT1(pk[32+i*codec.PolyT1Size : 32+(i+1)*codec.PolyT1Size])
	}

	tr := xof.H(pk, 32)
	mu := computeMu(tr, msg)
	c, ok := challengePoly(cTilde)
	if !ok {
		return false
	}

	mat := SampleMatrix(rho)
	cHat := c.NTT()
	zHat := z.NTT()

	w1 := make([]ring.Poly, K)
	for i := 0; i < K; i++ {
		acc := ring.DotNTT(mat[i], zHat)
		var t1Shifted ring.Poly
		for j := 0; j < ring.N; j++ {
			t1Shifted[j] = ring.Mod(int64(t1[i][j]) << ring.D)
		}
		ct1 := ring.MulNTT(cHat, t1Shifted.NTT())
		r := ring.SubPoly(acc, ct1).InvNTT()
		for j := 0; j < ring.N; j++ {
			w1[i][j] = ring.UseHint(hints[i][j], r[j])
		}
	}

	cTilde2 := challengeHash(mu, w1)
	return subtle.ConstantTimeCompare(codec.PackFes(cTilde), codec.PackFes(cTilde2)) == 1
}
