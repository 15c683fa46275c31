package zkdilithium

import (
	"github.com/madars/zkdilithium-signer/codec"
	"github.com/madars/zkdilithium-signer/ring"
	"github.com/madars/zkdilithium-signer/sponge"
	"github.com/madars/zkdilithium-signer/xof"
)

// SampleUniform fills a polynomial with uniform field elements by rejection
// on 23-bit candidates read from the stream.
func SampleUniform(x *xof.Stream) ring.Poly {
	var p ring.Poly
	n := 0
	for n < ring.N {
		b0, b1, b2 := x.Read3()
		d := (uint32(b0) | uint32(b1)<<8 | uint32(b2)<<16) & 0x7FFFFF
		if d < ring.Q {
			p[n] = d
			n++
		}
	}
	return p
}

// SampleLeqEta fills a polynomial with coefficients distributed uniformly
// over [-Eta, Eta], by rejection on nibbles.
func SampleLeqEta(x *xof.Stream) ring.Poly {
	var p ring.Poly
	n := 0
	for n < ring.N {
		b0, b1, b2 := x.Read3()
		for _, d := range [6]byte{b0 & 15, b0 >> 4, b1 & 15, b1 >> 4, b2 & 15, b2 >> 4} {
			if d <= 14 && n < ring.N {
				p[n] = ring.Mod(2 - int64(d%5))
				n++
			}
		}
	}
	return p
}

// SampleMatrix expands rho into the K x L public matrix in the NTT domain.
// A coefficient stream sampled uniformly is already its own NTT.
func SampleMatrix(rho []byte) ring.Matrix {
	mat := make(ring.Matrix, K)
	x := xof.New128()
	for i := 0; i < K; i++ {
		mat[i] = make(ring.NTTVec, L)
		for j := 0; j < L; j++ {
			x.Reset(rho, uint16(256*i+j))
			mat[i][j] = ring.NTTPoly(SampleUniform(x))
		}
	}
	return mat
}

// SampleSecret expands rho2 into the short secret vectors s1 and s2.
func SampleSecret(rho2 []byte) (s1, s2 ring.Vec) {
	s1 = make(ring.Vec, L)
	s2 = make(ring.Vec, K)
	x := xof.New256()
	for i := 0; i < L; i++ {
		x.Reset(rho2, uint16(i))
		s1[i] = SampleLeqEta(x)
	}
	for i := 0; i < K; i++ {
		x.Reset(rho2, uint16(L+i))
		s2[i] = SampleLeqEta(x)
	}
	return s1, s2
}

// SampleY derives the masking vector for attempt nonce from rho2. Each
// component comes from a fresh SHAKE-256 stream through the Gamma1 unpack,
// so its coefficients are uniform over (-Gamma1, Gamma1].
func SampleY(rho2 []byte, nonce uint16) ring.Vec {
	y := make(ring.Vec, L)
	buf := make([]byte, 0, len(rho2)+2)
	for i := 0; i < L; i++ {
		n := nonce + uint16(i)
		buf = append(buf[:0], rho2...)
		buf = append(buf, byte(n), byte(n>>8))
		y[i] = codec.UnpackPolyLeGamma1(xof.H(buf, codec.PolyLeGamma1Size))
	}
	return y
}

// SampleInBall draws a sparse challenge with Tau coefficients in {1, -1}
// from the sponge, Fisher-Yates style: each permutation of the state yields
// one sign word and PosCycleLen swap positions. Any candidate falling in
// the biased top range aborts the whole draw; the caller retries with a
// fresh transcript. The ok result is false on abort.
func SampleInBall(h *sponge.Sponge) (ring.Poly, bool) {
	var p ring.Poly
	cycles := (ring.Tau + sponge.CycleLen - 1) / sponge.CycleLen
	nTau := cycles * sponge.CycleLen
	for i := 0; i < cycles; i++ {
		h.ApplyPerm()
		state := h.State()
		fe := state[sponge.CycleLen]
		if fe>>8 == ring.Q>>8 {
			return ring.Poly{}, false
		}
		r := fe & 0xFF
		var signs [sponge.CycleLen]uint32
		for j := range signs {
			if r&1 == 0 {
				signs[j] = 1
			} else {
				signs[j] = ring.Q - 1
			}
			r >>= 1
		}
		for j := 0; j < sponge.CycleLen; j++ {
			base := uint32(ring.N - nTau + i*sponge.CycleLen + j)
			div := base + 1
			fe = state[j]
			if fe/div == ring.Q/div {
				return ring.Poly{}, false
			}
			sw := fe % div
			p[base] = p[sw]
			p[sw] = signs[j]
		}
	}
	return p, true
}
