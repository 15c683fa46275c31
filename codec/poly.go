package codec

import "github.com/madars/zkdilithium-signer/ring"

// Encoded sizes of the fixed-width polynomial packings.
const (
	PolyLeqEtaSize   = ring.N * 3 / 8  // 96
	PolyLeGamma1Size = ring.N * 18 / 8 // 576
	PolyT1Size       = ring.N * 12 / 8 // 384
	PolyT0Size       = ring.N * 11 / 8 // 352
)

// PackPolyLeqEta packs a polynomial with coefficients in [-Eta, Eta],
// stored as Eta-c in 3 bits each.
func PackPolyLeqEta(p *ring.Poly) []byte {
	out := make([]byte, PolyLeqEtaSize)
	var conv [ring.N]uint32
	for i, c := range p {
		conv[i] = ring.Sub(ring.Eta, c)
	}
	for i := 0; i < ring.N; i += 8 {
		j := i / 8 * 3
		out[j] = byte(conv[i]) | byte(conv[i+1]<<3) | byte(conv[i+2]<<6)
		out[j+1] = byte(conv[i+2]>>2) | byte(conv[i+3]<<1) | byte(conv[i+4]<<4) | byte(conv[i+5]<<7)
		out[j+2] = byte(conv[i+5]>>1) | byte(conv[i+6]<<2) | byte(conv[i+7]<<5)
	}
	return out
}

// UnpackPolyLeqEta is the inverse of PackPolyLeqEta.
func UnpackPolyLeqEta(bs []byte) ring.Poly {
	var p ring.Poly
	idx := 0
	for i := 0; i < PolyLeqEtaSize; i += 3 {
		p[idx] = uint32(bs[i] & 7)
		p[idx+1] = uint32((bs[i] >> 3) & 7)
		p[idx+2] = uint32((bs[i] >> 6) | (bs[i+1]<<2)&7)
		p[idx+3] = uint32((bs[i+1] >> 1) & 7)
		p[idx+4] = uint32((bs[i+1] >> 4) & 7)
		p[idx+5] = uint32((bs[i+1] >> 7) | (bs[i+2]<<1)&7)
		p[idx+6] = uint32((bs[i+2] >> 2) & 7)
		p[idx+7] = uint32((bs[i+2] >> 5) & 7)
		idx += 8
	}
	for i := range p {
		p[i] = ring.Mod(int64(ring.Eta) - int64(p[i]))
	}
	return p
}

// PackPolyLeGamma1 packs a polynomial with coefficients in
// (-Gamma1, Gamma1], stored as Gamma1-c in 18 bits each.
func PackPolyLeGamma1(p *ring.Poly) []byte {
	out := make([]byte, PolyLeGamma1Size)
	for i := 0; i < ring.N; i += 4 {
		c0 := ring.Sub(ring.Gamma1, p[i])
		c1 := ring.Sub(ring.Gamma1, p[i+1])
		c2 := ring.Sub(ring.Gamma1, p[i+2])
		c3 := ring.Sub(ring.Gamma1, p[i+3])

		j := i / 4 * 9
		out[j] = byte(c0)
		out[j+1] = byte(c0 >> 8)
		out[j+2] = byte(c0>>16) | byte(c1<<2)
		out[j+3] = byte(c1 >> 6)
		out[j+4] = byte(c1>>14) | byte(c2<<4)
		out[j+5] = byte(c2 >> 4)
		out[j+6] = byte(c2>>12) | byte(c3<<6)
		out[j+7] = byte(c3 >> 2)
		out[j+8] = byte(c3 >> 10)
	}
	return out
}

// UnpackPolyLeGamma1 is the inverse of PackPolyLeGamma1.
func UnpackPolyLeGamma1(bs []byte) ring.Poly {
	var p ring.Poly
	for i := 0; i < PolyLeGamma1Size; i += 9 {
		c0 := uint32(bs[i]) | uint32(bs[i+1])<<8 | (uint32(bs[i+2])&0x3)<<16
		c1 := uint32(bs[i+2])>>2 | uint32(bs[i+3])<<6 | (uint32(bs[i+4])&0xF)<<14
		c2 := uint32(bs[i+4])>>4 | uint32(bs[i+5])<<4 | (uint32(bs[i+6])&0x3F)<<12
		c3 := uint32(bs[i+6])>>6 | uint32(bs[i+7])<<2 | uint32(bs[i+8])<<10

		idx := i / 9 * 4
		p[idx] = ring.Mod(int64(ring.Gamma1) - int64(c0))
		p[idx+1] = ring.Mod(int64(ring.Gamma1) - int64(c1))
		p[idx+2] = ring.Mod(int64(ring.Gamma1) - int64(c2))
		p[idx+3] = ring.Mod(int64(ring.Gamma1) - int64(c3))
	}
	return p
}

// PackPolyT1 packs the high part of a rounded public polynomial, whose
// coefficients fit ceil(log2(Q))-D = 12 bits.
func PackPolyT1(p *ring.Poly) []byte {
	out := make([]byte, PolyT1Size)
	for i := 0; i < ring.N; i += 2 {
		j := i / 2 * 3
		out[j] = byte(p[i])
		out[j+1] = byte(p[i]>>8) | byte(p[i+1]<<4)
		out[j+2] = byte(p[i+1] >> 4)
	}
	return out
}

// UnpackPolyT1 is the inverse of PackPolyT1.
func UnpackPolyT1(bs []byte) ring.Poly {
	var p ring.Poly
	idx := 0
	for j := 0; j < PolyT1Size; j += 3 {
		p[idx] = uint32(bs[j]) | (uint32(bs[j+1])&0xF)<<8
		p[idx+1] = uint32(bs[j+1])>>4 | uint32(bs[j+2])<<4
		idx += 2
	}
	return p
}

// PackPolyT0 packs the low part of a rounded public polynomial, with
// coefficients in (-2^(D-1), 2^(D-1)] stored as 2^(D-1)-c in D bits.
func PackPolyT0(p *ring.Poly) []byte {
	const half = 1 << (ring.D - 1)
	out := make([]byte, PolyT0Size)
	var acc uint64
	accBits := 0
	j := 0
	for _, c := range p {
		acc |= uint64(ring.Sub(half, c)) << accBits
		accBits += ring.D
		for accBits >= 8 {
			out[j] = byte(acc)
			acc >>= 8
			accBits -= 8
			j++
		}
	}
	return out
}

// UnpackPolyT0 is the inverse of PackPolyT0.
func UnpackPolyT0(bs []byte) ring.Poly {
	const half = 1 << (ring.D - 1)
	var p ring.Poly
	var acc uint64
	accBits := 0
	j := 0
	for i := 0; i < ring.N; i++ {
		for accBits < ring.D {
			acc |= uint64(bs[j]) << accBits
			j++
			accBits += 8
		}
		c := uint32(acc) & (1<<ring.D - 1)
		acc >>= ring.D
		accBits -= ring.D
		p[i] = ring.Sub(half, c)
	}
	return p
}
