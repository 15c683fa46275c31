// Package codec implements the byte serialization of field elements and
// polynomials: the generic 3-byte field-element layout, the compact bit
// packings for short secrets, masking vectors and rounded public values,
// and the sparse hint encoding carried in signatures.
package codec

import (
	"fmt"

	"github.com/madars/zkdilithium-signer/ring"
)

// PackFes packs field elements at 3 bytes each, little-endian.
func PackFes(fes []uint32) []byte {
	out := make([]byte, len(fes)*3)
	for i, c := range fes {
		out[i*3] = byte(c)
		out[i*3+1] = byte(c >> 8)
		out[i*3+2] = byte(c >> 16)
	}
	return out
}

// UnpackFes is the inverse of PackFes; values are reduced mod Q.
func UnpackFes(bs []byte) []uint32 {
	n := len(bs) / 3
	out := make([]uint32, n)
	for i := 0; i < n; i++ {
		out[i] = (uint32(bs[i*3]) | uint32(bs[i*3+1])<<8 | uint32(bs[i*3+2])<<16) % ring.Q
	}
	return out
}

// BytesToFes injectively maps a byte string to field elements. Each byte is
// shifted to [1, 256] and pairs are combined base 257, so a trailing zero
// byte yields a different encoding than its absence.
func BytesToFes(bs []byte) []uint32 {
	m := make([]uint32, len(bs))
	for i, b := range bs {
		m[i] = uint32(b) + 1
	}
	if len(m)%2 == 1 {
		m = append(m, 0)
	}
	out := make([]uint32, len(m)/2)
	for i := range out {
		out[i] = m[2*i] + 257*m[2*i+1]
	}
	return out
}

// PackPoly packs a full polynomial at 3 bytes per coefficient.
func PackPoly(p *ring.Poly) []byte {
	return PackFes(p[:])
}

// UnpackPoly is the inverse of PackPoly.
func UnpackPoly(bs []byte) (ring.Poly, error) {
	if len(bs) != ring.N*3 {
		return ring.Poly{}, fmt.Errorf("codec: polynomial encoding has %d bytes, want %d", len(bs), ring.N*3)
	}
	var p ring.Poly
	copy(p[:], UnpackFes(bs))
	return p, nil
}
