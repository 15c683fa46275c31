// Package sponge implements the algebraic sponge of the zkDilithium signer:
// a width-35 Poseidon permutation over Z_Q with an x -> x^-1 S-box and a
// Hilbert-matrix MDS layer, its Grain LFSR round-constant generator, and
// the rate-24 absorb/squeeze sponge built on the permutation.
package sponge

import "github.com/madars/zkdilithium-signer/ring"

// Grain is the 80-bit LFSR that deterministically generates the Poseidon
// round constants. It is initialized from a fixed description of the
// permutation, not from user input, and is clocked 160 times before any
// output is taken.
type Grain struct {
	lo uint64 // bits 0-63
	hi uint64 // bits 64-79
}

// NewGrain returns a Grain initialized for this permutation's parameters:
// 30 ones, zero partial rounds, RF full rounds, state width T, rate Rate,
// alpha = -1 encoded as 2, and the odd-field marker bit.
func NewGrain() *Grain {
	g := &Grain{}

	g.lo = (1 << 30) - 1
	g.lo |= uint64(RF) << 40
	g.lo |= uint64(T) << 50
	g.lo |= uint64(Rate&0x3) << 62

	g.hi = uint64(Rate >> 2)
	g.hi |= 2 << 10
	g.hi |= 1 << 14

	for i := 0; i < 160; i++ {
		g.next()
	}
	return g
}

func (g *Grain) getBit(i int) uint64 {
	if i < 64 {
		return g.lo >> i & 1
	}
	return g.hi >> (i - 64) & 1
}

// next clocks the LFSR once. Tap positions: 17, 28, 41, 56, 66, 79.
func (g *Grain) next() uint64 {
	r := g.getBit(17) ^ g.getBit(28) ^ g.getBit(41) ^ g.getBit(56) ^ g.getBit(66) ^ g.getBit(79)
	carry := g.lo >> 63 & 1
	g.lo = g.lo<<1 | r
	g.hi = (g.hi<<1 | carry) & 0xFFFF
	return r
}

// ReadBits reads n bits using the self-shrinking rule: of each clocked
// pair, the second bit is kept only when the first is set.
func (g *Grain) ReadBits(n int) uint32 {
	var got int
	var ret uint32
	for got < n {
		first := g.next()
		second := g.next()
		if first == 1 {
			ret = ret<<1 | uint32(second)
			got++
		}
	}
	return ret
}

// ReadFe reads a field element by 23-bit rejection sampling below Q.
func (g *Grain) ReadFe() uint32 {
	for {
		if x := g.ReadBits(23); x < ring.Q {
			return x
		}
	}
}
