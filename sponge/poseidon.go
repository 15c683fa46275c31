package sponge

import "github.com/madars/zkdilithium-signer/ring"

const (
	// T is the permutation state width in field elements.
	T = 35

	// Rate is the sponge rate; T - Rate elements form the capacity.
	Rate = 24

	// RF is the number of (full) rounds.
	RF = 21

	// CycleLen is the number of challenge-shuffle steps taken from the
	// state per permutation call during in-ball sampling.
	CycleLen = 8
)

// RCs is the round-constant table, T elements per round, generated once at
// init by the Grain LFSR and immutable afterwards.
var RCs [T * RF]uint32

// mdsInv holds 1/(i+j-1) for the Hilbert MDS matrix M_ij = 1/(i+j-1).
var mdsInv [2*T - 1]uint32

func init() {
	g := NewGrain()
	for i := range RCs {
		RCs[i] = g.ReadFe()
	}

	for i := range mdsInv {
		mdsInv[i] = uint32(i + 1)
	}
	ring.BatchInv(mdsInv[:])
}

// round applies round r: add constants, invert every element (the x -> x^-1
// S-box, 0 staying 0), then mix through the MDS matrix.
func round(state []uint32, r int) {
	for i := 0; i < T; i++ {
		state[i] = ring.Add(state[i], RCs[T*r+i])
	}

	ring.BatchInv(state)

	var old [T]uint32
	copy(old[:], state)
	for i := 0; i < T; i++ {
		var acc uint64
		for j := 0; j < T; j++ {
			acc += uint64(mdsInv[i+j]) * uint64(old[j])
		}
		state[i] = uint32(acc % ring.Q)
	}
}

// Permute applies the full permutation to state in place. len(state) must
// be T.
func Permute(state []uint32) {
	for r := 0; r < RF; r++ {
		round(state, r)
	}
}

// Sponge absorbs and squeezes field elements through the permutation. A
// Sponge is single-use: once squeezed it must not be written again.
type Sponge struct {
	s         [T]uint32
	absorbing bool
	i         int
}

// New returns a sponge, absorbing initial if non-nil.
func New(initial []uint32) *Sponge {
	p := &Sponge{absorbing: true}
	if initial != nil {
		p.Write(initial)
	}
	return p
}

// Write absorbs field elements, adding them into the rate portion of the
// state and permuting at every full block.
func (p *Sponge) Write(fes []uint32) {
	if !p.absorbing {
		panic("sponge: write after read")
	}
	for _, fe := range fes {
		p.s[p.i] = ring.Add(p.s[p.i], fe)
		p.i++
		if p.i == Rate {
			Permute(p.s[:])
			p.i = 0
		}
	}
}

// Permute flushes a partial block, used as a domain separator between
// absorbed segments.
func (p *Sponge) Permute() {
	if !p.absorbing {
		panic("sponge: permute after read")
	}
	if p.i != 0 {
		Permute(p.s[:])
		p.i = 0
	}
}

// Read squeezes n field elements.
func (p *Sponge) Read(n int) []uint32 {
	if p.absorbing {
		p.absorbing = false
		if p.i != 0 {
			Permute(p.s[:])
		}
		p.i = 0
	}

	ret := make([]uint32, 0, n)
	for n > 0 {
		take := n
		if take > Rate-p.i {
			take = Rate - p.i
		}
		ret = append(ret, p.s[p.i:p.i+take]...)
		n -= take
		p.i += take
		if p.i == Rate {
			p.i = 0
			Permute(p.s[:])
		}
	}
	return ret
}

// State exposes the raw state for the in-ball sampler, which consumes it
// directly between explicit permutation calls.
func (p *Sponge) State() *[T]uint32 {
	return &p.s
}

// ApplyPerm permutes the raw state, paired with State.
func (p *Sponge) ApplyPerm() {
	Permute(p.s[:])
}
