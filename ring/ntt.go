package ring

// Zetas holds the forward twist table: Zetas[i] = Zeta^brv(i+1) mod Q.
var Zetas [N]uint32

// InvZetas holds the inverse twist table in the order consumed by InvNTT.
var InvZetas [N]uint32

func init() {
	for i := 0; i < N; i++ {
		Zetas[i] = Exp(Zeta, uint32(Brv(uint8(i+1))))
	}
	for i := 0; i < N; i++ {
		e := 256 - int(Brv(uint8(255-i)))
		InvZetas[i] = Exp(InvZeta, uint32(e))
	}
}

// NTT transforms p into evaluation representation with a Gentleman-Sande
// style butterfly network over the Zetas table.
func (p Poly) NTT() NTTPoly {
	cs := [N]uint32(p)
	layer := N / 2
	zi := 0
	for layer >= 1 {
		for offset := 0; offset < N-layer; offset += 2 * layer {
			z := Zetas[zi]
			zi++
			for j := offset; j < offset+layer; j++ {
				t := Mul(z, cs[j+layer])
				cs[j+layer] = Sub(cs[j], t)
				cs[j] = Add(cs[j], t)
			}
		}
		layer /= 2
	}
	return NTTPoly(cs)
}

// InvNTT is the exact inverse of NTT, folding the scaling by N^-1 into the
// per-layer Inv2 halving steps.
func (p NTTPoly) InvNTT() Poly {
	cs := [N]uint32(p)
	layer := 1
	zi := 0
	for layer < N {
		for offset := 0; offset < N-layer; offset += 2 * layer {
			z := InvZetas[zi]
			zi++
			inv2z := Mul(Inv2, z)
			for j := offset; j < offset+layer; j++ {
				t := Sub(cs[j], cs[j+layer])
				cs[j] = Mul(Inv2, Add(cs[j], cs[j+layer]))
				cs[j+layer] = Mul(inv2z, t)
			}
		}
		layer *= 2
	}
	return Poly(cs)
}

// MulNTT multiplies two evaluation-domain polynomials pointwise.
func MulNTT(a, b NTTPoly) NTTPoly {
	var c NTTPoly
	for i := range c {
		c[i] = Mul(a[i], b[i])
	}
	return c
}
