package ring

// Poly is a polynomial in coefficient representation: N field elements,
// fully reduced mod Q.
type Poly [N]uint32

// NTTPoly is a polynomial in evaluation (NTT) representation. It is a
// distinct type so that coefficient- and evaluation-domain values cannot be
// mixed; NTT and InvNTT are the only conversions between the two.
type NTTPoly [N]uint32

// AddPoly adds two polynomials of the same domain coefficient-wise.
func AddPoly[T ~[N]uint32](a, b T) (c T) {
	for i := range c {
		c[i] = Add(a[i], b[i])
	}
	return c
}

// SubPoly subtracts b from a coefficient-wise, same domain.
func SubPoly[T ~[N]uint32](a, b T) (c T) {
	for i := range c {
		c[i] = Sub(a[i], b[i])
	}
	return c
}

// NegPoly negates a polynomial coefficient-wise.
func NegPoly[T ~[N]uint32](a T) (c T) {
	for i := range c {
		c[i] = Neg(a[i])
	}
	return c
}

// Norm returns the infinity norm of p with coefficients interpreted as
// centered representatives in (-Q/2, Q/2].
func (p *Poly) Norm() uint32 {
	const half = (Q - 1) / 2
	var n uint32
	for _, c := range p {
		a := c
		if a > half {
			a = Q - a
		}
		if a > n {
			n = a
		}
	}
	return n
}

// Decompose splits every coefficient of p into low and high parts around
// 2*Gamma2. The low part is stored mod Q (centered values wrap).
func (p *Poly) Decompose() (lo, hi Poly) {
	for i, c := range p {
		r0, r1 := Decompose(c)
		lo[i] = Mod(int64(r0))
		hi[i] = r1
	}
	return lo, hi
}

// Power2Round splits every coefficient of p into a high part and a low
// correction dropping D bits. The low part is stored mod Q.
func (p *Poly) Power2Round() (hi, lo Poly) {
	for i, c := range p {
		r1, r0 := Power2Round(c)
		hi[i] = r1
		lo[i] = Mod(int64(r0))
	}
	return hi, lo
}
