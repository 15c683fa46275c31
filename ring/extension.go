package ring

import "math/big"

// Extension rings of the base field, used by the transform layer: the base
// field alone is only 23 bits wide and gcd(3, Q-1) = 1, so it lacks both
// the roots of unity and the evaluation-domain size that the product checks
// need. Cubic is Z_Q[w]/(w^3 + w + 1) and Sextic is Z_Q[w]/(w^6 - w - 1);
// both defining trinomials are irreducible over F_Q. Only this package
// constructs extension values; the rest of the signer sees them through
// CheckProduct.

// Cubic is a0 + a1*w + a2*w^2 with w^3 = -w - 1.
type Cubic struct {
	A0, A1, A2 uint32
}

// NewCubic builds a Cubic from reduced coordinates.
func NewCubic(a0, a1, a2 uint32) Cubic {
	return Cubic{a0 % Q, a1 % Q, a2 % Q}
}

// Add returns a + b coordinate-wise.
func (a Cubic) Add(b Cubic) Cubic {
	return Cubic{Add(a.A0, b.A0), Add(a.A1, b.A1), Add(a.A2, b.A2)}
}

// Sub returns a - b coordinate-wise.
func (a Cubic) Sub(b Cubic) Cubic {
	return Cubic{Sub(a.A0, b.A0), Sub(a.A1, b.A1), Sub(a.A2, b.A2)}
}

// Mul multiplies in the cubic ring, reducing by w^3 = -w - 1.
func (a Cubic) Mul(b Cubic) Cubic {
	// Raw product coefficients of degree 0..4.
	c0 := uint64(a.A0) * uint64(b.A0)
	c1 := uint64(a.A0)*uint64(b.A1) + uint64(a.A1)*uint64(b.A0)
	c2 := uint64(a.A0)*uint64(b.A2) + uint64(a.A1)*uint64(b.A1) + uint64(a.A2)*uint64(b.A0)
	c3 := uint64(a.A1)*uint64(b.A2) + uint64(a.A2)*uint64(b.A1)
	c4 := uint64(a.A2) * uint64(b.A2)

	// w^3 = -w - 1, w^4 = -w^2 - w.
	d0 := c0 % Q
	d1 := c1 % Q
	d2 := c2 % Q
	e3 := uint32(c3 % Q)
	e4 := uint32(c4 % Q)

	r0 := Sub(uint32(d0), e3)
	r1 := Sub(Sub(uint32(d1), e3), e4)
	r2 := Sub(uint32(d2), e4)
	return Cubic{r0, r1, r2}
}

// Inv returns a^-1 via Fermat exponentiation with exponent Q^3 - 2.
// Panics on the zero element: inverting zero is a contract violation.
func (a Cubic) Inv() Cubic {
	if a.A0 == 0 && a.A1 == 0 && a.A2 == 0 {
		panic("ring: inverse of zero cubic element")
	}
	exp := new(big.Int).Exp(big.NewInt(Q), big.NewInt(3), nil)
	exp.Sub(exp, big.NewInt(2))
	res := Cubic{1, 0, 0}
	base := a
	for i := 0; i < exp.BitLen(); i++ {
		if exp.Bit(i) == 1 {
			res = res.Mul(base)
		}
		base = base.Mul(base)
	}
	return res
}

// Sextic is a0 + a1*w + ... + a5*w^5 with w^6 = w + 1.
type Sextic struct {
	A [6]uint32
}

// NewSextic builds a Sextic from reduced coordinates.
func NewSextic(a [6]uint32) Sextic {
	for i := range a {
		a[i] %= Q
	}
	return Sextic{a}
}

// EmbedSextic lifts a base field element into the sextic ring.
func EmbedSextic(x uint32) Sextic {
	return Sextic{[6]uint32{x % Q}}
}

// Add returns a + b coordinate-wise.
func (a Sextic) Add(b Sextic) Sextic {
	var c Sextic
	for i := range c.A {
		c.A[i] = Add(a.A[i], b.A[i])
	}
	return c
}

// Sub returns a - b coordinate-wise.
func (a Sextic) Sub(b Sextic) Sextic {
	var c Sextic
	for i := range c.A {
		c.A[i] = Sub(a.A[i], b.A[i])
	}
	return c
}

// Mul multiplies in the sextic ring, reducing by w^6 = w + 1.
func (a Sextic) Mul(b Sextic) Sextic {
	var raw [11]uint64
	for i, x := range a.A {
		if x == 0 {
			continue
		}
		for j, y := range b.A {
			raw[i+j] += uint64(x) * uint64(y)
		}
	}
	var red [6]uint32
	for i := 0; i < 6; i++ {
		red[i] = uint32(raw[i] % Q)
	}
	// w^(6+k) = w^(k+1) + w^k for k = 0..4.
	for k := 4; k >= 0; k-- {
		c := uint32(raw[6+k] % Q)
		if c == 0 {
			continue
		}
		red[k] = Add(red[k], c)
		red[k+1] = Add(red[k+1], c)
	}
	return Sextic{red}
}

// IsZero reports whether a is the zero element.
func (a Sextic) IsZero() bool {
	for _, x := range a.A {
		if x != 0 {
			return false
		}
	}
	return true
}

// Pow returns a^e for a small non-negative exponent.
func (a Sextic) Pow(e uint32) Sextic {
	res := EmbedSextic(1)
	base := a
	for e > 0 {
		if e&1 == 1 {
			res = res.Mul(base)
		}
		base = base.Mul(base)
		e >>= 1
	}
	return res
}

// Inv returns a^-1 via Fermat exponentiation with exponent Q^6 - 2.
// Panics on the zero element.
func (a Sextic) Inv() Sextic {
	if a.IsZero() {
		panic("ring: inverse of zero sextic element")
	}
	exp := new(big.Int).Exp(big.NewInt(Q), big.NewInt(6), nil)
	exp.Sub(exp, big.NewInt(2))
	res := EmbedSextic(1)
	base := a
	for i := 0; i < exp.BitLen(); i++ {
		if exp.Bit(i) == 1 {
			res = res.Mul(base)
		}
		base = base.Mul(base)
	}
	return res
}

// EvalSextic evaluates p at a sextic point by Horner's rule.
func (p *Poly) EvalSextic(x Sextic) Sextic {
	res := EmbedSextic(0)
	for i := N - 1; i >= 0; i-- {
		res = res.Mul(x).Add(EmbedSextic(p[i]))
	}
	return res
}

// CheckProduct verifies the SchoolbookMul reduction identity
// a*b = quo*(X^N+1) + rem at a sextic evaluation point. A mismatching
// quadruple passes with probability at most 2N/Q^6 over the choice of
// point.
func CheckProduct(a, b, quo, rem *Poly, at Sextic) bool {
	lhs := a.EvalSextic(at).Mul(b.EvalSextic(at))
	modulus := at.Pow(N).Add(EmbedSextic(1))
	rhs := quo.EvalSextic(at).Mul(modulus).Add(rem.EvalSextic(at))
	return lhs == rhs
}
