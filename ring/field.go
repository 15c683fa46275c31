package ring

// Mod returns x mod Q for a possibly negative x.
func Mod(x int64) uint32 {
	x %= Q
	if x < 0 {
		x += Q
	}
	return uint32(x)
}

// Add returns (a + b) mod Q.
func Add(a, b uint32) uint32 {
	s := a + b
	if s >= Q {
		s -= Q
	}
	return s
}

// Sub returns (a - b) mod Q.
func Sub(a, b uint32) uint32 {
	if a >= b {
		return a - b
	}
	return Q - b + a
}

// Mul returns (a * b) mod Q.
func Mul(a, b uint32) uint32 {
	return uint32(uint64(a) * uint64(b) % Q)
}

// Neg returns (-a) mod Q.
func Neg(a uint32) uint32 {
	if a == 0 {
		return 0
	}
	return Q - a
}

// Inv returns a^-1 mod Q by Fermat exponentiation with an addition chain
// for Q-2 = 0b110_11111111111111111111 (a header "110" followed by five
// "1111" blocks). Inverting zero is a contract violation; use BatchInv for
// the zero-preserving S-box semantics.
func Inv(a uint32) uint32 {
	if a == 0 {
		panic("ring: inverse of zero")
	}

	x2 := Mul(a, a)
	x3 := Mul(x2, a)
	x6 := Mul(x3, x3)
	x12 := Mul(x6, x6)
	x15 := Mul(x12, x3)

	res := x6
	for i := 0; i < 5; i++ {
		res = Mul(res, res)
		res = Mul(res, res)
		res = Mul(res, res)
		res = Mul(res, res)
		res = Mul(res, x15)
	}
	return res
}

// BatchInv inverts every element of xs in place using Montgomery's trick:
// one inversion plus 3(n-1) multiplications. Zero entries stay zero.
func BatchInv(xs []uint32) {
	n := len(xs)
	if n == 0 {
		return
	}

	prods := make([]uint32, n)
	prods[0] = xs[0]
	if prods[0] == 0 {
		prods[0] = 1
	}
	for i := 1; i < n; i++ {
		if xs[i] == 0 {
			prods[i] = prods[i-1]
		} else {
			prods[i] = Mul(prods[i-1], xs[i])
		}
	}

	inv := Inv(prods[n-1])
	for i := n - 1; i > 0; i-- {
		if xs[i] == 0 {
			continue
		}
		old := xs[i]
		xs[i] = Mul(inv, prods[i-1])
		inv = Mul(inv, old)
	}
	if xs[0] != 0 {
		xs[0] = inv
	}
}

// Exp returns a^e mod Q by binary exponentiation.
func Exp(a, e uint32) uint32 {
	res := uint64(1)
	base := uint64(a)
	for e > 0 {
		if e&1 == 1 {
			res = res * base % Q
		}
		base = base * base % Q
		e >>= 1
	}
	return uint32(res)
}

// Brv reverses the bits of an 8-bit value, used to order the twist tables.
func Brv(x uint8) uint8 {
	x = x&0xF0>>4 | x&0x0F<<4
	x = x&0xCC>>2 | x&0x33<<2
	x = x&0xAA>>1 | x&0x55<<1
	return x
}

// Montgomery form helpers, R = 2^32. MulMont(aM, b) returns a*b in plain
// form when exactly one operand is in Montgomery form, and (a*b)M when both
// are.

const (
	// qInvNeg = -Q^-1 mod 2^32.
	qInvNeg uint32 = 7340031
	// r2ModQ = 2^64 mod Q.
	r2ModQ = 3338324
)

// MulMont computes the Montgomery reduction of a*b.
func MulMont(a, b uint32) uint32 {
	t := uint64(a) * uint64(b)
	m := uint32(t) * qInvNeg
	u := (t + uint64(m)*Q) >> 32
	if u >= Q {
		u -= Q
	}
	return uint32(u)
}

// ToMont converts a to Montgomery form a*R mod Q.
func ToMont(a uint32) uint32 {
	return MulMont(a, r2ModQ)
}

// FromMont converts aM back to plain form.
func FromMont(aM uint32) uint32 {
	return MulMont(aM, 1)
}
