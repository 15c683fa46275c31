package ring

// Decompose splits r into (r0, r1) with r = r1*2*Gamma2 + r0 (mod Q) and r0
// centered in (-Gamma2, Gamma2]. The edge r - r0 = Q-1 folds into bucket 0
// with r0 decremented, so r1 always lies in [0, Buckets).
func Decompose(r uint32) (r0 int32, r1 uint32) {
	r0 = int32(r % (2 * Gamma2))
	if r0 > Gamma2 {
		r0 -= 2 * Gamma2
	}
	if r-uint32(r0) == Q-1 {
		return r0 - 1, 0
	}
	return r0, (r - uint32(r0)) / (2 * Gamma2)
}

// HighBits returns the r1 part of Decompose.
func HighBits(r uint32) uint32 {
	_, r1 := Decompose(r)
	return r1
}

// Power2Round splits r into (r1, r0) with r = r1*2^D + r0 and r0 centered
// in (-2^(D-1), 2^(D-1)].
func Power2Round(r uint32) (r1 uint32, r0 int32) {
	const half = 1 << (D - 1)
	r0 = int32(r % (1 << D))
	if r0 > half {
		r0 -= 1 << D
	}
	return (r - uint32(r0)) >> D, r0
}

// MakeHint returns 1 iff adding z to r changes the high-order part.
func MakeHint(z, r uint32) uint32 {
	if HighBits(Add(r, z)) != HighBits(r) {
		return 1
	}
	return 0
}

// UseHint recovers HighBits(r + z) from r = (r+z) itself and the hint bit
// produced by MakeHint(-z, r+z), for any |z| <= Gamma2. The bucket index
// moves by one mod Buckets in the direction of the low part's sign.
func UseHint(h, r uint32) uint32 {
	r0, r1 := Decompose(r)
	if h == 0 {
		return r1
	}
	if r0 > 0 {
		if r1 == Buckets-1 {
			return 0
		}
		return r1 + 1
	}
	if r1 == 0 {
		return Buckets - 1
	}
	return r1 - 1
}
