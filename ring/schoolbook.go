package ring

// SchoolbookMul multiplies a and b without the transform and reduces mod
// X^N+1, returning the quotient alongside the remainder so that
// a*b = quo*(X^N+1) + rem holds as polynomials over Z_Q. The remainder
// matches the NTT multiplication path bit-exactly.
func SchoolbookMul(a, b *Poly) (quo, rem Poly) {
	var s [2 * N]int64
	for i := 0; i < N; i++ {
		if a[i] == 0 {
			continue
		}
		ai := int64(a[i])
		for j := 0; j < N; j++ {
			s[i+j] += ai * int64(b[j])
		}
	}

	for i := range s {
		s[i] %= Q
	}

	for i := 0; i < N; i++ {
		quo[i] = Mod(s[N+i])
	}
	// X^N = -1, so the upper half folds in negated.
	for i := 0; i < N; i++ {
		rem[i] = Mod(s[i] - s[N+i])
	}
	return quo, rem
}
