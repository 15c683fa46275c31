package ring

// Vec is a fixed-length vector of coefficient-domain polynomials; the
// scheme uses lengths L (secret side) and K (commitment side).
type Vec []Poly

// NTTVec is a vector of evaluation-domain polynomials.
type NTTVec []NTTPoly

// Matrix is a K x L matrix of evaluation-domain polynomials, expanded
// deterministically from a seed and never serialized.
type Matrix []NTTVec

// NTT transforms every entry of v.
func (v Vec) NTT() NTTVec {
	w := make(NTTVec, len(v))
	for i := range v {
		w[i] = v[i].NTT()
	}
	return w
}

// InvNTT transforms every entry of v back to coefficient form.
func (v NTTVec) InvNTT() Vec {
	w := make(Vec, len(v))
	for i := range v {
		w[i] = v[i].InvNTT()
	}
	return w
}

// Add returns v + w componentwise. The lengths must match.
func (v Vec) Add(w Vec) Vec {
	if len(v) != len(w) {
		panic("ring: vector length mismatch")
	}
	out := make(Vec, len(v))
	for i := range v {
		out[i] = AddPoly(v[i], w[i])
	}
	return out
}

// Norm returns the largest infinity norm over the entries of v.
func (v Vec) Norm() uint32 {
	var n uint32
	for i := range v {
		if m := v[i].Norm(); m > n {
			n = m
		}
	}
	return n
}

// DotNTT computes the inner product of two evaluation-domain vectors with
// lazy uint64 accumulation and a single reduction per coefficient.
func DotNTT(a, b NTTVec) NTTPoly {
	if len(a) != len(b) {
		panic("ring: vector length mismatch")
	}
	var out NTTPoly
	for k := 0; k < N; k++ {
		var acc uint64
		for j := range a {
			acc += uint64(a[j][k]) * uint64(b[j][k])
		}
		out[k] = uint32(acc % Q)
	}
	return out
}

// MulMatVec computes the matrix-vector product A*v in the evaluation
// domain, one DotNTT per row.
func MulMatVec(A Matrix, v NTTVec) NTTVec {
	out := make(NTTVec, len(A))
	for i := range A {
		out[i] = DotNTT(A[i], v)
	}
	return out
}
