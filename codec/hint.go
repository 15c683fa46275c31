package codec

import "github.com/madars/zkdilithium-signer/ring"

// PackHint encodes a hint vector with at most omega set positions into
// omega+len(hints) bytes: the positions of set coefficients in order,
// followed by one running count per polynomial.
func PackHint(hints []ring.Poly, omega int) []byte {
	out := make([]byte, omega+len(hints))
	idx := 0
	for i := range hints {
		for j := 0; j < ring.N; j++ {
			if hints[i][j] != 0 {
				out[idx] = byte(j)
				idx++
			}
		}
		out[omega+i] = byte(idx)
	}
	return out
}

// UnpackHint decodes a hint vector of k polynomials. It rejects malleable
// encodings: counts must be nondecreasing and at most omega, positions
// within a polynomial strictly increasing, and unused bytes zero.
func UnpackHint(bs []byte, k, omega int) ([]ring.Poly, bool) {
	hints := make([]ring.Poly, k)
	idx := 0
	for i := 0; i < k; i++ {
		limit := int(bs[omega+i])
		if limit < idx || limit > omega {
			return nil, false
		}
		prev := idx
		for idx < limit {
			pos := bs[idx]
			if idx > prev && bs[idx-1] >= pos {
				return nil, false
			}
			hints[i][pos] = 1
			idx++
		}
	}
	for t := idx; t < omega; t++ {
		if bs[t] != 0 {
			return nil, false
		}
	}
	return hints, true
}
