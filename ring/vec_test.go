package ring

import (
	"math/rand"
	"testing"
)

func TestVecRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(40))
	v := make(Vec, 4)
	for i := range v {
		v[i] = randomPoly(rnd)
	}
	back := v.NTT().InvNTT()
	for i := range v {
		if back[i] != v[i] {
			t.Fatalf("vector NTT round trip fails at %d", i)
		}
	}
}

func TestDotNTT(t *testing.T) {
	rnd := rand.New(rand.NewSource(41))
	a := make(Vec, 4)
	b := make(Vec, 4)
	for i := range a {
		a[i] = randomPoly(rnd)
		b[i] = randomPoly(rnd)
	}
	aHat, bHat := a.NTT(), b.NTT()

	var want NTTPoly
	for i := range a {
		p := MulNTT(aHat[i], bHat[i])
		want = AddPoly(want, p)
	}
	if got := DotNTT(aHat, bHat); got != want {
		t.Fatal("DotNTT disagrees with per-component sum")
	}
}

func TestMulMatVec(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	A := make(Matrix, 2)
	for i := range A {
		A[i] = make(NTTVec, 3)
		for j := range A[i] {
			A[i][j] = NTTPoly(randomPoly(rnd))
		}
	}
	v := make(Vec, 3)
	for i := range v {
		v[i] = randomPoly(rnd)
	}
	vHat := v.NTT()

	got := MulMatVec(A, vHat)
	for i := range A {
		if got[i] != DotNTT(A[i], vHat) {
			t.Fatalf("MulMatVec row %d disagrees with DotNTT", i)
		}
	}
}

func TestVecNorm(t *testing.T) {
	v := make(Vec, 2)
	v[0][10] = 5
	v[1][20] = Q - 100 // centered value -100
	if got := v.Norm(); got != 100 {
		t.Errorf("Norm = %d, want 100", got)
	}
}
