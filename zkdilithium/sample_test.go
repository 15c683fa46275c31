package zkdilithium

import (
	"testing"

	"github.com/madars/zkdilithium-signer/ring"
	"github.com/madars/zkdilithium-signer/sponge"
	"github.com/madars/zkdilithium-signer/xof"
)

func TestSampleUniform(t *testing.T) {
	head := [16]uint32{
		5889865, 3971968, 4850004, 6999211, 2967789, 1694039, 636417, 4598392,
		7167687, 1092265, 3028014, 5070791, 5596185, 3786936, 6256060, 5896089,
	}
	tail := [16]uint32{
		1649304, 4661824, 3620918, 6844818, 2645999, 3739555, 3888682, 4274156,
		6815638, 3786571, 4509883, 4371144, 2001635, 1862166, 3110494, 3082926,
	}
	x := xof.New128()
	x.Reset(make([]byte, 32), 0)
	p := SampleUniform(x)
	for i := 0; i < 16; i++ {
		if p[i] != head[i] {
			t.Errorf("p[%d] = %d, want %d", i, p[i], head[i])
		}
		if p[ring.N-16+i] != tail[i] {
			t.Errorf("p[%d] = %d, want %d", ring.N-16+i, p[ring.N-16+i], tail[i])
		}
	}
}

func TestSampleLeqEta(t *testing.T) {
	want := [16]uint32{
		0, 7340031, 7340032, 7340032, 0, 7340032, 0, 2,
		0, 7340032, 2, 7340032, 2, 1, 7340032, 2,
	}
	x := xof.New256()
	x.Reset(make([]byte, 64), 0)
	p := SampleLeqEta(x)
	for i, w := range want {
		if p[i] != w {
			t.Errorf("p[%d] = %d, want %d", i, p[i], w)
		}
	}
	for i, c := range p {
		v := c
		if v > ring.Q/2 {
			v = ring.Q - v
		}
		if v > ring.Eta {
			t.Fatalf("coefficient %d = %d exceeds Eta", i, c)
		}
	}
}

func TestSampleInBallVector(t *testing.T) {
	pos := []int{
		11, 17, 24, 42, 50, 51, 57, 58, 61, 70, 75, 77, 88, 89, 99, 101,
		112, 149, 155, 157, 158, 164, 174, 183, 184, 187, 192, 198, 202,
		213, 217, 218, 219, 221, 222, 226, 236, 246, 252, 255,
	}
	neg := map[int]bool{
		42: true, 50: true, 51: true, 58: true, 61: true, 70: true, 75: true,
		77: true, 88: true, 89: true, 99: true, 149: true, 155: true,
		158: true, 164: true, 174: true, 192: true, 217: true, 236: true,
		252: true,
	}
	c, ok := challengePoly(make([]uint32, CTildeSize))
	if !ok {
		t.Fatal("sampler rejected the fixed transcript")
	}
	at := 0
	for i, v := range c {
		if v == 0 {
			continue
		}
		if at >= len(pos) || pos[at] != i {
			t.Fatalf("unexpected nonzero at %d", i)
		}
		want := uint32(1)
		if neg[i] {
			want = ring.Q - 1
		}
		if v != want {
			t.Errorf("c[%d] = %d, want %d", i, v, want)
		}
		at++
	}
	if at != len(pos) {
		t.Errorf("found %d nonzeros, want %d", at, len(pos))
	}
}

func TestSampleInBallWeight(t *testing.T) {
	sampled := 0
	for s := uint32(0); s < 50; s++ {
		h := sponge.New([]uint32{domChallenge, s})
		c, ok := SampleInBall(h)
		if !ok {
			continue
		}
		sampled++
		nonzero := 0
		for _, v := range c {
			if v == 0 {
				continue
			}
			nonzero++
			if v != 1 && v != ring.Q-1 {
				t.Fatalf("coefficient %d not in {1, -1}", v)
			}
		}
		if nonzero != ring.Tau {
			t.Fatalf("challenge weight %d, want %d", nonzero, ring.Tau)
		}
	}
	if sampled == 0 {
		t.Fatal("every transcript rejected")
	}
}

func TestSampleY(t *testing.T) {
	rho2 := xof.H([]byte("y seed"), 64)
	y := SampleY(rho2, 0)
	if len(y) != L {
		t.Fatalf("len(y) = %d", len(y))
	}
	if y.Norm() > ring.Gamma1 {
		t.Errorf("norm %d exceeds Gamma1", y.Norm())
	}
	y2 := SampleY(rho2, 0)
	for i := range y {
		if y[i] != y2[i] {
			t.Fatal("SampleY is not deterministic")
		}
	}
	y3 := SampleY(rho2, L)
	if y[0] == y3[0] {
		t.Error("different nonces produced the same mask")
	}
}

func TestSampleMatrixDeterministic(t *testing.T) {
	rho := make([]byte, 32)
	rho[0] = 1
	a := SampleMatrix(rho)
	b := SampleMatrix(rho)
	for i := range a {
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				t.Fatal("SampleMatrix is not deterministic")
			}
		}
	}
	if a[0][0] == a[0][1] || a[0][0] == a[1][0] {
		t.Error("matrix entries repeat across nonces")
	}
}

func TestSampleSecretBounds(t *testing.T) {
	s1, s2 := SampleSecret(make([]byte, 64))
	if len(s1) != L || len(s2) != K {
		t.Fatalf("lengths %d, %d", len(s1), len(s2))
	}
	if s1.Norm() > ring.Eta || s2.Norm() > ring.Eta {
		t.Error("secret exceeds Eta")
	}
}
