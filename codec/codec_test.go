package codec

import (
	"bytes"
	"encoding/hex"
	"math/rand"
	"testing"

	"github.com/madars/zkdilithium-signer/ring"
)

func TestPackFes(t *testing.T) {
	in := []uint32{0, 1, 100, 1000, 7340032, 3670016}
	want, _ := hex.DecodeString("000000010000640000e80300000070000038")
	got := PackFes(in)
	if !bytes.Equal(got, want) {
		t.Errorf("PackFes = %x, want %x", got, want)
	}
	back := UnpackFes(got)
	for i := range in {
		if back[i] != in[i] {
			t.Errorf("UnpackFes[%d] = %d, want %d", i, back[i], in[i])
		}
	}
}

func TestUnpackFesReduces(t *testing.T) {
	// 0xFFFFFF is above Q and must come back reduced.
	got := UnpackFes([]byte{0xFF, 0xFF, 0xFF})
	if got[0] != (1<<24-1)%ring.Q {
		t.Errorf("UnpackFes(ffffff) = %d", got[0])
	}
}

func TestBytesToFes(t *testing.T) {
	cases := []struct {
		in   []byte
		want []uint32
	}{
		{[]byte("hello"), []uint32{26319, 28122, 112}},
		{[]byte{0xFF, 0xFF}, []uint32{66048}},
		{[]byte("h"), []uint32{105}},
		{[]byte("h\x00"), []uint32{362}},
		{nil, []uint32{}},
	}
	for _, c := range cases {
		got := BytesToFes(c.in)
		if len(got) != len(c.want) {
			t.Errorf("BytesToFes(%q) has length %d, want %d", c.in, len(got), len(c.want))
			continue
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("BytesToFes(%q)[%d] = %d, want %d", c.in, i, got[i], c.want[i])
			}
		}
	}
}

func randomModQ(rnd *rand.Rand, lo, hi int64) uint32 {
	return ring.Mod(lo + rnd.Int63n(hi-lo))
}

func TestPolyLeqEtaRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(60))
	for trial := 0; trial < 10; trial++ {
		var p ring.Poly
		for i := range p {
			p[i] = randomModQ(rnd, -ring.Eta, ring.Eta+1)
		}
		bs := PackPolyLeqEta(&p)
		if len(bs) != PolyLeqEtaSize {
			t.Fatalf("packed length %d", len(bs))
		}
		if got := UnpackPolyLeqEta(bs); got != p {
			t.Fatalf("eta round trip fails on trial %d", trial)
		}
	}
}

func TestPolyLeGamma1RoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(61))
	for trial := 0; trial < 10; trial++ {
		var p ring.Poly
		for i := range p {
			p[i] = randomModQ(rnd, -ring.Gamma1+1, ring.Gamma1+1)
		}
		bs := PackPolyLeGamma1(&p)
		if len(bs) != PolyLeGamma1Size {
			t.Fatalf("packed length %d", len(bs))
		}
		if got := UnpackPolyLeGamma1(bs); got != p {
			t.Fatalf("gamma1 round trip fails on trial %d", trial)
		}
	}
}

func TestPolyT1RoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(62))
	for trial := 0; trial < 10; trial++ {
		var p ring.Poly
		for i := range p {
			// High parts after Power2Round lie below ceil(Q / 2^D).
			p[i] = uint32(rnd.Int63n(3585))
		}
		bs := PackPolyT1(&p)
		if len(bs) != PolyT1Size {
			t.Fatalf("packed length %d", len(bs))
		}
		if got := UnpackPolyT1(bs); got != p {
			t.Fatalf("t1 round trip fails on trial %d", trial)
		}
	}
}

func TestPolyT0RoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(63))
	const half = 1 << (ring.D - 1)
	for trial := 0; trial < 10; trial++ {
		var p ring.Poly
		for i := range p {
			p[i] = randomModQ(rnd, -half+1, half+1)
		}
		bs := PackPolyT0(&p)
		if len(bs) != PolyT0Size {
			t.Fatalf("packed length %d", len(bs))
		}
		if got := UnpackPolyT0(bs); got != p {
			t.Fatalf("t0 round trip fails on trial %d", trial)
		}
	}
}

func TestPolyFullEncoding(t *testing.T) {
	rnd := rand.New(rand.NewSource(65))
	var p ring.Poly
	for i := range p {
		p[i] = uint32(rnd.Int63n(ring.Q))
	}
	bs := PackPoly(&p)
	got, err := UnpackPoly(bs)
	if err != nil {
		t.Fatalf("UnpackPoly: %v", err)
	}
	if got != p {
		t.Fatal("full 3-byte round trip fails")
	}
	if _, err := UnpackPoly(bs[:len(bs)-1]); err == nil {
		t.Error("truncated encoding accepted")
	}

	// The t1/t0 split must carry the same polynomial as the full
	// encoding.
	var t1, t0 ring.Poly
	for i := range p {
		r1, r0 := ring.Power2Round(p[i])
		t1[i] = r1
		t0[i] = ring.Mod(int64(r0))
	}
	u1 := UnpackPolyT1(PackPolyT1(&t1))
	u0 := UnpackPolyT0(PackPolyT0(&t0))
	for i := range p {
		if ring.Add(ring.Mod(int64(u1[i])<<ring.D), u0[i]) != got[i] {
			t.Fatalf("split encoding disagrees at coefficient %d", i)
		}
	}
}

func TestHintRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(64))
	const k, omega = 4, 80
	for trial := 0; trial < 10; trial++ {
		hints := make([]ring.Poly, k)
		weight := rnd.Intn(omega + 1)
		for w := 0; w < weight; w++ {
			hints[rnd.Intn(k)][rnd.Intn(ring.N)] = 1
		}
		bs := PackHint(hints, omega)
		if len(bs) != omega+k {
			t.Fatalf("packed length %d", len(bs))
		}
		got, ok := UnpackHint(bs, k, omega)
		if !ok {
			t.Fatalf("valid hint rejected on trial %d", trial)
		}
		for i := range hints {
			if got[i] != hints[i] {
				t.Fatalf("hint round trip fails on trial %d, poly %d", trial, i)
			}
		}
	}
}

func TestHintRejectsMalformed(t *testing.T) {
	const k, omega = 4, 80
	hints := make([]ring.Poly, k)
	hints[0][3] = 1
	hints[0][7] = 1
	hints[2][200] = 1
	good := PackHint(hints, omega)

	if _, ok := UnpackHint(good, k, omega); !ok {
		t.Fatal("canonical encoding rejected")
	}

	// Positions out of order within a polynomial.
	bad := append([]byte{}, good...)
	bad[0], bad[1] = bad[1], bad[0]
	if _, ok := UnpackHint(bad, k, omega); ok {
		t.Error("out-of-order positions accepted")
	}

	// Decreasing cumulative count.
	bad = append([]byte{}, good...)
	bad[omega+3] = bad[omega+2] - 1
	if _, ok := UnpackHint(bad, k, omega); ok {
		t.Error("decreasing count accepted")
	}

	// Count above omega.
	bad = append([]byte{}, good...)
	bad[omega+3] = omega + 1
	if _, ok := UnpackHint(bad, k, omega); ok {
		t.Error("count above omega accepted")
	}

	// Nonzero padding in the unused position bytes.
	bad = append([]byte{}, good...)
	bad[omega-1] = 99
	if _, ok := UnpackHint(bad, k, omega); ok {
		t.Error("nonzero padding accepted")
	}
}
