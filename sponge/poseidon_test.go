package sponge

import "testing"

func TestRoundConstants(t *testing.T) {
	head := [16]uint32{
		662000, 7104925, 2304656, 2330809, 452951, 1722141, 5334010, 7087604,
		5110463, 6023804, 3061965, 6087945, 3740272, 284272, 4421217, 559188,
	}
	tail := [4]uint32{3711379, 6769490, 2272381, 1259025}
	for i, w := range head {
		if RCs[i] != w {
			t.Errorf("RCs[%d] = %d, want %d", i, RCs[i], w)
		}
	}
	n := len(RCs)
	for i, w := range tail {
		if RCs[n-4+i] != w {
			t.Errorf("RCs[%d] = %d, want %d", n-4+i, RCs[n-4+i], w)
		}
	}
}

func TestPermute(t *testing.T) {
	want := [T]uint32{
		6525793, 2817790, 5538989, 1140645, 1838881, 2536727, 6768730,
		4709337, 6955613, 2401101, 1387526, 5346661, 1137806, 7270459,
		1552970, 4071298, 3931520, 4509604, 1434920, 2477273, 4595089,
		4960924, 2665912, 5601770, 3176785, 6236514, 4336216, 2469459,
		2737160, 6481909, 5295937, 1830143, 7322777, 3396423, 2354672,
	}
	state := make([]uint32, T)
	for i := range state {
		state[i] = uint32(i)
	}
	Permute(state)
	for i, w := range want {
		if state[i] != w {
			t.Errorf("state[%d] = %d, want %d", i, state[i], w)
		}
	}
}

func TestSpongeRead(t *testing.T) {
	want := [12]uint32{
		1948781, 4026402, 5373296, 2459025, 3075965, 1506296,
		229209, 7105271, 5926873, 2350085, 6176282, 5229836,
	}
	h := New([]uint32{1, 2, 3})
	got := h.Read(12)
	for i, w := range want {
		if got[i] != w {
			t.Errorf("Read[%d] = %d, want %d", i, got[i], w)
		}
	}
}

func TestSpongeSegments(t *testing.T) {
	// A permute between segments must give a different transcript than
	// absorbing the concatenation.
	a := New([]uint32{1, 2})
	a.Write([]uint32{3})
	plain := a.Read(4)

	b := New([]uint32{1, 2})
	b.Permute()
	b.Write([]uint32{3})
	split := b.Read(4)

	same := true
	for i := range plain {
		if plain[i] != split[i] {
			same = false
		}
	}
	if same {
		t.Error("segment separator did not change the transcript")
	}
}

func TestSpongeLongRead(t *testing.T) {
	// Reads crossing the rate boundary must be consistent with two short
	// reads.
	a := New([]uint32{7})
	long := a.Read(Rate + 5)

	b := New([]uint32{7})
	first := b.Read(Rate)
	rest := b.Read(5)
	for i := 0; i < Rate; i++ {
		if long[i] != first[i] {
			t.Fatalf("element %d differs between long and split reads", i)
		}
	}
	for i := 0; i < 5; i++ {
		if long[Rate+i] != rest[i] {
			t.Fatalf("element %d differs after the rate boundary", Rate+i)
		}
	}
}

func TestWriteAfterReadPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on write after read")
		}
	}()
	h := New([]uint32{1})
	h.Read(1)
	h.Write([]uint32{2})
}
