package core

import "testing"

func TestIntRangeBounds(t *testing.T) {
	r := NewRNG(7)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v := r.IntRange(2, 10)
		if v < 2 || v > 10 {
			t.Fatalf("IntRange(2,10) produced %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 9 {
		t.Fatalf("expected all 9 values to appear, saw %d", len(seen))
	}
	if got := r.IntRange(4, 4); got != 4 {
		t.Fatalf("degenerate range should return lo, got %d", got)
	}
}

func TestSeedRestartsSequence(t *testing.T) {
	r := NewRNG(42)
	first := []int{r.IntRange(0, 1000), r.IntRange(0, 1000), r.IntRange(0, 1000)}
	r.Seed(42)
	for i, want := range first {
		if got := r.IntRange(0, 1000); got != want {
			t.Fatalf("draw %d after reseed = %d, want %d", i, got, want)
		}
	}
}
