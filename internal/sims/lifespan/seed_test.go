package lifespan

import "testing"

func TestSeedDepth1StampsCentreAndNeighbours(t *testing.T) {
	g := mustGrid(t, 5, 5, DecayDeferred, fixed(5))
	g.SeedDepth1(mustCell(t, g, 2, 2))

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			inBlock := x >= 1 && x <= 3 && y >= 1 && y <= 3
			got := mustCell(t, g, x, y).Remaining()
			if inBlock && got != 5 {
				t.Fatalf("cell (%d,%d) = %d, want 5", x, y, got)
			}
			if !inBlock && got != 0 {
				t.Fatalf("cell (%d,%d) = %d, want dead", x, y, got)
			}
		}
	}
	if g.AliveCount() != 9 {
		t.Fatalf("alive count %d, want 9", g.AliveCount())
	}
}

func TestSeedDepthReach(t *testing.T) {
	cases := []struct {
		depth int
		alive int
	}{
		{0, 1},
		{1, 9},
		{2, 25},
		{3, 49},
	}
	for _, tc := range cases {
		g := mustGrid(t, 9, 9, DecayDeferred, fixed(4))
		g.Seed(mustCell(t, g, 4, 4), tc.depth)
		if got := g.AliveCount(); got != tc.alive {
			t.Errorf("depth %d: alive %d, want %d", tc.depth, got, tc.alive)
		}
	}
}

func TestSeedDepthWrappersMatchSeed(t *testing.T) {
	g := mustGrid(t, 9, 9, DecayDeferred, fixed(4))
	g.SeedDepth2(mustCell(t, g, 0, 0))
	if got := g.AliveCount(); got != 9 {
		t.Fatalf("depth 2 from a corner: alive %d, want 9", got)
	}
	g.Clear()
	g.SeedDepth3(mustCell(t, g, 4, 4))
	if got := g.AliveCount(); got != 49 {
		t.Fatalf("depth 3: alive %d, want 49", got)
	}
}

// The recursion re-borns neighbours, so depth 2 draws 1 + 8*(1+1+8) values
// on an interior cell.
func TestSeedDrawCount(t *testing.T) {
	src := fixed(4)
	g := mustGrid(t, 9, 9, DecayDeferred, src)
	g.SeedDepth2(mustCell(t, g, 4, 4))
	if src.calls != 81 {
		t.Fatalf("depth 2 drew %d lifespans, want 81", src.calls)
	}
}

func TestReseedOverwritesOverlap(t *testing.T) {
	src := fixed(4)
	g := mustGrid(t, 6, 6, DecayDeferred, src)
	g.SeedDepth1(mustCell(t, g, 1, 1))
	src.values = []int{9}
	g.SeedDepth1(mustCell(t, g, 2, 2))

	for y := 0; y <= 3; y++ {
		for x := 0; x <= 3; x++ {
			first := x <= 2 && y <= 2
			second := x >= 1 && y >= 1
			got := mustCell(t, g, x, y).Remaining()
			switch {
			case second && got != 9:
				t.Fatalf("cell (%d,%d) = %d, second stamp should win with 9", x, y, got)
			case first && !second && got != 4:
				t.Fatalf("cell (%d,%d) = %d, want 4 from the first stamp", x, y, got)
			}
		}
	}
}

func TestScreenToGridClamps(t *testing.T) {
	g := mustGrid(t, 160, 160, DecayDeferred, fixed(5))
	vp := Viewport{ScreenWidth: 800, ScreenHeight: 800, CellPixelSize: 5}
	cases := []struct {
		px, py int
		x, y   int
	}{
		{0, 0, 0, 0},
		{12, 7, 2, 1},
		{799, 799, 159, 159},
		{-3, 40, 0, 8},
		{5000, -1, 159, 0},
	}
	for _, tc := range cases {
		x, y := g.ScreenToGrid(tc.px, tc.py, vp)
		if x != tc.x || y != tc.y {
			t.Errorf("ScreenToGrid(%d,%d) = (%d,%d), want (%d,%d)", tc.px, tc.py, x, y, tc.x, tc.y)
		}
	}
}

func TestScreenToGridDerivesCellSize(t *testing.T) {
	g := mustGrid(t, 10, 20, DecayDeferred, fixed(5))
	vp := Viewport{ScreenWidth: 100, ScreenHeight: 100}
	x, y := g.ScreenToGrid(35, 35, vp)
	if x != 3 || y != 7 {
		t.Fatalf("got (%d,%d), want (3,7)", x, y)
	}
	c := g.CellFromScreenCoordinate(35, 35, vp)
	if c.Index() != 7*10+3 {
		t.Fatalf("cell index %d", c.Index())
	}
}
