package lifespan

import "testing"

func TestRandomLifespanBounds(t *testing.T) {
	r := NewRandomLifespan(5, 10)
	for i := 0; i < 5000; i++ {
		if v := r.Next(); v < MinLifespan || v > 10 {
			t.Fatalf("lifespan %d outside [2,10]", v)
		}
	}
}

func TestRandomLifespanReproducible(t *testing.T) {
	a := NewRandomLifespan(1234, 10)
	b := NewRandomLifespan(1234, 10)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("draw %d differs for identical seeds", i)
		}
	}
}

func TestRandomLifespanClampsMax(t *testing.T) {
	r := NewRandomLifespan(1, 0)
	if r.Max() != MinLifespan || r.Next() != MinLifespan {
		t.Fatalf("max below minimum should clamp to %d", MinLifespan)
	}
	r.SetMax(3)
	for i := 0; i < 100; i++ {
		if v := r.Next(); v != 2 && v != 3 {
			t.Fatalf("got %d after SetMax(3)", v)
		}
	}
}

func TestBornLifespansWithinBounds(t *testing.T) {
	g := mustGrid(t, 15, 15, DecayDeferred, NewRandomLifespan(8, 10))
	g.SeedDepth3(mustCell(t, g, 7, 7))
	for i := range g.cells {
		if life := g.cells[i].Remaining(); life != 0 && (life < 2 || life > 10) {
			t.Fatalf("cell %d born with %d", i, life)
		}
	}
}
