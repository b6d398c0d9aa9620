package lifespan

import "testing"

type lifeSlice []int

func (l lifeSlice) RemainingAt(idx int) int { return l[idx] }

func TestBornOverwritesRemainingLife(t *testing.T) {
	c := &Cell{}
	c.Born(fixed(6))
	if c.Remaining() != 6 {
		t.Fatalf("expected 6, got %d", c.Remaining())
	}
	c.Born(fixed(3))
	if c.Remaining() != 3 {
		t.Fatalf("reseed should replace remaining life, got %d", c.Remaining())
	}
}

func TestDieAndDecay(t *testing.T) {
	c := &Cell{remaining: 2}
	c.Decay()
	if c.Remaining() != 1 {
		t.Fatalf("decay: got %d, want 1", c.Remaining())
	}
	c.Die()
	c.Die()
	if c.Alive() {
		t.Fatal("cell should be dead after Die")
	}
	c.Decay()
	if c.Remaining() != 0 {
		t.Fatalf("decay on a dead cell must not underflow, got %d", c.Remaining())
	}
}

func TestEvaluateDeadCellBirthThreshold(t *testing.T) {
	cases := []struct {
		name   string
		lives  lifeSlice
		expect Transition
	}{
		{"three mature", lifeSlice{3, 5, 9, 0, 0}, WillBorn},
		{"two mature", lifeSlice{3, 5, 0, 0, 0}, None},
		{"three at threshold", lifeSlice{2, 2, 2, 0, 0}, None},
		{"four mature", lifeSlice{3, 3, 3, 3, 0}, WillBorn},
	}
	for _, tc := range cases {
		c := &Cell{neighbors: []int{0, 1, 2, 3, 4}}
		if got := c.Evaluate(tc.lives, defaultRules(DecayDeferred)); got != tc.expect {
			t.Errorf("%s: got %s, want %s", tc.name, got, tc.expect)
		}
	}
}

func TestEvaluateAliveCellDeferred(t *testing.T) {
	c := &Cell{remaining: 4}
	if got := c.Evaluate(lifeSlice{}, defaultRules(DecayDeferred)); got != WillDecay {
		t.Fatalf("got %s, want will-decay", got)
	}
	if c.Remaining() != 4 {
		t.Fatalf("deferred evaluate must not mutate life, got %d", c.Remaining())
	}
	c.Apply(fixed(9))
	if c.Remaining() != 3 || c.Pending() != None {
		t.Fatalf("after apply: remaining=%d pending=%s", c.Remaining(), c.Pending())
	}

	c = &Cell{remaining: 1}
	if got := c.Evaluate(lifeSlice{}, defaultRules(DecayDeferred)); got != WillDie {
		t.Fatalf("last generation should stage will-die, got %s", got)
	}
}

func TestEvaluateAliveCellInEvaluate(t *testing.T) {
	c := &Cell{remaining: 4}
	if got := c.Evaluate(lifeSlice{}, defaultRules(DecayInEvaluate)); got != None {
		t.Fatalf("got %s, want none", got)
	}
	if c.Remaining() != 3 {
		t.Fatalf("legacy evaluate decrements immediately, got %d", c.Remaining())
	}

	c = &Cell{remaining: 1}
	if got := c.Evaluate(lifeSlice{}, defaultRules(DecayInEvaluate)); got != WillDie {
		t.Fatalf("got %s, want will-die", got)
	}
}

func TestApplyResetsPending(t *testing.T) {
	for _, tr := range []Transition{None, WillDie, WillBorn, WillDecay} {
		c := &Cell{remaining: 3, pending: tr}
		c.Apply(fixed(7))
		if c.Pending() != None {
			t.Errorf("apply %s left pending %s", tr, c.Pending())
		}
	}
}

func TestParseDecayMode(t *testing.T) {
	if m, ok := ParseDecayMode("legacy"); !ok || m != DecayInEvaluate {
		t.Fatalf("legacy parsed as %v %v", m, ok)
	}
	if m, ok := ParseDecayMode("snapshot"); !ok || m != DecayDeferred {
		t.Fatalf("snapshot parsed as %v %v", m, ok)
	}
	if _, ok := ParseDecayMode("sideways"); ok {
		t.Fatal("unknown mode should not parse")
	}
}
