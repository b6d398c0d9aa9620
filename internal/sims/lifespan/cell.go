package lifespan

import "slices"

// Transition is the change a cell will undergo when the current generation is
// applied. It is only meaningful between the evaluate and apply phases.
type Transition uint8

const (
	// None leaves the cell untouched.
	None Transition = iota
	// WillDie kills the cell.
	WillDie
	// WillBorn gives the cell a fresh lifespan.
	WillBorn
	// WillDecay removes one generation of life. Only staged under DecayDeferred.
	WillDecay
)

func (t Transition) String() string {
	switch t {
	case None:
		return "none"
	case WillDie:
		return "will-die"
	case WillBorn:
		return "will-born"
	case WillDecay:
		return "will-decay"
	default:
		return "unknown"
	}
}

// DecayMode selects when an alive cell loses a generation of life.
type DecayMode uint8

const (
	// DecayDeferred stages the decrement and applies it with every other
	// transition, so evaluation reads a frozen previous generation.
	DecayDeferred DecayMode = iota
	// DecayInEvaluate decrements while evaluating. Cells evaluated later in
	// row-major order see the already decremented value of earlier neighbours.
	DecayInEvaluate
)

func (m DecayMode) String() string {
	if m == DecayInEvaluate {
		return "legacy"
	}
	return "deferred"
}

// ParseDecayMode maps "deferred"/"snapshot" and "legacy"/"evaluate" to a mode.
func ParseDecayMode(s string) (DecayMode, bool) {
	switch s {
	case "deferred", "snapshot":
		return DecayDeferred, true
	case "legacy", "evaluate":
		return DecayInEvaluate, true
	default:
		return DecayDeferred, false
	}
}

// Rules holds the reproduction thresholds used during evaluation.
type Rules struct {
	// MinParentsToBorn is exclusive: a dead cell needs more mature neighbours
	// than this to be born.
	MinParentsToBorn int
	// MinCycleToLiveToReproduce is exclusive: a neighbour is mature when its
	// remaining life is greater than this.
	MinCycleToLiveToReproduce int
	Decay                     DecayMode
}

// LifeView is a read-only view of remaining life by grid index.
type LifeView interface {
	RemainingAt(idx int) int
}

// Cell is one grid position. Its neighbour list is fixed at grid construction
// and refers to other cells by index.
type Cell struct {
	idx       int
	remaining int
	pending   Transition
	neighbors []int
}

// Index returns the cell's position in the grid's row-major storage.
func (c *Cell) Index() int { return c.idx }

// Remaining returns the number of generations left; 0 means dead.
func (c *Cell) Remaining() int { return c.remaining }

// Alive reports whether the cell has life left.
func (c *Cell) Alive() bool { return c.remaining > 0 }

// Pending returns the staged transition.
func (c *Cell) Pending() Transition { return c.pending }

// Neighbors returns a copy of the neighbour indices.
func (c *Cell) Neighbors() []int { return slices.Clone(c.neighbors) }

// Born assigns a fresh lifespan. On an alive cell the remaining life is
// discarded and replaced.
func (c *Cell) Born(src LifespanSource) {
	c.remaining = src.Next()
}

// Die clears the cell's remaining life.
func (c *Cell) Die() {
	c.remaining = 0
}

// Decay removes one generation of life from an alive cell.
func (c *Cell) Decay() {
	if c.remaining > 0 {
		c.remaining--
	}
}

// Evaluate stages the transition for this generation and returns it.
func (c *Cell) Evaluate(view LifeView, r Rules) Transition {
	if c.remaining == 0 {
		mature := 0
		for _, n := range c.neighbors {
			if view.RemainingAt(n) > r.MinCycleToLiveToReproduce {
				mature++
			}
		}
		if mature > r.MinParentsToBorn {
			c.pending = WillBorn
		} else {
			c.pending = None
		}
		return c.pending
	}

	if r.Decay == DecayInEvaluate {
		c.remaining--
		if c.remaining == 0 {
			c.pending = WillDie
		} else {
			c.pending = None
		}
		return c.pending
	}

	if c.remaining == 1 {
		c.pending = WillDie
	} else {
		c.pending = WillDecay
	}
	return c.pending
}

// Apply performs the staged transition and resets it to None.
func (c *Cell) Apply(src LifespanSource) {
	switch c.pending {
	case WillDie:
		c.Die()
	case WillBorn:
		c.Born(src)
	case WillDecay:
		c.Decay()
	}
	c.pending = None
}
