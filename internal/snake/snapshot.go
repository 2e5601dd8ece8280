package snake

// Phase is the coarse game phase.
type Phase string

const (
	PhaseRunning Phase = "running"
	PhaseOver    Phase = "over"
)

// Snapshot captures the complete observable game state for determinism
// testing and reset-equivalence checks.
type Snapshot struct {
	Phase    Phase
	Score    int
	Body     []Cell
	Dir      Direction
	Fruit    Cell
	HasFruit bool
}

// Snapshot returns a value copy of the current state.
func (g *Game) Snapshot() Snapshot {
	phase := PhaseRunning
	if g.over {
		phase = PhaseOver
	}
	return Snapshot{
		Phase:    phase,
		Score:    g.score,
		Body:     g.Body(),
		Dir:      g.dir,
		Fruit:    g.fruit,
		HasFruit: g.hasFruit,
	}
}
