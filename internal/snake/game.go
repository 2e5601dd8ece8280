// Package snake implements the snake game state machine.
// It contains pure logic with no external dependencies (especially no Bubble
// Tea); the platform handles input mapping, timing, and rendering.
//
// All positions live on a fixed grid: the board is Width x Height
// pixel-equivalent units divided into square cells of edge Block, and every
// snake segment and fruit sits on a multiple of Block. Collision is plain
// coordinate equality, no geometric intersection needed.
package snake

import (
	"fmt"
	"math/rand"
)

// Cell is a grid-aligned coordinate pair, the unit of position for the snake
// and the fruit.
type Cell struct {
	X, Y int
}

// Direction is the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirLeft
	DirUp
	DirDown
)

// Delta returns the unit displacement for the direction. Y grows downward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirRight:
		return 1, 0
	case DirLeft:
		return -1, 0
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	}
	return 0, 0
}

// Opposite returns the reverse of the direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirRight:
		return DirLeft
	case DirLeft:
		return DirRight
	case DirUp:
		return DirDown
	default:
		return DirUp
	}
}

func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Config holds the board geometry and RNG seed for a game.
type Config struct {
	Width  int   // Board width in pixel-equivalent units
	Height int   // Board height in pixel-equivalent units
	Block  int   // Cell edge length; all movement happens in Block steps
	Seed   int64 // RNG seed for deterministic fruit placement
}

// Validate checks that the board geometry is well defined: positive
// dimensions, a positive block that divides both dimensions evenly, and
// enough room for the starting snake.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("snake: board dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Block <= 0 {
		return fmt.Errorf("snake: block size must be positive, got %d", c.Block)
	}
	if c.Width%c.Block != 0 || c.Height%c.Block != 0 {
		return fmt.Errorf("snake: block size %d must divide board %dx%d evenly", c.Block, c.Width, c.Height)
	}
	if c.Width/c.Block < 4 {
		return fmt.Errorf("snake: board width %d cannot fit the starting snake (need at least %d)", c.Width, 4*c.Block)
	}
	return nil
}

// TickResult reports the outcome of a single simulation step.
type TickResult struct {
	Alive    bool // False once the head occupies an illegal cell
	AteFruit bool // True if this step consumed the fruit
	Score    int  // Score after this step
}

// Game is the sole mutable entity: it owns the snake body, the fruit, the
// score, and the direction. Renderer and input collaborators hold no
// authoritative state.
type Game struct {
	width  int
	height int
	block  int
	rng    *rand.Rand

	body     []Cell // Head at index 0
	dir      Direction
	pending  Direction // Buffered direction applied on the next tick
	fruit    Cell
	hasFruit bool
	score    int
	over     bool
}

// New creates a game on the given board and places the starting snake.
// The configuration is rejected if it would make movement or fruit
// placement ill-defined.
func New(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		width:  cfg.Width,
		height: cfg.Height,
		block:  cfg.Block,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
	}
	g.Reset()
	return g, nil
}

// Reset restores the initial state: a 3-segment horizontal snake centered on
// the grid, no fruit, score zero, heading right. The RNG stream continues,
// so a reset game replays differently but stays deterministic per seed.
func (g *Game) Reset() {
	cx := (g.width / g.block / 2) * g.block
	cy := (g.height / g.block / 2) * g.block
	g.body = []Cell{
		{X: cx, Y: cy}, // Head
		{X: cx - g.block, Y: cy},
		{X: cx - 2*g.block, Y: cy},
	}
	g.dir = DirRight
	g.pending = DirRight
	g.hasFruit = false
	g.fruit = Cell{}
	g.score = 0
	g.over = false
}

// RequestDirection buffers a direction change for the next tick. A request
// for the exact opposite of the current direction is ignored: reversing in
// place would mean instant self-collision, so such input is treated as an
// ordinary timing accident rather than an error.
func (g *Game) RequestDirection(d Direction) {
	if d == g.dir.Opposite() {
		return
	}
	g.pending = d
}

// Tick advances the simulation by exactly one step: adopt the pending
// direction, insert the new head, consume the fruit or pop the tail, then
// check the post-move snake for self-collision and bounds. Callers must stop
// ticking once Alive is false; only Reset is valid after that.
func (g *Game) Tick() TickResult {
	g.dir = g.pending
	dx, dy := g.dir.Delta()
	head := g.body[0]
	newHead := Cell{X: head.X + dx*g.block, Y: head.Y + dy*g.block}

	g.body = append([]Cell{newHead}, g.body...)

	ate := g.hasFruit && newHead == g.fruit
	if ate {
		g.hasFruit = false
		g.score++
		// Tail retained: net growth of one segment
	} else {
		g.body = g.body[:len(g.body)-1]
	}

	if g.hitsSelf(newHead) || !g.inBounds(newHead) {
		g.over = true
	}

	return TickResult{Alive: !g.over, AteFruit: ate, Score: g.score}
}

// hitsSelf reports whether the head occupies the same cell as any other
// segment of the post-move snake.
func (g *Game) hitsSelf(head Cell) bool {
	for _, seg := range g.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// inBounds reports whether a cell lies within [0, W-Block] x [0, H-Block].
func (g *Game) inBounds(c Cell) bool {
	return c.X >= 0 && c.X <= g.width-g.block &&
		c.Y >= 0 && c.Y <= g.height-g.block
}

// EnsureFruit places a fruit if none is present, by rejection sampling:
// draw a uniformly random grid-aligned cell until it misses every snake
// segment. The board is large relative to the snake in practice, so
// acceptance is fast; if the snake somehow covers the whole grid the fruit
// stays absent instead of spinning forever.
func (g *Game) EnsureFruit() {
	if g.hasFruit {
		return
	}
	cols := g.width / g.block
	rows := g.height / g.block
	if len(g.body) >= cols*rows {
		return
	}
	for {
		c := Cell{X: g.rng.Intn(cols) * g.block, Y: g.rng.Intn(rows) * g.block}
		if !g.occupied(c) {
			g.fruit = c
			g.hasFruit = true
			return
		}
	}
}

// occupied reports whether any snake segment sits on the cell.
func (g *Game) occupied(c Cell) bool {
	for _, seg := range g.body {
		if seg == c {
			return true
		}
	}
	return false
}

// Body returns a copy of the snake's cells, head first.
func (g *Game) Body() []Cell {
	out := make([]Cell, len(g.body))
	copy(out, g.body)
	return out
}

// Head returns the snake's head cell.
func (g *Game) Head() Cell {
	return g.body[0]
}

// Fruit returns the current fruit cell and whether one is present.
func (g *Game) Fruit() (Cell, bool) {
	return g.fruit, g.hasFruit
}

// Score returns the number of fruits consumed. It never decreases.
func (g *Game) Score() int {
	return g.score
}

// Facing returns the direction the snake moved on the last tick.
func (g *Game) Facing() Direction {
	return g.dir
}

// Alive reports whether the game is still running. Once false, the state is
// terminal until Reset.
func (g *Game) Alive() bool {
	return !g.over
}

// Size returns the board dimensions in pixel-equivalent units.
func (g *Game) Size() (w, h int) {
	return g.width, g.height
}

// Block returns the cell edge length.
func (g *Game) Block() int {
	return g.block
}

// GridSize returns the board dimensions in cells.
func (g *Game) GridSize() (cols, rows int) {
	return g.width / g.block, g.height / g.block
}
