package model

import (
	"crypto/md5"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

const (
	// DefaultDeviation is the half-width of the random seeding window on an unbounded grid
	DefaultDeviation = 5
	// MaxDeviation keeps the random window width 2*d representable as an int
	MaxDeviation = math.MaxInt / 2

	historySize = 5
)

// Grid is the Game of Life engine. It owns the live cells of the current
// generation and, when bounded, the dimensions of the field.
type Grid struct {
	cells      CellSet
	bounds     Bounds
	bounded    bool
	generation int

	rng       *rand.Rand
	deviation int
	scratch   *SetPool

	history []string // Store recent grid states for cycle detection
}

// Option configures a Grid at construction time
type Option func(*Grid)

// WithRand sets the random source used by RandomSeed
func WithRand(r *rand.Rand) Option {
	return func(g *Grid) {
		g.rng = r
	}
}

// WithDeviation sets the window [-d, d) used by RandomSeed on an unbounded grid.
// Non-positive values are ignored and values above MaxDeviation are clamped.
func WithDeviation(d int) Option {
	return func(g *Grid) {
		if d > 0 {
			g.deviation = min(d, MaxDeviation)
		}
	}
}

// NewRand returns a PCG-backed source. A zero seed picks one from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// NewGrid creates an engine running on the unbounded plane
func NewGrid(opts ...Option) *Grid {
	g := &Grid{
		cells:     CellSet{},
		deviation: DefaultDeviation,
		scratch:   NewSetPool(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = NewRand(0)
	}
	return g
}

// NewBoundedGrid creates an engine on a width x height field without wraparound
func NewBoundedGrid(width, height int, opts ...Option) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("grid dimensions must be positive, got %dx%d", width, height)
	}
	if width > math.MaxInt/height {
		return nil, errors.Errorf("grid of %dx%d cells is too large", width, height)
	}
	g := NewGrid(opts...)
	g.bounds = Bounds{Width: width, Height: height}
	g.bounded = true
	return g, nil
}

// Bounds returns the field dimensions and whether the grid is bounded
func (g *Grid) Bounds() (Bounds, bool) {
	return g.bounds, g.bounded
}

// Cells returns the live cells of the current generation. The set is
// replaced, never modified, by later steps; callers must not modify it.
func (g *Grid) Cells() CellSet {
	return g.cells
}

// Alive reports whether the cell at (x, y) is alive
func (g *Grid) Alive(x, y int) bool {
	return g.cells.Contains(Coord{X: x, Y: y})
}

// Len returns the number of live cells
func (g *Grid) Len() int {
	return len(g.cells)
}

// Generation returns how many steps have been applied
func (g *Grid) Generation() int {
	return g.generation
}

// CountNeighbors counts live cells at Chebyshev distance 1 from c. On a
// bounded grid, neighbors outside the field do not exist.
func (g *Grid) CountNeighbors(c Coord) int {
	count := 0
	for _, o := range rules.Neighborhood {
		n := c.Offset(o)
		if g.bounded && !g.bounds.Contains(n) {
			continue
		}
		if g.cells.Contains(n) {
			count++
		}
	}
	return count
}

// candidates calls fn once for every cell whose state may change this step
func (g *Grid) candidates(fn func(Coord)) {
	if g.bounded {
		for y := range g.bounds.Height {
			for x := range g.bounds.Width {
				fn(Coord{X: x, Y: y})
			}
		}
		return
	}

	seen := g.scratch.Get()
	defer g.scratch.Put(seen)
	for c := range g.cells {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				n := Coord{X: c.X + dx, Y: c.Y + dy}
				if seen.Contains(n) {
					continue
				}
				seen[n] = struct{}{}
				fn(n)
			}
		}
	}
}

// Step computes the next generation and makes it current. Every count is
// taken against the previous generation, which is left untouched.
func (g *Grid) Step() CellSet {
	next := make(CellSet, len(g.cells))
	g.candidates(func(c Coord) {
		if rules.ApplyConwayRules(g.CountNeighbors(c), g.cells.Contains(c)) {
			next[c] = struct{}{}
		}
	})

	g.cells = next
	g.generation++
	return next
}

// Seed marks the given cells alive in addition to the current ones. On a
// bounded grid nothing is changed if any cell is out of range.
func (g *Grid) Seed(positions ...Coord) error {
	if g.bounded {
		for _, p := range positions {
			if !g.bounds.Contains(p) {
				return &OutOfBoundsError{Cell: p, Width: g.bounds.Width, Height: g.bounds.Height}
			}
		}
	}

	next := g.cells.Clone()
	for _, p := range positions {
		next[p] = struct{}{}
	}
	g.cells = next
	return nil
}

// RandomSeed adds count cells at uniformly random positions. Duplicates
// collapse, so fewer than count new cells may appear.
func (g *Grid) RandomSeed(count int) error {
	if count < 0 {
		return errors.Errorf("random cell count must not be negative, got %d", count)
	}
	if g.bounded && count > g.bounds.Capacity() {
		return &TooManyCellsError{Count: count, Capacity: g.bounds.Capacity()}
	}

	positions := make([]Coord, count)
	for i := range positions {
		if g.bounded {
			positions[i] = Coord{X: g.rng.IntN(g.bounds.Width), Y: g.rng.IntN(g.bounds.Height)}
		} else {
			positions[i] = Coord{
				X: g.rng.IntN(2*g.deviation) - g.deviation,
				Y: g.rng.IntN(2*g.deviation) - g.deviation,
			}
		}
	}
	return g.Seed(positions...)
}

// Hash returns an MD5 digest of the live cells and the field dimensions
func (g *Grid) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%v:%dx%d|", g.bounded, g.bounds.Width, g.bounds.Height)
	for _, c := range g.cells.Sorted() {
		fmt.Fprintf(h, "%d,%d;", c.X, c.Y)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory adds current state to history and maintains size
func (g *Grid) UpdateHistory() {
	g.history = append(g.history, g.Hash())

	if len(g.history) > historySize {
		g.history = g.history[1:]
	}
}

// IsStagnant reports whether the current state repeats one of the last
// three recorded states: a still life or an oscillator of period 2 or 3.
// Call it before UpdateHistory records the current state.
func (g *Grid) IsStagnant() bool {
	if len(g.history) < 3 {
		return false
	}

	current := g.Hash()
	for i := 1; i <= 3; i++ {
		if g.history[len(g.history)-i] == current {
			return true
		}
	}
	return false
}
