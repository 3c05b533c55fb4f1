package model

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/sheikhrachel/go-life/rules"
)

// Coord is the position of a cell on the plane
type Coord struct {
	X, Y int
}

// Offset returns the coordinate shifted by o
func (c Coord) Offset(o rules.Offset) Coord {
	return Coord{X: c.X + o.DX, Y: c.Y + o.DY}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// CellSet holds the live cells of a generation. Absent coordinates are dead.
type CellSet map[Coord]struct{}

// NewCellSet builds a set from the given coordinates
func NewCellSet(cells ...Coord) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// Contains reports whether c is alive
func (s CellSet) Contains(c Coord) bool {
	_, ok := s[c]
	return ok
}

// Clone returns an independent copy of the set
func (s CellSet) Clone() CellSet {
	out := make(CellSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// Equal reports whether both sets hold exactly the same cells
func (s CellSet) Equal(other CellSet) bool {
	if len(s) != len(other) {
		return false
	}
	for c := range s {
		if !other.Contains(c) {
			return false
		}
	}
	return true
}

// Sorted returns the cells ordered row by row, then by column
func (s CellSet) Sorted() []Coord {
	out := make([]Coord, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b Coord) int {
		if a.Y != b.Y {
			return cmp.Compare(a.Y, b.Y)
		}
		return cmp.Compare(a.X, b.X)
	})
	return out
}

// BoundingBox returns the smallest rectangle holding every live cell.
// ok is false for an empty set.
func (s CellSet) BoundingBox() (minC, maxC Coord, ok bool) {
	for c := range s {
		if !ok {
			minC, maxC, ok = c, c, true
			continue
		}
		minC.X = min(minC.X, c.X)
		minC.Y = min(minC.Y, c.Y)
		maxC.X = max(maxC.X, c.X)
		maxC.Y = max(maxC.Y, c.Y)
	}
	return
}

// Bounds are the dimensions of a finite grid
type Bounds struct {
	Width, Height int
}

// Contains reports whether c lies inside [0,Width) x [0,Height)
func (b Bounds) Contains(c Coord) bool {
	return c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Height
}

// Capacity is the number of cells the grid can hold
func (b Bounds) Capacity() int {
	return b.Width * b.Height
}
