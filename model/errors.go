package model

import "fmt"

// OutOfBoundsError is returned when a seeded cell lies outside a bounded grid
type OutOfBoundsError struct {
	Cell   Coord
	Width  int
	Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("the cell %s cannot fit into the field of size %dx%d", e.Cell, e.Width, e.Height)
}

// TooManyCellsError is returned when a random seed asks for more cells than a bounded grid holds
type TooManyCellsError struct {
	Count    int
	Capacity int
}

func (e *TooManyCellsError) Error() string {
	return fmt.Sprintf("cannot generate %d living cells because the entire field can only contain %d cells",
		e.Count, e.Capacity)
}
