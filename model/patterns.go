package model

import (
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

var patterns = map[string][]Coord{
	// two horizontal triples five rows apart
	"demo": {{7, 0}, {8, 0}, {9, 0}, {7, 5}, {8, 5}, {9, 5}},
	"glider": {
		{1, 0},
		{2, 1},
		{0, 2}, {1, 2}, {2, 2},
	},
	"blinker": {{0, 0}, {1, 0}, {2, 0}},
	"block":   {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
}

// PatternNames lists the known pattern names in alphabetical order
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// LookupPattern returns a copy of the cells of a named pattern
func LookupPattern(name string) ([]Coord, error) {
	cells, ok := patterns[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Errorf("unknown pattern %q, expected one of %s", name, strings.Join(PatternNames(), ", "))
	}
	return slices.Clone(cells), nil
}

// Translate shifts every cell by (dx, dy)
func Translate(cells []Coord, dx, dy int) []Coord {
	out := make([]Coord, len(cells))
	for i, c := range cells {
		out[i] = Coord{X: c.X + dx, Y: c.Y + dy}
	}
	return out
}

// ParseCoords reads a list such as "7,0 8,0 9,0". Pairs are separated by
// whitespace or semicolons.
func ParseCoords(s string) ([]Coord, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == ';'
	})

	cells := make([]Coord, 0, len(fields))
	for _, field := range fields {
		xs, ys, ok := strings.Cut(field, ",")
		if !ok {
			return nil, errors.Errorf("invalid cell %q, expected x,y", field)
		}
		x, err := strconv.Atoi(strings.TrimSpace(xs))
		if err != nil {
			return nil, errors.Wrapf(err, "[ParseCoords] invalid x in cell %q", field)
		}
		y, err := strconv.Atoi(strings.TrimSpace(ys))
		if err != nil {
			return nil, errors.Wrapf(err, "[ParseCoords] invalid y in cell %q", field)
		}
		cells = append(cells, Coord{X: x, Y: y})
	}
	return cells, nil
}
