package model

import (
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

const (
	gridPosAlive = '*'
	gridPosDead  = '.'

	clearCmd = "clear"
)

// TerminalRenderer writes generations as text frames
type TerminalRenderer struct {
	Out         io.Writer
	ClearScreen bool
}

// NewTerminalRenderer returns a renderer writing to out, or stdout when out is nil
func NewTerminalRenderer(out io.Writer, clearScreen bool) *TerminalRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &TerminalRenderer{Out: out, ClearScreen: clearScreen}
}

// Frame renders the grid: the whole field when bounded, the bounding box of
// the live cells otherwise. An empty unbounded grid renders as a single ".".
func Frame(g *Grid) string {
	var minC, maxC Coord
	if b, bounded := g.Bounds(); bounded {
		maxC = Coord{X: b.Width - 1, Y: b.Height - 1}
	} else {
		var ok bool
		if minC, maxC, ok = g.Cells().BoundingBox(); !ok {
			return string(gridPosDead) + "\n"
		}
	}

	// Loops stop on equality so a box touching math.MaxInt terminates.
	var sb strings.Builder
	for y := minC.Y; ; y++ {
		for x := minC.X; ; x++ {
			if g.Alive(x, y) {
				sb.WriteByte(gridPosAlive)
			} else {
				sb.WriteByte(gridPosDead)
			}
			if x == maxC.X {
				break
			}
		}
		sb.WriteByte('\n')
		if y == maxC.Y {
			break
		}
	}
	sb.WriteByte('\n')
	return sb.String()
}

// Display renders the grid to the output
func (r *TerminalRenderer) Display(g *Grid) error {
	if r.ClearScreen {
		if err := r.Clear(); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(r.Out, Frame(g)); err != nil {
		return errors.Wrap(err, "[Display] failed to write frame")
	}
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.Out
	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "[Clear] failed to clear terminal")
	}
	return nil
}
