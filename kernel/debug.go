package kernel

import (
	"fmt"

	"github.com/hullkit/planar/dbg"
	"github.com/logrusorgru/aurora"
)

// Debug identities for the builders. Memoization makes "which instance is
// this" a real question when reading traces; petname labels keep them apart.
// Computed builders are green, pending ones yellow.

func (h *ExactHull) DbgName() string {
	return colorByState(dbg.Name(h), h.done)
}

func (h *ExactHull) String() string {
	return fmt.Sprintf("ExactHull %s (%d points)", h.DbgName(), len(h.points))
}

func (h *ApproxHull) DbgName() string {
	return colorByState(dbg.Name(h), h.done)
}

func (h *ApproxHull) String() string {
	return fmt.Sprintf("ApproxHull %s (%d points)", h.DbgName(), len(h.points))
}

func (t *ContainmentTest) DbgName() string {
	return colorByState(dbg.Name(t), t.done)
}

func (t *ContainmentTest) String() string {
	return fmt.Sprintf("ContainmentTest %s (target %v, %d ring coords)",
		t.DbgName(), t.target, len(t.ring))
}

func colorByState(name string, done bool) string {
	if done {
		return aurora.Green(name).String()
	}
	return aurora.Yellow(name).String()
}

// DbgDraw renders the input points, plus the hull ring once it has been
// computed, to the terminal.
func (h *ExactHull) DbgDraw(scale float64) {
	var lines []Line
	if h.done {
		lines = append(lines, Line(h.ClosedResult()))
	}
	dbgDraw(lines, h.points, scale)
}

func (h *ApproxHull) DbgDraw(scale float64) {
	var lines []Line
	if h.done {
		lines = append(lines, Line(h.result))
	}
	dbgDraw(lines, h.points, scale)
}

// DbgDraw renders the ring and the target point to the terminal.
func (t *ContainmentTest) DbgDraw(scale float64) {
	dbgDraw([]Line{Line(t.ring)}, []Coordinate{t.target}, scale)
}
