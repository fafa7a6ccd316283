package kernel

// Repair of degenerate rings. Snapping coordinates to a coarse precision grid
// can collapse distinct vertices onto each other, leaving a "polygon" that is
// really a line, a point, or nothing. Repair de-duplicates and reports what
// actually survives, as a tagged outcome instead of mutating the caller's
// ring in place.

// RepairKind tags the outcome of a repair.
type RepairKind int

const (
	RepairNone RepairKind = iota
	RepairPoint
	RepairLine
	RepairPolygon
)

func (k RepairKind) String() string {
	switch k {
	case RepairPoint:
		return "point"
	case RepairLine:
		return "line"
	case RepairPolygon:
		return "polygon"
	default:
		return "none"
	}
}

// Repaired is the outcome of repairing a ring or polygon. Exactly one of the
// payload fields is meaningful, selected by Kind.
type Repaired struct {
	Kind    RepairKind
	Polygon Polygon
	Line    Line
	Point   Coordinate
}

// RepairRing removes consecutive duplicate coordinates from a ring and
// classifies what is left. The ring is treated cyclically, so the closure
// duplicate at the end counts as consecutive with the first coordinate and is
// removed with the rest. A repeated vertex elsewhere in the ring is not a
// duplicate: a valid ring that deliberately touches itself comes back as the
// same polygon. Outcomes, by survivor count:
//
//	1 or 2     -> the first survivor, as a point
//	3          -> a line between the first two
//	otherwise  -> a valid re-closed ring, as a polygon (no holes)
//
// The input ring is never modified.
func RepairRing(ring Ring) Repaired {
	if ring == nil {
		fatalf("ring: must not be nil")
	}
	survivors := dedupConsecutive(ring)
	switch {
	case len(survivors) == 0:
		return Repaired{Kind: RepairNone}
	case len(survivors) <= 2:
		return Repaired{Kind: RepairPoint, Point: survivors[0]}
	case len(survivors) == 3:
		return Repaired{Kind: RepairLine, Line: Line{survivors[0], survivors[1]}}
	default:
		shell := make(Ring, 0, len(survivors)+1)
		shell = append(shell, survivors...)
		shell = append(shell, survivors[0])
		return Repaired{Kind: RepairPolygon, Polygon: Polygon{Shell: shell}}
	}
}

// dedupConsecutive drops coordinates that repeat their immediate predecessor,
// then unwinds the cyclic wrap: trailing coordinates equal to the first one
// go too, which removes the closure duplicate.
func dedupConsecutive(coords []Coordinate) []Coordinate {
	result := make([]Coordinate, 0, len(coords))
	for _, c := range coords {
		if len(result) > 0 && result[len(result)-1].Equals2D(c) {
			continue
		}
		result = append(result, c)
	}
	for len(result) > 1 && result[len(result)-1].Equals2D(result[0]) {
		result = result[:len(result)-1]
	}
	return result
}

// Repair repairs a polygon: the shell decides the outcome kind, and when the
// shell survives as a polygon, each hole is repaired the same way. A hole
// that no longer has 3 distinct coordinates plus closure is dropped entirely.
func Repair(poly Polygon) Repaired {
	repaired := RepairRing(poly.Shell)
	if repaired.Kind != RepairPolygon {
		return repaired
	}
	for _, hole := range poly.Holes {
		survivors := dedupConsecutive(hole)
		if len(survivors) < 3 {
			continue
		}
		closed := make(Ring, 0, len(survivors)+1)
		closed = append(closed, survivors...)
		closed = append(closed, survivors[0])
		repaired.Polygon.Holes = append(repaired.Polygon.Holes, closed)
	}
	return repaired
}

// RepairAll repairs a collection, filtering out entries that repaired to
// nothing. Entries that collapse to lines or points are kept, tagged as such.
func RepairAll(polys []Polygon) []Repaired {
	if polys == nil {
		fatalf("polys: must not be nil")
	}
	result := make([]Repaired, 0, len(polys))
	for _, poly := range polys {
		repaired := Repair(poly)
		if repaired.Kind == RepairNone {
			continue
		}
		result = append(result, repaired)
	}
	return result
}
