package kernel

// Cyrus–Beck parametric clipping of segments and polylines against a convex
// window. The window is preprocessed once into an outward normal per edge;
// each segment clip is then a handful of dot products per edge, tightening a
// parametric interval [minT, maxT] over the segment. No orientation predicate
// is needed here; the half-plane tests are carried entirely by the normals.

// Clipper clips against one convex window. Build it once and reuse it for any
// number of segments, lines, or polygons; the window preprocessing is shared.
type Clipper struct {
	verts []Coordinate // window vertices, closure duplicate removed
	norms []Vector     // outward unit normal per edge verts[i] -> verts[i+1]
	pm    *PrecisionModel
}

// NewClipper validates the window ring eagerly: it must be non-nil, closed,
// and have at least 3 distinct coordinates. The window may wind either way;
// normals are flipped to outward using the ring's signed area. Convexity is
// assumed, not checked. A nil precision model means the floating default.
func NewClipper(window Ring, pm *PrecisionModel) *Clipper {
	if window == nil {
		fatalf("window: must not be nil")
	}
	if len(window) < 4 {
		fatalf("window: a ring needs at least 3 distinct coordinates plus closure, got %d", len(window))
	}
	if !window.Closed() {
		fatalf("window: ring is not closed, first %v != last %v", window[0], window[len(window)-1])
	}

	verts := make([]Coordinate, len(window)-1)
	copy(verts, window[:len(window)-1])

	ccw := window.SignedArea() > 0
	norms := make([]Vector, len(verts))
	for i := range verts {
		next := verts[(i+1)%len(verts)]
		dir := next.Sub(verts[i]).Normalized()
		n := dir.Perp()
		if ccw {
			// Perp rotates counterclockwise, which points inward on a
			// counterclockwise ring.
			n = Vector{-n.X, -n.Y}
		}
		norms[i] = n
	}
	return &Clipper{verts: verts, norms: norms, pm: pm}
}

// NewEnvelopeClipper builds a Clipper for a rectangular window.
func NewEnvelopeClipper(env Envelope, pm *PrecisionModel) *Clipper {
	if env.MinX >= env.MaxX || env.MinY >= env.MaxY {
		fatalf("env: envelope is empty or inverted: %+v", env)
	}
	return NewClipper(env.Ring(), pm)
}

// ClipSegment clips one segment, returning the visible sub-segment and whether
// any of it is visible. Z is interpolated linearly along the segment.
func (c *Clipper) ClipSegment(first, second Coordinate) (Segment, bool) {
	p := second.Sub(first)
	minT, maxT := 0.0, 1.0

	for i, f := range c.verts {
		n := c.norms[i]
		pn := p.Dot(n)
		qn := first.Sub(f).Dot(n)

		if pn == 0 {
			// Parallel to this edge: either wholly inside its half-plane
			// or wholly outside. Outside means nothing is visible.
			if qn > c.pm.tolerance() {
				return Segment{}, false
			}
			continue
		}

		t := -qn / pn
		if pn < 0 {
			// Entering across this edge.
			if t > minT {
				minT = t
			}
		} else {
			// Exiting.
			if t < maxT {
				maxT = t
			}
		}
	}

	if minT > maxT {
		return Segment{}, false
	}
	return Segment{
		Start: interpolate(first, second, minT),
		End:   interpolate(first, second, maxT),
	}, true
}

// ClipLine clips a polyline, stitching consecutive visible sub-segments that
// share an endpoint into continuous output polylines. A gap (a segment fully
// outside, or one whose visible part doesn't start where the previous ended)
// begins a new output polyline. A fully hidden line yields no output pieces.
func (c *Clipper) ClipLine(line Line) []Line {
	if line == nil {
		fatalf("line: must not be nil")
	}
	var pieces []Line
	for i := 0; i+1 < len(line); i++ {
		seg, visible := c.ClipSegment(line[i], line[i+1])
		if !visible {
			continue
		}
		if n := len(pieces); n > 0 {
			last := pieces[n-1]
			if last[len(last)-1].Equals2D(seg.Start) {
				pieces[n-1] = append(last, seg.End)
				continue
			}
		}
		pieces = append(pieces, Line{seg.Start, seg.End})
	}
	return pieces
}

// ClipLines clips a batch of polylines against the shared window. The result
// has exactly one entry per input line, in input order; an entry is empty when
// its line has no visible portion.
func (c *Clipper) ClipLines(lines []Line) [][]Line {
	if lines == nil {
		fatalf("lines: must not be nil")
	}
	result := make([][]Line, len(lines))
	for i, line := range lines {
		result[i] = c.ClipLine(line)
	}
	return result
}

// ClipRing clips a ring's boundary as a closed polyline.
func (c *Clipper) ClipRing(ring Ring) []Line {
	validateRing("ring", ring)
	return c.ClipLine(Line(ring))
}

// ClipPolygon clips the shell and each hole independently. Entry 0 holds the
// shell's visible pieces, entry i+1 the pieces of hole i.
func (c *Clipper) ClipPolygon(poly Polygon) [][]Line {
	result := make([][]Line, 0, len(poly.Holes)+1)
	result = append(result, c.ClipRing(poly.Shell))
	for _, hole := range poly.Holes {
		result = append(result, c.ClipRing(hole))
	}
	return result
}

// ClipPolygons clips a collection against the shared window, one entry per
// input polygon.
func (c *Clipper) ClipPolygons(polys []Polygon) [][][]Line {
	if polys == nil {
		fatalf("polys: must not be nil")
	}
	result := make([][][]Line, len(polys))
	for i, poly := range polys {
		result[i] = c.ClipPolygon(poly)
	}
	return result
}

// interpolate evaluates first + t·(second − first), including Z.
func interpolate(first, second Coordinate, t float64) Coordinate {
	return Coordinate{
		X: first.X + t*(second.X-first.X),
		Y: first.Y + t*(second.Y-first.Y),
		Z: first.Z + t*(second.Z-first.Z),
	}
}

// validateRing enforces the ring closure contract shared by the clipper, the
// containment test, and the facade.
func validateRing(name string, ring Ring) {
	if ring == nil {
		fatalf("%s: must not be nil", name)
	}
	if len(ring) < 4 {
		fatalf("%s: a ring needs at least 3 distinct coordinates plus closure, got %d", name, len(ring))
	}
	if !ring.Closed() {
		fatalf("%s: ring is not closed, first %v != last %v", name, ring[0], ring[len(ring)-1])
	}
}
