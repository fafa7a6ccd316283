package kernel

import "sort"

// ApproxHull computes an approximate convex hull with the Bentley–Faust–
// Preparata heuristic: partition the X range into bins, keep only the lowest
// and highest candidate per bin, and run a monotone-chain scan over those few
// survivors. O(n) for well-spread input, at the cost of occasionally keeping
// a vertex the exact hull would discard. The trade-off runs one way only: the
// returned polygon can be larger than the minimal hull, but never smaller. Bin
// retention alone cannot promise that, so a verification pass folds any point
// left outside back into the result.
//
// Like ExactHull, the builder computes once on first Result call and caches.
type ApproxHull struct {
	points []Coordinate
	orient orientFunc

	result []Coordinate
	done   bool
}

func NewApproxHull(points []Coordinate, pm *PrecisionModel) *ApproxHull {
	if points == nil {
		fatalf("points: must not be nil")
	}
	copied := make([]Coordinate, len(points))
	copy(copied, points)
	return &ApproxHull{points: copied, orient: orientWith(pm)}
}

// Result returns the closed approximate hull ring. Fewer than 4 input points
// shortcut to the distinct inputs in first-seen order, with no closure
// guarantee; there's nothing to approximate.
func (h *ApproxHull) Result() []Coordinate {
	if !h.done {
		h.result = h.compute()
		h.done = true
	}
	return h.result
}

func (h *ApproxHull) compute() []Coordinate {
	if len(h.points) < 4 {
		return distinctCoords(h.points)
	}

	minmin, minmax, maxmin, maxmax := h.findExtremes()

	// Vertical point set: every point shares one X, so the hull is the one
	// or two Y extremes.
	if minmin.X == maxmin.X {
		if minmin.Equals2D(minmax) {
			return []Coordinate{minmin}
		}
		return []Coordinate{minmin, minmax}
	}

	lowers, uppers := h.binCandidates(minmin, maxmin)

	// Lower chain runs left to right under the chord, upper chain right to
	// left above it, with the four X-extreme coordinates as the joints.
	lowerChain := h.chainScan(spliceCandidates(minmin, lowers, maxmin))
	upperChain := h.chainScan(spliceCandidates(maxmax, uppers, minmax))

	result := lowerChain
	for _, c := range upperChain {
		if !c.Equals2D(result[len(result)-1]) {
			result = append(result, c)
		}
	}
	// Close the ring.
	if !result[len(result)-1].Equals2D(result[0]) {
		result = append(result, result[0])
	}
	return h.absorbEscapees(result)
}

// absorbEscapees enforces the containment guarantee. Bin retention can discard
// a point that ends up outside the chain of the retained candidates, typically
// when two above-chord points share a bin next to an empty one. One scan over
// the inputs finds such points; when any exist, a full monotone-chain pass
// over the hull vertices plus the escapees folds them back in.
func (h *ApproxHull) absorbEscapees(ring []Coordinate) []Coordinate {
	var escapees []Coordinate
	for _, p := range h.points {
		if h.escapes(ring, p) {
			escapees = append(escapees, p)
		}
	}
	if len(escapees) == 0 {
		return ring
	}

	combined := make([]Coordinate, 0, len(ring)-1+len(escapees))
	combined = append(combined, ring[:len(ring)-1]...)
	combined = append(combined, escapees...)
	sort.Slice(combined, func(i, j int) bool {
		if combined[i].X != combined[j].X {
			return combined[i].X < combined[j].X
		}
		return combined[i].Y < combined[j].Y
	})

	lower := h.chainScan(combined)
	reversed := make([]Coordinate, len(combined))
	for i, c := range combined {
		reversed[len(combined)-1-i] = c
	}
	upper := h.chainScan(reversed)

	result := lower
	for _, c := range upper[1:] {
		if !c.Equals2D(result[len(result)-1]) {
			result = append(result, c)
		}
	}
	if !result[len(result)-1].Equals2D(result[0]) {
		result = append(result, result[0])
	}
	return result
}

// escapes reports whether p lies strictly outside the closed counterclockwise
// ring, that is, strictly to the right of any of its edges.
func (h *ApproxHull) escapes(ring []Coordinate, p Coordinate) bool {
	for i := 0; i+1 < len(ring); i++ {
		if h.orient(ring[i], ring[i+1], p) == Clockwise {
			return true
		}
	}
	return false
}

// findExtremes scans once for the X extremes, tracking both the lowest and the
// highest Y among the ties at each end.
func (h *ApproxHull) findExtremes() (minmin, minmax, maxmin, maxmax Coordinate) {
	minmin, minmax = h.points[0], h.points[0]
	maxmin, maxmax = h.points[0], h.points[0]
	for _, p := range h.points[1:] {
		switch {
		case p.X < minmin.X:
			minmin, minmax = p, p
		case p.X == minmin.X:
			if p.Y < minmin.Y {
				minmin = p
			}
			if p.Y > minmax.Y {
				minmax = p
			}
		}
		switch {
		case p.X > maxmin.X:
			maxmin, maxmax = p, p
		case p.X == maxmin.X:
			if p.Y < maxmin.Y {
				maxmin = p
			}
			if p.Y > maxmax.Y {
				maxmax = p
			}
		}
	}
	return
}

// binCandidates partitions the X range into ⌊n/2⌋ equal bins and keeps, per
// bin, the lowest point below the minmin–maxmin chord and the highest point
// above it. Points at the X extremes are excluded; the chain joints cover
// them. Points on the chord itself lie between two retained vertices and can
// never escape the result, so they're dropped outright.
func (h *ApproxHull) binCandidates(minmin, maxmin Coordinate) (lowers, uppers []Coordinate) {
	nBins := len(h.points) / 2
	binWidth := (maxmin.X - minmin.X) / float64(nBins)

	type candidate struct {
		coord Coordinate
		ok    bool
	}
	low := make([]candidate, nBins)
	high := make([]candidate, nBins)

	for _, p := range h.points {
		if p.X == minmin.X || p.X == maxmin.X {
			continue
		}
		bin := int((p.X - minmin.X) / binWidth)
		if bin >= nBins {
			bin = nBins - 1
		}
		switch h.orient(minmin, maxmin, p) {
		case Clockwise: // below the chord
			if !low[bin].ok || p.Y < low[bin].coord.Y {
				low[bin] = candidate{p, true}
			}
		case CounterClockwise: // above the chord
			if !high[bin].ok || p.Y > high[bin].coord.Y {
				high[bin] = candidate{p, true}
			}
		}
	}

	for i := 0; i < nBins; i++ {
		if low[i].ok {
			lowers = append(lowers, low[i].coord)
		}
		// Upper candidates are consumed right to left.
		if high[nBins-1-i].ok {
			uppers = append(uppers, high[nBins-1-i].coord)
		}
	}
	return
}

// chainScan is the monotone half-hull sweep: push, and discard the top while
// the chain fails to turn counterclockwise through the next candidate.
func (h *ApproxHull) chainScan(candidates []Coordinate) []Coordinate {
	stack := make(CoordStack, 0, len(candidates))
	for _, candidate := range candidates {
		for stack.Len() >= 2 && h.orient(stack.Under(), stack.Peek(), candidate) != CounterClockwise {
			stack.Pop()
		}
		stack.Push(candidate)
	}
	return []Coordinate(stack)
}

// spliceCandidates joins a chain's start joint, its bin candidates, and its
// end joint, skipping consecutive duplicates.
func spliceCandidates(start Coordinate, mids []Coordinate, end Coordinate) []Coordinate {
	chain := make([]Coordinate, 0, len(mids)+2)
	chain = append(chain, start)
	for _, c := range mids {
		if !c.Equals2D(chain[len(chain)-1]) {
			chain = append(chain, c)
		}
	}
	if !end.Equals2D(chain[len(chain)-1]) {
		chain = append(chain, end)
	}
	return chain
}

// distinctCoords filters exact duplicates, preserving first-seen order.
func distinctCoords(coords []Coordinate) []Coordinate {
	result := make([]Coordinate, 0, len(coords))
	for _, c := range coords {
		dup := false
		for _, kept := range result {
			if kept.Equals2D(c) {
				dup = true
				break
			}
		}
		if !dup {
			result = append(result, c)
		}
	}
	return result
}
