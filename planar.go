// A small computational-geometry kernel for Go.
//
// This package is the public face of the kernel: convex hulls (exact and
// approximate), parametric line clipping against convex windows, winding
// number point-in-polygon tests, and repair of degenerate rings. All
// predicates run through a shared, pluggable precision model, so every
// operation treats identical geometric configurations identically.
//
// The functions here validate eagerly and return errors; the kernel package
// underneath exposes reusable builder values for callers that batch many
// operations against the same inputs.
package planar

import "github.com/hullkit/planar/kernel"

type Coordinate = kernel.Coordinate
type Ring = kernel.Ring
type Polygon = kernel.Polygon
type Line = kernel.Line
type Segment = kernel.Segment
type Envelope = kernel.Envelope
type PrecisionModel = kernel.PrecisionModel
type Containment = kernel.Containment
type Location = kernel.Location
type Repaired = kernel.Repaired
type RepairKind = kernel.RepairKind

const (
	Inside     = kernel.Inside
	Outside    = kernel.Outside
	OnBoundary = kernel.OnBoundary
)

const (
	RepairNone    = kernel.RepairNone
	RepairPoint   = kernel.RepairPoint
	RepairLine    = kernel.RepairLine
	RepairPolygon = kernel.RepairPolygon
)

// recoverErr converts the kernel's validation panics back into errors at the
// public boundary.
func recoverErr(err *error) {
	if recoveredErr := kernel.HandleKernelPanicRecover(recover()); recoveredErr != nil {
		*err = recoveredErr
	}
}

// ConvexHull computes the exact convex hull of a point set with the Graham
// scan. The result is a closed counterclockwise ring. A nil precision model
// means the floating default.
func ConvexHull(points []Coordinate, pm *PrecisionModel) (result []Coordinate, err error) {
	defer recoverErr(&err)
	return kernel.NewExactHull(points, pm).ClosedResult(), nil
}

// ApproximateConvexHull computes an O(n) approximate hull that contains every
// input point but may not be minimal. Fewer than 4 points return the distinct
// inputs with no closure guarantee.
func ApproximateConvexHull(points []Coordinate, pm *PrecisionModel) (result []Coordinate, err error) {
	defer recoverErr(&err)
	return kernel.NewApproxHull(points, pm).Result(), nil
}

// ClipLine clips a polyline against a convex window ring, returning the
// visible pieces in order.
func ClipLine(line Line, window Ring, pm *PrecisionModel) (result []Line, err error) {
	defer recoverErr(&err)
	return kernel.NewClipper(window, pm).ClipLine(line), nil
}

// ClipToEnvelope clips a polyline against an axis-aligned rectangular window.
func ClipToEnvelope(line Line, env Envelope, pm *PrecisionModel) (result []Line, err error) {
	defer recoverErr(&err)
	return kernel.NewEnvelopeClipper(env, pm).ClipLine(line), nil
}

// ClipPolygons clips a collection of polygons against one shared window. The
// result keeps one entry per input polygon; within each, entry 0 is the
// shell's visible pieces followed by one entry per hole.
func ClipPolygons(polys []Polygon, window Ring, pm *PrecisionModel) (result [][][]Line, err error) {
	defer recoverErr(&err)
	return kernel.NewClipper(window, pm).ClipPolygons(polys), nil
}

// Contains classifies a coordinate against a closed ring by winding number,
// with boundary verification enabled.
func Contains(ring Ring, target Coordinate, pm *PrecisionModel) (result Containment, err error) {
	defer recoverErr(&err)
	test := kernel.NewContainmentTest(ring, target, pm)
	test.SetBoundaryCheck(true)
	return test.Result(), nil
}

// ContainsInPolygon reports whether the target is properly inside the polygon:
// inside the shell and outside every hole.
func ContainsInPolygon(poly Polygon, target Coordinate, pm *PrecisionModel) (inside bool, err error) {
	defer recoverErr(&err)
	return poly.Contains(target, pm), nil
}

// RepairRing de-duplicates a degenerate ring and reports what survives: a
// polygon, a line, a point, or nothing.
func RepairRing(ring Ring) (result Repaired, err error) {
	defer recoverErr(&err)
	return kernel.RepairRing(ring), nil
}

// RepairAll repairs a polygon collection, dropping entries that repair to
// nothing.
func RepairAll(polys []Polygon) (result []Repaired, err error) {
	defer recoverErr(&err)
	return kernel.RepairAll(polys), nil
}
