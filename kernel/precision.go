package kernel

import "math"

// Epsilon is the collinearity tolerance of the default (floating) precision
// model. A cross product with magnitude at or below this is treated as zero.
const Epsilon = 1e-12

// PrecisionModel decides how ordinate values are quantized before the
// predicates look at them, and how close to zero a cross product must be to
// count as collinear. Every component operating on the same data must use the
// same model, otherwise a hull and a containment test can disagree about the
// same three coordinates.
//
// A nil *PrecisionModel is valid everywhere and means the floating model:
// ordinates used as-is, with the fixed Epsilon for collinearity.
type PrecisionModel struct {
	// scale is the number of representable grid cells per unit, as in a
	// fixed-point model: values are snapped to round(v*scale)/scale. Zero
	// means no snapping.
	scale float64
}

// Floating returns the default model: no rounding, fixed epsilon.
func Floating() *PrecisionModel {
	return &PrecisionModel{}
}

// Fixed returns a model that snaps every ordinate to a grid with the given
// number of cells per unit. A scale of 1000 keeps three decimal digits.
func Fixed(scale float64) *PrecisionModel {
	if scale <= 0 {
		fatalf("precision scale must be positive, got %v", scale)
	}
	return &PrecisionModel{scale: scale}
}

// MakePrecise snaps a single ordinate to the model's grid.
func (pm *PrecisionModel) MakePrecise(v float64) float64 {
	if pm == nil || pm.scale == 0 {
		return v
	}
	return math.Round(v*pm.scale) / pm.scale
}

// tolerance is the magnitude below which a cross product reads as zero. For a
// fixed model the grid itself absorbs most noise, but snapped ordinates still
// multiply into inexact products, so the same epsilon applies.
func (pm *PrecisionModel) tolerance() float64 {
	return Epsilon
}

// makePrecise2D snaps the X and Y of a coordinate, leaving Z alone. The
// predicates are 2D; Z rides along untouched.
func (pm *PrecisionModel) makePrecise2D(c Coordinate) Coordinate {
	if pm == nil || pm.scale == 0 {
		return c
	}
	return Coordinate{X: pm.MakePrecise(c.X), Y: pm.MakePrecise(c.Y), Z: c.Z}
}
