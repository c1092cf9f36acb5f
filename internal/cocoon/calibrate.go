package cocoon

import "cocoon-morph/pkg/geometry"

// Calibrate derives the pixels-per-millimetre scale from the reference
// circle. The shorter side of the circle's minimum-area rectangle is used,
// which keeps the scale stable under mild perspective stretch. A nil circle
// or a degenerate rectangle gives an undefined scale.
func Calibrate(circle *Contour, diameterMM float64) Scale {
	if circle == nil || diameterMM <= 0 {
		return Scale{}
	}
	return NewScale(circle.MinAreaRect().Size.Min() / diameterMM)
}

// FitReferenceCircle fits a circle to the reference contour's vertices.
// It never alters the scale; the residual reports how round the disc
// looks in the photograph.
func FitReferenceCircle(circle *Contour) (geometry.CircleFit, error) {
	if circle == nil {
		return geometry.CircleFit{}, geometry.ErrTooFewPoints
	}
	return geometry.FitCircle(circle.polygon())
}
