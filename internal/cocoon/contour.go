// Package cocoon implements the cocoon morphometry pipeline: binarization,
// contour classification, calibration against a reference circle of known
// diameter, and per-specimen measurement.
//
// Contour extraction and circle intensity sampling are delegated to the
// ContourFinder and IntensitySampler interfaces so that the decision logic
// stays free of OpenCV; see internal/vision for the gocv implementations.
package cocoon

import (
	"image"

	"cocoon-morph/pkg/geometry"
)

// Class is the category a contour resolves to.
type Class int

const (
	// ClassNoise marks background, frame borders and debris.
	ClassNoise Class = iota
	// ClassReferenceCircle marks the calibration disc.
	ClassReferenceCircle
	// ClassSpecimen marks a cocoon.
	ClassSpecimen
)

func (c Class) String() string {
	switch c {
	case ClassNoise:
		return "Noise"
	case ClassReferenceCircle:
		return "ReferenceCircle"
	case ClassSpecimen:
		return "Specimen"
	default:
		return "Unknown"
	}
}

// Contour is a closed polygon bounding a connected foreground region.
// Index is its position in extraction order.
type Contour struct {
	Index  int
	Points []image.Point
}

func (c Contour) polygon() []geometry.Point2D {
	return geometry.FromImagePoints(c.Points)
}

// SignedArea returns the oriented enclosed area in square pixels.
func (c Contour) SignedArea() float64 {
	return geometry.SignedArea(c.polygon())
}

// Area returns the absolute enclosed area in square pixels.
func (c Contour) Area() float64 {
	return geometry.Area(c.polygon())
}

// MinAreaRect returns the minimum-area bounding rectangle.
func (c Contour) MinAreaRect() geometry.RotatedRect {
	return geometry.MinAreaRect(c.polygon())
}

// Centroid returns the area-weighted centroid. ok is false for a
// zero-area contour.
func (c Contour) Centroid() (geometry.Point2D, bool) {
	return geometry.Centroid(c.polygon())
}

// Hull returns the convex hull as a new contour with the same Index.
func (c Contour) Hull() Contour {
	hull := geometry.ConvexHull(c.polygon())
	pts := make([]image.Point, len(hull))
	for i, p := range hull {
		// Hull vertices are a subset of the integer input points.
		pts[i] = image.Point{X: int(p.X), Y: int(p.Y)}
	}
	return Contour{Index: c.Index, Points: pts}
}
