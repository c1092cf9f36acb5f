package cocoon

import (
	"image"
	"math"

	"cocoon-morph/pkg/geometry"
)

func rectContour(index, x, y, w, h int) Contour {
	return Contour{Index: index, Points: []image.Point{
		{x, y}, {x, y + h}, {x + w, y + h}, {x + w, y},
	}}
}

func circleContour(index int, cx, cy, r float64) Contour {
	pts := make([]geometry.Point2D, 360)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(len(pts))
		pts[i] = geometry.Point2D{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
	}
	return Contour{Index: index, Points: geometry.ToImagePoints(pts)}
}

// syntheticContours mimics what list-topology extraction returns for a
// 400x400 photograph: the frame, the disc, four cocoons and a speck of dust.
func syntheticContours() []Contour {
	return []Contour{
		rectContour(0, 0, 0, 399, 399),
		circleContour(1, 200, 200, 160),
		rectContour(2, 120, 160, 19, 79),
		rectContour(3, 160, 160, 19, 79),
		rectContour(4, 200, 160, 19, 79),
		rectContour(5, 240, 160, 19, 79),
		rectContour(6, 300, 300, 2, 2),
	}
}

var frame400 = image.Point{X: 400, Y: 400}

func countOf(classes []Class, c Class) int {
	n := 0
	for _, k := range classes {
		if k == c {
			n++
		}
	}
	return n
}

func hasDiagnostic(ds []Diagnostic, kind DiagnosticKind) bool {
	for _, d := range ds {
		if d.Kind == kind {
			return true
		}
	}
	return false
}
