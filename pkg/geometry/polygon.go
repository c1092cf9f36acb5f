package geometry

import (
	"math"
	"sort"
)

// SignedArea returns the oriented area of a closed polygon using the shoelace
// formula. The sign follows OpenCV's contourArea(oriented=true): positive
// when the vertices run counter-clockwise with Y pointing up, which is
// clockwise as drawn on an image.
func SignedArea(polygon []Point2D) float64 {
	n := len(polygon)
	if n < 3 {
		return 0
	}

	var sum float64
	prev := polygon[n-1]
	for _, p := range polygon {
		sum += prev.X*p.Y - prev.Y*p.X
		prev = p
	}
	return sum / 2
}

// Area returns the absolute enclosed area of a closed polygon.
func Area(polygon []Point2D) float64 {
	return math.Abs(SignedArea(polygon))
}

// Moments holds the spatial moments of a polygon up to first order.
type Moments struct {
	M00 float64 // Area
	M10 float64
	M01 float64
}

// PolygonMoments computes area-weighted moments of a closed polygon via
// Green's theorem. The result is normalized so M00 is never negative,
// matching cv::moments on a contour.
func PolygonMoments(polygon []Point2D) Moments {
	n := len(polygon)
	if n < 3 {
		return Moments{}
	}

	var m Moments
	for i := 0; i < n; i++ {
		p := polygon[i]
		q := polygon[(i+1)%n]
		a := p.X*q.Y - q.X*p.Y
		m.M00 += a
		m.M10 += a * (p.X + q.X)
		m.M01 += a * (p.Y + q.Y)
	}
	m.M00 /= 2
	m.M10 /= 6
	m.M01 /= 6

	if m.M00 < 0 {
		m.M00, m.M10, m.M01 = -m.M00, -m.M10, -m.M01
	}
	return m
}

// Centroid returns the area-weighted centroid of a closed polygon.
// ok is false when the polygon encloses no area.
func Centroid(polygon []Point2D) (c Point2D, ok bool) {
	m := PolygonMoments(polygon)
	if m.M00 == 0 {
		return Point2D{}, false
	}
	return Point2D{X: m.M10 / m.M00, Y: m.M01 / m.M00}, true
}

// ConvexHull computes the convex hull of a set of points using Andrew's
// monotone chain. Duplicate and collinear points are dropped. The hull is
// returned counter-clockwise with Y pointing up. Fewer than three distinct
// points are returned as-is (deduplicated).
func ConvexHull(points []Point2D) []Point2D {
	pts := make([]Point2D, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})

	uniq := pts[:0]
	for i, p := range pts {
		if i == 0 || p != pts[i-1] {
			uniq = append(uniq, p)
		}
	}
	pts = uniq

	if len(pts) < 3 {
		return pts
	}

	hull := make([]Point2D, 0, 2*len(pts))
	for _, p := range pts {
		for len(hull) >= 2 && crossProduct(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(pts) - 2; i >= 0; i-- {
		p := pts[i]
		for len(hull) >= lower && crossProduct(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	return hull[:len(hull)-1]
}

// MinAreaRect returns the smallest-area rectangle, at any rotation, that
// encloses all points. It uses rotating calipers over the convex hull: the
// optimal rectangle has one side collinear with a hull edge.
//
// A single point yields a zero-size rectangle centred on it; collinear points
// yield a rectangle of zero height along the segment.
func MinAreaRect(points []Point2D) RotatedRect {
	hull := ConvexHull(points)
	switch len(hull) {
	case 0:
		return RotatedRect{}
	case 1:
		return RotatedRect{Center: hull[0]}
	}

	var best RotatedRect
	bestArea := math.Inf(1)
	n := len(hull)

	for i := 0; i < n; i++ {
		a := hull[i]
		edge := hull[(i+1)%n].Sub(a)
		length := math.Hypot(edge.X, edge.Y)
		if length == 0 {
			continue
		}
		u := edge.Scale(1 / length)
		v := Point2D{X: -u.Y, Y: u.X}

		minU, maxU := math.Inf(1), math.Inf(-1)
		minV, maxV := math.Inf(1), math.Inf(-1)
		for _, p := range hull {
			d := p.Sub(a)
			pu, pv := d.Dot(u), d.Dot(v)
			minU = math.Min(minU, pu)
			maxU = math.Max(maxU, pu)
			minV = math.Min(minV, pv)
			maxV = math.Max(maxV, pv)
		}

		w, h := maxU-minU, maxV-minV
		if area := w * h; area < bestArea {
			bestArea = area
			best = RotatedRect{
				Center: a.Add(u.Scale((minU + maxU) / 2)).Add(v.Scale((minV + maxV) / 2)),
				Size:   Size{Width: w, Height: h},
				Angle:  math.Atan2(u.Y, u.X) * 180 / math.Pi,
			}
		}
	}

	return best
}

// crossProduct computes the cross product of vectors OA and OB.
func crossProduct(o, a, b Point2D) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}
