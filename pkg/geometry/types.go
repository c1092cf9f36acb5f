// Package geometry provides basic geometric types and polygon measurements
// used by the measurement pipeline.
package geometry

import (
	"image"
	"math"
)

// Point2D represents a 2D point with floating-point coordinates.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the Euclidean distance to another point.
func (p Point2D) Distance(other Point2D) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Add returns the sum of two points.
func (p Point2D) Add(other Point2D) Point2D {
	return Point2D{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference of two points.
func (p Point2D) Sub(other Point2D) Point2D {
	return Point2D{X: p.X - other.X, Y: p.Y - other.Y}
}

// Scale returns the point scaled by a factor.
func (p Point2D) Scale(factor float64) Point2D {
	return Point2D{X: p.X * factor, Y: p.Y * factor}
}

// Dot returns the dot product of the two points taken as vectors.
func (p Point2D) Dot(other Point2D) float64 {
	return p.X*other.X + p.Y*other.Y
}

// ImagePoint rounds the point to the nearest pixel.
func (p Point2D) ImagePoint() image.Point {
	return image.Point{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
}

// FromImagePoints converts integer pixel coordinates to Point2D.
func FromImagePoints(pts []image.Point) []Point2D {
	out := make([]Point2D, len(pts))
	for i, p := range pts {
		out[i] = Point2D{X: float64(p.X), Y: float64(p.Y)}
	}
	return out
}

// ToImagePoints rounds each point to the nearest pixel.
func ToImagePoints(pts []Point2D) []image.Point {
	out := make([]image.Point, len(pts))
	for i, p := range pts {
		out[i] = p.ImagePoint()
	}
	return out
}

// Size represents a 2D size.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Min returns the shorter side.
func (s Size) Min() float64 {
	return math.Min(s.Width, s.Height)
}

// Max returns the longer side.
func (s Size) Max() float64 {
	return math.Max(s.Width, s.Height)
}

// RotatedRect is a rectangle at an arbitrary rotation, described the same
// way OpenCV describes the result of minAreaRect.
type RotatedRect struct {
	Center Point2D `json:"center"`
	Size   Size    `json:"size"`
	Angle  float64 `json:"angle"` // Degrees, direction of the Width side from the X axis
}

// Points returns the four corners of the rectangle in drawing order.
func (r RotatedRect) Points() [4]Point2D {
	rad := r.Angle * math.Pi / 180.0
	cos := math.Cos(rad)
	sin := math.Sin(rad)
	u := Point2D{X: cos * r.Size.Width / 2, Y: sin * r.Size.Width / 2}
	v := Point2D{X: -sin * r.Size.Height / 2, Y: cos * r.Size.Height / 2}

	return [4]Point2D{
		r.Center.Sub(u).Sub(v),
		r.Center.Add(u).Sub(v),
		r.Center.Add(u).Add(v),
		r.Center.Sub(u).Add(v),
	}
}
