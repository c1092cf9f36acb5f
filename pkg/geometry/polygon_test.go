package geometry

import (
	"math"
	"testing"
)

func rectPolygon(x, y, w, h float64) []Point2D {
	// Same orientation as an OpenCV outer border.
	return []Point2D{{x, y}, {x, y + h}, {x + w, y + h}, {x + w, y}}
}

func TestSignedArea(t *testing.T) {
	square := rectPolygon(0, 0, 10, 10)
	if got := SignedArea(square); got != -100 {
		t.Errorf("SignedArea: got %v, want -100", got)
	}

	reversed := make([]Point2D, len(square))
	for i, p := range square {
		reversed[len(square)-1-i] = p
	}
	if got := SignedArea(reversed); got != 100 {
		t.Errorf("SignedArea reversed: got %v, want 100", got)
	}
	if got := Area(square); got != 100 {
		t.Errorf("Area: got %v, want 100", got)
	}
}

func TestSignedArea_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		pts  []Point2D
	}{
		{"empty", nil},
		{"single", []Point2D{{1, 1}}},
		{"segment", []Point2D{{0, 0}, {5, 5}}},
		{"collinear", []Point2D{{0, 0}, {1, 1}, {2, 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SignedArea(tt.pts); got != 0 {
				t.Errorf("got %v, want 0", got)
			}
		})
	}
}

func TestCentroid(t *testing.T) {
	c, ok := Centroid(rectPolygon(10, 20, 30, 40))
	if !ok {
		t.Fatal("expected centroid")
	}
	if math.Abs(c.X-25) > 1e-9 || math.Abs(c.Y-40) > 1e-9 {
		t.Errorf("got %+v, want (25,40)", c)
	}

	// An L shape: centroid is pulled toward the heavier arm.
	l := []Point2D{{0, 0}, {0, 20}, {10, 20}, {10, 10}, {20, 10}, {20, 0}}
	c, ok = Centroid(l)
	if !ok {
		t.Fatal("expected centroid for L shape")
	}
	want := 25.0 / 3.0
	if math.Abs(c.X-want) > 1e-9 || math.Abs(c.Y-want) > 1e-9 {
		t.Errorf("L centroid: got %+v, want (%.4f,%.4f)", c, want, want)
	}
}

func TestCentroid_ZeroArea(t *testing.T) {
	if _, ok := Centroid([]Point2D{{0, 0}, {5, 0}, {10, 0}}); ok {
		t.Error("expected no centroid for a zero-area polygon")
	}
	if _, ok := Centroid(nil); ok {
		t.Error("expected no centroid for an empty polygon")
	}
}

func TestConvexHull(t *testing.T) {
	// Concave "C" shape: the notch points must be removed.
	c := []Point2D{{0, 0}, {0, 10}, {10, 10}, {10, 8}, {2, 8}, {2, 2}, {10, 2}, {10, 0}}
	hull := ConvexHull(c)
	if len(hull) != 4 {
		t.Fatalf("expected 4 hull points, got %d: %v", len(hull), hull)
	}
	if got := Area(hull); got != 100 {
		t.Errorf("hull area: got %v, want 100", got)
	}
	for _, p := range hull {
		if p == (Point2D{2, 8}) || p == (Point2D{2, 2}) {
			t.Errorf("notch vertex %v kept in hull", p)
		}
	}
}

func TestConvexHull_Degenerate(t *testing.T) {
	if got := ConvexHull(nil); len(got) != 0 {
		t.Errorf("empty: got %v", got)
	}
	if got := ConvexHull([]Point2D{{1, 1}, {1, 1}}); len(got) != 1 {
		t.Errorf("duplicates: got %v", got)
	}
	got := ConvexHull([]Point2D{{0, 0}, {1, 1}, {2, 2}, {3, 3}})
	if len(got) != 2 {
		t.Errorf("collinear: expected the two endpoints, got %v", got)
	}
}

func TestConvexHull_DoesNotModifyInput(t *testing.T) {
	in := []Point2D{{5, 5}, {0, 0}, {10, 0}, {5, 1}}
	orig := append([]Point2D(nil), in...)
	ConvexHull(in)
	for i := range in {
		if in[i] != orig[i] {
			t.Fatalf("input modified at %d: %v != %v", i, in[i], orig[i])
		}
	}
}

func TestMinAreaRect_AxisAligned(t *testing.T) {
	r := MinAreaRect(rectPolygon(100, 50, 19, 79))
	if r.Size.Min() != 19 || r.Size.Max() != 79 {
		t.Errorf("size: got %+v, want 19x79", r.Size)
	}
	if math.Abs(r.Center.X-109.5) > 1e-9 || math.Abs(r.Center.Y-89.5) > 1e-9 {
		t.Errorf("center: got %+v, want (109.5,89.5)", r.Center)
	}
}

func TestMinAreaRect_Rotated(t *testing.T) {
	// A 10x40 rectangle rotated by 30 degrees.
	rect := RotatedRect{Center: Point2D{200, 200}, Size: Size{Width: 40, Height: 10}, Angle: 30}
	corners := rect.Points()
	got := MinAreaRect(corners[:])

	if math.Abs(got.Size.Min()-10) > 1e-9 || math.Abs(got.Size.Max()-40) > 1e-9 {
		t.Errorf("size: got %+v, want 10x40", got.Size)
	}
	if got.Center.Distance(rect.Center) > 1e-9 {
		t.Errorf("center: got %+v, want %+v", got.Center, rect.Center)
	}
}

func TestMinAreaRect_Circle(t *testing.T) {
	pts := circlePoints(0, 0, 60, 720)
	r := MinAreaRect(pts)
	if math.Abs(r.Size.Width-120) > 0.01 || math.Abs(r.Size.Height-120) > 0.01 {
		t.Errorf("circle rect: got %+v, want ~120x120", r.Size)
	}
}

func TestMinAreaRect_Degenerate(t *testing.T) {
	if r := MinAreaRect(nil); r != (RotatedRect{}) {
		t.Errorf("empty: got %+v", r)
	}

	r := MinAreaRect([]Point2D{{3, 4}})
	if r.Center != (Point2D{3, 4}) || r.Size != (Size{}) {
		t.Errorf("single point: got %+v", r)
	}

	r = MinAreaRect([]Point2D{{0, 0}, {10, 0}, {5, 0}})
	if r.Size.Max() != 10 || r.Size.Min() != 0 {
		t.Errorf("segment: got %+v", r.Size)
	}
}

func TestMinAreaRect_HullNeverShrinks(t *testing.T) {
	c := []Point2D{{0, 0}, {0, 10}, {30, 10}, {30, 8}, {4, 8}, {4, 2}, {30, 2}, {30, 0}}
	raw := MinAreaRect(c)
	hull := MinAreaRect(ConvexHull(c))
	if hull.Size.Min() < raw.Size.Min() || hull.Size.Max() < raw.Size.Max() {
		t.Errorf("hull rect %+v smaller than raw %+v", hull.Size, raw.Size)
	}
}

func TestRotatedRectPoints(t *testing.T) {
	r := RotatedRect{Center: Point2D{10, 10}, Size: Size{Width: 4, Height: 2}}
	pts := r.Points()
	want := [4]Point2D{{8, 9}, {12, 9}, {12, 11}, {8, 11}}
	for i := range pts {
		if pts[i].Distance(want[i]) > 1e-9 {
			t.Errorf("corner %d: got %+v, want %+v", i, pts[i], want[i])
		}
	}
}
