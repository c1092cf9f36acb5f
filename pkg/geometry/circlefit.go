package geometry

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrTooFewPoints is returned when a fit needs more points than were given.
var ErrTooFewPoints = errors.New("geometry: at least three points are required")

// CircleFit is the result of a least-squares circle fit.
type CircleFit struct {
	Center Point2D
	Radius float64
	RMS    float64 // Root-mean-square radial residual in the input units
}

// Diameter returns 2 × Radius.
func (c CircleFit) Diameter() float64 {
	return 2 * c.Radius
}

// FitCircle fits a circle to points with the algebraic (Kåsa) least-squares
// method:
//
//	x² + y² + D·x + E·y + F = 0
//
// Points are centred on their mean before solving to keep the system well
// conditioned for large pixel coordinates.
func FitCircle(points []Point2D) (CircleFit, error) {
	n := len(points)
	if n < 3 {
		return CircleFit{}, ErrTooFewPoints
	}

	var mean Point2D
	for _, p := range points {
		mean = mean.Add(p)
	}
	mean = mean.Scale(1 / float64(n))

	a := mat.NewDense(n, 3, nil)
	b := mat.NewVecDense(n, nil)
	for i, p := range points {
		d := p.Sub(mean)
		a.Set(i, 0, d.X)
		a.Set(i, 1, d.Y)
		a.Set(i, 2, 1)
		b.SetVec(i, -(d.X*d.X + d.Y*d.Y))
	}

	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		return CircleFit{}, fmt.Errorf("geometry: circle fit: %w", err)
	}

	cx := -x.AtVec(0) / 2
	cy := -x.AtVec(1) / 2
	r2 := cx*cx + cy*cy - x.AtVec(2)
	if r2 <= 0 || math.IsNaN(r2) {
		return CircleFit{}, fmt.Errorf("geometry: circle fit: degenerate point set")
	}

	fit := CircleFit{
		Center: Point2D{X: cx, Y: cy}.Add(mean),
		Radius: math.Sqrt(r2),
	}

	var ss float64
	for _, p := range points {
		r := p.Distance(fit.Center) - fit.Radius
		ss += r * r
	}
	fit.RMS = math.Sqrt(ss / float64(n))

	return fit, nil
}
