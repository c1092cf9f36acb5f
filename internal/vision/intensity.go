package vision

import (
	"fmt"
	"image"

	"cocoon-morph/internal/cocoon"
	"cocoon-morph/pkg/colorutil"

	"gocv.io/x/gocv"
)

// IntensitySampler averages grayscale values inside a simplified contour.
type IntensitySampler struct{}

// NewIntensitySampler returns a sampler.
func NewIntensitySampler() *IntensitySampler {
	return &IntensitySampler{}
}

// MeanIntensity approximates c with tolerance epsFactor × perimeter, fills
// the polygon and returns the mean of the gray pixels it covers.
func (s *IntensitySampler) MeanIntensity(gray *image.Gray, c cocoon.Contour, epsFactor float64) (float64, error) {
	if gray == nil || gray.Bounds().Empty() {
		return 0, cocoon.ErrEmptyImage
	}
	if len(c.Points) < 3 {
		return 0, fmt.Errorf("contour %d has %d points", c.Index, len(c.Points))
	}

	src, err := grayToMat(gray)
	if err != nil {
		return 0, err
	}
	defer src.Close()

	curve := gocv.NewPointVectorFromPoints(c.Points)
	defer curve.Close()
	approx := gocv.ApproxPolyDP(curve, epsFactor*gocv.ArcLength(curve, true), true)
	defer approx.Close()

	poly := gocv.NewPointsVectorFromPoints([][]image.Point{approx.ToPoints()})
	defer poly.Close()

	mask := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), src.Rows(), src.Cols(), gocv.MatTypeCV8U)
	defer mask.Close()
	gocv.FillPoly(&mask, poly, colorutil.White)

	if gocv.CountNonZero(mask) == 0 {
		return 0, fmt.Errorf("contour %d covers no pixels", c.Index)
	}
	return src.MeanWithMask(mask).Val1, nil
}
