package vision

import (
	"fmt"

	"cocoon-morph/internal/cocoon"

	"gocv.io/x/gocv"
)

// Finder extracts contours with OpenCV's border following. Every border,
// outer or hole, is returned as an independent contour (list topology) with
// collinear runs compressed to their end points.
type Finder struct{}

// NewFinder returns a contour finder.
func NewFinder() *Finder {
	return &Finder{}
}

// FindContours implements cocoon.ContourFinder.
func (f *Finder) FindContours(mask *cocoon.Mask) ([]cocoon.Contour, error) {
	mat, err := maskToMat(mask)
	if err != nil {
		return nil, fmt.Errorf("mask to mat: %w", err)
	}
	defer mat.Close()

	contours := gocv.FindContours(mat, gocv.RetrievalList, gocv.ChainApproxSimple)
	defer contours.Close()

	out := make([]cocoon.Contour, 0, contours.Size())
	for i := 0; i < contours.Size(); i++ {
		out = append(out, cocoon.Contour{Index: i, Points: contours.At(i).ToPoints()})
	}
	return out, nil
}
