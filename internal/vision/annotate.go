package vision

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"cocoon-morph/internal/cocoon"
	"cocoon-morph/pkg/geometry"

	"gocv.io/x/gocv"
)

// Style controls how results are drawn on the output photograph.
type Style struct {
	CircleColor    color.RGBA
	BoxColor       color.RGBA
	ContourColor   color.RGBA
	LabelColor     color.RGBA
	Thickness      int
	FontScale      float64
	LabelThickness int
	LabelPrefix    string
}

// Annotate draws the reference circle, each specimen's bounding box and
// outline, and a label at each specimen's centroid onto a copy of src.
// Specimens without a centroid are drawn but left unlabelled.
func Annotate(src image.Image, res *cocoon.Result, style Style) (image.Image, error) {
	if src == nil || src.Bounds().Empty() {
		return nil, cocoon.ErrEmptyImage
	}
	if res == nil {
		return nil, fmt.Errorf("annotate: nil result")
	}

	mat, err := imageToMat(src)
	if err != nil {
		return nil, fmt.Errorf("failed to convert image: %w", err)
	}
	defer mat.Close()

	if res.Circle != nil {
		drawOutline(&mat, res.Circle.Points, style.CircleColor, style.Thickness)
	}

	for i, m := range res.Measurements {
		corners := m.Rect.Points()
		drawOutline(&mat, geometry.ToImagePoints(corners[:]), style.BoxColor, style.Thickness)
		if i < len(res.Specimens) {
			drawOutline(&mat, res.Specimens[i].Points, style.ContourColor, style.Thickness)
		}
	}

	for _, m := range res.Measurements {
		if !m.HasCentroid {
			continue
		}
		org := image.Point{X: int(m.Centroid.X), Y: int(m.Centroid.Y)}
		gocv.PutText(&mat, style.LabelPrefix+strconv.Itoa(m.Index), org,
			gocv.FontHersheySimplex, style.FontScale, style.LabelColor, style.LabelThickness)
	}

	return matToImage(mat)
}

func drawOutline(mat *gocv.Mat, pts []image.Point, c color.RGBA, thickness int) {
	if len(pts) == 0 {
		return
	}
	pv := gocv.NewPointsVectorFromPoints([][]image.Point{pts})
	defer pv.Close()
	gocv.DrawContours(mat, pv, 0, c, thickness)
}
