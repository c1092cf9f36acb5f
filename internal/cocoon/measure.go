package cocoon

import "cocoon-morph/pkg/geometry"

// Measurement holds the dimensions of one specimen.
// Pixel fields are always set; millimetre fields are undefined when the
// photograph could not be calibrated. WidthPx <= LengthPx.
type Measurement struct {
	Index        int // 1-based, extraction order
	ContourIndex int

	WidthPx  float64
	LengthPx float64
	AreaPx   float64

	WidthMM  Quantity
	LengthMM Quantity
	AreaMM2  Quantity

	Rect        geometry.RotatedRect
	Centroid    geometry.Point2D
	HasCentroid bool
}

// Measure computes one Measurement per specimen, keeping their order.
func Measure(specimens []Contour, scale Scale) []Measurement {
	out := make([]Measurement, 0, len(specimens))
	for i, c := range specimens {
		rect := c.MinAreaRect()
		m := Measurement{
			Index:        i + 1,
			ContourIndex: c.Index,
			WidthPx:      rect.Size.Min(),
			LengthPx:     rect.Size.Max(),
			AreaPx:       c.Area(),
			Rect:         rect,
		}
		m.WidthMM = scale.Length(m.WidthPx)
		m.LengthMM = scale.Length(m.LengthPx)
		m.AreaMM2 = scale.Area(m.AreaPx)
		m.Centroid, m.HasCentroid = c.Centroid()
		out = append(out, m)
	}
	return out
}
