package cocoon

import (
	"math"
	"strconv"
)

// Quantity is a physical value that may be undefined. The zero value is
// undefined; it never carries a NaN, infinity or zero stand-in.
type Quantity struct {
	value   float64
	defined bool
}

// Defined returns a defined Quantity holding v.
func Defined(v float64) Quantity {
	return Quantity{value: v, defined: true}
}

// Value returns the value and whether it is defined.
func (q Quantity) Value() (float64, bool) {
	return q.value, q.defined
}

// Defined reports whether the quantity carries a value.
func (q Quantity) Defined() bool {
	return q.defined
}

// String formats the value with the shortest exact decimal form, or "NA".
func (q Quantity) String() string {
	if !q.defined {
		return "NA"
	}
	return strconv.FormatFloat(q.value, 'f', -1, 64)
}

// Scale is the calibration factor in pixels per millimetre. The zero value
// means the photograph could not be calibrated.
type Scale struct {
	pxPerMM float64
	defined bool
}

// NewScale returns a defined scale when pxPerMM is positive and finite,
// and an undefined one otherwise.
func NewScale(pxPerMM float64) Scale {
	if pxPerMM <= 0 || math.IsInf(pxPerMM, 0) || math.IsNaN(pxPerMM) {
		return Scale{}
	}
	return Scale{pxPerMM: pxPerMM, defined: true}
}

// PixelsPerMM returns the factor and whether the scale is defined.
func (s Scale) PixelsPerMM() (float64, bool) {
	return s.pxPerMM, s.defined
}

// Defined reports whether calibration succeeded.
func (s Scale) Defined() bool {
	return s.defined
}

// Length converts a pixel length to millimetres.
func (s Scale) Length(px float64) Quantity {
	if !s.defined {
		return Quantity{}
	}
	return Defined(px / s.pxPerMM)
}

// Area converts a pixel area to square millimetres.
func (s Scale) Area(px2 float64) Quantity {
	if !s.defined {
		return Quantity{}
	}
	return Defined(px2 / (s.pxPerMM * s.pxPerMM))
}

func (s Scale) String() string {
	if !s.defined {
		return "undefined"
	}
	return strconv.FormatFloat(s.pxPerMM, 'f', -1, 64)
}
