package cocoon

import (
	"fmt"
	"strings"
)

// TieBreak selects the reference circle when more than one contour qualifies.
type TieBreak string

const (
	// TieBreakLast keeps the last qualifying contour in extraction order.
	TieBreakLast TieBreak = "last"
	// TieBreakFirst keeps the first qualifying contour in extraction order.
	TieBreakFirst TieBreak = "first"
	// TieBreakLargest keeps the qualifying contour with the largest area.
	TieBreakLargest TieBreak = "largest"
	// TieBreakReject treats more than one candidate as no circle at all.
	TieBreakReject TieBreak = "reject"
)

// ParseTieBreak converts a policy name into a TieBreak.
func ParseTieBreak(s string) (TieBreak, error) {
	switch tb := TieBreak(strings.ToLower(strings.TrimSpace(s))); tb {
	case TieBreakLast, TieBreakFirst, TieBreakLargest, TieBreakReject:
		return tb, nil
	}
	return "", fmt.Errorf("%w: unknown tie-break policy %q (want last, first, largest or reject)", ErrInvalidParams, s)
}

// Params holds the tunables of the measurement pipeline.
// See DefaultParams for the values used on the lab photographs.
type Params struct {
	// Binarization: pixels darker than Threshold are foreground.
	Threshold int

	// Fraction of the image width excluded on the left and on the right
	// when checking the reference circle position.
	BorderCutoff float64

	// Reference circle area band, as fractions of the full image area.
	CircleAreaMin float64
	CircleAreaMax float64

	// Physical diameter of the reference circle.
	CircleDiameterMM float64

	// Picks the circle when several contours qualify.
	TieBreak TieBreak

	// Specimen area band, as multiples of the image width in pixels.
	SpecimenAreaMinFactor float64
	SpecimenAreaMaxFactor float64

	// Replace each specimen by its convex hull before measuring.
	UseConvexHull bool

	// Apply the circle position filter to specimens as well.
	ExcludeBorderSpecimens bool

	// Number of specimens expected per photograph.
	ExpectedCount int

	// Sample the mean grayscale intensity inside the reference circle.
	ReportCircleIntensity bool

	// Polygon approximation tolerance for the intensity mask,
	// as a fraction of the circle perimeter.
	CircleApproxEpsilon float64
}

// DefaultParams returns the parameters used for the cocoon photographs:
// a 120 mm white disc photographed from above with ten cocoons on it.
func DefaultParams() Params {
	return Params{
		Threshold: 180,

		BorderCutoff:     0.10,
		CircleAreaMin:    0.30,
		CircleAreaMax:    0.80,
		CircleDiameterMM: 120,
		TieBreak:         TieBreakLast,

		SpecimenAreaMinFactor:  2,
		SpecimenAreaMaxFactor:  30,
		UseConvexHull:          true,
		ExcludeBorderSpecimens: false,
		ExpectedCount:          10,

		ReportCircleIntensity: true,
		CircleApproxEpsilon:   0.002,
	}
}

// WithThreshold returns a copy of params with a different binarization threshold.
func (p Params) WithThreshold(threshold int) Params {
	p.Threshold = threshold
	return p
}

// WithBorderCutoff returns a copy of params with a different horizontal border cutoff.
func (p Params) WithBorderCutoff(cutoff float64) Params {
	p.BorderCutoff = cutoff
	return p
}

// WithConvexHull returns a copy of params with convex hull correction switched on or off.
func (p Params) WithConvexHull(enabled bool) Params {
	p.UseConvexHull = enabled
	return p
}

// WithExpectedCount returns a copy of params expecting n specimens per photograph.
func (p Params) WithExpectedCount(n int) Params {
	p.ExpectedCount = n
	return p
}

// WithCircleDiameter returns a copy of params for a reference circle of the given diameter.
func (p Params) WithCircleDiameter(mm float64) Params {
	p.CircleDiameterMM = mm
	return p
}

// WithTieBreak returns a copy of params using the given circle tie-break policy.
func (p Params) WithTieBreak(tb TieBreak) Params {
	p.TieBreak = tb
	return p
}

// Validate reports the first parameter that cannot produce a meaningful run.
func (p Params) Validate() error {
	switch {
	case p.Threshold < 1 || p.Threshold > 256:
		return fmt.Errorf("%w: threshold %d outside 1..256", ErrInvalidParams, p.Threshold)
	case p.BorderCutoff < 0 || p.BorderCutoff >= 0.5:
		return fmt.Errorf("%w: border cutoff %g outside [0, 0.5)", ErrInvalidParams, p.BorderCutoff)
	case p.CircleAreaMin < 0 || p.CircleAreaMax > 1 || p.CircleAreaMin >= p.CircleAreaMax:
		return fmt.Errorf("%w: circle area band [%g, %g] must satisfy 0 <= min < max <= 1",
			ErrInvalidParams, p.CircleAreaMin, p.CircleAreaMax)
	case p.CircleDiameterMM <= 0:
		return fmt.Errorf("%w: circle diameter %g mm must be positive", ErrInvalidParams, p.CircleDiameterMM)
	case p.SpecimenAreaMinFactor < 0 || p.SpecimenAreaMinFactor >= p.SpecimenAreaMaxFactor:
		return fmt.Errorf("%w: specimen area factors [%g, %g] must satisfy 0 <= min < max",
			ErrInvalidParams, p.SpecimenAreaMinFactor, p.SpecimenAreaMaxFactor)
	case p.ExpectedCount < 0:
		return fmt.Errorf("%w: expected count %d is negative", ErrInvalidParams, p.ExpectedCount)
	case p.CircleApproxEpsilon < 0:
		return fmt.Errorf("%w: circle approximation epsilon %g is negative", ErrInvalidParams, p.CircleApproxEpsilon)
	}
	if _, err := ParseTieBreak(string(p.TieBreak)); err != nil {
		return err
	}
	return nil
}
