package cocoon

import (
	"image"
	"math"
	"strconv"
	"strings"
)

// Classification is the outcome of sorting one photograph's contours.
type Classification struct {
	// Classes is parallel to the classified contour slice.
	Classes []Class

	// Candidates holds the slice positions of every contour that passed the
	// reference circle test, in extraction order.
	Candidates []int

	// Circle is the selected reference circle, or nil.
	Circle *Contour

	// Specimens in extraction order, replaced by their convex hull when
	// Params.UseConvexHull is set.
	Specimens []Contour

	Diagnostics []Diagnostic
}

// Classify sorts contours into reference circle, specimens and noise for an
// image of the given size. It has no side effects; calling it twice on the
// same input yields the same partition.
//
// Each contour is tested independently. The circle test (position band and
// area between CircleAreaMin and CircleAreaMax of the image) comes first;
// contours failing it are tested as specimens (area between
// SpecimenAreaMinFactor and SpecimenAreaMaxFactor times the image width).
// The circle is chosen among the candidates afterwards according to
// p.TieBreak; losing candidates become noise.
func Classify(contours []Contour, size image.Point, p Params) Classification {
	w, h := float64(size.X), float64(size.Y)
	frameArea := w * h
	left := w * p.BorderCutoff
	right := w - left

	inBand := func(c Contour) bool {
		center := c.MinAreaRect().Center
		pos := math.Max(center.X, center.Y)
		return left < pos && pos < right
	}

	cl := Classification{Classes: make([]Class, len(contours))}

	for i, c := range contours {
		area := math.Abs(c.SignedArea())

		if inBand(c) && area > p.CircleAreaMin*frameArea && area < p.CircleAreaMax*frameArea {
			cl.Candidates = append(cl.Candidates, i)
			continue
		}

		if area > p.SpecimenAreaMinFactor*w && area < p.SpecimenAreaMaxFactor*w {
			if p.ExcludeBorderSpecimens && !inBand(c) {
				continue
			}
			cl.Classes[i] = ClassSpecimen
			if p.UseConvexHull {
				c = c.Hull()
			}
			cl.Specimens = append(cl.Specimens, c)
		}
	}

	if sel := selectCircle(contours, cl.Candidates, p.TieBreak); sel >= 0 {
		cl.Classes[sel] = ClassReferenceCircle
		circle := contours[sel]
		cl.Circle = &circle
	}

	if len(cl.Candidates) > 1 {
		cl.Diagnostics = append(cl.Diagnostics, ambiguous(contours, cl.Candidates, cl.Circle, p.TieBreak))
	}
	if cl.Circle == nil {
		cl.Diagnostics = append(cl.Diagnostics,
			warnf(KindCircleMissing, "reference circle not found, measurements are undefined"))
	}
	if p.ExpectedCount > 0 && len(cl.Specimens) != p.ExpectedCount {
		cl.Diagnostics = append(cl.Diagnostics,
			warnf(KindCountMismatch, "found %d specimens, expected %d", len(cl.Specimens), p.ExpectedCount))
	}

	return cl
}

// selectCircle returns the slice position of the chosen circle, or -1.
func selectCircle(contours []Contour, candidates []int, tb TieBreak) int {
	if len(candidates) == 0 {
		return -1
	}
	switch tb {
	case TieBreakFirst:
		return candidates[0]
	case TieBreakLargest:
		best, bestArea := -1, -1.0
		for _, i := range candidates {
			if a := contours[i].Area(); a > bestArea {
				best, bestArea = i, a
			}
		}
		return best
	case TieBreakReject:
		if len(candidates) > 1 {
			return -1
		}
		return candidates[0]
	default:
		return candidates[len(candidates)-1]
	}
}

func ambiguous(contours []Contour, candidates []int, chosen *Contour, tb TieBreak) Diagnostic {
	ids := make([]string, len(candidates))
	for i, c := range candidates {
		ids[i] = strconv.Itoa(contours[c].Index)
	}
	outcome := "none kept"
	if chosen != nil {
		outcome = "kept contour " + strconv.Itoa(chosen.Index)
	}
	return warnf(KindAmbiguousCircle, "%d reference circle candidates (contours %s), %s by tie-break %q",
		len(candidates), strings.Join(ids, ", "), outcome, tb)
}
