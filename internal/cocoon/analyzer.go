package cocoon

import (
	"fmt"
	"image"

	"cocoon-morph/pkg/geometry"
)

// Binarizer turns a grayscale image into a mask in which every pixel
// strictly darker than threshold is foreground. threshold is in 1..256.
type Binarizer interface {
	Binarize(gray *image.Gray, threshold int) (*Mask, error)
}

// ContourFinder extracts closed contours from a binary mask using list
// topology: nested borders are returned as siblings. An empty mask yields
// no contours and no error.
type ContourFinder interface {
	FindContours(mask *Mask) ([]Contour, error)
}

// IntensitySampler measures the mean grayscale value enclosed by a contour.
// epsFactor is the polygon approximation tolerance as a fraction of the
// contour perimeter.
type IntensitySampler interface {
	MeanIntensity(gray *image.Gray, c Contour, epsFactor float64) (float64, error)
}

// Result is everything one pipeline run produced for a photograph.
type Result struct {
	Size image.Point

	Contours   []Contour
	Classes    []Class
	Candidates []int

	Circle    *Contour
	Specimens []Contour

	Scale           Scale
	CircleFit       *geometry.CircleFit
	CircleIntensity Quantity

	Measurements []Measurement
	Diagnostics  []Diagnostic
}

// Calibrated reports whether a reference circle gave a usable scale.
func (r *Result) Calibrated() bool {
	return r.Scale.Defined()
}

// Warnings returns the warning-level diagnostics.
func (r *Result) Warnings() []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityWarning {
			out = append(out, d)
		}
	}
	return out
}

// Analyzer runs the measurement pipeline with a fixed set of parameters.
// It holds no per-image state and may be shared between goroutines as long
// as its finder and sampler may.
type Analyzer struct {
	params    Params
	binarizer Binarizer
	finder    ContourFinder
	sampler   IntensitySampler
}

// NewAnalyzer validates params and builds an Analyzer. sampler may be nil,
// in which case the circle intensity is never measured.
func NewAnalyzer(params Params, binarizer Binarizer, finder ContourFinder, sampler IntensitySampler) (*Analyzer, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if binarizer == nil {
		return nil, fmt.Errorf("%w: binarizer is required", ErrInvalidParams)
	}
	if finder == nil {
		return nil, fmt.Errorf("%w: contour finder is required", ErrInvalidParams)
	}
	return &Analyzer{params: params, binarizer: binarizer, finder: finder, sampler: sampler}, nil
}

// Params returns the parameters the analyzer was built with.
func (a *Analyzer) Params() Params {
	return a.params
}

// Analyze binarizes, extracts, classifies, calibrates and measures one
// photograph. Only unusable input is an error; everything else ends up in
// Result.Diagnostics.
func (a *Analyzer) Analyze(img image.Image) (*Result, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}

	gray := Grayscale(img)
	mask, err := a.binarizer.Binarize(gray, a.params.Threshold)
	if err != nil {
		return nil, fmt.Errorf("binarize: %w", err)
	}

	contours, err := a.finder.FindContours(mask)
	if err != nil {
		return nil, fmt.Errorf("find contours: %w", err)
	}

	size := image.Point{X: mask.Width, Y: mask.Height}
	cl := Classify(contours, size, a.params)

	res := &Result{
		Size:        size,
		Contours:    contours,
		Classes:     cl.Classes,
		Candidates:  cl.Candidates,
		Circle:      cl.Circle,
		Specimens:   cl.Specimens,
		Diagnostics: cl.Diagnostics,
	}

	res.Scale = Calibrate(res.Circle, a.params.CircleDiameterMM)

	if res.Circle != nil {
		if fit, err := FitReferenceCircle(res.Circle); err == nil {
			res.CircleFit = &fit
			res.Diagnostics = append(res.Diagnostics, infof(KindCircleFit,
				"fitted circle diameter %.1f px, rms residual %.2f px", fit.Diameter(), fit.RMS))
		}

		if a.params.ReportCircleIntensity && a.sampler != nil {
			mean, err := a.sampler.MeanIntensity(gray, *res.Circle, a.params.CircleApproxEpsilon)
			if err != nil {
				res.Diagnostics = append(res.Diagnostics,
					warnf(KindCircleIntensity, "circle intensity unavailable: %v", err))
			} else {
				res.CircleIntensity = Defined(mean)
				res.Diagnostics = append(res.Diagnostics,
					infof(KindCircleIntensity, "reference circle mean intensity %.2f", mean))
			}
		}
	}

	res.Measurements = Measure(res.Specimens, res.Scale)
	return res, nil
}
