package cocoon

import (
	"errors"
	"image"
	"testing"
)

type fakeBinarizer struct {
	err       error
	threshold int
}

func (b *fakeBinarizer) Binarize(gray *image.Gray, threshold int) (*Mask, error) {
	b.threshold = threshold
	if b.err != nil {
		return nil, b.err
	}
	r := gray.Bounds()
	return &Mask{Width: r.Dx(), Height: r.Dy(), Pix: make([]uint8, r.Dx()*r.Dy())}, nil
}

type fakeFinder struct {
	contours []Contour
	err      error
	masks    int
}

func (f *fakeFinder) FindContours(mask *Mask) ([]Contour, error) {
	f.masks++
	return f.contours, f.err
}

type fakeSampler struct {
	mean float64
	err  error
	eps  float64
}

func (s *fakeSampler) MeanIntensity(gray *image.Gray, c Contour, epsFactor float64) (float64, error) {
	s.eps = epsFactor
	return s.mean, s.err
}

func blankPhoto() image.Image {
	return image.NewGray(image.Rect(0, 0, 400, 400))
}

func TestNewAnalyzer(t *testing.T) {
	if _, err := NewAnalyzer(DefaultParams(), &fakeBinarizer{}, nil, nil); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("nil finder: got %v", err)
	}
	if _, err := NewAnalyzer(DefaultParams(), nil, &fakeFinder{}, nil); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("nil binarizer: got %v", err)
	}
	if _, err := NewAnalyzer(DefaultParams().WithThreshold(0), &fakeBinarizer{}, &fakeFinder{}, nil); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("bad params: got %v", err)
	}
	a, err := NewAnalyzer(DefaultParams(), &fakeBinarizer{}, &fakeFinder{}, nil)
	if err != nil {
		t.Fatalf("NewAnalyzer failed: %v", err)
	}
	if a.Params() != DefaultParams() {
		t.Errorf("Params: got %+v", a.Params())
	}
}

func TestAnalyze(t *testing.T) {
	finder := &fakeFinder{contours: syntheticContours()}
	sampler := &fakeSampler{mean: 231.5}
	binarizer := &fakeBinarizer{}
	a, err := NewAnalyzer(DefaultParams().WithExpectedCount(4), binarizer, finder, sampler)
	if err != nil {
		t.Fatal(err)
	}

	res, err := a.Analyze(blankPhoto())
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if binarizer.threshold != DefaultParams().Threshold {
		t.Errorf("binarized at %d", binarizer.threshold)
	}
	if finder.masks != 1 {
		t.Errorf("finder called %d times", finder.masks)
	}
	if res.Size != frame400 {
		t.Errorf("size: got %v", res.Size)
	}
	if !res.Calibrated() {
		t.Fatal("expected a calibrated result")
	}
	if len(res.Measurements) != 4 {
		t.Fatalf("expected 4 measurements, got %d", len(res.Measurements))
	}
	for _, m := range res.Measurements {
		if !m.WidthMM.Defined() || !m.LengthMM.Defined() || !m.AreaMM2.Defined() {
			t.Errorf("measurement %d has undefined values", m.Index)
		}
	}
	if v, ok := res.CircleIntensity.Value(); !ok || v != 231.5 {
		t.Errorf("circle intensity: got %v, %v", v, ok)
	}
	if sampler.eps != DefaultParams().CircleApproxEpsilon {
		t.Errorf("sampler epsilon: got %v", sampler.eps)
	}
	if res.CircleFit == nil || res.CircleFit.Radius < 158 || res.CircleFit.Radius > 162 {
		t.Errorf("circle fit: got %+v", res.CircleFit)
	}
	if !hasDiagnostic(res.Diagnostics, KindCircleFit) || !hasDiagnostic(res.Diagnostics, KindCircleIntensity) {
		t.Errorf("missing info diagnostics: %v", res.Diagnostics)
	}
	if len(res.Warnings()) != 0 {
		t.Errorf("unexpected warnings: %v", res.Warnings())
	}
}

func TestAnalyze_Uncalibrated(t *testing.T) {
	contours := syntheticContours()
	contours = append(contours[:1], contours[2:]...)
	sampler := &fakeSampler{mean: 1}
	a, _ := NewAnalyzer(DefaultParams(), &fakeBinarizer{}, &fakeFinder{contours: contours}, sampler)

	res, err := a.Analyze(blankPhoto())
	if err != nil {
		t.Fatal(err)
	}
	if res.Calibrated() {
		t.Fatal("expected an uncalibrated result")
	}
	for _, m := range res.Measurements {
		if m.WidthMM.Defined() || m.LengthMM.Defined() || m.AreaMM2.Defined() {
			t.Errorf("measurement %d should be undefined", m.Index)
		}
	}
	if res.CircleIntensity.Defined() || sampler.eps != 0 {
		t.Error("intensity should not be sampled without a circle")
	}
	if len(res.Warnings()) != 2 {
		t.Errorf("expected circle-missing and count-mismatch, got %v", res.Warnings())
	}
}

func TestAnalyze_SamplerError(t *testing.T) {
	a, _ := NewAnalyzer(DefaultParams().WithExpectedCount(4), &fakeBinarizer{},
		&fakeFinder{contours: syntheticContours()}, &fakeSampler{err: errors.New("boom")})

	res, err := a.Analyze(blankPhoto())
	if err != nil {
		t.Fatalf("sampler errors must not be fatal: %v", err)
	}
	ws := res.Warnings()
	if len(ws) != 1 || ws[0].Kind != KindCircleIntensity {
		t.Errorf("expected one circle-intensity warning, got %v", ws)
	}
}

func TestAnalyze_IntensityDisabled(t *testing.T) {
	p := DefaultParams()
	p.ReportCircleIntensity = false
	sampler := &fakeSampler{mean: 1}
	a, _ := NewAnalyzer(p, &fakeBinarizer{}, &fakeFinder{contours: syntheticContours()}, sampler)

	res, err := a.Analyze(blankPhoto())
	if err != nil {
		t.Fatal(err)
	}
	if res.CircleIntensity.Defined() {
		t.Error("intensity should not be reported")
	}
}

func TestAnalyze_Errors(t *testing.T) {
	boom := errors.New("boom")
	a, _ := NewAnalyzer(DefaultParams(), &fakeBinarizer{}, &fakeFinder{err: boom}, nil)

	if _, err := a.Analyze(nil); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("nil image: got %v", err)
	}
	if _, err := a.Analyze(image.NewGray(image.Rect(0, 0, 0, 0))); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("empty image: got %v", err)
	}
	if _, err := a.Analyze(blankPhoto()); !errors.Is(err, boom) {
		t.Errorf("finder error: got %v", err)
	}

	b, _ := NewAnalyzer(DefaultParams(), &fakeBinarizer{err: boom}, &fakeFinder{}, nil)
	if _, err := b.Analyze(blankPhoto()); !errors.Is(err, boom) {
		t.Errorf("binarizer error: got %v", err)
	}
}
