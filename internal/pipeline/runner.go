// Package pipeline runs the full per-photograph workflow: load, analyze,
// annotate and save. Each photograph is processed independently.
package pipeline

import (
	"fmt"
	"image"
	"runtime"
	"sync"

	"cocoon-morph/internal/cocoon"
	"cocoon-morph/internal/config"
	"cocoon-morph/internal/photo"
	"cocoon-morph/internal/vision"
)

// Job names one input photograph and where its annotated copy goes.
// An empty Output skips annotation and saving.
type Job struct {
	Input  string
	Output string
}

// Outcome is the result of one Job. Err is set when the photograph could
// not be read, analyzed or written; Result may still be set when only the
// write failed.
type Outcome struct {
	Job    Job
	Result *cocoon.Result
	Err    error
}

// Runner holds the analyzer and overlay style shared by all jobs.
type Runner struct {
	analyzer *cocoon.Analyzer
	style    vision.Style
}

// NewRunner builds a Runner backed by the OpenCV binarizer, contour finder
// and intensity sampler.
func NewRunner(s config.Settings) (*Runner, error) {
	a, err := cocoon.NewAnalyzer(s.Params, vision.NewBinarizer(), vision.NewFinder(), vision.NewIntensitySampler())
	if err != nil {
		return nil, err
	}
	return &Runner{analyzer: a, style: StyleFrom(s.Annotation)}, nil
}

// StyleFrom converts configured annotation settings to a drawing style.
func StyleFrom(a config.Annotation) vision.Style {
	return vision.Style{
		CircleColor:    a.CircleColor,
		BoxColor:       a.BoxColor,
		ContourColor:   a.ContourColor,
		LabelColor:     a.LabelColor,
		Thickness:      a.Thickness,
		FontScale:      a.FontScale,
		LabelThickness: a.LabelThickness,
		LabelPrefix:    a.LabelPrefix,
	}
}

// Params returns the analysis parameters.
func (r *Runner) Params() cocoon.Params {
	return r.analyzer.Params()
}

// Analyze loads and analyzes one photograph.
func (r *Runner) Analyze(path string) (*photo.Photo, *cocoon.Result, error) {
	p, err := photo.Load(path)
	if err != nil {
		return nil, nil, err
	}
	res, err := r.analyzer.Analyze(p.Image)
	if err != nil {
		return nil, nil, fmt.Errorf("analyze %s: %w", path, err)
	}
	return p, res, nil
}

// Annotate draws res onto img with the runner's style.
func (r *Runner) Annotate(img image.Image, res *cocoon.Result) (image.Image, error) {
	return vision.Annotate(img, res, r.style)
}

// Process runs one job end to end.
func (r *Runner) Process(job Job) Outcome {
	out := Outcome{Job: job}

	p, res, err := r.Analyze(job.Input)
	if err != nil {
		out.Err = err
		return out
	}
	out.Result = res

	if job.Output == "" {
		return out
	}

	annotated, err := r.Annotate(p.Image, res)
	if err != nil {
		out.Err = fmt.Errorf("annotate %s: %w", job.Input, err)
		return out
	}
	if err := photo.Save(job.Output, annotated, p.Format); err != nil {
		out.Err = err
	}
	return out
}

// ProcessAll runs jobs on at most workers goroutines (NumCPU when
// workers <= 0) and returns outcomes in job order.
func (r *Runner) ProcessAll(jobs []Job, workers int) []Outcome {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	outcomes := make([]Outcome, len(jobs))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i := range jobs {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			outcomes[idx] = r.Process(jobs[idx])
		}(i)
	}

	wg.Wait()
	return outcomes
}
