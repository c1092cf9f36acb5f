package cli

import (
	"fmt"

	"cocoon-morph/internal/cocoon"
	"cocoon-morph/internal/config"

	"github.com/spf13/pflag"
)

// options holds the flags shared by every measuring command.
type options struct {
	configPath string

	threshold    int
	borderCutoff float64
	convexHull   bool
	expected     int
	diameter     float64
	tieBreak     string

	header  bool
	summary bool
	pixels  bool

	logLevel  string
	logFormat string
}

func (o *options) register(fs *pflag.FlagSet) {
	d := cocoon.DefaultParams()

	fs.StringVarP(&o.configPath, "config", "c", "", "YAML settings file (optional)")

	fs.IntVar(&o.threshold, "threshold", d.Threshold, "grayscale threshold; darker pixels are foreground")
	fs.Float64Var(&o.borderCutoff, "border-cutoff", d.BorderCutoff, "fraction of the width excluded on each side for the reference circle")
	fs.BoolVar(&o.convexHull, "convex-hull", d.UseConvexHull, "measure specimens by their convex hull")
	fs.IntVar(&o.expected, "expected", d.ExpectedCount, "expected specimens per photograph (0 disables the check)")
	fs.Float64Var(&o.diameter, "diameter", d.CircleDiameterMM, "reference circle diameter in mm")
	fs.StringVar(&o.tieBreak, "tie-break", string(d.TieBreak), "reference circle tie-break: last|first|largest|reject")

	fs.BoolVar(&o.header, "header", false, "print a header row")
	fs.BoolVar(&o.summary, "summary", false, "log mean and standard deviation of each dimension")
	fs.BoolVar(&o.pixels, "pixels", false, "append pixel measurements to each row")

	fs.StringVar(&o.logLevel, "log-level", "info", "log level: debug|info|warn|error")
	fs.StringVar(&o.logFormat, "log-format", "text", "log format: text|json")
}

// settings loads the config file and applies every flag the user set
// explicitly on top of it.
func (o *options) settings(fs *pflag.FlagSet) (config.Settings, error) {
	s, err := config.Load(o.configPath)
	if err != nil {
		return config.Settings{}, err
	}

	p := s.Params
	if fs.Changed("threshold") {
		p = p.WithThreshold(o.threshold)
	}
	if fs.Changed("border-cutoff") {
		p = p.WithBorderCutoff(o.borderCutoff)
	}
	if fs.Changed("convex-hull") {
		p = p.WithConvexHull(o.convexHull)
	}
	if fs.Changed("expected") {
		p = p.WithExpectedCount(o.expected)
	}
	if fs.Changed("diameter") {
		p = p.WithCircleDiameter(o.diameter)
	}
	if fs.Changed("tie-break") {
		tb, err := cocoon.ParseTieBreak(o.tieBreak)
		if err != nil {
			return config.Settings{}, err
		}
		p = p.WithTieBreak(tb)
	}

	if err := p.Validate(); err != nil {
		return config.Settings{}, fmt.Errorf("flags: %w", err)
	}
	s.Params = p
	return s, nil
}
