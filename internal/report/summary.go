package report

import (
	"cocoon-morph/internal/cocoon"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
)

// Stat is the mean and sample standard deviation of one dimension.
// StdDev is undefined for fewer than two values; both are undefined for none.
type Stat struct {
	N      int
	Mean   cocoon.Quantity
	StdDev cocoon.Quantity
}

// Summary aggregates the calibrated measurements of one or more photographs.
type Summary struct {
	Specimens int
	Width     Stat
	Length    Stat
	Area      Stat
}

// Summarize computes per-dimension statistics over defined values only.
func Summarize(ms []cocoon.Measurement) Summary {
	var w, l, a []float64
	for _, m := range ms {
		if v, ok := m.WidthMM.Value(); ok {
			w = append(w, v)
		}
		if v, ok := m.LengthMM.Value(); ok {
			l = append(l, v)
		}
		if v, ok := m.AreaMM2.Value(); ok {
			a = append(a, v)
		}
	}
	return Summary{
		Specimens: len(ms),
		Width:     describe(w),
		Length:    describe(l),
		Area:      describe(a),
	}
}

func describe(xs []float64) Stat {
	s := Stat{N: len(xs)}
	switch len(xs) {
	case 0:
		return s
	case 1:
		s.Mean = cocoon.Defined(xs[0])
		return s
	}
	mean, std := stat.MeanStdDev(xs, nil)
	s.Mean = cocoon.Defined(mean)
	s.StdDev = cocoon.Defined(std)
	return s
}

// LogSummary writes one info line per dimension.
func LogSummary(entry *logrus.Entry, s Summary) {
	for _, d := range []struct {
		name string
		st   Stat
	}{
		{"width_mm", s.Width},
		{"length_mm", s.Length},
		{"area_mm2", s.Area},
	} {
		entry.WithFields(logrus.Fields{
			"n":    d.st.N,
			"mean": d.st.Mean.String(),
			"sd":   d.st.StdDev.String(),
		}).Infof("summary %s", d.name)
	}
}
