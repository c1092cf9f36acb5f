package report

import (
	"cocoon-morph/internal/cocoon"

	"github.com/sirupsen/logrus"
)

// LogDiagnostics writes a result's diagnostics and the calibration line.
// Warnings come first, then "Pix/mm = <scale>", then informational lines.
func LogDiagnostics(entry *logrus.Entry, res *cocoon.Result) {
	for _, d := range res.Diagnostics {
		if d.Severity == cocoon.SeverityWarning {
			entry.WithField("kind", string(d.Kind)).Warn(d.Message)
		}
	}

	entry.WithFields(logrus.Fields{
		"calibrated": res.Calibrated(),
		"specimens":  len(res.Measurements),
		"contours":   len(res.Contours),
	}).Infof("Pix/mm = %s", res.Scale)

	for _, d := range res.Diagnostics {
		if d.Severity != cocoon.SeverityInfo {
			continue
		}
		e := entry.WithField("kind", string(d.Kind))
		if d.Kind == cocoon.KindCircleFit {
			e.Debug(d.Message)
		} else {
			e.Info(d.Message)
		}
	}
}
