// Package report turns analysis results into the measurement table on
// stdout and diagnostic log lines on stderr.
package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"cocoon-morph/internal/cocoon"
)

// TableOptions selects optional columns.
type TableOptions struct {
	Header     bool // Emit a header row before the first data row
	FileColumn bool // Prefix every row with the source file (batch runs)
	Pixels     bool // Append width_px, length_px and area_px
}

// Table writes tab-separated measurement rows. Undefined values are
// written as NA.
type Table struct {
	w           *csv.Writer
	opts        TableOptions
	wroteHeader bool
}

// NewTable returns a Table writing to w.
func NewTable(w io.Writer, opts TableOptions) *Table {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	return &Table{w: cw, opts: opts}
}

// Columns returns the column names in output order.
func (t *Table) Columns() []string {
	var cols []string
	if t.opts.FileColumn {
		cols = append(cols, "file")
	}
	cols = append(cols, "index", "width_mm", "length_mm", "area_mm2")
	if t.opts.Pixels {
		cols = append(cols, "width_px", "length_px", "area_px")
	}
	return cols
}

// Write appends one row per measurement.
func (t *Table) Write(file string, ms []cocoon.Measurement) error {
	if t.opts.Header && !t.wroteHeader {
		if err := t.w.Write(t.Columns()); err != nil {
			return err
		}
		t.wroteHeader = true
	}

	for _, m := range ms {
		row := make([]string, 0, 8)
		if t.opts.FileColumn {
			row = append(row, file)
		}
		row = append(row,
			strconv.Itoa(m.Index),
			m.WidthMM.String(),
			m.LengthMM.String(),
			m.AreaMM2.String(),
		)
		if t.opts.Pixels {
			row = append(row, formatFloat(m.WidthPx), formatFloat(m.LengthPx), formatFloat(m.AreaPx))
		}
		if err := t.w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes buffered rows to the underlying writer.
func (t *Table) Flush() error {
	t.w.Flush()
	return t.w.Error()
}

// WriteTable writes a single photograph's measurements and flushes.
func WriteTable(w io.Writer, ms []cocoon.Measurement, opts TableOptions) error {
	t := NewTable(w, opts)
	if err := t.Write("", ms); err != nil {
		return err
	}
	return t.Flush()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
