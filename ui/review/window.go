// Package review provides a desktop window for inspecting one analyzed photograph.
package review

import (
	"fmt"
	"image"
	"path/filepath"
	"strconv"

	"cocoon-morph/internal/cocoon"
	"cocoon-morph/internal/photo"
	"cocoon-morph/internal/pipeline"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/disintegration/imaging"
)

const (
	prefKeyLastDir = "lastDirectory"

	// Longest side of the preview; the analysis itself runs at full resolution.
	previewSize = 1600
)

var columns = []string{"#", "width mm", "length mm", "area mm²"}

// Window shows the annotated photograph next to its measurement table.
type Window struct {
	fyne.Window
	app    fyne.App
	runner *pipeline.Runner

	image  *canvas.Image
	table  *widget.Table
	status *widget.Label

	rows []cocoon.Measurement
}

// New creates a review window backed by runner.
func New(fyneApp fyne.App, runner *pipeline.Runner) *Window {
	w := &Window{
		Window: fyneApp.NewWindow("Cocoon review"),
		app:    fyneApp,
		runner: runner,
	}
	w.setupUI()
	w.Resize(fyne.NewSize(1200, 800))
	return w
}

func (w *Window) setupUI() {
	w.image = canvas.NewImageFromImage(nil)
	w.image.FillMode = canvas.ImageFillContain

	w.table = widget.NewTable(
		func() (int, int) { return len(w.rows) + 1, len(columns) },
		func() fyne.CanvasObject { return widget.NewLabel("000.000") },
		func(id widget.TableCellID, o fyne.CanvasObject) {
			o.(*widget.Label).SetText(cellText(w.rows, id.Row, id.Col))
		},
	)
	for i := range columns {
		w.table.SetColumnWidth(i, 90)
	}

	w.status = widget.NewLabel("Open a photograph to measure")

	open := widget.NewButton("Open…", w.onOpen)
	side := container.NewBorder(container.NewHBox(open), nil, nil, nil, w.table)

	split := container.NewHSplit(side, w.image)
	split.SetOffset(0.3)

	w.SetContent(container.NewBorder(nil, container.NewPadded(w.status), nil, nil, split))
}

// Load analyzes the photograph at path and shows the result.
func (w *Window) Load(path string) error {
	p, res, err := w.runner.Analyze(path)
	if err != nil {
		return err
	}
	annotated, err := w.runner.Annotate(p.Image, res)
	if err != nil {
		return err
	}

	w.rows = res.Measurements
	w.table.Refresh()
	w.image.Image = preview(annotated)
	w.image.Refresh()
	w.SetTitle("Cocoon review: " + filepath.Base(path))
	w.status.SetText(StatusText(res))
	w.app.Preferences().SetString(prefKeyLastDir, filepath.Dir(path))
	return nil
}

func (w *Window) onOpen() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		if err := w.Load(reader.URI().Path()); err != nil {
			dialog.ShowError(err, w.Window)
		}
	}, w.Window)

	fd.SetFilter(imageFilter())
	if loc := w.lastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

// lastDir returns the last used directory as a ListableURI, or nil.
func (w *Window) lastDir() fyne.ListableURI {
	path := w.app.Preferences().String(prefKeyLastDir)
	if path == "" {
		return nil
	}
	listable, err := storage.ListerForURI(storage.NewFileURI(path))
	if err != nil {
		return nil
	}
	return listable
}

// imageFilter accepts every format the photo loader can decode.
func imageFilter() storage.FileFilter {
	return storage.NewExtensionFileFilter(photo.SupportedFormats())
}

func preview(img image.Image) image.Image {
	b := img.Bounds()
	if b.Dx() <= previewSize && b.Dy() <= previewSize {
		return img
	}
	return imaging.Fit(img, previewSize, previewSize, imaging.Lanczos)
}

// StatusText summarizes a result for the status bar.
func StatusText(res *cocoon.Result) string {
	s := fmt.Sprintf("%d specimens, Pix/mm = %s", len(res.Specimens), res.Scale)
	if warns := res.Warnings(); len(warns) > 0 {
		s += fmt.Sprintf(", %d warnings: %s", len(warns), warns[0].Message)
	}
	return s
}

// cellText returns the table text at row, col; row 0 is the header.
func cellText(rows []cocoon.Measurement, row, col int) string {
	if row == 0 {
		if col < len(columns) {
			return columns[col]
		}
		return ""
	}
	if row > len(rows) {
		return ""
	}
	m := rows[row-1]
	switch col {
	case 0:
		return strconv.Itoa(m.Index)
	case 1:
		return round(m.WidthMM)
	case 2:
		return round(m.LengthMM)
	case 3:
		return round(m.AreaMM2)
	}
	return ""
}

func round(q cocoon.Quantity) string {
	v, ok := q.Value()
	if !ok {
		return q.String()
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
