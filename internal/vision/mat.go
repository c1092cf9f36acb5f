// Package vision binds the measurement pipeline to OpenCV through gocv:
// contour extraction, circle intensity sampling and annotation drawing.
package vision

import (
	"fmt"
	"image"
	"runtime"
	"sync"

	"cocoon-morph/internal/cocoon"

	"gocv.io/x/gocv"
)

// imageToMat converts a Go image.Image to a BGR gocv.Mat.
func imageToMat(img image.Image) (gocv.Mat, error) {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			rgba.Set(x, y, img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}

	mat, err := gocv.NewMatFromBytes(h, w, gocv.MatTypeCV8UC4, rgba.Pix)
	if err != nil {
		return gocv.Mat{}, err
	}
	defer mat.Close()

	bgr := gocv.NewMat()
	gocv.CvtColor(mat, &bgr, gocv.ColorRGBAToBGR)
	return bgr, nil
}

// matToImage converts a BGR gocv.Mat back to an *image.RGBA.
func matToImage(mat gocv.Mat) (*image.RGBA, error) {
	if mat.Type() != gocv.MatTypeCV8UC3 {
		return nil, fmt.Errorf("unsupported mat type %v", mat.Type())
	}
	h := mat.Rows()
	w := mat.Cols()
	data := mat.ToBytes()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	stride := img.Stride

	// Parallelize by horizontal stripes
	numWorkers := runtime.NumCPU()
	rowsPerWorker := (h + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for worker := 0; worker < numWorkers; worker++ {
		startY := worker * rowsPerWorker
		endY := min(startY+rowsPerWorker, h)
		if startY >= h {
			break
		}

		wg.Add(1)
		go func(yStart, yEnd int) {
			defer wg.Done()
			for y := yStart; y < yEnd; y++ {
				for x := 0; x < w; x++ {
					src := (y*w + x) * 3
					dst := y*stride + x*4
					img.Pix[dst+0] = data[src+2] // R
					img.Pix[dst+1] = data[src+1] // G
					img.Pix[dst+2] = data[src+0] // B
					img.Pix[dst+3] = 255
				}
			}
		}(startY, endY)
	}
	wg.Wait()

	return img, nil
}

// grayToMat copies an 8-bit grayscale image into a single-channel Mat.
func grayToMat(gray *image.Gray) (gocv.Mat, error) {
	if gray == nil || gray.Bounds().Empty() {
		return gocv.Mat{}, cocoon.ErrEmptyImage
	}
	b := gray.Bounds()
	w, h := b.Dx(), b.Dy()

	pix := gray.Pix
	if gray.Stride != w || len(pix) != w*h {
		pix = make([]byte, w*h)
		for y := 0; y < h; y++ {
			off := gray.PixOffset(b.Min.X, b.Min.Y+y)
			copy(pix[y*w:(y+1)*w], gray.Pix[off:off+w])
		}
	}
	return gocv.NewMatFromBytes(h, w, gocv.MatTypeCV8UC1, pix)
}

// maskToMat wraps a binary mask as a single-channel Mat.
func maskToMat(mask *cocoon.Mask) (gocv.Mat, error) {
	if mask == nil || mask.Width == 0 || mask.Height == 0 {
		return gocv.Mat{}, cocoon.ErrEmptyImage
	}
	return gocv.NewMatFromBytes(mask.Height, mask.Width, gocv.MatTypeCV8UC1, mask.Pix)
}
