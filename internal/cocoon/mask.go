package cocoon

import (
	"image"

	"github.com/disintegration/imaging"
)

// Mask is a binary image: 255 marks foreground (dark) pixels, 0 background.
// Pix is row-major with stride Width.
type Mask struct {
	Width  int
	Height int
	Pix    []uint8
}

// Grayscale converts any image to 8-bit luminance.
func Grayscale(img image.Image) *image.Gray {
	nrgba := imaging.Grayscale(img)
	b := nrgba.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		src := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+b.Dx()*4]
		dst := gray.Pix[y*gray.Stride : y*gray.Stride+b.Dx()]
		for x := range dst {
			dst[x] = src[x*4]
		}
	}
	return gray
}
