package cocoon

import (
	"image"
	"image/color"
	"testing"
)

func TestGrayscale(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 10, 12, 11))
	img.Set(10, 10, color.RGBA{255, 255, 255, 255})
	img.Set(11, 10, color.RGBA{0, 0, 0, 255})

	g := Grayscale(img)
	if g.Bounds() != image.Rect(0, 0, 2, 1) {
		t.Fatalf("bounds: got %v", g.Bounds())
	}
	if g.GrayAt(0, 0).Y != 255 || g.GrayAt(1, 0).Y != 0 {
		t.Errorf("got %v", g.Pix)
	}
}
