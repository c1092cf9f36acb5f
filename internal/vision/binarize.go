package vision

import (
	"fmt"
	"image"

	"cocoon-morph/internal/cocoon"

	"gocv.io/x/gocv"
)

// Binarizer thresholds grayscale images with OpenCV.
type Binarizer struct{}

// NewBinarizer returns a binarizer.
func NewBinarizer() *Binarizer {
	return &Binarizer{}
}

// Binarize implements cocoon.Binarizer. Pixels strictly darker than
// threshold become 255, everything else 0.
func (b *Binarizer) Binarize(gray *image.Gray, threshold int) (*cocoon.Mask, error) {
	if threshold < 1 || threshold > 256 {
		return nil, fmt.Errorf("%w: threshold %d outside 1..256", cocoon.ErrInvalidParams, threshold)
	}
	src, err := grayToMat(gray)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()

	// Binary inverse keeps v <= thresh; on 8-bit data v <= T-1 is v < T.
	gocv.Threshold(src, &dst, float32(threshold-1), 255, gocv.ThresholdBinaryInv)

	return &cocoon.Mask{Width: dst.Cols(), Height: dst.Rows(), Pix: dst.ToBytes()}, nil
}
