package images

import (
	"image"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// ReadFile decodes the image at path through OpenCV. IMRead yields a BGR
// Mat; ToImage converts it back into Go's RGBA order, so callers always see
// the canonical channel order.
func ReadFile(path string) (image.Image, error) {
	mat := gocv.IMRead(path, gocv.IMReadColor)
	if mat.Empty() {
		return nil, errors.Errorf("images: unreadable image %s", path)
	}
	defer mat.Close()

	img, err := mat.ToImage()
	return img, errors.Wrapf(err, "images: converting %s", path)
}

// WriteFile encodes img to path through OpenCV; the extension selects the
// container format. Used to persist face crops for preprocessing QA.
func WriteFile(path string, img image.Image) error {
	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return errors.Wrapf(err, "images: converting for %s", path)
	}
	defer mat.Close()

	// IMWrite expects BGR.
	gocv.CvtColor(mat, &mat, gocv.ColorRGBToBGR)
	if ok := gocv.IMWrite(path, mat); !ok {
		return errors.Errorf("images: writing %s", path)
	}
	return nil
}
