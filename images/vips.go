package images

import (
	"bytes"
	"image"
	"image/jpeg"

	"github.com/cshum/vipsgen/vips"
	"github.com/pkg/errors"
)

// DecodeResized decodes and downscales an encoded buffer in one pass with
// libvips. It trades resampling control for speed and is used for preview
// and QA exports, not for training tensors.
func DecodeResized(b []byte, width, height int) (image.Image, error) {
	if len(b) == 0 {
		return nil, errors.New("images: empty image data")
	}
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("images: invalid dimensions %dx%d", width, height)
	}

	img, err := vips.NewImageFromBuffer(b, &vips.LoadOptions{
		Access: vips.AccessSequential,
	})
	if err != nil {
		return nil, errors.Wrap(err, "images: loading buffer")
	}
	defer img.Close()

	if err := img.ThumbnailImage(width, &vips.ThumbnailImageOptions{
		Height: height,
		FailOn: vips.FailOnError,
	}); err != nil {
		return nil, errors.Wrap(err, "images: resizing")
	}

	resized, err := img.JpegsaveBuffer(&vips.JpegsaveBufferOptions{})
	if err != nil || len(resized) == 0 {
		return nil, errors.New("images: encoding resized image")
	}

	decoded, err := jpeg.Decode(bytes.NewReader(resized))
	return decoded, errors.Wrap(err, "images: decoding resized image")
}
