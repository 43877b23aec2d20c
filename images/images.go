// Package images is the image decode/encode capability behind the sample
// loader and the face localizer. Pure-Go decoding covers the loader's hot
// path; OpenCV and libvips variants cover whole-file reads and fast
// downscaled previews.
package images

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"os"

	"github.com/chai2010/webp"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
)

// Format of an encoded image, sniffed from its leading bytes.
type Format string

const (
	FormatJPEG    Format = "jpeg"
	FormatPNG     Format = "png"
	FormatWebP    Format = "webp"
	FormatBMP     Format = "bmp"
	FormatUnknown Format = ""
)

// Sniff identifies the encoding of b from its magic bytes.
func Sniff(b []byte) Format {
	switch {
	case len(b) >= 3 && b[0] == 0xff && b[1] == 0xd8 && b[2] == 0xff:
		return FormatJPEG
	case len(b) >= 8 && bytes.Equal(b[:8], []byte("\x89PNG\r\n\x1a\n")):
		return FormatPNG
	case len(b) >= 12 && bytes.Equal(b[:4], []byte("RIFF")) && bytes.Equal(b[8:12], []byte("WEBP")):
		return FormatWebP
	case len(b) >= 2 && b[0] == 'B' && b[1] == 'M':
		return FormatBMP
	default:
		return FormatUnknown
	}
}

// Decode decodes an in-memory buffer into an image, adding WebP support on
// top of the standard decoders.
func Decode(b []byte) (image.Image, error) {
	if len(b) == 0 {
		return nil, errors.New("images: empty image data")
	}
	switch Sniff(b) {
	case FormatJPEG:
		return jpeg.Decode(bytes.NewReader(b))
	case FormatPNG:
		return png.Decode(bytes.NewReader(b))
	case FormatWebP:
		return webp.Decode(bytes.NewReader(b))
	case FormatBMP:
		return bmp.Decode(bytes.NewReader(b))
	default:
		img, _, err := image.Decode(bytes.NewReader(b))
		return img, errors.Wrap(err, "images: decoding unrecognized format")
	}
}

// DecodeFile reads and decodes one image file. This is the default decode
// capability of the sample loader.
func DecodeFile(path string) (image.Image, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "images: reading %s", path)
	}
	img, err := Decode(b)
	return img, errors.Wrapf(err, "images: decoding %s", path)
}
