package images

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func checkered(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{R: 40, G: 80, B: 160, A: 255}
			if (x+y)%2 == 0 {
				c = color.NRGBA{R: 220, G: 180, B: 20, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestSniff(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want Format
	}{
		{"jpeg", []byte{0xff, 0xd8, 0xff, 0xe0}, FormatJPEG},
		{"png", []byte("\x89PNG\r\n\x1a\nxxxx"), FormatPNG},
		{"webp", []byte("RIFF\x00\x00\x00\x00WEBPVP8 "), FormatWebP},
		{"bmp", []byte("BM\x00\x00"), FormatBMP},
		{"garbage", []byte("hello world!"), FormatUnknown},
		{"empty", nil, FormatUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Sniff(tc.data))
		})
	}
}

func TestDecodePNG(t *testing.T) {
	src := checkered(12, 9)
	img, err := Decode(encodePNG(t, src))
	require.NoError(t, err)
	assert.Equal(t, 12, img.Bounds().Dx())
	assert.Equal(t, 9, img.Bounds().Dy())
}

func TestDecodeJPEG(t *testing.T) {
	img, err := Decode(encodeJPEG(t, checkered(16, 16)))
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
}

func TestDecodeBMP(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, checkered(14, 11)))
	require.Equal(t, FormatBMP, Sniff(buf.Bytes()))

	img, err := Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 14, img.Bounds().Dx())
	assert.Equal(t, 11, img.Bounds().Dy())
}

func TestDecodeWebP(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, webp.Encode(&buf, checkered(13, 10), &webp.Options{Lossless: true}))
	require.Equal(t, FormatWebP, Sniff(buf.Bytes()))

	img, err := Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 13, img.Bounds().Dx())
	assert.Equal(t, 10, img.Bounds().Dy())
}

func TestDecodeResized(t *testing.T) {
	preview, err := DecodeResized(encodeJPEG(t, checkered(64, 48)), 16, 12)
	require.NoError(t, err)
	assert.Equal(t, 16, preview.Bounds().Dx())
	assert.Equal(t, 12, preview.Bounds().Dy())

	_, err = DecodeResized(nil, 16, 12)
	assert.Error(t, err)

	_, err = DecodeResized(encodeJPEG(t, checkered(8, 8)), 0, 12)
	assert.Error(t, err)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode([]byte("definitely not an image"))
	assert.Error(t, err)

	_, err = Decode(nil)
	assert.Error(t, err)
}

func TestDecodeFileMissing(t *testing.T) {
	_, err := DecodeFile(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestDecodeFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.png")
	require.NoError(t, os.WriteFile(path, encodePNG(t, checkered(10, 10)), 0o644))

	img, err := DecodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, 10, img.Bounds().Dx())
}
