package localize

import (
	"image"
	"image/color"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-faceprep/detect"
	"github.com/nvr-ai/go-faceprep/geometry"
)

func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	return img
}

func landmarkSpan(t *testing.T, x0, y0, x1, y1 float32) *geometry.LandmarkSet {
	t.Helper()
	points := make([]geometry.Landmark, geometry.NumLandmarks)
	for i := range points {
		points[i] = geometry.Landmark{X: x0, Y: y0}
	}
	points[geometry.NumLandmarks-1] = geometry.Landmark{X: x1, Y: y1}
	set, err := geometry.NewLandmarkSet(points)
	require.NoError(t, err)
	return set
}

func TestLocalizeNoFace(t *testing.T) {
	detector := detect.Func(func(image.Image) (*geometry.LandmarkSet, error) {
		return nil, nil
	})
	localizer := New(detector, 0.05)

	result, err := localizer.Localize(testImage(100, 80))
	require.NoError(t, err)

	// Undetected is one uniform outcome: nothing set, nothing errored.
	assert.Nil(t, result.Landmarks)
	assert.Nil(t, result.Box)
	assert.Nil(t, result.Crop)
	assert.False(t, result.FaceDetected())
	assert.False(t, result.Cropped())
}

func TestLocalizeDegenerateBox(t *testing.T) {
	set := landmarkSpan(t, 0.5, 0.5, 0.5, 0.5)
	detector := detect.Func(func(image.Image) (*geometry.LandmarkSet, error) {
		return set, nil
	})
	localizer := New(detector, 0.05)

	result, err := localizer.Localize(testImage(100, 80))
	require.NoError(t, err)

	// Degenerate geometry keeps the landmarks but yields no box or crop;
	// it must stay distinguishable from a detection miss.
	assert.Same(t, set, result.Landmarks)
	assert.Nil(t, result.Box)
	assert.Nil(t, result.Crop)
	assert.True(t, result.FaceDetected())
	assert.False(t, result.Cropped())
}

func TestLocalizeSuccess(t *testing.T) {
	set := landmarkSpan(t, 0.2, 0.2, 0.8, 0.8)
	detector := detect.Func(func(image.Image) (*geometry.LandmarkSet, error) {
		return set, nil
	})
	localizer := New(detector, 0.05)

	result, err := localizer.Localize(testImage(100, 80))
	require.NoError(t, err)

	require.NotNil(t, result.Landmarks)
	require.NotNil(t, result.Box)
	require.NotNil(t, result.Crop)

	bounds := result.Crop.Bounds()
	assert.Equal(t, result.Box.W, bounds.Dx())
	assert.Equal(t, result.Box.H, bounds.Dy())
}

func TestLocalizeDetectorError(t *testing.T) {
	detector := detect.Func(func(image.Image) (*geometry.LandmarkSet, error) {
		return nil, errors.New("session died")
	})
	localizer := New(detector, 0.05)

	_, err := localizer.Localize(testImage(100, 80))
	assert.Error(t, err)
}

func TestLocalizeDefaultPadding(t *testing.T) {
	localizer := New(detect.Func(func(image.Image) (*geometry.LandmarkSet, error) {
		return nil, nil
	}), 0)
	assert.Equal(t, geometry.DefaultPadding, localizer.padding)
}
