package detect

import (
	"image"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-faceprep/geometry"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 1, cfg.MaxFaces)
	assert.True(t, cfg.StaticImage)
	assert.True(t, cfg.RefineLandmarks)
	assert.Equal(t, float32(0.5), cfg.MinConfidence)
}

func TestFuncAdapter(t *testing.T) {
	set, err := geometry.NewLandmarkSet(make([]geometry.Landmark, geometry.NumLandmarks))
	require.NoError(t, err)

	var detector Detector = Func(func(image.Image) (*geometry.LandmarkSet, error) {
		return set, nil
	})

	got, err := detector.Detect(image.NewNRGBA(image.Rect(0, 0, 4, 4)))
	require.NoError(t, err)
	assert.Same(t, set, got)
	assert.NoError(t, detector.Close())
}

func TestNewFaceMeshRejectsUnsupportedConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxFaces = 2
	_, err := NewFaceMesh(FaceMeshOptions{ModelPath: "model.onnx"}, cfg)
	assert.Error(t, err)

	cfg = DefaultConfig()
	cfg.RefineLandmarks = false
	_, err = NewFaceMesh(FaceMeshOptions{ModelPath: "model.onnx"}, cfg)
	assert.Error(t, err)
}

func TestNewFaceMeshMissingModel(t *testing.T) {
	_, err := NewFaceMesh(FaceMeshOptions{
		ModelPath: filepath.Join(t.TempDir(), "missing.onnx"),
	}, DefaultConfig())
	assert.Error(t, err)
}
