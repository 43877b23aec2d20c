package dataset

import (
	"bytes"
	"image"
	"image/color"
	"log"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-faceprep/transform"
)

func solidDecode(c color.NRGBA) DecodeFunc {
	return func(string) (image.Image, error) {
		img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
		for y := 0; y < 16; y++ {
			for x := 0; x < 16; x++ {
				img.SetNRGBA(x, y, c)
			}
		}
		return img, nil
	}
}

func quietLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return log.New(&buf, "", 0), &buf
}

func mustLoader(t *testing.T, samples []Sample, cfg LoaderConfig) *Loader {
	t.Helper()
	loader, err := NewLoader(samples, cfg)
	require.NoError(t, err)
	return loader
}

func TestNewLoaderRequiresPipeline(t *testing.T) {
	_, err := NewLoader([]Sample{{Path: "a.png"}}, LoaderConfig{
		Decode: solidDecode(color.NRGBA{A: 255}),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pipeline")
}

func TestLoaderGetSuccess(t *testing.T) {
	samples := []Sample{
		{Path: "a.png", Label: 0},
		{Path: "b.png", Label: 2},
	}
	loader := mustLoader(t, samples, LoaderConfig{
		Decode:   solidDecode(color.NRGBA{R: 100, G: 100, B: 100, A: 255}),
		Pipeline: transform.Eval(8),
		Seed:     1,
	})

	res := loader.Get(1)
	require.True(t, res.OK)
	assert.Equal(t, 2, res.Label)
	assert.Equal(t, []int{3, 8, 8}, []int(res.Image.Shape()))
}

func TestLoaderNeverFailsOnMissingFile(t *testing.T) {
	logger, buf := quietLogger()
	loader := mustLoader(t, []Sample{
		{Path: filepath.Join(t.TempDir(), "does-not-exist.png"), Label: 1},
	}, LoaderConfig{
		// Default decode capability reads from disk and must fail here.
		Pipeline: transform.Eval(8),
		Logger:   logger,
	})

	res := loader.Get(0)
	assert.False(t, res.OK)
	assert.Nil(t, res.Image)
	assert.Contains(t, buf.String(), "skipping")
}

func TestLoaderAbsorbsDecodeError(t *testing.T) {
	logger, _ := quietLogger()
	loader := mustLoader(t, []Sample{{Path: "x.png"}}, LoaderConfig{
		Decode: func(string) (image.Image, error) {
			return nil, errors.New("corrupt header")
		},
		Pipeline: transform.Eval(8),
		Logger:   logger,
	})
	assert.False(t, loader.Get(0).OK)
}

func TestLoaderAbsorbsPanic(t *testing.T) {
	logger, buf := quietLogger()
	loader := mustLoader(t, []Sample{{Path: "x.png"}}, LoaderConfig{
		Decode: func(string) (image.Image, error) {
			panic("decoder went sideways")
		},
		Pipeline: transform.Eval(8),
		Logger:   logger,
	})

	assert.NotPanics(t, func() {
		assert.False(t, loader.Get(0).OK)
	})
	assert.Contains(t, buf.String(), "panicked")
}

func TestLoaderOutOfRangeIndex(t *testing.T) {
	logger, _ := quietLogger()
	loader := mustLoader(t, []Sample{{Path: "x.png"}}, LoaderConfig{
		Decode:   solidDecode(color.NRGBA{A: 255}),
		Pipeline: transform.Eval(8),
		Logger:   logger,
	})
	assert.False(t, loader.Get(-1).OK)
	assert.False(t, loader.Get(1).OK)
}

func TestLoaderDeterministicAugmentation(t *testing.T) {
	samples := []Sample{{Path: "a.png", Label: 0}}
	mk := func() *Loader {
		return mustLoader(t, samples, LoaderConfig{
			Decode:   solidDecode(color.NRGBA{R: 60, G: 120, B: 180, A: 255}),
			Pipeline: transform.Train(16),
			Seed:     99,
		})
	}

	a := mk().Get(0)
	b := mk().Get(0)
	require.True(t, a.OK)
	require.True(t, b.OK)
	assert.Equal(t, a.Image.Data().([]float32), b.Image.Data().([]float32))
}

func TestLoadBatchJoinsAllWorkers(t *testing.T) {
	logger, _ := quietLogger()
	samples := make([]Sample, 10)
	for i := range samples {
		samples[i] = Sample{Path: "img.png", Label: i}
	}
	failing := map[int]bool{2: true, 5: true}

	loader := mustLoader(t, samples, LoaderConfig{
		Decode: func(path string) (image.Image, error) {
			return image.NewNRGBA(image.Rect(0, 0, 8, 8)), nil
		},
		Pipeline: transform.Eval(8),
		Logger:   logger,
	})

	indices := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	// Fail two specific indices by pointing them at a failing decode.
	failLoader := mustLoader(t, samples, LoaderConfig{
		Decode: func(path string) (image.Image, error) {
			return nil, errors.New("unreadable")
		},
		Pipeline: transform.Eval(8),
		Logger:   logger,
	})
	results := make([]Result, len(indices))
	for j, idx := range indices {
		if failing[idx] {
			results[j] = failLoader.Get(idx)
		} else {
			results[j] = loader.Get(idx)
		}
	}
	batch, err := Collate(results)
	require.NoError(t, err)
	assert.Equal(t, 8, batch.Len())

	// And the concurrent path produces a full batch when nothing fails.
	batch, err = loader.LoadBatch(indices, 4)
	require.NoError(t, err)
	assert.Equal(t, 10, batch.Len())
	labels := batch.Labels.Data().([]int)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, labels)
}
