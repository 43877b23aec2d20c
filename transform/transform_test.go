package transform

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradientImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(255 * x / w),
				G: uint8(255 * y / h),
				B: uint8((x + y) % 256),
				A: 255,
			})
		}
	}
	return img
}

func uniformImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestEvalPipelineShape(t *testing.T) {
	p := Eval(32)
	out, err := p.Apply(gradientImage(100, 80), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 32, 32}, []int(out.Shape()))
	assert.Len(t, out.Data().([]float32), 3*32*32)
}

func TestTrainPipelineShapeStableUnderAugmentation(t *testing.T) {
	// Whatever subset of augmentations fires, the output shape is fixed;
	// collation depends on it.
	p := Train(48)
	for seed := int64(0); seed < 20; seed++ {
		out, err := p.Apply(gradientImage(120, 90), rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		assert.Equal(t, []int{3, 48, 48}, []int(out.Shape()))
	}
}

func TestPipelineDeterministicGivenSeed(t *testing.T) {
	p := Train(32)
	img := gradientImage(64, 64)

	a, err := p.Apply(img, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, err := p.Apply(img, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	assert.Equal(t, a.Data().([]float32), b.Data().([]float32))
}

func TestNormalizeValues(t *testing.T) {
	norm := Normalize{
		Mean: [3]float32{0.5, 0.5, 0.5},
		Std:  [3]float32{0.5, 0.5, 0.5},
	}
	p := NewPipeline(norm, Resize{Width: 4, Height: 4})

	// A pure white image maps every channel to (1 - 0.5) / 0.5 = 1.
	out, err := p.Apply(uniformImage(8, 8, color.NRGBA{R: 255, G: 255, B: 255, A: 255}), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	for _, v := range out.Data().([]float32) {
		assert.InDelta(t, 1.0, v, 1e-5)
	}

	// A pure black image maps to (0 - 0.5) / 0.5 = -1.
	out, err = p.Apply(uniformImage(8, 8, color.NRGBA{A: 255}), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	for _, v := range out.Data().([]float32) {
		assert.InDelta(t, -1.0, v, 1e-5)
	}
}

func TestHorizontalFlipAlwaysFires(t *testing.T) {
	img := gradientImage(10, 10)
	flipped, err := HorizontalFlip{P: 1}.Apply(img, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	want := img.NRGBAAt(0, 0)
	got := flipped.(*image.NRGBA).NRGBAAt(9, 0)
	assert.Equal(t, want, got)
}

func TestHorizontalFlipNeverFires(t *testing.T) {
	img := gradientImage(10, 10)
	out, err := HorizontalFlip{P: 0}.Apply(img, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Same(t, image.Image(img), out)
}

func TestRotateKeepsDimensions(t *testing.T) {
	img := gradientImage(30, 20)
	out, err := Rotate{Limit: 15, P: 1}.Apply(img, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	assert.Equal(t, 30, out.Bounds().Dx())
	assert.Equal(t, 20, out.Bounds().Dy())
}

func TestGaussNoisePerturbsPixels(t *testing.T) {
	img := uniformImage(16, 16, color.NRGBA{R: 128, G: 128, B: 128, A: 255})
	out, err := GaussNoise{Variance: [2]float64{100, 100}, P: 1}.Apply(img, rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	n := out.(*image.NRGBA)
	changed := 0
	for i := 0; i < len(n.Pix); i += 4 {
		if n.Pix[i] != 128 {
			changed++
		}
	}
	assert.Greater(t, changed, 0)
}

func TestMotionBlurKeepsDimensions(t *testing.T) {
	img := gradientImage(24, 24)
	out, err := MotionBlur{Limit: 7, P: 1}.Apply(img, rand.New(rand.NewSource(9)))
	require.NoError(t, err)
	assert.Equal(t, 24, out.Bounds().Dx())
	assert.Equal(t, 24, out.Bounds().Dy())
}

func TestResizeRejectsInvalidTarget(t *testing.T) {
	_, err := Resize{Width: 0, Height: 10}.Apply(gradientImage(5, 5), rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}
