// Package transform implements the image transform capability: a configured
// chain of resize/augmentation operations ending in per-channel
// normalization and a dense float32 tensor.
//
// Augmentations draw all randomness from the *rand.Rand passed to Apply, so
// a pipeline is deterministic given a seed and safe for concurrent use as
// long as each caller supplies its own generator.
package transform

import (
	"image"
	"math/rand"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
)

// Op is one image-to-image stage of a pipeline.
type Op interface {
	Apply(img image.Image, r *rand.Rand) (image.Image, error)
}

// Normalize holds the per-channel mean/std rescale applied during
// tensorization.
type Normalize struct {
	Mean [3]float32
	Std  [3]float32
}

// ImageNetNormalize is the conventional ImageNet statistics rescale.
var ImageNetNormalize = Normalize{
	Mean: [3]float32{0.485, 0.456, 0.406},
	Std:  [3]float32{0.229, 0.224, 0.225},
}

// Pipeline applies a fixed sequence of ops, then normalizes and converts the
// result to a CHW float32 tensor.
type Pipeline struct {
	ops  []Op
	norm Normalize
}

// NewPipeline builds a pipeline from ops in application order. Zero std
// components are treated as 1 to keep the rescale well defined.
func NewPipeline(norm Normalize, ops ...Op) *Pipeline {
	for c := range norm.Std {
		if norm.Std[c] == 0 {
			norm.Std[c] = 1
		}
	}
	return &Pipeline{ops: ops, norm: norm}
}

// Apply runs img through every op and tensorizes the result.
func (p *Pipeline) Apply(img image.Image, r *rand.Rand) (*tensor.Dense, error) {
	if img == nil {
		return nil, errors.New("transform: nil image")
	}
	var err error
	for _, op := range p.ops {
		img, err = op.Apply(img, r)
		if err != nil {
			return nil, err
		}
	}
	return p.tensorize(img), nil
}

// tensorize lays the image out as (3, H, W) float32 with the configured
// normalization applied per channel.
func (p *Pipeline) tensorize(img image.Image) *tensor.Dense {
	n := imaging.Clone(img)
	w, h := n.Rect.Dx(), n.Rect.Dy()
	plane := w * h
	data := make([]float32, 3*plane)
	for y := 0; y < h; y++ {
		row := y * n.Stride
		for x := 0; x < w; x++ {
			i := row + x*4
			for c := 0; c < 3; c++ {
				v := float32(n.Pix[i+c]) / 255
				data[c*plane+y*w+x] = (v - p.norm.Mean[c]) / p.norm.Std[c]
			}
		}
	}
	return tensor.New(tensor.WithShape(3, h, w), tensor.WithBacking(data))
}

// Train returns the augmentation stack used for the training partition:
// deterministic resize followed by stochastic flip, rotation, color jitter,
// noise and blur, with ImageNet normalization.
func Train(size int) *Pipeline {
	return NewPipeline(ImageNetNormalize,
		Resize{Width: size, Height: size},
		HorizontalFlip{P: 0.5},
		Rotate{Limit: 15, P: 0.5},
		BrightnessContrast{Brightness: 0.2, Contrast: 0.2, P: 0.5},
		HueSaturationValue{Hue: 10, Saturation: 20, Value: 10, P: 0.3},
		GaussNoise{Variance: [2]float64{10, 50}, P: 0.2},
		MotionBlur{Limit: 3, P: 0.1},
	)
}

// Eval returns the deterministic stack used for validation and test: resize
// and normalization only.
func Eval(size int) *Pipeline {
	return NewPipeline(ImageNetNormalize,
		Resize{Width: size, Height: size},
	)
}
