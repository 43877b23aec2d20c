package transform

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/disintegration/imaging"
	rng "github.com/leesper/go_rng"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// Resize scales to a fixed target size. Always applied, deterministic.
type Resize struct {
	Width, Height int
}

func (t Resize) Apply(img image.Image, _ *rand.Rand) (image.Image, error) {
	if t.Width <= 0 || t.Height <= 0 {
		return nil, errors.Errorf("transform: invalid resize target %dx%d", t.Width, t.Height)
	}
	return resize.Resize(uint(t.Width), uint(t.Height), img, resize.Lanczos3), nil
}

// HorizontalFlip mirrors the image left-right with probability P.
type HorizontalFlip struct {
	P float64
}

func (t HorizontalFlip) Apply(img image.Image, r *rand.Rand) (image.Image, error) {
	if r.Float64() >= t.P {
		return img, nil
	}
	return imaging.FlipH(img), nil
}

// Rotate turns the image by a uniform angle in [-Limit, Limit] degrees with
// probability P. The rotated canvas is center-cropped back to the input size
// so the pipeline's output shape stays fixed.
type Rotate struct {
	Limit float64 // degrees
	P     float64
}

func (t Rotate) Apply(img image.Image, r *rand.Rand) (image.Image, error) {
	if r.Float64() >= t.P {
		return img, nil
	}
	angle := (r.Float64()*2 - 1) * t.Limit
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	rotated := imaging.Rotate(img, angle, color.NRGBA{A: 255})
	return imaging.CropCenter(rotated, w, h), nil
}

// BrightnessContrast shifts brightness and contrast by uniform fractions in
// [-Brightness, Brightness] and [-Contrast, Contrast] with probability P.
type BrightnessContrast struct {
	Brightness float64 // fraction, e.g. 0.2
	Contrast   float64
	P          float64
}

func (t BrightnessContrast) Apply(img image.Image, r *rand.Rand) (image.Image, error) {
	if r.Float64() >= t.P {
		return img, nil
	}
	out := imaging.AdjustBrightness(img, (r.Float64()*2-1)*t.Brightness*100)
	out = imaging.AdjustContrast(out, (r.Float64()*2-1)*t.Contrast*100)
	return out, nil
}

// HueSaturationValue jitters hue (degrees), saturation and value (percent)
// with probability P.
type HueSaturationValue struct {
	Hue        float64 // degrees
	Saturation float64 // percent
	Value      float64 // percent
	P          float64
}

func (t HueSaturationValue) Apply(img image.Image, r *rand.Rand) (image.Image, error) {
	if r.Float64() >= t.P {
		return img, nil
	}
	hueShift := (r.Float64()*2 - 1) * t.Hue
	out := imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		return shiftHue(c, hueShift)
	})
	out = imaging.AdjustSaturation(out, (r.Float64()*2-1)*t.Saturation)
	out = imaging.AdjustBrightness(out, (r.Float64()*2-1)*t.Value)
	return out, nil
}

// GaussNoise adds zero-mean Gaussian noise with a variance drawn uniformly
// from Variance, with probability P.
type GaussNoise struct {
	Variance [2]float64 // sampled variance range, 0-255 pixel scale
	P        float64
}

func (t GaussNoise) Apply(img image.Image, r *rand.Rand) (image.Image, error) {
	if r.Float64() >= t.P {
		return img, nil
	}
	variance := t.Variance[0] + r.Float64()*(t.Variance[1]-t.Variance[0])
	if variance < 0 {
		return nil, errors.Errorf("transform: negative noise variance %f", variance)
	}
	sigma := math.Sqrt(variance)
	gauss := rng.NewGaussianGenerator(r.Int63())

	out := imaging.Clone(img)
	for i := 0; i < len(out.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			out.Pix[i+c] = clampByte(float64(out.Pix[i+c]) + gauss.Gaussian(0, sigma))
		}
	}
	return out, nil
}

// MotionBlur smears the image along a random axis with a line kernel of odd
// length in [3, Limit], with probability P.
type MotionBlur struct {
	Limit int // maximum kernel size, >= 3
	P     float64
}

func (t MotionBlur) Apply(img image.Image, r *rand.Rand) (image.Image, error) {
	if r.Float64() >= t.P {
		return img, nil
	}
	limit := t.Limit
	if limit < 3 {
		limit = 3
	}
	// Odd kernel size in [3, limit].
	k := 3 + 2*r.Intn((limit-3)/2+1)
	dir := blurDirections[r.Intn(len(blurDirections))]
	return lineBlur(img, k, dir[0], dir[1]), nil
}

var blurDirections = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

// lineBlur averages k samples along (dx, dy), clamping at the edges.
func lineBlur(img image.Image, k, dx, dy int) *image.NRGBA {
	src := imaging.Clone(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	dst := image.NewNRGBA(src.Rect)
	half := k / 2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum [4]int
			for s := -half; s <= half; s++ {
				sx := clampInt(x+s*dx, 0, w-1)
				sy := clampInt(y+s*dy, 0, h-1)
				i := sy*src.Stride + sx*4
				for c := 0; c < 4; c++ {
					sum[c] += int(src.Pix[i+c])
				}
			}
			i := y*dst.Stride + x*4
			for c := 0; c < 4; c++ {
				dst.Pix[i+c] = uint8(sum[c] / k)
			}
		}
	}
	return dst
}

// shiftHue rotates the hue of one pixel by deg degrees.
func shiftHue(c color.NRGBA, deg float64) color.NRGBA {
	h, s, v := rgbToHSV(c)
	h += deg
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	r, g, b := hsvToRGB(h, s, v)
	return color.NRGBA{R: r, G: g, B: b, A: c.A}
}

func rgbToHSV(c color.NRGBA) (h, s, v float64) {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255
	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	v = maxC
	d := maxC - minC
	if maxC > 0 {
		s = d / maxC
	}
	if d == 0 {
		return 0, s, v
	}
	switch maxC {
	case r:
		h = 60 * math.Mod((g-b)/d, 6)
	case g:
		h = 60 * ((b-r)/d + 2)
	default:
		h = 60 * ((r-g)/d + 4)
	}
	if h < 0 {
		h += 360
	}
	return h, s, v
}

func hsvToRGB(h, s, v float64) (r, g, b uint8) {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	var rf, gf, bf float64
	switch {
	case h < 60:
		rf, gf, bf = c, x, 0
	case h < 120:
		rf, gf, bf = x, c, 0
	case h < 180:
		rf, gf, bf = 0, c, x
	case h < 240:
		rf, gf, bf = 0, x, c
	case h < 300:
		rf, gf, bf = x, 0, c
	default:
		rf, gf, bf = c, 0, x
	}
	return clampByte((rf + m) * 255), clampByte((gf + m) * 255), clampByte((bf + m) * 255)
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
