// Package geometry derives padded face bounding boxes from dense landmark
// sets. Everything here is pure: no I/O, no shared state, identical inputs
// always produce identical outputs.
package geometry

import (
	"image"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"
)

const (
	// NumLandmarks is the fixed size of a refined face-mesh landmark set.
	NumLandmarks = 478

	// DefaultPadding is the fraction of box extent added symmetrically on
	// each axis before clamping.
	DefaultPadding float32 = 0.05
)

// Landmark is one face-mesh point. X and Y are normalized to [0, 1] relative
// to image width and height; Z is depth relative to the mesh center.
type Landmark struct {
	X, Y, Z float32
}

// LandmarkSet is an immutable, fixed-length set of face-mesh landmarks.
// It is produced once per detected face and never mutated afterwards.
type LandmarkSet struct {
	points [NumLandmarks]Landmark
}

// NewLandmarkSet copies points into a new set. The input must contain
// exactly NumLandmarks entries.
func NewLandmarkSet(points []Landmark) (*LandmarkSet, error) {
	if len(points) != NumLandmarks {
		return nil, errors.Errorf("geometry: landmark set has %d points, want %d", len(points), NumLandmarks)
	}
	ls := &LandmarkSet{}
	copy(ls.points[:], points)
	return ls, nil
}

// Len returns the number of landmarks in the set, always NumLandmarks.
func (ls *LandmarkSet) Len() int { return NumLandmarks }

// At returns the landmark at index i.
func (ls *LandmarkSet) At(i int) Landmark { return ls.points[i] }

// BoundingBox is an axis-aligned box in absolute pixel coordinates.
// W and H are positive for every box produced by PaddedBox.
type BoundingBox struct {
	X, Y, W, H int
}

// Rect converts the box to an image.Rectangle.
func (b BoundingBox) Rect() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.W, b.Y+b.H)
}

// PaddedBox computes the pixel-space extent of a landmark set inside a
// width x height image, pads it by fraction pad on each axis, and clamps the
// result to the image bounds. The returned bool is false when the clamped
// box has no positive area; the caller still holds the landmarks in that
// case, so "face found" and "box usable" stay independent outcomes.
func PaddedBox(ls *LandmarkSet, width, height int, pad float32) (BoundingBox, bool) {
	first := ls.At(0)
	minX, maxX := first.X, first.X
	minY, maxY := first.Y, first.Y
	for i := 1; i < NumLandmarks; i++ {
		p := ls.At(i)
		minX = math32.Min(minX, p.X)
		maxX = math32.Max(maxX, p.X)
		minY = math32.Min(minY, p.Y)
		maxY = math32.Max(maxY, p.Y)
	}

	// Scale to pixels, truncating toward zero.
	x0 := int(minX * float32(width))
	y0 := int(minY * float32(height))
	x1 := int(maxX * float32(width))
	y1 := int(maxY * float32(height))

	padX := int(math32.Round(float32(x1-x0) * pad))
	padY := int(math32.Round(float32(y1-y0) * pad))
	x0 -= padX
	x1 += padX
	y0 -= padY
	y1 += padY

	// Clamping only ever shrinks the box toward the image bounds.
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > width {
		x1 = width
	}
	if y1 > height {
		y1 = height
	}

	if x1-x0 <= 0 || y1-y0 <= 0 {
		return BoundingBox{}, false
	}
	return BoundingBox{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}, true
}
