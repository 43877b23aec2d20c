package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spanSet builds a full landmark set whose points cover the rectangle
// [x0,x1] x [y0,y1] in normalized coordinates.
func spanSet(t *testing.T, x0, y0, x1, y1 float32) *LandmarkSet {
	t.Helper()
	points := make([]Landmark, NumLandmarks)
	for i := range points {
		switch i % 4 {
		case 0:
			points[i] = Landmark{X: x0, Y: y0}
		case 1:
			points[i] = Landmark{X: x1, Y: y0}
		case 2:
			points[i] = Landmark{X: x0, Y: y1}
		default:
			points[i] = Landmark{X: (x0 + x1) / 2, Y: (y0 + y1) / 2}
		}
	}
	// Guarantee the max corner is present regardless of NumLandmarks % 4.
	points[NumLandmarks-1] = Landmark{X: x1, Y: y1}
	set, err := NewLandmarkSet(points)
	require.NoError(t, err)
	return set
}

func TestNewLandmarkSetRequiresExactLength(t *testing.T) {
	_, err := NewLandmarkSet(make([]Landmark, 100))
	assert.Error(t, err)

	_, err = NewLandmarkSet(make([]Landmark, NumLandmarks))
	assert.NoError(t, err)
}

func TestPaddedBoxAddsSymmetricPadding(t *testing.T) {
	// Landmarks span x 0.25..0.75 of a 200x100 image: raw box is
	// (50,25)-(150,75), so raw width 100, raw height 50.
	set := spanSet(t, 0.25, 0.25, 0.75, 0.75)

	box, ok := PaddedBox(set, 200, 100, 0.05)
	require.True(t, ok)

	// Width grows by 2*round(100*0.05)=10, height by 2*round(50*0.05)=6.
	assert.Equal(t, BoundingBox{X: 45, Y: 22, W: 110, H: 56}, box)
}

func TestPaddedBoxStaysWithinImage(t *testing.T) {
	cases := []struct {
		name           string
		x0, y0, x1, y1 float32
	}{
		{"centered", 0.3, 0.3, 0.7, 0.7},
		{"full frame", 0, 0, 1, 1},
		{"top left", 0, 0, 0.2, 0.2},
		{"bottom right", 0.8, 0.8, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			set := spanSet(t, tc.x0, tc.y0, tc.x1, tc.y1)
			box, ok := PaddedBox(set, 640, 480, 0.05)
			require.True(t, ok)
			assert.GreaterOrEqual(t, box.X, 0)
			assert.GreaterOrEqual(t, box.Y, 0)
			assert.LessOrEqual(t, box.X+box.W, 640)
			assert.LessOrEqual(t, box.Y+box.H, 480)
			assert.Positive(t, box.W)
			assert.Positive(t, box.H)
		})
	}
}

func TestPaddedBoxClampOnlyShrinks(t *testing.T) {
	// A full-frame landmark span pads past the image on every side; the
	// clamped box must come back to exactly the image bounds.
	set := spanSet(t, 0, 0, 1, 1)
	box, ok := PaddedBox(set, 320, 240, 0.05)
	require.True(t, ok)
	assert.Equal(t, BoundingBox{X: 0, Y: 0, W: 320, H: 240}, box)
}

func TestPaddedBoxDegenerateExtent(t *testing.T) {
	// All landmarks on a single point collapse to zero area.
	points := make([]Landmark, NumLandmarks)
	for i := range points {
		points[i] = Landmark{X: 0.5, Y: 0.5, Z: 0.1}
	}
	set, err := NewLandmarkSet(points)
	require.NoError(t, err)

	box, ok := PaddedBox(set, 640, 480, 0.05)
	assert.False(t, ok)
	assert.Equal(t, BoundingBox{}, box)
}

func TestPaddedBoxDeterministic(t *testing.T) {
	set := spanSet(t, 0.1, 0.2, 0.8, 0.9)
	a, okA := PaddedBox(set, 1920, 1080, 0.05)
	b, okB := PaddedBox(set, 1920, 1080, 0.05)
	assert.Equal(t, okA, okB)
	assert.Equal(t, a, b)
}

func TestBoundingBoxRect(t *testing.T) {
	box := BoundingBox{X: 10, Y: 20, W: 30, H: 40}
	rect := box.Rect()
	assert.Equal(t, 10, rect.Min.X)
	assert.Equal(t, 20, rect.Min.Y)
	assert.Equal(t, 40, rect.Max.X)
	assert.Equal(t, 60, rect.Max.Y)
}
