package dataset

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestImage writes a small valid PNG to path.
func writeTestImage(t *testing.T, path string) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 30), G: uint8(y * 30), B: 90, A: 255})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

// levelTree builds root/Level_<label>/img-<i>.png for each class count.
func levelTree(t *testing.T, counts map[int]int) string {
	t.Helper()
	root := t.TempDir()
	for label, n := range counts {
		dir := filepath.Join(root, "Level_"+strconv.Itoa(label))
		require.NoError(t, os.MkdirAll(dir, 0o755))
		for i := 0; i < n; i++ {
			writeTestImage(t, filepath.Join(dir, "img-"+strconv.Itoa(i)+".png"))
		}
	}
	return root
}

func TestNewIndexEnumeratesLabeledSamples(t *testing.T) {
	root := levelTree(t, map[int]int{0: 3, 1: 3, 2: 4})

	index, err := NewIndex(root, nil)
	require.NoError(t, err)

	assert.Equal(t, 10, index.Len())
	assert.Equal(t, []int{0, 1, 2}, index.Labels())
	assert.Equal(t, map[int]int{0: 3, 1: 3, 2: 4}, index.Classes())
}

func TestNewIndexIgnoresNonImageFiles(t *testing.T) {
	root := levelTree(t, map[int]int{0: 2})
	require.NoError(t, os.WriteFile(filepath.Join(root, "Level_0", "notes.txt"), []byte("x"), 0o644))

	index, err := NewIndex(root, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, index.Len())
}

func TestNewIndexStableOrder(t *testing.T) {
	root := levelTree(t, map[int]int{0: 3, 1: 3})

	a, err := NewIndex(root, nil)
	require.NoError(t, err)
	b, err := NewIndex(root, nil)
	require.NoError(t, err)
	assert.Equal(t, a.Samples(), b.Samples())
}

func TestNewIndexDataIntegrityError(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "Severe")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	writeTestImage(t, filepath.Join(dir, "img.png"))

	_, err := NewIndex(root, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDataIntegrity)
}

func TestNewIndexCustomLabelFunc(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "whatever")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	writeTestImage(t, filepath.Join(dir, "img.png"))

	index, err := NewIndex(root, func(string) (int, error) { return 7, nil })
	require.NoError(t, err)
	require.Equal(t, 1, index.Len())
	assert.Equal(t, 7, index.Sample(0).Label)
}

func TestDirSuffixLabel(t *testing.T) {
	cases := []struct {
		path    string
		label   int
		wantErr bool
	}{
		{"data/Level_0/a.png", 0, false},
		{"data/Level_12/a.png", 12, false},
		{"data/3/a.png", 3, false},
		{"data/pain_level_5/a.png", 5, false},
		{"data/Severe/a.png", 0, true},
		{"data/Level_/a.png", 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			label, err := DirSuffixLabel(tc.path)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrDataIntegrity)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.label, label)
		})
	}
}
