package dataset

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syntheticSamples builds counts[label] fake samples per label.
func syntheticSamples(counts map[int]int) []Sample {
	var samples []Sample
	for label := 0; label < len(counts); label++ {
		for i := 0; i < counts[label]; i++ {
			samples = append(samples, Sample{
				Path:  "class" + strconv.Itoa(label) + "/img" + strconv.Itoa(i) + ".png",
				Label: label,
			})
		}
	}
	return samples
}

func classCounts(samples []Sample) map[int]int {
	counts := make(map[int]int)
	for _, s := range samples {
		counts[s.Label]++
	}
	return counts
}

func TestStratifiedSplitDeterministic(t *testing.T) {
	samples := syntheticSamples(map[int]int{0: 50, 1: 30, 2: 20})
	cfg := DefaultSplitConfig(1234)

	a, err := StratifiedSplit(samples, cfg)
	require.NoError(t, err)
	b, err := StratifiedSplit(samples, cfg)
	require.NoError(t, err)

	assert.Equal(t, a.Train, b.Train)
	assert.Equal(t, a.Validation, b.Validation)
	assert.Equal(t, a.Test, b.Test)
}

func TestStratifiedSplitSeedChangesMembership(t *testing.T) {
	samples := syntheticSamples(map[int]int{0: 50, 1: 50})

	a, err := StratifiedSplit(samples, DefaultSplitConfig(1))
	require.NoError(t, err)
	b, err := StratifiedSplit(samples, DefaultSplitConfig(2))
	require.NoError(t, err)

	assert.NotEqual(t, a.Train, b.Train)
}

func TestStratifiedSplitDisjointAndExhaustive(t *testing.T) {
	samples := syntheticSamples(map[int]int{0: 17, 1: 23, 2: 11})
	split, err := StratifiedSplit(samples, DefaultSplitConfig(9))
	require.NoError(t, err)

	seen := make(map[string]int)
	for _, part := range [][]Sample{split.Train, split.Validation, split.Test} {
		for _, s := range part {
			seen[s.Path]++
		}
	}
	assert.Len(t, seen, len(samples))
	for path, n := range seen {
		assert.Equal(t, 1, n, "sample %s assigned %d times", path, n)
	}
}

func TestStratifiedSplitFidelity(t *testing.T) {
	counts := map[int]int{0: 50, 1: 30, 2: 20}
	samples := syntheticSamples(counts)
	split, err := StratifiedSplit(samples, DefaultSplitConfig(7))
	require.NoError(t, err)

	train := classCounts(split.Train)
	val := classCounts(split.Validation)
	test := classCounts(split.Test)
	for label, n := range counts {
		assert.InDelta(t, math.Round(0.70*float64(n)), float64(train[label]), 1, "train class %d", label)
		assert.InDelta(t, math.Round(0.15*float64(n)), float64(val[label]), 1, "validation class %d", label)
		assert.InDelta(t, math.Round(0.15*float64(n)), float64(test[label]), 1, "test class %d", label)
	}
}

func TestStratifiedSplitInsufficientData(t *testing.T) {
	samples := syntheticSamples(map[int]int{0: 10, 1: 1})
	_, err := StratifiedSplit(samples, DefaultSplitConfig(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestStratifiedSplitRejectsBadFractions(t *testing.T) {
	samples := syntheticSamples(map[int]int{0: 10})
	for _, fraction := range []float64{0, 1, -0.1, 1.5} {
		cfg := DefaultSplitConfig(1)
		cfg.HoldoutFraction = fraction
		_, err := StratifiedSplit(samples, cfg)
		assert.Error(t, err, "fraction %v", fraction)
	}
}

func TestSplitEndToEndScenario(t *testing.T) {
	// Directory tree with Level_0 (3), Level_1 (3), Level_2 (4): the index
	// must see 10 samples and the default split must land on 7 train and
	// 1-2 each of validation and test, reproducibly.
	root := levelTree(t, map[int]int{0: 3, 1: 3, 2: 4})

	index, err := NewIndex(root, nil)
	require.NoError(t, err)
	require.Equal(t, 10, index.Len())

	split, err := index.Split(DefaultSplitConfig(42))
	require.NoError(t, err)

	assert.Len(t, split.Train, 7)
	total := len(split.Validation) + len(split.Test)
	assert.Equal(t, 3, total)
	assert.InDelta(t, 1.5, float64(len(split.Validation)), 0.5)
	assert.InDelta(t, 1.5, float64(len(split.Test)), 0.5)

	again, err := index.Split(DefaultSplitConfig(42))
	require.NoError(t, err)
	assert.Equal(t, split, again)
}
