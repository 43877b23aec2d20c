package dataset

import (
	"math"
	"math/rand"
	"sort"

	"github.com/pkg/errors"
)

// minClassSize is the smallest label class that can appear in both the
// train partition and the holdout.
const minClassSize = 2

// SplitConfig carries the holdout fractions and the shuffle seed. The split
// never reads ambient randomness; identical (index, config) inputs always
// reproduce the same partitions.
type SplitConfig struct {
	// HoldoutFraction is the share of each class withheld from training in
	// the first stage.
	HoldoutFraction float64

	// TestShare is the share of the holdout that becomes the test
	// partition in the second stage; the rest is validation.
	TestShare float64

	// Seed drives the per-class shuffles.
	Seed int64
}

// DefaultSplitConfig is the conventional 70/15/15 split.
func DefaultSplitConfig(seed int64) SplitConfig {
	return SplitConfig{HoldoutFraction: 0.3, TestShare: 0.5, Seed: seed}
}

// Split holds the three disjoint, exhaustive partitions of an index. Each
// partition preserves index enumeration order and is immutable once built.
type Split struct {
	Train      []Sample
	Validation []Sample
	Test       []Sample
}

// Split partitions the index per cfg. See StratifiedSplit.
func (ix *Index) Split(cfg SplitConfig) (*Split, error) {
	return StratifiedSplit(ix.samples, cfg)
}

// StratifiedSplit performs a two-stage label-stratified split: first each
// class is shuffled and divided into train and holdout by HoldoutFraction,
// then each class's holdout is divided into validation and test by
// TestShare. Per-class counts are rounded; an odd single holdout member
// goes to whichever of validation/test is currently smaller, so both stay
// within one sample of their target share.
//
// Classes with fewer than two members cannot reach both sides of the first
// stage and abort the split with ErrInsufficientData.
func StratifiedSplit(samples []Sample, cfg SplitConfig) (*Split, error) {
	if cfg.HoldoutFraction <= 0 || cfg.HoldoutFraction >= 1 {
		return nil, errors.Errorf("dataset: holdout fraction %v outside (0, 1)", cfg.HoldoutFraction)
	}
	if cfg.TestShare < 0 || cfg.TestShare > 1 {
		return nil, errors.Errorf("dataset: test share %v outside [0, 1]", cfg.TestShare)
	}

	// Group sample positions by label, labels in ascending order so the
	// shuffle sequence is reproducible.
	byLabel := make(map[int][]int)
	for i, s := range samples {
		byLabel[s.Label] = append(byLabel[s.Label], i)
	}
	labels := make([]int, 0, len(byLabel))
	for l := range byLabel {
		labels = append(labels, l)
	}
	sort.Ints(labels)

	for _, l := range labels {
		if n := len(byLabel[l]); n < minClassSize {
			return nil, errors.Wrapf(ErrInsufficientData, "label %d has %d samples", l, n)
		}
	}

	r := rand.New(rand.NewSource(cfg.Seed))
	var trainIdx, valIdx, testIdx []int
	for _, l := range labels {
		class := append([]int(nil), byLabel[l]...)
		r.Shuffle(len(class), func(i, j int) {
			class[i], class[j] = class[j], class[i]
		})

		n := len(class)
		hold := int(math.Round(float64(n) * cfg.HoldoutFraction))
		if hold < 1 {
			hold = 1
		}
		if hold > n-1 {
			hold = n - 1
		}
		trainIdx = append(trainIdx, class[hold:]...)

		holdout := class[:hold]
		test := int(math.Round(float64(len(holdout)) * cfg.TestShare))
		if test > len(holdout) {
			test = len(holdout)
		}
		if len(holdout) == 1 {
			// A single holdout member cannot be split; balance it across
			// the two partitions globally.
			if len(testIdx) <= len(valIdx) {
				test = 1
			} else {
				test = 0
			}
		}
		testIdx = append(testIdx, holdout[:test]...)
		valIdx = append(valIdx, holdout[test:]...)
	}

	return &Split{
		Train:      pick(samples, trainIdx),
		Validation: pick(samples, valIdx),
		Test:       pick(samples, testIdx),
	}, nil
}

// pick maps positions back to samples, restoring enumeration order.
func pick(samples []Sample, idx []int) []Sample {
	sort.Ints(idx)
	out := make([]Sample, len(idx))
	for i, j := range idx {
		out[i] = samples[j]
	}
	return out
}
