// Package dataset builds labeled sample indexes from directory trees,
// splits them into stratified train/validation/test partitions, and loads
// and collates samples with per-sample fault isolation.
package dataset

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrDataIntegrity reports a sample whose label cannot be derived from
	// the directory layout. Index construction aborts on it: silently
	// mislabeling data is worse than failing.
	ErrDataIntegrity = errors.New("dataset: cannot derive label")

	// ErrInsufficientData reports a label class too small to survive
	// stratified splitting.
	ErrInsufficientData = errors.New("dataset: label class too small to stratify")
)

// Sample is one labeled image file. Immutable once indexed.
type Sample struct {
	Path  string
	Label int
}

// LabelFunc derives the integer label for an image path. Supplying a custom
// function adapts the index to dataset layouts other than the default
// "<name>_<label>" directory convention.
type LabelFunc func(path string) (int, error)

// DirSuffixLabel derives the label from the trailing underscore-delimited
// numeric token of the file's parent directory: "Level_3/img.png" -> 3.
func DirSuffixLabel(path string) (int, error) {
	dir := filepath.Base(filepath.Dir(path))
	tok := dir
	if i := strings.LastIndex(dir, "_"); i >= 0 {
		tok = dir[i+1:]
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, errors.Wrapf(ErrDataIntegrity, "directory %q has no numeric suffix", dir)
	}
	return n, nil
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".webp": true,
}

// Index is the immutable enumeration of labeled samples under a dataset
// root. It is computed once, before any parallel loading begins, and is
// safe to share across goroutines afterwards.
type Index struct {
	samples []Sample
}

// NewIndex walks root recursively, collecting files with a known image
// extension and labeling each with label (DirSuffixLabel when nil).
// WalkDir visits entries in lexical order, so a given tree always produces
// the same index and therefore, with a fixed seed, the same split.
func NewIndex(root string, label LabelFunc) (*Index, error) {
	if label == nil {
		label = DirSuffixLabel
	}
	var samples []Sample
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !imageExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		lbl, err := label(path)
		if err != nil {
			return err
		}
		samples = append(samples, Sample{Path: path, Label: lbl})
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: indexing %s", root)
	}
	return &Index{samples: samples}, nil
}

// FromSamples wraps an existing sample list, for collaborators that persist
// indexes externally.
func FromSamples(samples []Sample) *Index {
	return &Index{samples: append([]Sample(nil), samples...)}
}

// Len returns the number of indexed samples.
func (ix *Index) Len() int { return len(ix.samples) }

// Sample returns the i-th sample in enumeration order.
func (ix *Index) Sample(i int) Sample { return ix.samples[i] }

// Samples returns a copy of the full sample list in enumeration order.
func (ix *Index) Samples() []Sample {
	return append([]Sample(nil), ix.samples...)
}

// Classes returns the per-label sample counts.
func (ix *Index) Classes() map[int]int {
	counts := make(map[int]int)
	for _, s := range ix.samples {
		counts[s.Label]++
	}
	return counts
}

// Labels returns the distinct labels in ascending order.
func (ix *Index) Labels() []int {
	counts := ix.Classes()
	labels := make([]int, 0, len(counts))
	for l := range counts {
		labels = append(labels, l)
	}
	sort.Ints(labels)
	return labels
}
