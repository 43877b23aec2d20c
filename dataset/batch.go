package dataset

import (
	"math/rand"
	"runtime"
	"sync"

	"github.com/pkg/errors"
	"gorgonia.org/tensor"
)

// Batch is an aligned pair of stacked images (N,C,H,W float32) and labels
// (N int). The zero value is the explicit empty-batch sentinel returned
// when every sample in a batch failed; callers check Empty and skip the
// step instead of stacking nothing.
type Batch struct {
	Images *tensor.Dense
	Labels *tensor.Dense
}

// Empty reports whether the batch carries no samples.
func (b Batch) Empty() bool { return b.Images == nil }

// Len returns the number of samples in the batch.
func (b Batch) Len() int {
	if b.Images == nil {
		return 0
	}
	return b.Images.Shape()[0]
}

// Collate filters failed results and stacks the survivors along a new
// leading batch axis, labels aligned in the same order. The filter is
// stable: survivors keep their relative input order. Mismatched sample
// shapes indicate a loader contract violation and surface as an error.
func Collate(results []Result) (Batch, error) {
	var kept []Result
	for _, r := range results {
		if r.OK {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return Batch{}, nil
	}

	shape := kept[0].Image.Shape()
	per := shape.TotalSize()
	data := make([]float32, 0, len(kept)*per)
	labels := make([]int, len(kept))
	for j, r := range kept {
		if !r.Image.Shape().Eq(shape) {
			return Batch{}, errors.Errorf("dataset: sample shape %v does not match batch shape %v", r.Image.Shape(), shape)
		}
		raw, ok := r.Image.Data().([]float32)
		if !ok {
			return Batch{}, errors.Errorf("dataset: sample tensor is %T, want []float32", r.Image.Data())
		}
		data = append(data, raw...)
		labels[j] = r.Label
	}

	imgShape := append([]int{len(kept)}, shape...)
	return Batch{
		Images: tensor.New(tensor.WithShape(imgShape...), tensor.WithBacking(data)),
		Labels: tensor.New(tensor.WithShape(len(kept)), tensor.WithBacking(labels)),
	}, nil
}

// LoadBatch retrieves the given indices with up to workers concurrent Get
// calls, waits for every one to return (success or sentinel), and collates
// the results in index order.
func (l *Loader) LoadBatch(indices []int, workers int) (Batch, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]Result, len(indices))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for j, idx := range indices {
		wg.Add(1)
		go func(j, idx int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[j] = l.Get(idx)
		}(j, idx)
	}
	wg.Wait()
	return Collate(results)
}

// Batches yields index slices of at most batchSize covering [0, n), with an
// optional seeded shuffle for epoch iteration.
func Batches(n, batchSize int, shuffle bool, seed int64) [][]int {
	if n <= 0 || batchSize <= 0 {
		return nil
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if shuffle {
		r := rand.New(rand.NewSource(seed))
		r.Shuffle(n, func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
	}
	var batches [][]int
	for start := 0; start < n; start += batchSize {
		end := start + batchSize
		if end > n {
			end = n
		}
		batches = append(batches, order[start:end])
	}
	return batches
}
