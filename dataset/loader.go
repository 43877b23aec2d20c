package dataset

import (
	"image"
	"log"
	"math/rand"

	"github.com/pkg/errors"
	"gorgonia.org/tensor"

	"github.com/nvr-ai/go-faceprep/images"
	"github.com/nvr-ai/go-faceprep/transform"
)

// DecodeFunc reads and decodes one image file into the canonical RGB order.
type DecodeFunc func(path string) (image.Image, error)

// Result is the outcome of one sample retrieval. A failed load leaves OK
// false and the payload fields zero; the loader never propagates per-sample
// errors, so one corrupt file cannot abort a batch or an epoch.
type Result struct {
	Image *tensor.Dense
	Label int
	OK    bool
}

// LoaderConfig configures a Loader.
type LoaderConfig struct {
	// Decode is the image decode capability; images.DecodeFile when nil.
	Decode DecodeFunc

	// Pipeline is the transform applied to every decoded image.
	Pipeline *transform.Pipeline

	// Seed drives augmentation randomness. Each index derives its own
	// generator from it, so retrieval stays deterministic and goroutines
	// loading disjoint indices never share state.
	Seed int64

	// Logger receives per-sample failure diagnostics; log.Default() when
	// nil.
	Logger *log.Logger
}

// Loader provides random access to the transformed samples of one
// partition. It holds only immutable state and is safe for concurrent Get
// calls.
type Loader struct {
	samples  []Sample
	decode   DecodeFunc
	pipeline *transform.Pipeline
	seed     int64
	logger   *log.Logger
}

// NewLoader builds a loader over a partition's samples. A missing pipeline
// is a configuration error: failing here once is better than silently
// turning every retrieval into a sentinel.
func NewLoader(samples []Sample, cfg LoaderConfig) (*Loader, error) {
	if cfg.Pipeline == nil {
		return nil, errors.New("dataset: loader requires a transform pipeline")
	}
	if cfg.Decode == nil {
		cfg.Decode = images.DecodeFile
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	return &Loader{
		samples:  samples,
		decode:   cfg.Decode,
		pipeline: cfg.Pipeline,
		seed:     cfg.Seed,
		logger:   cfg.Logger,
	}, nil
}

// Len returns the partition size.
func (l *Loader) Len() int { return len(l.samples) }

// Get retrieves sample i. Decode and transform failures, including panics
// inside the decode or transform capabilities, are absorbed into the
// sentinel result and logged.
func (l *Loader) Get(i int) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Printf("dataset: sample %d panicked: %v", i, r)
			res = Result{}
		}
	}()

	if i < 0 || i >= len(l.samples) {
		l.logger.Printf("dataset: index %d outside partition of %d", i, len(l.samples))
		return Result{}
	}
	s := l.samples[i]

	img, err := l.decode(s.Path)
	if err != nil {
		l.logger.Printf("dataset: skipping %s: %v", s.Path, err)
		return Result{}
	}

	r := rand.New(rand.NewSource(l.seed + int64(i)*2654435761))
	t, err := l.pipeline.Apply(img, r)
	if err != nil {
		l.logger.Printf("dataset: transform failed for %s: %v", s.Path, err)
		return Result{}
	}
	return Result{Image: t, Label: s.Label, OK: true}
}
