// Package detect defines the landmark-detector capability consumed by the
// face localizer, plus an ONNX face-mesh backend.
package detect

import (
	"image"

	"github.com/nvr-ai/go-faceprep/geometry"
)

// Detector produces at most one refined landmark set per image.
//
// A nil set with a nil error means no face cleared the confidence threshold;
// that is an ordinary outcome, not an error.
type Detector interface {
	Detect(img image.Image) (*geometry.LandmarkSet, error)
	Close() error
}

// Config mirrors the knobs of a MediaPipe-style face mesh detector.
type Config struct {
	// MaxFaces is the maximum number of faces to detect.
	MaxFaces int

	// StaticImage treats every input as an independent still image instead
	// of a video frame with tracking.
	StaticImage bool

	// RefineLandmarks enables the refined 478-point output (irises included).
	RefineLandmarks bool

	// MinConfidence is the minimum face presence score in [0, 1].
	MinConfidence float32
}

// DefaultConfig returns the single-face, static-image configuration used for
// dataset preprocessing.
func DefaultConfig() Config {
	return Config{
		MaxFaces:        1,
		StaticImage:     true,
		RefineLandmarks: true,
		MinConfidence:   0.5,
	}
}

// Func adapts a plain function to the Detector interface.
type Func func(img image.Image) (*geometry.LandmarkSet, error)

// Detect calls f.
func (f Func) Detect(img image.Image) (*geometry.LandmarkSet, error) { return f(img) }

// Close is a no-op.
func (f Func) Close() error { return nil }
