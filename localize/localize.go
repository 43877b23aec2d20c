// Package localize turns raw images into padded face crops by combining a
// landmark detector with the box geometry in package geometry.
package localize

import (
	"image"
	"image/draw"

	"github.com/pkg/errors"

	"github.com/nvr-ai/go-faceprep/detect"
	"github.com/nvr-ai/go-faceprep/geometry"
)

// Result carries the three independently absent outputs of one localization.
//
//   - no face detected: all three fields nil
//   - landmarks found, padded box degenerate: only Landmarks set
//   - valid box, zero-pixel crop after rounding: Landmarks and Box set
//   - otherwise: all three set
//
// Keeping the outcomes separate lets preprocessing QA distinguish images
// with no face from images whose face could not be cropped.
type Result struct {
	Landmarks *geometry.LandmarkSet
	Box       *geometry.BoundingBox
	Crop      image.Image
}

// FaceDetected reports whether the detector produced landmarks.
func (r Result) FaceDetected() bool { return r.Landmarks != nil }

// Cropped reports whether a usable face crop was produced.
func (r Result) Cropped() bool { return r.Crop != nil }

// Localizer owns its detector handle and crop geometry configuration.
// It holds no other state and is safe for sequential reuse across images.
type Localizer struct {
	detector detect.Detector
	padding  float32
}

// New builds a Localizer around detector. A non-positive padding falls back
// to geometry.DefaultPadding.
func New(detector detect.Detector, padding float32) *Localizer {
	if padding <= 0 {
		padding = geometry.DefaultPadding
	}
	return &Localizer{detector: detector, padding: padding}
}

// Localize runs the detector once on img and derives the padded crop.
// Detector failure is the only error path; every "no face" or degenerate
// geometry outcome is expressed through nil fields on the Result.
func (l *Localizer) Localize(img image.Image) (Result, error) {
	set, err := l.detector.Detect(img)
	if err != nil {
		return Result{}, errors.Wrap(err, "localize: landmark detection")
	}
	if set == nil {
		return Result{}, nil
	}

	bounds := img.Bounds()
	box, ok := geometry.PaddedBox(set, bounds.Dx(), bounds.Dy(), l.padding)
	if !ok {
		return Result{Landmarks: set}, nil
	}

	crop := cropImage(img, box)
	if crop == nil {
		return Result{Landmarks: set, Box: &box}, nil
	}
	return Result{Landmarks: set, Box: &box, Crop: crop}, nil
}

// cropImage extracts the box region of img, or nil when the region contains
// no pixels. Box coordinates are relative to the image origin.
func cropImage(img image.Image, box geometry.BoundingBox) image.Image {
	rect := box.Rect().Add(img.Bounds().Min).Intersect(img.Bounds())
	if rect.Empty() {
		return nil
	}
	if sub, ok := img.(interface {
		SubImage(image.Rectangle) image.Image
	}); ok {
		return sub.SubImage(rect)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(dst, dst.Bounds(), img, rect.Min, draw.Src)
	return dst
}
