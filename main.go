// Command go-faceprep prepares a facial-image dataset for training: it
// indexes and splits the labeled directory tree, optionally localizes and
// exports face crops, and dry-runs the loading pipeline to report how many
// samples survive decoding and transformation.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/nvr-ai/go-faceprep/dataset"
	"github.com/nvr-ai/go-faceprep/detect"
	"github.com/nvr-ai/go-faceprep/images"
	"github.com/nvr-ai/go-faceprep/localize"
	"github.com/nvr-ai/go-faceprep/transform"
)

func main() {
	var (
		dataDir    string
		seed       int64
		batchSize  int
		targetSize int
		workers    int
		modelPath   string
		ortLib      string
		cropsDir    string
		previewSize int
		padding     float64
		confidence  float64
	)
	flag.StringVar(&dataDir, "data-dir", "", "Dataset root with Level_<n> subdirectories")
	flag.Int64Var(&seed, "seed", 42, "Seed for the stratified split and augmentations")
	flag.IntVar(&batchSize, "batch-size", 32, "Batch size for the pipeline dry run")
	flag.IntVar(&targetSize, "size", 224, "Square transform target size in pixels")
	flag.IntVar(&workers, "workers", 0, "Concurrent sample loads per batch (0 = NumCPU)")
	flag.StringVar(&modelPath, "model", "", "Face mesh ONNX model path (empty skips localization)")
	flag.StringVar(&ortLib, "ort-lib", "", "onnxruntime shared library path override")
	flag.StringVar(&cropsDir, "crops-dir", "", "Directory to write face crops into (requires -model)")
	flag.IntVar(&previewSize, "preview-size", 0, "Also write downscaled source previews next to the crops (0 disables)")
	flag.Float64Var(&padding, "padding", 0.05, "Bounding box padding fraction")
	flag.Float64Var(&confidence, "confidence", 0.5, "Minimum face detection confidence")
	flag.Parse()

	if dataDir == "" {
		fmt.Fprintln(os.Stderr, "usage: go-faceprep -data-dir <dir> [flags]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	index, err := dataset.NewIndex(dataDir, nil)
	if err != nil {
		log.Fatalf("Failed to index %s: %v", dataDir, err)
	}
	log.Printf("Indexed %d samples across %d classes", index.Len(), len(index.Labels()))
	for _, label := range index.Labels() {
		log.Printf("  class %d: %d samples", label, index.Classes()[label])
	}

	split, err := index.Split(dataset.DefaultSplitConfig(seed))
	if err != nil {
		log.Fatalf("Failed to split dataset: %v", err)
	}
	log.Printf("Split: %d train / %d validation / %d test",
		len(split.Train), len(split.Validation), len(split.Test))

	if modelPath != "" {
		if err := localizeFaces(split.Train, modelPath, ortLib, cropsDir, previewSize, float32(padding), float32(confidence)); err != nil {
			log.Fatalf("Face localization failed: %v", err)
		}
	}

	dryRun(split, seed, batchSize, targetSize, workers)
}

// localizeFaces runs the face mesh over samples and reports how many images
// are usable vs. merely face-present, optionally exporting the crops and a
// downscaled preview of each cropped source for visual QA.
func localizeFaces(samples []dataset.Sample, modelPath, ortLib, cropsDir string, previewSize int, padding, confidence float32) error {
	cfg := detect.DefaultConfig()
	cfg.MinConfidence = confidence
	mesh, err := detect.NewFaceMesh(detect.FaceMeshOptions{
		ModelPath:   modelPath,
		RuntimePath: ortLib,
	}, cfg)
	if err != nil {
		return err
	}
	defer mesh.Close()

	localizer := localize.New(mesh, padding)
	if cropsDir != "" {
		if err := os.MkdirAll(cropsDir, 0o755); err != nil {
			return err
		}
	}

	var missed, degenerate, cropped int
	for i, s := range samples {
		img, err := images.ReadFile(s.Path)
		if err != nil {
			log.Printf("Skipping unreadable %s: %v", s.Path, err)
			continue
		}
		result, err := localizer.Localize(img)
		if err != nil {
			return err
		}
		switch {
		case !result.FaceDetected():
			missed++
		case !result.Cropped():
			degenerate++
		default:
			cropped++
			if cropsDir != "" {
				out := filepath.Join(cropsDir, fmt.Sprintf("crop-%05d.jpg", i))
				if err := images.WriteFile(out, result.Crop); err != nil {
					log.Printf("Failed to write %s: %v", out, err)
				}
				if previewSize > 0 {
					writePreview(s.Path, cropsDir, i, previewSize)
				}
			}
		}
	}
	log.Printf("Localization: %d cropped, %d face-but-no-crop, %d missed", cropped, degenerate, missed)
	return nil
}

// writePreview exports a libvips-downscaled copy of the source image so the
// exported crops can be eyeballed against their originals without opening
// full-size files. Preview failures are logged, never fatal.
func writePreview(srcPath, cropsDir string, i, size int) {
	b, err := os.ReadFile(srcPath)
	if err != nil {
		log.Printf("Failed to read %s for preview: %v", srcPath, err)
		return
	}
	preview, err := images.DecodeResized(b, size, size)
	if err != nil {
		log.Printf("Failed to downscale %s: %v", srcPath, err)
		return
	}
	out := filepath.Join(cropsDir, fmt.Sprintf("preview-%05d.jpg", i))
	if err := images.WriteFile(out, preview); err != nil {
		log.Printf("Failed to write %s: %v", out, err)
	}
}

// dryRun walks one epoch of each partition through the loader and collate
// step, counting surviving samples and empty batches.
func dryRun(split *dataset.Split, seed int64, batchSize, targetSize, workers int) {
	partitions := []struct {
		name     string
		samples  []dataset.Sample
		pipeline *transform.Pipeline
		shuffle  bool
	}{
		{"train", split.Train, transform.Train(targetSize), true},
		{"validation", split.Validation, transform.Eval(targetSize), false},
		{"test", split.Test, transform.Eval(targetSize), false},
	}

	for _, p := range partitions {
		loader, err := dataset.NewLoader(p.samples, dataset.LoaderConfig{
			Pipeline: p.pipeline,
			Seed:     seed,
		})
		if err != nil {
			log.Fatalf("Failed to build %s loader: %v", p.name, err)
		}
		var loaded, empty int
		batches := dataset.Batches(loader.Len(), batchSize, p.shuffle, seed)
		for _, indices := range batches {
			batch, err := loader.LoadBatch(indices, workers)
			if err != nil {
				log.Fatalf("Collate failed on %s: %v", p.name, err)
			}
			if batch.Empty() {
				empty++
				continue
			}
			loaded += batch.Len()
		}
		log.Printf("%s: %d/%d samples loaded over %d batches (%d empty)",
			p.name, loaded, loader.Len(), len(batches), empty)
	}
}
