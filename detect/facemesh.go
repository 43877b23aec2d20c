package detect

import (
	"image"
	"math"
	"os"
	"sync"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	ort "github.com/yalue/onnxruntime_go"

	"github.com/nvr-ai/go-faceprep/geometry"
)

const (
	// meshInputSize is the square input resolution of the face mesh model.
	meshInputSize = 256

	meshOutputLen = geometry.NumLandmarks * 3
)

// FaceMeshOptions locates the ONNX face mesh model and names its tensors.
// The model contract is: one float32 input of shape [1,3,256,256] (RGB,
// values in [0,1]) and two outputs, a [1,478*3] landmark vector in input
// pixel coordinates and a [1,1] face presence score.
type FaceMeshOptions struct {
	// ModelPath is the path to the .onnx file.
	ModelPath string

	// RuntimePath optionally overrides the onnxruntime shared library
	// location. Empty uses the library default.
	RuntimePath string

	// Tensor names; defaults are "input", "landmarks" and "score".
	InputName      string
	LandmarkOutput string
	ScoreOutput    string
}

// FaceMesh is an ONNX-backed Detector producing refined 478-point landmark
// sets for at most one face per image.
type FaceMesh struct {
	cfg     Config
	session *ort.AdvancedSession
	input   *ort.Tensor[float32]
	points  *ort.Tensor[float32]
	score   *ort.Tensor[float32]

	// The session reuses its input/output tensors, so runs are serialized.
	mu sync.Mutex
}

// NewFaceMesh loads the model and prepares a reusable inference session.
func NewFaceMesh(opts FaceMeshOptions, cfg Config) (*FaceMesh, error) {
	if cfg.MaxFaces != 1 {
		return nil, errors.Errorf("detect: face mesh supports exactly one face, got MaxFaces=%d", cfg.MaxFaces)
	}
	if !cfg.RefineLandmarks {
		return nil, errors.New("detect: face mesh requires refined landmarks (478-point output)")
	}
	if _, err := os.Stat(opts.ModelPath); err != nil {
		return nil, errors.Wrap(err, "detect: face mesh model")
	}

	if opts.RuntimePath != "" {
		ort.SetSharedLibraryPath(opts.RuntimePath)
	}
	if !ort.IsInitialized() {
		if err := ort.InitializeEnvironment(); err != nil {
			return nil, errors.Wrap(err, "detect: initializing onnxruntime")
		}
	}

	input, err := ort.NewEmptyTensor[float32](ort.NewShape(1, 3, meshInputSize, meshInputSize))
	if err != nil {
		return nil, errors.Wrap(err, "detect: creating input tensor")
	}
	points, err := ort.NewEmptyTensor[float32](ort.NewShape(1, meshOutputLen))
	if err != nil {
		input.Destroy()
		return nil, errors.Wrap(err, "detect: creating landmark tensor")
	}
	score, err := ort.NewEmptyTensor[float32](ort.NewShape(1, 1))
	if err != nil {
		input.Destroy()
		points.Destroy()
		return nil, errors.Wrap(err, "detect: creating score tensor")
	}

	options, err := ort.NewSessionOptions()
	if err != nil {
		input.Destroy()
		points.Destroy()
		score.Destroy()
		return nil, errors.Wrap(err, "detect: creating session options")
	}
	defer options.Destroy()
	options.SetIntraOpNumThreads(4)
	options.SetInterOpNumThreads(2)
	options.SetGraphOptimizationLevel(ort.GraphOptimizationLevelEnableExtended)

	inputName := opts.InputName
	if inputName == "" {
		inputName = "input"
	}
	landmarkOutput := opts.LandmarkOutput
	if landmarkOutput == "" {
		landmarkOutput = "landmarks"
	}
	scoreOutput := opts.ScoreOutput
	if scoreOutput == "" {
		scoreOutput = "score"
	}

	session, err := ort.NewAdvancedSession(
		opts.ModelPath,
		[]string{inputName},
		[]string{landmarkOutput, scoreOutput},
		[]ort.ArbitraryTensor{input},
		[]ort.ArbitraryTensor{points, score},
		options,
	)
	if err != nil {
		input.Destroy()
		points.Destroy()
		score.Destroy()
		return nil, errors.Wrap(err, "detect: creating onnxruntime session")
	}

	return &FaceMesh{
		cfg:     cfg,
		session: session,
		input:   input,
		points:  points,
		score:   score,
	}, nil
}

// Detect runs the face mesh once on img. It returns nil landmarks when the
// face presence score falls below the configured confidence threshold.
func (m *FaceMesh) Detect(img image.Image) (*geometry.LandmarkSet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.fillInput(img)
	if err := m.session.Run(); err != nil {
		return nil, errors.Wrap(err, "detect: running face mesh")
	}

	conf := m.score.GetData()[0]
	if conf < 0 || conf > 1 {
		// Raw logit output; squash before thresholding.
		conf = float32(1 / (1 + math.Exp(-float64(conf))))
	}
	if conf < m.cfg.MinConfidence {
		return nil, nil
	}

	out := m.points.GetData()
	landmarks := make([]geometry.Landmark, geometry.NumLandmarks)
	for i := range landmarks {
		landmarks[i] = geometry.Landmark{
			X: out[i*3] / meshInputSize,
			Y: out[i*3+1] / meshInputSize,
			Z: out[i*3+2] / meshInputSize,
		}
	}
	return geometry.NewLandmarkSet(landmarks)
}

// fillInput resizes img to the model resolution and writes it into the input
// tensor as CHW RGB scaled to [0, 1].
func (m *FaceMesh) fillInput(img image.Image) {
	scaled := resize.Resize(meshInputSize, meshInputSize, img, resize.Bilinear)
	data := m.input.GetData()
	plane := meshInputSize * meshInputSize
	for y := 0; y < meshInputSize; y++ {
		for x := 0; x < meshInputSize; x++ {
			r, g, b, _ := scaled.At(x, y).RGBA()
			i := y*meshInputSize + x
			data[i] = float32(r>>8) / 255
			data[plane+i] = float32(g>>8) / 255
			data[2*plane+i] = float32(b>>8) / 255
		}
	}
}

// Close releases the session and its tensors.
func (m *FaceMesh) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session != nil {
		m.session.Destroy()
		m.session = nil
	}
	if m.input != nil {
		m.input.Destroy()
		m.input = nil
	}
	if m.points != nil {
		m.points.Destroy()
		m.points = nil
	}
	if m.score != nil {
		m.score.Destroy()
		m.score = nil
	}
	return nil
}
