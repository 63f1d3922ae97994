package detect

import (
	"context"
	"image"
)

// Backend identifies a compute execution target for model inference.
type Backend string

const (
	// BackendAccelerated is the preferred GPU-backed execution target.
	BackendAccelerated Backend = "accelerated"
	// BackendFallback is the CPU execution target used when the
	// accelerated backend cannot be activated.
	BackendFallback Backend = "fallback"
)

// ModelConfig carries the fixed architecture parameters passed to Loader.Load.
// These are service-level constants, not caller-configurable.
type ModelConfig struct {
	Architecture string
	OutputStride int
	Multiplier   float64
	QuantBytes   int
}

// SegmentOptions carries the fixed per-invocation inference options.
// These are service-level policy constants, not per-call parameters.
type SegmentOptions struct {
	FlipHorizontal        bool
	InternalResolution    string
	SegmentationThreshold float64
	ScoreThreshold        float64
	MaxDetections         int
	NMSRadius             int
}

// Model is an opaque handle to a loaded segmentation model.
//
// Segment classifies every pixel of frame and returns one byte per pixel in
// row-major order: 1 = human/foreground, 0 = background. The returned buffer
// length must equal frame width times height; that is a contract of the
// implementation, not something the service recovers from.
type Model interface {
	Segment(ctx context.Context, frame *image.RGBA, opts SegmentOptions) ([]byte, error)
	Close() error
}

// Loader produces a Model from the fixed configuration, or fails.
type Loader interface {
	Load(ctx context.Context, cfg ModelConfig) (Model, error)
}

// Runtime exposes backend query/switch and backend-level resource disposal.
// Implementations wrap whatever execution engine backs the models.
type Runtime interface {
	// Backend reports the currently active backend.
	Backend() Backend
	// SetBackend requests a switch to the given backend.
	SetBackend(ctx context.Context, b Backend) error
	// DisposeVariables releases backend-level retained allocations.
	// Called from Service.Dispose after the model handle is closed.
	DisposeVariables()
}

// Fixed model architecture used for every load attempt.
var defaultModelConfig = ModelConfig{
	Architecture: "MobileNetV1",
	OutputStride: 16,
	Multiplier:   0.75,
	QuantBytes:   2,
}

// Fixed inference options used for every detection call.
var defaultSegmentOptions = SegmentOptions{
	FlipHorizontal:        false,
	InternalResolution:    "medium",
	SegmentationThreshold: 0.7,
	ScoreThreshold:        0.3,
	MaxDetections:         1,
	NMSRadius:             20,
}
