package detect

import (
	"image"
	"time"
)

// State represents the lifecycle state of the service.
type State string

const (
	StateUninitialized State = "uninitialized"
	StateInitializing  State = "initializing"
	StateReady         State = "ready"
	StateDisposed      State = "disposed"
)

// DetectionResult is the immutable output of one detection call.
// The mask is a fresh allocation owned by the caller; it shares no
// storage with the service.
type DetectionResult struct {
	// Mask marks foreground pixels: 0xFF where a human was detected,
	// 0 elsewhere. Single-channel alpha layout, same bounds as the
	// input frame.
	Mask *image.Alpha
	// Confidence is the foreground pixel fraction in [0, 1].
	Confidence float64
	// ProcessingTime is the wall-clock duration of the model
	// invocation only; staging and decoding are excluded.
	ProcessingTime time.Duration
}

// Snapshot is a read-only projection of the service state.
type Snapshot struct {
	State      State
	Backend    Backend
	LoadsTotal uint64
	LastError  string
}
