package detect

import (
	"context"
	"image"
	"sync"
	"time"
)

// StubLoader provides a deterministic segmentation model for development
// runs without a real inference runtime: the loaded model classifies a
// centered rectangle covering a quarter of the frame as human.
type StubLoader struct {
	// Delay is slept before the load completes, to exercise callers that
	// join an in-flight initialization. Zero means immediate.
	Delay time.Duration
}

func (l StubLoader) Load(ctx context.Context, _ ModelConfig) (Model, error) {
	if l.Delay > 0 {
		select {
		case <-time.After(l.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return stubModel{}, nil
}

type stubModel struct{}

func (stubModel) Segment(_ context.Context, frame *image.RGBA, _ SegmentOptions) ([]byte, error) {
	w := frame.Rect.Dx()
	h := frame.Rect.Dy()
	buf := make([]byte, w*h)
	for y := h / 4; y < 3*h/4; y++ {
		for x := w / 4; x < 3*w/4; x++ {
			buf[y*w+x] = 1
		}
	}
	return buf, nil
}

func (stubModel) Close() error { return nil }

// StubRuntime simulates a runtime whose accelerated backend switches
// always succeed. Starts on the fallback backend.
type StubRuntime struct {
	mu  sync.Mutex
	cur Backend
}

func NewStubRuntime() *StubRuntime { return &StubRuntime{cur: BackendFallback} }

func (r *StubRuntime) Backend() Backend {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cur
}

func (r *StubRuntime) SetBackend(_ context.Context, b Backend) error {
	r.mu.Lock()
	r.cur = b
	r.mu.Unlock()
	return nil
}

func (r *StubRuntime) DisposeVariables() {}
