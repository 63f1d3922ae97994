package detect

import (
	"context"
	"errors"
	"image"
	"image/draw"
	"time"
)

// DetectHumans runs one segmentation pass over frame and returns the
// decoded mask, a confidence score and the model invocation latency.
//
// The service must be Ready; otherwise the call fails immediately with
// CodeNotInitialized and no load is attempted. Calls on one instance are
// strictly serialized: they share the scratch surface and the model
// handle, so a second call issued while one is outstanding queues behind
// it. A failed call leaves the lifecycle state unchanged.
func (s *Service) DetectHumans(ctx context.Context, frame *image.RGBA) (*DetectionResult, error) {
	if frame == nil {
		return nil, errDetectionFailed(errors.New("nil frame"))
	}

	select {
	case s.detCh <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	defer func() { <-s.detCh }()

	s.mu.RLock()
	model := s.model
	ready := s.state == StateReady
	s.mu.RUnlock()
	if !ready || model == nil {
		return nil, errNotInitialized()
	}

	w := frame.Rect.Dx()
	h := frame.Rect.Dy()
	surface := s.stageFrame(frame)

	start := time.Now()
	buf, err := model.Segment(ctx, surface, defaultSegmentOptions)
	elapsed := time.Since(start)
	if err != nil {
		s.log.Debug().Err(err).Msg("segmentation failed")
		s.publisher.Publish(Event{Name: "detect_failed", Fields: map[string]any{"error": err.Error()}})
		detectionsTotal.WithLabelValues("failure").Inc()
		return nil, errDetectionFailed(err)
	}

	mask, confidence := decodeSegmentation(buf, w, h)
	detectionsTotal.WithLabelValues("success").Inc()
	processingSeconds.Observe(elapsed.Seconds())
	return &DetectionResult{Mask: mask, Confidence: confidence, ProcessingTime: elapsed}, nil
}

// stageFrame copies the caller's frame into the service-owned scratch
// surface, reallocating only when the dimensions change. Callers must hold
// the detection slot.
func (s *Service) stageFrame(frame *image.RGBA) *image.RGBA {
	w := frame.Rect.Dx()
	h := frame.Rect.Dy()
	if s.scratch == nil || s.scratch.Rect.Dx() != w || s.scratch.Rect.Dy() != h {
		s.scratch = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	draw.Draw(s.scratch, s.scratch.Bounds(), frame, frame.Rect.Min, draw.Src)
	return s.scratch
}
