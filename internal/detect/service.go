package detect

import (
	"context"
	"errors"
	"image"
	"sync"

	"github.com/rs/zerolog"
)

// Config encapsulates the collaborators injected into a Service.
type Config struct {
	// Loader produces the model handle. Required for a usable service;
	// when nil every Initialize fails with CodeModelLoadFailed.
	Loader Loader
	// Runtime backs backend selection and backend-level disposal.
	// Optional; when nil backend selection is skipped.
	Runtime Runtime
	// Publisher receives lifecycle events. Optional.
	Publisher EventPublisher
	// Logger is used for diagnostics. Optional.
	Logger *zerolog.Logger
}

// Service owns at most one loaded segmentation model and the scratch
// surface used to stage frames for inference.
type Service struct {
	mu       sync.RWMutex
	state    State
	model    Model
	inflight *loadAttempt
	lastErr  string
	loads    uint64

	loader    Loader
	runtime   Runtime
	publisher EventPublisher
	log       zerolog.Logger

	// detCh serializes detection calls and Dispose; size 1.
	detCh chan struct{}
	// scratch is the reusable staging surface. Guarded by detCh, not mu.
	scratch *image.RGBA
}

// loadAttempt is the shared outcome of one in-flight initialization.
// err is written before done is closed.
type loadAttempt struct {
	done chan struct{}
	err  error
}

func (a *loadAttempt) wait(ctx context.Context) error {
	select {
	case <-a.done:
		return a.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// New constructs a Service in the Uninitialized state.
func New(cfg Config) *Service {
	s := &Service{
		state:     StateUninitialized,
		loader:    cfg.Loader,
		runtime:   cfg.Runtime,
		publisher: cfg.Publisher,
		detCh:     make(chan struct{}, 1),
	}
	if s.publisher == nil {
		s.publisher = noopPublisher{}
	}
	if cfg.Logger != nil {
		s.log = *cfg.Logger
	} else {
		s.log = zerolog.Nop()
	}
	return s
}

// Initialize loads the model if it is not loaded yet. Idempotent and safe
// under concurrent invocation: when an attempt is already in flight the
// caller joins it and observes its outcome; the underlying load runs
// exactly once per attempt. On failure the service returns to a retryable
// Uninitialized-equivalent state and the error carries CodeModelLoadFailed
// with the underlying cause wrapped.
func (s *Service) Initialize(ctx context.Context) error {
	s.mu.Lock()
	switch s.state {
	case StateReady:
		s.mu.Unlock()
		return nil
	case StateInitializing:
		att := s.inflight
		s.mu.Unlock()
		return att.wait(ctx)
	}
	att := &loadAttempt{done: make(chan struct{})}
	s.state = StateInitializing
	s.inflight = att
	s.lastErr = ""
	s.loads++
	s.mu.Unlock()

	model, err := s.load(ctx)

	s.mu.Lock()
	s.inflight = nil
	if err != nil {
		// No partial state survives a failed attempt.
		s.state = StateUninitialized
		s.lastErr = err.Error()
	} else {
		s.model = model
		s.state = StateReady
	}
	s.mu.Unlock()

	att.err = err
	close(att.done)
	return err
}

// load runs the backend-selection sequence and requests the model from the
// loader with the fixed configuration.
func (s *Service) load(ctx context.Context) (Model, error) {
	if s.loader == nil {
		err := errModelLoadFailed(errors.New("no model loader configured"))
		s.publisher.Publish(Event{Name: "load_failed", Fields: map[string]any{"error": err.Error()}})
		loadsTotal.WithLabelValues("failure").Inc()
		return nil, err
	}
	s.selectBackend(ctx)
	s.publisher.Publish(Event{Name: "load_start", Fields: map[string]any{}})
	model, err := s.loader.Load(ctx, defaultModelConfig)
	if err != nil {
		s.log.Error().Err(err).Msg("model load failed")
		s.publisher.Publish(Event{Name: "load_failed", Fields: map[string]any{"error": err.Error()}})
		loadsTotal.WithLabelValues("failure").Inc()
		return nil, errModelLoadFailed(err)
	}
	s.log.Info().Str("arch", defaultModelConfig.Architecture).Msg("model loaded")
	s.publisher.Publish(Event{Name: "load_done", Fields: map[string]any{}})
	loadsTotal.WithLabelValues("success").Inc()
	return model, nil
}

// Dispose releases the model handle, backend-level allocations and the
// scratch surface, and transitions to Disposed. Safe to call in any state;
// a later Initialize performs a full reinitialization. If an initialization
// or detection is in flight, Dispose waits for it to settle first.
func (s *Service) Dispose() {
	for {
		s.mu.Lock()
		if s.state != StateInitializing {
			break
		}
		att := s.inflight
		s.mu.Unlock()
		<-att.done
	}
	// mu held; park detections out before touching shared resources.
	s.mu.Unlock()
	s.detCh <- struct{}{}
	defer func() { <-s.detCh }()

	s.mu.Lock()
	model := s.model
	s.model = nil
	s.scratch = nil
	s.state = StateDisposed
	s.mu.Unlock()

	if model != nil {
		if err := model.Close(); err != nil {
			s.log.Warn().Err(err).Msg("model close failed")
		}
	}
	if s.runtime != nil {
		s.runtime.DisposeVariables()
	}
	s.publisher.Publish(Event{Name: "disposed", Fields: map[string]any{}})
}

// Ready reports whether the service holds a loaded model.
func (s *Service) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state == StateReady && s.model != nil
}

// Snapshot returns a read-only view of the service state.
func (s *Service) Snapshot() Snapshot {
	s.mu.RLock()
	snap := Snapshot{State: s.state, LoadsTotal: s.loads, LastError: s.lastErr}
	s.mu.RUnlock()
	if s.runtime != nil {
		snap.Backend = s.runtime.Backend()
	}
	return snap
}
