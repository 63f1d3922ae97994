package detect

import (
	"context"
	"errors"
	"testing"
)

func TestSelectBackend_PreferredThenFallbackOrder(t *testing.T) {
	rt := newFakeRuntime(BackendFallback)
	rt.failOn[BackendAccelerated] = errors.New("no gpu context")
	s := newTestService(&fakeLoader{}, rt)

	if err := s.Initialize(context.Background()); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	rt.mu.Lock()
	switches := append([]Backend(nil), rt.switches...)
	rt.mu.Unlock()
	if len(switches) != 2 {
		t.Fatalf("expected exactly 2 switch attempts, got %v", switches)
	}
	if switches[0] != BackendAccelerated || switches[1] != BackendFallback {
		t.Fatalf("expected accelerated then fallback, got %v", switches)
	}
}

func TestSelectBackend_AlreadyPreferredSkipsSwitch(t *testing.T) {
	rt := newFakeRuntime(BackendAccelerated)
	s := newTestService(&fakeLoader{}, rt)
	if err := s.Initialize(context.Background()); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	rt.mu.Lock()
	n := len(rt.switches)
	rt.mu.Unlock()
	if n != 0 {
		t.Fatalf("expected no switch attempts, got %d", n)
	}
}

func TestSelectBackend_FailuresNeverFailInitialization(t *testing.T) {
	rt := newFakeRuntime(BackendFallback)
	rt.failOn[BackendAccelerated] = errors.New("no gpu context")
	rt.failOn[BackendFallback] = errors.New("runtime wedged")
	s := newTestService(&fakeLoader{}, rt)

	// Both switches fail; the load is still attempted and succeeds.
	if err := s.Initialize(context.Background()); err != nil {
		t.Fatalf("initialize must succeed despite backend trouble: %v", err)
	}
	if !s.Ready() {
		t.Fatalf("expected ready")
	}
}

func TestSelectBackend_RecomputedPerAttempt(t *testing.T) {
	rt := newFakeRuntime(BackendFallback)
	s := newTestService(&fakeLoader{}, rt)
	ctx := context.Background()
	if err := s.Initialize(ctx); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	s.Dispose()
	// Force the runtime off the preferred backend between attempts.
	rt.mu.Lock()
	rt.cur = BackendFallback
	rt.switches = nil
	rt.mu.Unlock()

	if err := s.Initialize(ctx); err != nil {
		t.Fatalf("reinitialize: %v", err)
	}
	rt.mu.Lock()
	switches := append([]Backend(nil), rt.switches...)
	rt.mu.Unlock()
	if len(switches) != 1 || switches[0] != BackendAccelerated {
		t.Fatalf("expected one accelerated switch on reinitialize, got %v", switches)
	}
}
