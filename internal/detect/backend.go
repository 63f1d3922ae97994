package detect

import "context"

// selectBackend applies the preferred compute backend ahead of a model
// load. The sequence is fixed: query the current backend; if it is not the
// accelerated one, switch to accelerated; if that switch fails, explicitly
// switch to the fallback backend so the runtime ends in a known state.
// Best effort throughout: the outcome never fails initialization, the model
// load itself is the authoritative signal. Callers diagnose platform
// capability issues from the switch call sequence, so the ordering here
// must not change.
func (s *Service) selectBackend(ctx context.Context) {
	if s.runtime == nil {
		return
	}
	cur := s.runtime.Backend()
	if cur == BackendAccelerated {
		s.log.Debug().Str("backend", string(cur)).Msg("backend already preferred")
		return
	}
	if err := s.runtime.SetBackend(ctx, BackendAccelerated); err != nil {
		s.log.Warn().Err(err).Msg("accelerated backend unavailable, falling back")
		s.publisher.Publish(Event{Name: "backend_switch_failed", Fields: map[string]any{
			"backend": string(BackendAccelerated), "error": err.Error(),
		}})
		backendSwitchTotal.WithLabelValues(string(BackendAccelerated), "failure").Inc()
		if err := s.runtime.SetBackend(ctx, BackendFallback); err != nil {
			s.log.Warn().Err(err).Msg("fallback backend switch failed")
			backendSwitchTotal.WithLabelValues(string(BackendFallback), "failure").Inc()
			return
		}
		backendSwitchTotal.WithLabelValues(string(BackendFallback), "success").Inc()
		return
	}
	s.publisher.Publish(Event{Name: "backend_switched", Fields: map[string]any{
		"backend": string(BackendAccelerated),
	}})
	backendSwitchTotal.WithLabelValues(string(BackendAccelerated), "success").Inc()
}
