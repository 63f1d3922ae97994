package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// zlog is the structured logger for the HTTP layer; Nop until installed.
var zlog = zerolog.Nop()

// SetLogger installs a structured logger used by the HTTP layer.
func SetLogger(l zerolog.Logger) { zlog = l }

// RequestLogger logs one line per request with the chi request id.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(sr, r)
		var ev *zerolog.Event
		if sr.status >= 500 {
			ev = zlog.Error()
		} else {
			ev = zlog.Info()
		}
		if rid := middleware.GetReqID(r.Context()); rid != "" {
			ev = ev.Str("request_id", rid)
		}
		ev.Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", sr.status).
			Dur("dur", time.Since(start)).
			Msg("request")
	})
}
