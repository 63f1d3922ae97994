package httpapi

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/draw"
	_ "image/jpeg"
	"image/png"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"segmentd/internal/detect"
	"segmentd/internal/relay"
	"segmentd/pkg/types"
)

// Detector defines the methods required by the HTTP API layer.
type Detector interface {
	Initialize(ctx context.Context) error
	Dispose()
	DetectHumans(ctx context.Context, frame *image.RGBA) (*detect.DetectionResult, error)
	Ready() bool
	Snapshot() detect.Snapshot
}

// maxFrameBytes limits uploaded frame size. Default 8 MiB.
var maxFrameBytes int64 = 8 << 20

// SetMaxFrameBytes allows configuring the maximum frame upload size.
func SetMaxFrameBytes(n int64) {
	if n <= 0 {
		maxFrameBytes = 8 << 20
		return
	}
	maxFrameBytes = n
}

func NewMux(svc Detector, mailbox *relay.Mailbox) http.Handler {
	startTime := time.Now()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	// The consumer is a browser-based streaming tool; allow it in.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "PUT", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	r.Use(RequestLogger)
	r.Use(MetricsMiddleware)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/model/initialize", func(w http.ResponseWriter, r *http.Request) {
			if err := svc.Initialize(r.Context()); err != nil {
				if r.Context().Err() != nil {
					return
				}
				writeServiceError(w, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})

		r.Post("/model/dispose", func(w http.ResponseWriter, r *http.Request) {
			svc.Dispose()
			w.WriteHeader(http.StatusNoContent)
		})

		r.Post("/detect", func(w http.ResponseWriter, r *http.Request) {
			ct := strings.ToLower(r.Header.Get("Content-Type"))
			if ct != "" && !strings.HasPrefix(ct, "image/") && !strings.HasPrefix(ct, "application/octet-stream") {
				writeJSONError(w, http.StatusUnsupportedMediaType, "", "Content-Type must be an image")
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, maxFrameBytes)
			src, _, err := image.Decode(r.Body)
			if err != nil {
				writeJSONError(w, http.StatusBadRequest, "", "invalid image payload")
				return
			}
			frame := toRGBA(src)

			res, err := svc.DetectHumans(r.Context(), frame)
			if err != nil {
				if r.Context().Err() != nil {
					return
				}
				writeServiceError(w, err)
				return
			}
			maskPNG, err := encodeMask(res.Mask)
			if err != nil {
				writeJSONError(w, http.StatusInternalServerError, "", "failed to encode mask")
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(types.DetectResponse{
				Width:        frame.Rect.Dx(),
				Height:       frame.Rect.Dy(),
				Confidence:   res.Confidence,
				ProcessingMS: float64(res.ProcessingTime.Microseconds()) / 1000.0,
				MaskPNG:      maskPNG,
			})
		})

		r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
			snap := svc.Snapshot()
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(types.StatusResponse{
				State:          string(snap.State),
				Backend:        string(snap.Backend),
				LoadsTotal:     snap.LoadsTotal,
				LastError:      snap.LastError,
				UptimeSeconds:  int64(time.Since(startTime).Seconds()),
				ServerTimeUnix: time.Now().Unix(),
			})
		})

		if mailbox != nil {
			r.Put("/control", func(w http.ResponseWriter, r *http.Request) {
				r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
				var cmd types.ControlCommand
				if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
					writeJSONError(w, http.StatusBadRequest, "", "invalid JSON body")
					return
				}
				if strings.TrimSpace(cmd.Action) == "" {
					writeJSONError(w, http.StatusBadRequest, "", "action is required")
					return
				}
				stored := mailbox.Set(cmd)
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(stored)
			})

			r.Get("/control", func(w http.ResponseWriter, r *http.Request) {
				cmd, ok := mailbox.Get()
				if !ok {
					writeJSONError(w, http.StatusNotFound, "", "no command stored")
					return
				}
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(cmd)
			})

			r.Get("/control/ws", mailbox.WSHandler(zlog))
		}
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("not ready"))
	})

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	return r
}

// toRGBA normalizes any decoded image to the four-channel layout the
// detection service expects.
func toRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// encodeMask PNG-encodes the mask and base64s it for the JSON response.
func encodeMask(mask *image.Alpha) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, mask); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
