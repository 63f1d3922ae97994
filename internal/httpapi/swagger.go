//go:build swagger

package httpapi

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "segmentd/docs"
)

// MountSwagger serves the generated OpenAPI UI at /docs.
func MountSwagger(r chi.Router) {
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))
}
