// Package docs serves the embedded OpenAPI description of the engine's API.
package docs

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Register attaches the OpenAPI spec route to the router.
//
//	GET /openapi.yaml -> embedded OpenAPI spec
func Register(r chi.Router) {
	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
		_, _ = w.Write(OpenAPI)
	})
}
