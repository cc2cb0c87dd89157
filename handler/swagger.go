package handler

import "net/http"

// version is reported by the healthcheck endpoint and embedded in the API
// documentation.
const version = "1.0.0"

// handleSwaggerFile serves the generated OpenAPI document.
func (h *Handler) handleSwaggerFile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./docs/swagger.json")
	}
}
