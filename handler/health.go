package handler

import (
	"net/http"
)

// healthcheckHandler godoc
// @Summary Show application information
// @Tags healthcheck
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /v1/healthcheck [get]
func (h *Handler) healthcheckHandler(w http.ResponseWriter, r *http.Request) {
	env := envelope{
		"status": "available",
		"system_info": map[string]string{
			"environment": h.config.Server.Env,
			"version":     version,
		},
	}
	err := h.encodeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
