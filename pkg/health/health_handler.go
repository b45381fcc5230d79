package health

import (
	"encoding/json"
	"net/http"
)

type StatusDTO struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
}

type DetailsDTO struct {
	Status string            `json:"status"`
	Agents map[string]string `json:"agents"`
}

type Handler struct {
	version string
}

func NewHandler(version string) *Handler {
	return &Handler{version: version}
}

// Root godoc
// @Summary Service status
// @Description Quick check that the API is up
// @Tags Health
// @Produce json
// @Success 200 {object} StatusDTO
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(StatusDTO{
		Status:  "online",
		Message: "TripForge API is running",
		Version: h.version,
	})
}

// Health godoc
// @Summary Detailed health check
// @Description Report the status of each planning agent
// @Tags Health
// @Produce json
// @Success 200 {object} DetailsDTO
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(DetailsDTO{
		Status: "healthy",
		Agents: map[string]string{
			"budget":     "active",
			"hotel":      "active",
			"transport":  "active",
			"activities": "active",
		},
	})
}
