package handler

import (
	"context"
	"net/http"

	"car-fleet-api/internal/model"
)

type statsService interface {
	TotalCars(ctx context.Context) (int, error)
}

type StatsHandler struct {
	service statsService
}

func NewStatsHandler(service statsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// Stats handles GET /api/public/stats, the one read that needs no token.
func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	total, err := h.service.TotalCars(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.StatsResponse{TotalCars: total})
}
