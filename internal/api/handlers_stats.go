package api

import (
	"net/http"

	"github.com/studyhub/studyhub/internal/api/respond"
	"github.com/studyhub/studyhub/internal/services"
)

type StatsHandler struct {
	svc    *services.StatsService
	userID string
}

func NewStatsHandler(svc *services.StatsService, userID string) *StatsHandler {
	return &StatsHandler{svc: svc, userID: userID}
}

// ListAchievements GET /api/achievements
func (h *StatsHandler) ListAchievements(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.ListAchievements(r.Context(), h.userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// ListProgress GET /api/progress
func (h *StatsHandler) ListProgress(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.ListProgress(r.Context(), h.userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}
