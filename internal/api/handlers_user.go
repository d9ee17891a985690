package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/studyhub/studyhub/internal/api/respond"
	"github.com/studyhub/studyhub/internal/model"
	"github.com/studyhub/studyhub/internal/services"
	"github.com/studyhub/studyhub/internal/store"
)

// writeServiceError maps error kinds to HTTP status codes: validation
// failures to 400, missing entities to 404, everything else to 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrValidation):
		respond.WriteBadRequest(w, err.Error())
	case errors.Is(err, model.ErrNotFound):
		respond.WriteNotFound(w, err.Error())
	default:
		respond.WriteInternalError(w, err.Error())
	}
}

type UserHandler struct {
	svc    *services.UserService
	userID string
}

func NewUserHandler(svc *services.UserService, userID string) *UserHandler {
	return &UserHandler{svc: svc, userID: userID}
}

// GetUser GET /api/user
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetUser(r.Context(), h.userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, u)
}

// UpdateUser PATCH /api/user
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name            *string  `json:"name,omitempty"`
		Email           *string  `json:"email,omitempty"`
		Avatar          *string  `json:"avatar,omitempty"`
		Subjects        []string `json:"subjects,omitempty"`
		StudyTimePerDay *int     `json:"studyTimePerDay,omitempty"`
		CurrentStreak   *int     `json:"currentStreak,omitempty"`
		TotalStudyHours *float64 `json:"totalStudyHours,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	out, err := h.svc.UpdateUser(r.Context(), h.userID, store.UserUpdate{
		Name:            in.Name,
		Email:           in.Email,
		Avatar:          in.Avatar,
		Subjects:        in.Subjects,
		StudyTimePerDay: in.StudyTimePerDay,
		CurrentStreak:   in.CurrentStreak,
		TotalStudyHours: in.TotalStudyHours,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}
