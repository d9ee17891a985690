package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/studyhub/studyhub/internal/api/respond"
	"github.com/studyhub/studyhub/internal/api/validate"
	"github.com/studyhub/studyhub/internal/model"
	"github.com/studyhub/studyhub/internal/services"
)

type SessionHandler struct {
	svc    *services.SessionService
	userID string
}

func NewSessionHandler(svc *services.SessionService, userID string) *SessionHandler {
	return &SessionHandler{svc: svc, userID: userID}
}

// ListSessions GET /api/study-sessions?limit=
func (h *SessionHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			limit = n
		}
	}
	out, err := h.svc.ListSessions(r.Context(), h.userID, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// CreateSession POST /api/study-sessions
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Subject  string  `json:"subject"`
		Topic    string  `json:"topic"`
		Duration int     `json:"duration"`
		Notes    *string `json:"notes,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.CreateStudySession(in.Subject, in.Topic, in.Duration); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	out, err := h.svc.CreateSession(r.Context(), &model.StudySession{
		UserID:   h.userID,
		Subject:  in.Subject,
		Topic:    in.Topic,
		Duration: in.Duration,
		Notes:    in.Notes,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}
