package api

import (
	"encoding/json"
	"net/http"

	"github.com/studyhub/studyhub/internal/api/respond"
	"github.com/studyhub/studyhub/internal/api/validate"
	"github.com/studyhub/studyhub/internal/services"
)

type ChatHandler struct {
	svc    *services.ChatService
	userID string
}

func NewChatHandler(svc *services.ChatService, userID string) *ChatHandler {
	return &ChatHandler{svc: svc, userID: userID}
}

// ListMessages GET /api/messages
func (h *ChatHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.ListMessages(r.Context(), h.userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// SendMessage POST /api/messages
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.NonEmpty("content", in.Content); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	out, err := h.svc.SendMessage(r.Context(), h.userID, in.Content)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}
