package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/studyhub/studyhub/internal/api/respond"
	"github.com/studyhub/studyhub/internal/api/validate"
	"github.com/studyhub/studyhub/internal/services"
	"github.com/studyhub/studyhub/internal/store"
)

type FlashcardHandler struct {
	svc    *services.FlashcardService
	userID string
}

func NewFlashcardHandler(svc *services.FlashcardService, userID string) *FlashcardHandler {
	return &FlashcardHandler{svc: svc, userID: userID}
}

// ListFlashcards GET /api/flashcards?subject=
func (h *FlashcardHandler) ListFlashcards(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.ListFlashcards(r.Context(), h.userID, r.URL.Query().Get("subject"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// GenerateFlashcards POST /api/flashcards/generate
func (h *FlashcardHandler) GenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Subject string `json:"subject"`
		Topic   string `json:"topic"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.GenerateFlashcards(in.Subject, in.Topic, in.Content); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	out, err := h.svc.GenerateFlashcards(r.Context(), h.userID, in.Subject, in.Topic, in.Content)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// UpdateFlashcard PATCH /api/flashcards/{id}
func (h *FlashcardHandler) UpdateFlashcard(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Front       *string `json:"front,omitempty"`
		Back        *string `json:"back,omitempty"`
		Mastered    *bool   `json:"mastered,omitempty"`
		NextReview  *string `json:"nextReview,omitempty"`
		ReviewCount *int    `json:"reviewCount,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}

	out, err := h.svc.UpdateFlashcard(r.Context(), mux.Vars(r)["id"], store.FlashcardUpdate{
		Front:       in.Front,
		Back:        in.Back,
		Mastered:    in.Mastered,
		NextReview:  in.NextReview,
		ReviewCount: in.ReviewCount,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}
