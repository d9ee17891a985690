package api

import (
	"encoding/json"
	"net/http"

	"github.com/studyhub/studyhub/internal/api/respond"
	"github.com/studyhub/studyhub/internal/api/validate"
	"github.com/studyhub/studyhub/internal/services"
)

type GenerateHandler struct {
	svc *services.ContentService
}

func NewGenerateHandler(svc *services.ContentService) *GenerateHandler {
	return &GenerateHandler{svc: svc}
}

// Summarize POST /api/generate/summary
func (h *GenerateHandler) Summarize(w http.ResponseWriter, r *http.Request) {
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

	summary, err := h.svc.Summarize(r.Context(), in.Content)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"summary": summary})
}

// ExtractImage POST /api/generate/extract-image
func (h *GenerateHandler) ExtractImage(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Image string `json:"image"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.NonEmpty("image", in.Image); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	text, err := h.svc.ExtractImageText(r.Context(), in.Image)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"text": text})
}
