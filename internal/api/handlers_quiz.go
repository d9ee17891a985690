package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/studyhub/studyhub/internal/api/respond"
	"github.com/studyhub/studyhub/internal/api/validate"
	"github.com/studyhub/studyhub/internal/model"
	"github.com/studyhub/studyhub/internal/services"
	"github.com/studyhub/studyhub/internal/store"
)

type QuizHandler struct {
	svc    *services.QuizService
	userID string
}

func NewQuizHandler(svc *services.QuizService, userID string) *QuizHandler {
	return &QuizHandler{svc: svc, userID: userID}
}

// ListQuizzes GET /api/quizzes
func (h *QuizHandler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.ListQuizzes(r.Context(), h.userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// GetQuiz GET /api/quizzes/{id}
func (h *QuizHandler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.GetQuiz(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// GenerateQuiz POST /api/quizzes/generate
func (h *QuizHandler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Title             string `json:"title"`
		Subject           string `json:"subject"`
		Content           string `json:"content,omitempty"`
		NumberOfQuestions int    `json:"numberOfQuestions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if in.NumberOfQuestions == 0 {
		in.NumberOfQuestions = 10
	}
	if err := validate.GenerateQuiz(in.Title, in.Subject, in.NumberOfQuestions); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	out, err := h.svc.GenerateQuiz(r.Context(), h.userID, in.Title, in.Subject, in.Content, in.NumberOfQuestions)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// UpdateQuiz PATCH /api/quizzes/{id}
func (h *QuizHandler) UpdateQuiz(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Completed *bool            `json:"completed,omitempty"`
		Score     *float64         `json:"score,omitempty"`
		Questions []model.Question `json:"questions,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}

	out, err := h.svc.UpdateQuiz(r.Context(), mux.Vars(r)["id"], store.QuizUpdate{
		Completed: in.Completed,
		Score:     in.Score,
		Questions: in.Questions,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}
