package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/studyhub/studyhub/internal/api/respond"
	"github.com/studyhub/studyhub/internal/api/validate"
	"github.com/studyhub/studyhub/internal/model"
	"github.com/studyhub/studyhub/internal/services"
	"github.com/studyhub/studyhub/internal/store"
)

type PlanHandler struct {
	svc    *services.PlanService
	userID string
}

func NewPlanHandler(svc *services.PlanService, userID string) *PlanHandler {
	return &PlanHandler{svc: svc, userID: userID}
}

// ListPlans GET /api/study-plans
func (h *PlanHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.ListPlans(r.Context(), h.userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// CreatePlan POST /api/study-plans
func (h *PlanHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Subject     string `json:"subject"`
		StartDate   string `json:"startDate"`
		EndDate     string `json:"endDate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.CreateStudyPlan(in.Title, in.Subject, in.StartDate, in.EndDate); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	start, err := time.Parse(time.RFC3339, in.StartDate)
	if err != nil {
		respond.WriteBadRequest(w, "startDate must be RFC 3339")
		return
	}
	end, err := time.Parse(time.RFC3339, in.EndDate)
	if err != nil {
		respond.WriteBadRequest(w, "endDate must be RFC 3339")
		return
	}

	out, err := h.svc.CreatePlan(r.Context(), &model.StudyPlan{
		UserID:      h.userID,
		Title:       in.Title,
		Description: in.Description,
		Subject:     in.Subject,
		StartDate:   start,
		EndDate:     end,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// UpdatePlan PATCH /api/study-plans/{id}
func (h *PlanHandler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Title       *string           `json:"title,omitempty"`
		Description *string           `json:"description,omitempty"`
		Subject     *string           `json:"subject,omitempty"`
		Status      *string           `json:"status,omitempty"`
		DailyTasks  []model.DailyTask `json:"dailyTasks,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if in.Status != nil {
		if err := validate.PlanStatus(*in.Status); err != nil {
			respond.WriteBadRequest(w, err.Error())
			return
		}
	}

	out, err := h.svc.UpdatePlan(r.Context(), mux.Vars(r)["id"], store.StudyPlanUpdate{
		Title:       in.Title,
		Description: in.Description,
		Subject:     in.Subject,
		Status:      in.Status,
		DailyTasks:  in.DailyTasks,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// GeneratePlan POST /api/study-plans/generate
func (h *PlanHandler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Subject       string   `json:"subject"`
		Topics        []string `json:"topics"`
		DaysAvailable int      `json:"daysAvailable"`
		HoursPerDay   int      `json:"hoursPerDay"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.GeneratePlan(in.Subject, in.Topics, in.DaysAvailable, in.HoursPerDay); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	plan, generated, err := h.svc.GeneratePlan(r.Context(), h.userID, in.Subject, in.Topics, in.DaysAvailable, in.HoursPerDay)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	// The stored plan keeps an empty task list; the generated schedule is
	// returned alongside for display only.
	respond.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"id":          plan.ID,
		"userId":      plan.UserID,
		"title":       plan.Title,
		"description": plan.Description,
		"subject":     plan.Subject,
		"startDate":   plan.StartDate,
		"endDate":     plan.EndDate,
		"dailyTasks":  plan.DailyTasks,
		"status":      plan.Status,
		"aiGenerated": generated,
	})
}
