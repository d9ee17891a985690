package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/studyhub/studyhub/internal/ai"
	"github.com/studyhub/studyhub/internal/api/metrics"
	"github.com/studyhub/studyhub/internal/api/recovery"
	"github.com/studyhub/studyhub/internal/services"
	"github.com/studyhub/studyhub/internal/store"
)

// NewRouter wires HTTP routes to handlers. demoUserID is the seeded user
// every request operates on in this single-user deployment.
func NewRouter(st store.Store, gen ai.Generator, demoUserID string) *mux.Router {
	root := mux.NewRouter()
	root.Use(recovery.Middleware)
	root.Use(metrics.Middleware(routeTemplate))

	// User
	user := NewUserHandler(services.NewUserService(st), demoUserID)
	root.HandleFunc("/api/user", user.GetUser).Methods("GET")
	root.HandleFunc("/api/user", user.UpdateUser).Methods("PATCH")

	// Study plans
	plan := NewPlanHandler(services.NewPlanService(st, gen), demoUserID)
	root.HandleFunc("/api/study-plans", plan.ListPlans).Methods("GET")
	root.HandleFunc("/api/study-plans", plan.CreatePlan).Methods("POST")
	root.HandleFunc("/api/study-plans/generate", plan.GeneratePlan).Methods("POST")
	root.HandleFunc("/api/study-plans/{id}", plan.UpdatePlan).Methods("PATCH")

	// Quizzes
	quiz := NewQuizHandler(services.NewQuizService(st, gen), demoUserID)
	root.HandleFunc("/api/quizzes", quiz.ListQuizzes).Methods("GET")
	root.HandleFunc("/api/quizzes/generate", quiz.GenerateQuiz).Methods("POST")
	root.HandleFunc("/api/quizzes/{id}", quiz.GetQuiz).Methods("GET")
	root.HandleFunc("/api/quizzes/{id}", quiz.UpdateQuiz).Methods("PATCH")

	// Flashcards
	card := NewFlashcardHandler(services.NewFlashcardService(st, gen), demoUserID)
	root.HandleFunc("/api/flashcards", card.ListFlashcards).Methods("GET")
	root.HandleFunc("/api/flashcards/generate", card.GenerateFlashcards).Methods("POST")
	root.HandleFunc("/api/flashcards/{id}", card.UpdateFlashcard).Methods("PATCH")

	// Study sessions
	sess := NewSessionHandler(services.NewSessionService(st), demoUserID)
	root.HandleFunc("/api/study-sessions", sess.ListSessions).Methods("GET")
	root.HandleFunc("/api/study-sessions", sess.CreateSession).Methods("POST")

	// Achievements & progress
	stats := NewStatsHandler(services.NewStatsService(st), demoUserID)
	root.HandleFunc("/api/achievements", stats.ListAchievements).Methods("GET")
	root.HandleFunc("/api/progress", stats.ListProgress).Methods("GET")

	// Tutor chat
	chat := NewChatHandler(services.NewChatService(st, gen), demoUserID)
	root.HandleFunc("/api/messages", chat.ListMessages).Methods("GET")
	root.HandleFunc("/api/messages", chat.SendMessage).Methods("POST")

	// Content generation
	generate := NewGenerateHandler(services.NewContentService(gen))
	root.HandleFunc("/api/generate/summary", generate.Summarize).Methods("POST")
	root.HandleFunc("/api/generate/extract-image", generate.ExtractImage).Methods("POST")

	// Health & metrics
	health := NewHealthHandler()
	root.HandleFunc("/api/health", health.CheckHealth).Methods("GET")
	root.Handle("/metrics", metrics.Handler()).Methods("GET")

	return root
}

// routeTemplate reports the mux route template for metrics labels,
// falling back to the raw path for unmatched requests.
func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return r.URL.Path
}
