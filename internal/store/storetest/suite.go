// Package storetest holds a compliance suite for store.Store
// implementations.
package storetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/studyhub/studyhub/internal/model"
	"github.com/studyhub/studyhub/internal/store"
)

// Run exercises a compliance suite against a store.Store implementation.
// Implementations should provide a clean, isolated store from makeStore.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()

	// Users
	u, err := s.Users().Create(ctx, &model.User{
		Name:            "Jamie",
		Email:           "jamie@example.test",
		Subjects:        []string{"Physics", "Chemistry"},
		StudyTimePerDay: 60,
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if u.ID == "" {
		t.Fatalf("CreateUser: empty id")
	}
	if u.CurrentStreak != 0 || u.TotalStudyHours != 0 {
		t.Fatalf("CreateUser: defaults not applied: %+v", u)
	}
	if got, err := s.Users().Get(ctx, u.ID); err != nil || got.Email != "jamie@example.test" {
		t.Fatalf("GetUser: got=%v err=%v", got, err)
	}
	if _, err := s.Users().Get(ctx, "missing"); !isNotFound(err) {
		t.Fatalf("GetUser missing: want ErrNotFound, got %v", err)
	}

	name := "Jamie B"
	upd, err := s.Users().Update(ctx, u.ID, store.UserUpdate{Name: &name})
	if err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}
	if upd.Name != "Jamie B" || upd.Email != "jamie@example.test" {
		t.Fatalf("UpdateUser: partial merge broken: %+v", upd)
	}
	if _, err := s.Users().Update(ctx, "missing", store.UserUpdate{Name: &name}); !isNotFound(err) {
		t.Fatalf("UpdateUser missing: want ErrNotFound, got %v", err)
	}

	// AddStudyHours accumulates 90 minutes of study as 1.5 hours.
	before, _ := s.Users().Get(ctx, u.ID)
	after, err := s.Users().AddStudyHours(ctx, u.ID, 90.0/60.0)
	if err != nil {
		t.Fatalf("AddStudyHours: %v", err)
	}
	if diff := after.TotalStudyHours - before.TotalStudyHours; diff != 1.5 {
		t.Fatalf("AddStudyHours: want +1.5, got +%v", diff)
	}

	// Study plans
	p, err := s.StudyPlans().Create(ctx, &model.StudyPlan{
		UserID:      u.ID,
		Title:       "Mechanics in two weeks",
		Description: "Kinematics and dynamics",
		Subject:     "Physics",
		StartDate:   time.Now(),
		EndDate:     time.Now().Add(14 * 24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}
	if p.Status != model.PlanActive || len(p.DailyTasks) != 0 {
		t.Fatalf("CreatePlan: defaults not applied: %+v", p)
	}
	paused := model.PlanPaused
	if got, err := s.StudyPlans().Update(ctx, p.ID, store.StudyPlanUpdate{Status: &paused}); err != nil || got.Status != model.PlanPaused || got.Title != p.Title {
		t.Fatalf("UpdatePlan: got=%+v err=%v", got, err)
	}
	if _, err := s.StudyPlans().Update(ctx, "missing", store.StudyPlanUpdate{Status: &paused}); !isNotFound(err) {
		t.Fatalf("UpdatePlan missing: want ErrNotFound, got %v", err)
	}

	// Plans belong to their user only.
	other, _ := s.Users().Create(ctx, &model.User{Name: "Sam", Email: "sam@example.test"})
	if _, err := s.StudyPlans().Create(ctx, &model.StudyPlan{UserID: other.ID, Title: "Algebra", Subject: "Mathematics"}); err != nil {
		t.Fatalf("CreatePlan other: %v", err)
	}
	lst, err := s.StudyPlans().List(ctx, u.ID)
	if err != nil || len(lst) != 1 {
		t.Fatalf("ListPlans: n=%d err=%v", len(lst), err)
	}
	for _, got := range lst {
		if got.UserID != u.ID {
			t.Fatalf("ListPlans: foreign record %+v", got)
		}
	}

	// Quizzes
	q, err := s.Quizzes().Create(ctx, &model.Quiz{
		UserID:  u.ID,
		Title:   "Kinematics check",
		Subject: "Physics",
		Questions: []model.Question{
			{ID: "q-0", Question: "v = ?", Options: []string{"s/t", "s*t", "t/s", "s+t"}, CorrectAnswer: 0},
		},
	})
	if err != nil {
		t.Fatalf("CreateQuiz: %v", err)
	}
	if q.CreatedAt.IsZero() {
		t.Fatalf("CreateQuiz: createdAt not set")
	}
	score := 80.0
	done := true
	if got, err := s.Quizzes().Update(ctx, q.ID, store.QuizUpdate{Completed: &done, Score: &score}); err != nil || !got.Completed || *got.Score != 80.0 {
		t.Fatalf("UpdateQuiz: got=%+v err=%v", got, err)
	}
	if _, err := s.Quizzes().Update(ctx, "missing", store.QuizUpdate{Completed: &done}); !isNotFound(err) {
		t.Fatalf("UpdateQuiz missing: want ErrNotFound, got %v", err)
	}

	// Flashcards, subject filter
	for _, subject := range []string{"Physics", "Physics", "Chemistry"} {
		if _, err := s.Flashcards().Create(ctx, &model.Flashcard{UserID: u.ID, Subject: subject, Front: "f", Back: "b"}); err != nil {
			t.Fatalf("CreateFlashcard: %v", err)
		}
	}
	phys, err := s.Flashcards().List(ctx, u.ID, "Physics")
	if err != nil || len(phys) != 2 {
		t.Fatalf("ListFlashcards filtered: n=%d err=%v", len(phys), err)
	}
	for _, c := range phys {
		if c.Subject != "Physics" {
			t.Fatalf("ListFlashcards: wrong subject %+v", c)
		}
		if c.Mastered || c.ReviewCount != 0 {
			t.Fatalf("CreateFlashcard: defaults not applied: %+v", c)
		}
	}
	all, _ := s.Flashcards().List(ctx, u.ID, "")
	if len(all) != 3 {
		t.Fatalf("ListFlashcards all: n=%d", len(all))
	}
	mastered := true
	if got, err := s.Flashcards().Update(ctx, phys[0].ID, store.FlashcardUpdate{Mastered: &mastered}); err != nil || !got.Mastered {
		t.Fatalf("UpdateFlashcard: got=%+v err=%v", got, err)
	}

	// Sessions sort newest first and honour limit.
	for _, topic := range []string{"one", "two", "three"} {
		if _, err := s.Sessions().Create(ctx, &model.StudySession{UserID: u.ID, Subject: "Physics", Topic: topic, Duration: 30}); err != nil {
			t.Fatalf("CreateSession: %v", err)
		}
		time.Sleep(2 * time.Millisecond) // distinct creation times for ordering
	}
	sess, err := s.Sessions().List(ctx, u.ID, 2)
	if err != nil || len(sess) != 2 {
		t.Fatalf("ListSessions: n=%d err=%v", len(sess), err)
	}
	if sess[0].Date.Before(sess[1].Date) {
		t.Fatalf("ListSessions: not newest first")
	}
	if sess[0].Topic != "three" {
		t.Fatalf("ListSessions: want most recent first, got %s", sess[0].Topic)
	}

	// Messages sort oldest first.
	for _, content := range []string{"hi", "hello"} {
		if _, err := s.Messages().Create(ctx, &model.Message{UserID: u.ID, Role: model.RoleUser, Content: content}); err != nil {
			t.Fatalf("CreateMessage: %v", err)
		}
		time.Sleep(2 * time.Millisecond)
	}
	msgs, err := s.Messages().List(ctx, u.ID)
	if err != nil || len(msgs) != 2 {
		t.Fatalf("ListMessages: n=%d err=%v", len(msgs), err)
	}
	if msgs[0].Content != "hi" || msgs[1].Content != "hello" {
		t.Fatalf("ListMessages: not oldest first: %+v", msgs)
	}

	// Progress keeps one record per (user, subject).
	if _, err := s.Progress().Upsert(ctx, u.ID, "Physics", "Kinematics", 40); err != nil {
		t.Fatalf("UpsertProgress: %v", err)
	}
	if _, err := s.Progress().AddTime(ctx, u.ID, "Physics", 30); err != nil {
		t.Fatalf("AddTime: %v", err)
	}
	got, err := s.Progress().Upsert(ctx, u.ID, "Physics", "Dynamics", 55)
	if err != nil {
		t.Fatalf("UpsertProgress again: %v", err)
	}
	if got.Topic != "Dynamics" || got.Mastery != 55 {
		t.Fatalf("UpsertProgress: overwrite broken: %+v", got)
	}
	if got.TotalTime != 30 {
		t.Fatalf("UpsertProgress: totalTime not carried forward: %+v", got)
	}
	prog, _ := s.Progress().List(ctx, u.ID)
	count := 0
	for _, p := range prog {
		if p.Subject == "Physics" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("Progress: want 1 Physics record, got %d", count)
	}

	// Achievements
	a, err := s.Achievements().Unlock(ctx, &model.Achievement{
		UserID: u.ID, Type: "streak", Title: "One week streak",
		Description: "Studied seven days in a row", Icon: "flame",
	})
	if err != nil || a.ID == "" || a.UnlockedAt.IsZero() {
		t.Fatalf("Unlock: got=%+v err=%v", a, err)
	}
	if lst, err := s.Achievements().List(ctx, u.ID); err != nil || len(lst) != 1 {
		t.Fatalf("ListAchievements: n=%d err=%v", len(lst), err)
	}

	// Generated ids are unique across rapid creation.
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		c, err := s.Flashcards().Create(ctx, &model.Flashcard{UserID: other.ID, Subject: "Mathematics", Front: "f", Back: "b"})
		if err != nil {
			t.Fatalf("CreateFlashcard burst: %v", err)
		}
		if seen[c.ID] {
			t.Fatalf("duplicate id %s", c.ID)
		}
		seen[c.ID] = true
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, model.ErrNotFound)
}
