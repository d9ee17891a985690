// Package memstore is the in-memory store.Store implementation. All
// application state lives for the process lifetime only; there is no
// durability. A single RWMutex guards every collection so concurrent
// request handlers never interleave partial mutations.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/studyhub/studyhub/internal/model"
	"github.com/studyhub/studyhub/internal/store"
)

// Store implements store.Store over maps keyed by generated UUIDs.
type Store struct {
	mu sync.RWMutex

	users      map[string]*model.User
	plans      map[string]*model.StudyPlan
	planOrder  []string
	quizzes    map[string]*model.Quiz
	quizOrder  []string
	cards      map[string]*model.Flashcard
	cardOrder  []string
	sessions   []*model.StudySession
	badges     map[string]*model.Achievement
	badgeOrder []string
	messages   []*model.Message
	progress   map[string]*model.Progress
	progOrder  []string

	now func() time.Time
}

// New returns an empty store. Callers that need the demo dataset should
// follow with Seed.
func New() *Store {
	return &Store{
		users:    make(map[string]*model.User),
		plans:    make(map[string]*model.StudyPlan),
		quizzes:  make(map[string]*model.Quiz),
		cards:    make(map[string]*model.Flashcard),
		badges:   make(map[string]*model.Achievement),
		progress: make(map[string]*model.Progress),
		now:      time.Now,
	}
}

// Seed installs the demo user and their starting progress records.
func (s *Store) Seed(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.users[userID] = &model.User{
		ID:              userID,
		Name:            "Alex",
		Email:           "alex@example.com",
		Subjects:        []string{"Mathematics", "Physics", "Chemistry"},
		StudyTimePerDay: 120,
		CurrentStreak:   7,
		TotalStudyHours: 24.5,
		CreatedAt:       now,
	}

	seedMastery := map[string]int{"Mathematics": 85, "Physics": 60, "Chemistry": 45}
	for _, subject := range []string{"Mathematics", "Physics", "Chemistry"} {
		key := progressKey(userID, subject)
		s.progress[key] = &model.Progress{
			UserID:      userID,
			Subject:     subject,
			Topic:       "General",
			Mastery:     seedMastery[subject],
			LastStudied: now,
			TotalTime:   0,
		}
		s.progOrder = append(s.progOrder, key)
	}
}

func newID() string { return uuid.New().String() }

func progressKey(userID, subject string) string { return userID + "/" + subject }

func (s *Store) Users() store.Users               { return users{s} }
func (s *Store) StudyPlans() store.StudyPlans     { return plans{s} }
func (s *Store) Quizzes() store.Quizzes           { return quizzes{s} }
func (s *Store) Flashcards() store.Flashcards     { return cards{s} }
func (s *Store) Sessions() store.Sessions         { return sessions{s} }
func (s *Store) Achievements() store.Achievements { return badges{s} }
func (s *Store) Messages() store.Messages         { return messages{s} }
func (s *Store) Progress() store.Progress         { return progress{s} }

// ---------------- users ----------------

type users struct{ s *Store }

func (r users) Create(ctx context.Context, u *model.User) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := *u
	out.ID = newID()
	out.CurrentStreak = 0
	out.TotalStudyHours = 0
	out.CreatedAt = r.s.now()
	if out.Subjects == nil {
		out.Subjects = []string{}
	}
	r.s.users[out.ID] = &out
	return cloneUser(&out), nil
}

func (r users) Get(ctx context.Context, userID string) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[userID]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", userID, model.ErrNotFound)
	}
	return cloneUser(u), nil
}

func (r users) Update(ctx context.Context, userID string, up store.UserUpdate) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[userID]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", userID, model.ErrNotFound)
	}
	if up.Name != nil {
		u.Name = *up.Name
	}
	if up.Email != nil {
		u.Email = *up.Email
	}
	if up.Avatar != nil {
		u.Avatar = up.Avatar
	}
	if up.Subjects != nil {
		u.Subjects = append([]string(nil), up.Subjects...)
	}
	if up.StudyTimePerDay != nil {
		u.StudyTimePerDay = *up.StudyTimePerDay
	}
	if up.CurrentStreak != nil {
		u.CurrentStreak = *up.CurrentStreak
	}
	if up.TotalStudyHours != nil {
		u.TotalStudyHours = *up.TotalStudyHours
	}
	return cloneUser(u), nil
}

func (r users) AddStudyHours(ctx context.Context, userID string, hours float64) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[userID]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", userID, model.ErrNotFound)
	}
	u.TotalStudyHours += hours
	return cloneUser(u), nil
}

func cloneUser(u *model.User) *model.User {
	out := *u
	out.Subjects = append([]string(nil), u.Subjects...)
	return &out
}

// ---------------- study plans ----------------

type plans struct{ s *Store }

func (r plans) Create(ctx context.Context, p *model.StudyPlan) (*model.StudyPlan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := *p
	out.ID = newID()
	out.DailyTasks = []model.DailyTask{}
	out.Status = model.PlanActive
	r.s.plans[out.ID] = &out
	r.s.planOrder = append(r.s.planOrder, out.ID)
	return clonePlan(&out), nil
}

func (r plans) Get(ctx context.Context, planID string) (*model.StudyPlan, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.plans[planID]
	if !ok {
		return nil, fmt.Errorf("study plan %s: %w", planID, model.ErrNotFound)
	}
	return clonePlan(p), nil
}

func (r plans) List(ctx context.Context, userID string) ([]*model.StudyPlan, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*model.StudyPlan, 0)
	for _, id := range r.s.planOrder {
		if p := r.s.plans[id]; p.UserID == userID {
			out = append(out, clonePlan(p))
		}
	}
	return out, nil
}

func (r plans) Update(ctx context.Context, planID string, up store.StudyPlanUpdate) (*model.StudyPlan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.plans[planID]
	if !ok {
		return nil, fmt.Errorf("study plan %s: %w", planID, model.ErrNotFound)
	}
	if up.Title != nil {
		p.Title = *up.Title
	}
	if up.Description != nil {
		p.Description = *up.Description
	}
	if up.Subject != nil {
		p.Subject = *up.Subject
	}
	if up.Status != nil {
		p.Status = *up.Status
	}
	if up.DailyTasks != nil {
		p.DailyTasks = append([]model.DailyTask(nil), up.DailyTasks...)
	}
	return clonePlan(p), nil
}

func clonePlan(p *model.StudyPlan) *model.StudyPlan {
	out := *p
	out.DailyTasks = append([]model.DailyTask(nil), p.DailyTasks...)
	return &out
}

// ---------------- quizzes ----------------

type quizzes struct{ s *Store }

func (r quizzes) Create(ctx context.Context, q *model.Quiz) (*model.Quiz, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := *q
	out.ID = newID()
	out.CreatedAt = r.s.now()
	if out.Questions == nil {
		out.Questions = []model.Question{}
	}
	r.s.quizzes[out.ID] = &out
	r.s.quizOrder = append(r.s.quizOrder, out.ID)
	return cloneQuiz(&out), nil
}

func (r quizzes) Get(ctx context.Context, quizID string) (*model.Quiz, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	q, ok := r.s.quizzes[quizID]
	if !ok {
		return nil, fmt.Errorf("quiz %s: %w", quizID, model.ErrNotFound)
	}
	return cloneQuiz(q), nil
}

func (r quizzes) List(ctx context.Context, userID string) ([]*model.Quiz, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*model.Quiz, 0)
	for _, id := range r.s.quizOrder {
		if q := r.s.quizzes[id]; q.UserID == userID {
			out = append(out, cloneQuiz(q))
		}
	}
	return out, nil
}

func (r quizzes) Update(ctx context.Context, quizID string, up store.QuizUpdate) (*model.Quiz, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	q, ok := r.s.quizzes[quizID]
	if !ok {
		return nil, fmt.Errorf("quiz %s: %w", quizID, model.ErrNotFound)
	}
	if up.Completed != nil {
		q.Completed = *up.Completed
	}
	if up.Score != nil {
		q.Score = up.Score
	}
	if up.Questions != nil {
		q.Questions = append([]model.Question(nil), up.Questions...)
	}
	return cloneQuiz(q), nil
}

func cloneQuiz(q *model.Quiz) *model.Quiz {
	out := *q
	out.Questions = append([]model.Question(nil), q.Questions...)
	return &out
}

// ---------------- flashcards ----------------

type cards struct{ s *Store }

func (r cards) Create(ctx context.Context, f *model.Flashcard) (*model.Flashcard, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := *f
	out.ID = newID()
	out.Mastered = false
	out.ReviewCount = 0
	out.NextReview = r.s.now()
	r.s.cards[out.ID] = &out
	r.s.cardOrder = append(r.s.cardOrder, out.ID)
	clone := out
	return &clone, nil
}

func (r cards) Get(ctx context.Context, cardID string) (*model.Flashcard, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	f, ok := r.s.cards[cardID]
	if !ok {
		return nil, fmt.Errorf("flashcard %s: %w", cardID, model.ErrNotFound)
	}
	clone := *f
	return &clone, nil
}

func (r cards) List(ctx context.Context, userID, subject string) ([]*model.Flashcard, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*model.Flashcard, 0)
	for _, id := range r.s.cardOrder {
		f := r.s.cards[id]
		if f.UserID != userID {
			continue
		}
		if subject != "" && f.Subject != subject {
			continue
		}
		clone := *f
		out = append(out, &clone)
	}
	return out, nil
}

func (r cards) Update(ctx context.Context, cardID string, up store.FlashcardUpdate) (*model.Flashcard, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	f, ok := r.s.cards[cardID]
	if !ok {
		return nil, fmt.Errorf("flashcard %s: %w", cardID, model.ErrNotFound)
	}
	if up.Front != nil {
		f.Front = *up.Front
	}
	if up.Back != nil {
		f.Back = *up.Back
	}
	if up.Mastered != nil {
		f.Mastered = *up.Mastered
	}
	if up.NextReview != nil {
		t, err := time.Parse(time.RFC3339, *up.NextReview)
		if err != nil {
			return nil, fmt.Errorf("nextReview: %w", model.ErrValidation)
		}
		f.NextReview = t
	}
	if up.ReviewCount != nil {
		f.ReviewCount = *up.ReviewCount
	}
	clone := *f
	return &clone, nil
}

// ---------------- study sessions ----------------

type sessions struct{ s *Store }

func (r sessions) Create(ctx context.Context, sess *model.StudySession) (*model.StudySession, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := *sess
	out.ID = newID()
	out.Date = r.s.now()
	r.s.sessions = append(r.s.sessions, &out)
	clone := out
	return &clone, nil
}

func (r sessions) List(ctx context.Context, userID string, limit int) ([]*model.StudySession, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*model.StudySession, 0)
	for _, sess := range r.s.sessions {
		if sess.UserID == userID {
			clone := *sess
			out = append(out, &clone)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ---------------- achievements ----------------

type badges struct{ s *Store }

func (r badges) List(ctx context.Context, userID string) ([]*model.Achievement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*model.Achievement, 0)
	for _, id := range r.s.badgeOrder {
		if a := r.s.badges[id]; a.UserID == userID {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r badges) Unlock(ctx context.Context, a *model.Achievement) (*model.Achievement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := *a
	out.ID = newID()
	out.UnlockedAt = r.s.now()
	r.s.badges[out.ID] = &out
	r.s.badgeOrder = append(r.s.badgeOrder, out.ID)
	clone := out
	return &clone, nil
}

// ---------------- messages ----------------

type messages struct{ s *Store }

func (r messages) Create(ctx context.Context, m *model.Message) (*model.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := *m
	out.ID = newID()
	out.Timestamp = r.s.now()
	r.s.messages = append(r.s.messages, &out)
	clone := out
	return &clone, nil
}

func (r messages) List(ctx context.Context, userID string) ([]*model.Message, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*model.Message, 0)
	for _, m := range r.s.messages {
		if m.UserID == userID {
			clone := *m
			out = append(out, &clone)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

// ---------------- progress ----------------

type progress struct{ s *Store }

func (r progress) List(ctx context.Context, userID string) ([]*model.Progress, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*model.Progress, 0)
	for _, key := range r.s.progOrder {
		if p := r.s.progress[key]; p.UserID == userID {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r progress) Upsert(ctx context.Context, userID, subject, topic string, mastery int) (*model.Progress, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := progressKey(userID, subject)
	totalTime := 0
	if prev, ok := r.s.progress[key]; ok {
		totalTime = prev.TotalTime
	} else {
		r.s.progOrder = append(r.s.progOrder, key)
	}
	p := &model.Progress{
		UserID:      userID,
		Subject:     subject,
		Topic:       topic,
		Mastery:     mastery,
		LastStudied: r.s.now(),
		TotalTime:   totalTime,
	}
	r.s.progress[key] = p
	clone := *p
	return &clone, nil
}

func (r progress) AddTime(ctx context.Context, userID, subject string, minutes int) (*model.Progress, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := progressKey(userID, subject)
	p, ok := r.s.progress[key]
	if !ok {
		p = &model.Progress{UserID: userID, Subject: subject, Topic: "General"}
		r.s.progress[key] = p
		r.s.progOrder = append(r.s.progOrder, key)
	}
	p.TotalTime += minutes
	p.LastStudied = r.s.now()
	clone := *p
	return &clone, nil
}
