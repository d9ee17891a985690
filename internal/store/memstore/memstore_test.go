package memstore

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyhub/studyhub/internal/model"
	"github.com/studyhub/studyhub/internal/store"
	"github.com/studyhub/studyhub/internal/store/storetest"
)

func TestMemstoreCompliance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store { return New() })
}

func TestSeedInstallsDemoUser(t *testing.T) {
	s := New()
	s.Seed("user-1")
	ctx := context.Background()

	u, err := s.Users().Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Alex", u.Name)
	assert.Equal(t, []string{"Mathematics", "Physics", "Chemistry"}, u.Subjects)
	assert.Equal(t, 7, u.CurrentStreak)
	assert.InDelta(t, 24.5, u.TotalStudyHours, 1e-9)

	prog, err := s.Progress().List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, prog, 3)
	bySubject := map[string]int{}
	for _, p := range prog {
		bySubject[p.Subject] = p.Mastery
	}
	assert.Equal(t, 85, bySubject["Mathematics"])
	assert.Equal(t, 60, bySubject["Physics"])
	assert.Equal(t, 45, bySubject["Chemistry"])
}

// Concurrent AddStudyHours calls must not lose updates. This is the
// read-modify-write hazard the dedicated increment exists for.
func TestAddStudyHoursConcurrent(t *testing.T) {
	s := New()
	s.Seed("user-1")
	ctx := context.Background()

	before, err := s.Users().Get(ctx, "user-1")
	require.NoError(t, err)

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := s.Users().AddStudyHours(ctx, "user-1", 0.5)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	after, err := s.Users().Get(ctx, "user-1")
	require.NoError(t, err)
	assert.InDelta(t, before.TotalStudyHours+n*0.5, after.TotalStudyHours, 1e-9)
}

// Returned records are copies; mutating them must not touch stored state.
func TestReturnsCopies(t *testing.T) {
	s := New()
	ctx := context.Background()

	q, err := s.Quizzes().Create(ctx, &model.Quiz{
		UserID: "u", Title: "t", Subject: "Physics",
		Questions: []model.Question{{ID: "q-0", Question: "?", Options: []string{"a", "b", "c", "d"}}},
	})
	require.NoError(t, err)

	q.Title = "mutated"
	q.Questions[0].ID = "mutated"

	got, err := s.Quizzes().Get(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, "t", got.Title)
	assert.Equal(t, "q-0", got.Questions[0].ID)
}

func TestFlashcardUpdateRejectsBadNextReview(t *testing.T) {
	s := New()
	ctx := context.Background()

	c, err := s.Flashcards().Create(ctx, &model.Flashcard{UserID: "u", Subject: "Physics", Front: "f", Back: "b"})
	require.NoError(t, err)

	bad := "not-a-timestamp"
	_, err = s.Flashcards().Update(ctx, c.ID, store.FlashcardUpdate{NextReview: &bad})
	assert.ErrorIs(t, err, model.ErrValidation)
}
