package service

import (
	"sort"
	"sync"
	"testing"

	"github.com/lshigami/Pangolins/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookmarkRepo struct {
	mu        sync.Mutex
	questions map[uint]model.Question
	marks     map[string]map[uint]bool
}

func newFakeBookmarkRepo() *fakeBookmarkRepo {
	return &fakeBookmarkRepo{
		questions: make(map[uint]model.Question),
		marks:     make(map[string]map[uint]bool),
	}
}

func (r *fakeBookmarkRepo) Toggle(userID string, questionID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.marks[userID] == nil {
		r.marks[userID] = make(map[uint]bool)
	}
	if r.marks[userID][questionID] {
		delete(r.marks[userID], questionID)
		return false, nil
	}
	r.marks[userID][questionID] = true
	return true, nil
}

func (r *fakeBookmarkRepo) FindQuestionsByUser(userID string) ([]model.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Question
	for id := range r.marks[userID] {
		if q, ok := r.questions[id]; ok {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func TestToggleBookmark_RoundTrip(t *testing.T) {
	repo := newFakeBookmarkRepo()
	repo.questions[1] = makeQuestion(1, 100, 4, 1)
	svc := NewBookmarkService(repo)

	bookmarked, err := svc.ToggleBookmark("u1", 1)
	require.NoError(t, err)
	assert.True(t, bookmarked)

	questions, err := svc.GetBookmarkedQuestions("u1")
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, uint(1), questions[0].ID)

	bookmarked, err = svc.ToggleBookmark("u1", 1)
	require.NoError(t, err)
	assert.False(t, bookmarked)

	questions, err = svc.GetBookmarkedQuestions("u1")
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestToggleBookmark_RequiresUserID(t *testing.T) {
	svc := NewBookmarkService(newFakeBookmarkRepo())

	_, err := svc.ToggleBookmark("", 1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
