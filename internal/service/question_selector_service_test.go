package service

import (
	"math/rand"
	"testing"
	"time"

	"github.com/lshigami/Pangolins/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSelectorFixture(seed int64) (*fakeQuestionRepo, *fakeProgressRepo, QuestionSelectorService) {
	progressRepo := newFakeProgressRepo()
	questionRepo := newFakeQuestionRepo(progressRepo)
	selector := NewQuestionSelectorService(questionRepo, rand.New(rand.NewSource(seed)))
	return questionRepo, progressRepo, selector
}

func TestSelectQuestions_RejectsNonPositiveCount(t *testing.T) {
	_, _, selector := newSelectorFixture(1)

	_, err := selector.SelectQuestions(0, QuizFilters{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = selector.SelectQuestions(-5, QuizFilters{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSelectQuestions_EmptyPoolReturnsEmptySlice(t *testing.T) {
	_, _, selector := newSelectorFixture(1)

	questions, err := selector.SelectQuestions(10, QuizFilters{})
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestSelectQuestions_DrawsDistinctActiveQuestions(t *testing.T) {
	questionRepo, _, selector := newSelectorFixture(7)

	// 71 active questions plus some inactive noise.
	for id := uint(1); id <= 71; id++ {
		questionRepo.add(makeQuestion(id, id*100, 4, 1))
	}
	for id := uint(72); id <= 80; id++ {
		q := makeQuestion(id, id*100, 4, 1)
		q.IsActive = false
		questionRepo.add(q)
	}

	questions, err := selector.SelectQuestions(60, QuizFilters{})
	require.NoError(t, err)
	require.Len(t, questions, 60)

	seen := make(map[uint]bool)
	for _, q := range questions {
		assert.True(t, q.IsActive)
		assert.False(t, seen[q.ID], "question %d drawn twice", q.ID)
		seen[q.ID] = true
	}
}

func TestSelectQuestions_NeverExceedsPoolSize(t *testing.T) {
	questionRepo, _, selector := newSelectorFixture(3)
	for id := uint(1); id <= 5; id++ {
		questionRepo.add(makeQuestion(id, id*100, 4, 1))
	}

	questions, err := selector.SelectQuestions(50, QuizFilters{})
	require.NoError(t, err)
	assert.Len(t, questions, 5)
}

func TestSelectQuestions_AppliesFilters(t *testing.T) {
	questionRepo, _, selector := newSelectorFixture(11)

	civil := makeQuestion(1, 100, 4, 1)
	civil.Category = model.CategoryCivil
	questionRepo.add(civil)

	criminal := makeQuestion(2, 200, 4, 1)
	criminal.Category = model.CategoryCriminal
	questionRepo.add(criminal)

	category := model.CategoryCivil
	questions, err := selector.SelectQuestions(10, QuizFilters{Category: &category})
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, uint(1), questions[0].ID)
}

func TestSelectQuestions_ShuffleIsNotStorageOrdered(t *testing.T) {
	questionRepo, _, selector := newSelectorFixture(42)
	for id := uint(1); id <= 50; id++ {
		questionRepo.add(makeQuestion(id, id*100, 4, 1))
	}

	questions, err := selector.SelectQuestions(50, QuizFilters{})
	require.NoError(t, err)
	require.Len(t, questions, 50)

	ordered := true
	for i, q := range questions {
		if q.ID != uint(i+1) {
			ordered = false
			break
		}
	}
	assert.False(t, ordered, "seeded shuffle should not preserve storage order")
}

func TestSelectQuestions_ReviewModeReturnsOnlyDue(t *testing.T) {
	questionRepo, progressRepo, selector := newSelectorFixture(5)
	for id := uint(1); id <= 4; id++ {
		questionRepo.add(makeQuestion(id, id*100, 4, 1))
	}

	overdue := time.Now().Add(-48 * time.Hour)
	lessOverdue := time.Now().Add(-time.Hour)
	future := time.Now().Add(24 * time.Hour)
	progressRepo.rows[progressKey("u1", 1)] = &model.UserProgress{UserID: "u1", QuestionID: 1, NextReview: &overdue, Difficulty: model.ReviewHard}
	progressRepo.rows[progressKey("u1", 2)] = &model.UserProgress{UserID: "u1", QuestionID: 2, NextReview: &lessOverdue, Difficulty: model.ReviewEasy}
	progressRepo.rows[progressKey("u1", 3)] = &model.UserProgress{UserID: "u1", QuestionID: 3, NextReview: &future, Difficulty: model.ReviewEasy}

	userID := "u1"
	questions, err := selector.SelectQuestions(10, QuizFilters{Mode: model.ModeReview, UserID: &userID})
	require.NoError(t, err)

	// Only the two due questions come back, most overdue first; the pool is
	// never padded with not-yet-due questions.
	require.Len(t, questions, 2)
	assert.Equal(t, uint(1), questions[0].ID)
	assert.Equal(t, uint(2), questions[1].ID)
}

func TestSelectQuestions_ReviewModeCapsAtCount(t *testing.T) {
	questionRepo, progressRepo, selector := newSelectorFixture(5)
	for id := uint(1); id <= 5; id++ {
		questionRepo.add(makeQuestion(id, id*100, 4, 1))
		due := time.Now().Add(-time.Duration(id) * time.Hour)
		progressRepo.rows[progressKey("u1", id)] = &model.UserProgress{UserID: "u1", QuestionID: id, NextReview: &due, Difficulty: model.ReviewHard}
	}

	userID := "u1"
	questions, err := selector.SelectQuestions(3, QuizFilters{Mode: model.ModeReview, UserID: &userID})
	require.NoError(t, err)
	assert.Len(t, questions, 3)
}

func TestSelectQuestions_ReviewModeRequiresUser(t *testing.T) {
	_, _, selector := newSelectorFixture(5)

	_, err := selector.SelectQuestions(10, QuizFilters{Mode: model.ModeReview})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
