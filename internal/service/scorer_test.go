package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreSelection_SingleCorrectAnswer(t *testing.T) {
	q := makeQuestion(1, 100, 4, 2)

	assert.True(t, ScoreSelection(&q, []uint{102}))
	assert.False(t, ScoreSelection(&q, []uint{101}))
	assert.False(t, ScoreSelection(&q, []uint{103}))
}

func TestScoreSelection_MultiSelectExactMatch(t *testing.T) {
	q := makeQuestion(1, 100, 4, 1, 3)

	assert.True(t, ScoreSelection(&q, []uint{101, 103}))
	// Order never matters.
	assert.True(t, ScoreSelection(&q, []uint{103, 101}))
}

func TestScoreSelection_SupersetIsIncorrect(t *testing.T) {
	q := makeQuestion(1, 100, 4, 1, 3)

	assert.False(t, ScoreSelection(&q, []uint{101, 103, 102}))
	assert.False(t, ScoreSelection(&q, []uint{101, 102, 103, 104}))
}

func TestScoreSelection_ProperSubsetIsIncorrect(t *testing.T) {
	q := makeQuestion(1, 100, 4, 1, 3)

	assert.False(t, ScoreSelection(&q, []uint{101}))
	assert.False(t, ScoreSelection(&q, []uint{103}))
	assert.False(t, ScoreSelection(&q, nil))
}

func TestScoreSelection_UnknownIDsAreWrongSelections(t *testing.T) {
	q := makeQuestion(1, 100, 4, 1)

	// A stale answer id not on the question fails the no-extra rule rather
	// than erroring.
	assert.False(t, ScoreSelection(&q, []uint{101, 999}))
	assert.False(t, ScoreSelection(&q, []uint{999}))
}

func TestScoreSelection_DuplicateSelectionsCollapse(t *testing.T) {
	q := makeQuestion(1, 100, 4, 1)

	assert.True(t, ScoreSelection(&q, []uint{101, 101}))
}
