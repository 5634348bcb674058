package service

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

func questionsWithIDs(ids ...int) []*domain.Question {
	questions := make([]*domain.Question, 0, len(ids))
	for _, id := range ids {
		questions = append(questions, &domain.Question{ID: id, Question: "q", Answer: "a", Category: 1, Difficulty: 1})
	}
	return questions
}

func TestQuizSelectorSkipsPreviousQuestions(t *testing.T) {
	selector := NewQuizSelector(rand.NewSource(1))
	candidates := questionsWithIDs(1, 2, 3, 4)

	for i := 0; i < 50; i++ {
		q := selector.Next(candidates, []int{1, 2, 4})
		require.NotNil(t, q)
		assert.Equal(t, 3, q.ID)
	}
}

func TestQuizSelectorExhaustion(t *testing.T) {
	selector := NewQuizSelector(rand.NewSource(1))

	assert.Nil(t, selector.Next(questionsWithIDs(1, 2), []int{2, 1}))
	assert.Nil(t, selector.Next(nil, nil), "empty candidate set is exhausted")
	assert.Nil(t, selector.Next([]*domain.Question{}, []int{7}))
}

func TestQuizSelectorIgnoresUnknownPreviousIDs(t *testing.T) {
	selector := NewQuizSelector(rand.NewSource(1))
	q := selector.Next(questionsWithIDs(5), []int{1, 2, 3})
	require.NotNil(t, q)
	assert.Equal(t, 5, q.ID)
}

func TestQuizSelectorCoversAllUnseen(t *testing.T) {
	selector := NewQuizSelector(rand.NewSource(42))
	candidates := questionsWithIDs(1, 2, 3, 4, 5)

	seen := map[int]int{}
	for i := 0; i < 500; i++ {
		q := selector.Next(candidates, []int{1})
		require.NotNil(t, q)
		seen[q.ID]++
	}

	assert.NotContains(t, seen, 1)
	for _, id := range []int{2, 3, 4, 5} {
		assert.Greater(t, seen[id], 50, "question %d drawn too rarely", id)
	}
}

func TestQuizSelectorDoesNotReorderCandidates(t *testing.T) {
	selector := NewQuizSelector(rand.NewSource(3))
	candidates := questionsWithIDs(1, 2, 3)
	selector.Next(candidates, nil)

	assert.Equal(t, []int{1, 2, 3}, []int{candidates[0].ID, candidates[1].ID, candidates[2].ID})
}
