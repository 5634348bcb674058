package service

import (
	"math/rand"
	"sync"
	"time"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// QuizSelector picks quiz questions the player has not seen yet
type QuizSelector struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewQuizSelector creates a selector. A nil source seeds from the clock.
func NewQuizSelector(src rand.Source) *QuizSelector {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &QuizSelector{rnd: rand.New(src)}
}

// Next returns a uniformly chosen candidate whose ID is not in previous,
// or nil when every candidate has been seen.
func (s *QuizSelector) Next(candidates []*domain.Question, previous []int) *domain.Question {
	seen := make(map[int]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}

	shuffled := make([]*domain.Question, len(candidates))
	copy(shuffled, candidates)

	s.mu.Lock()
	s.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	s.mu.Unlock()

	for _, q := range shuffled {
		if _, ok := seen[q.ID]; !ok {
			return q
		}
	}
	return nil
}
