package sqlite

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/zizouhuweidi/trivia/internal/database"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := database.ConnectSQLite(dsn, Models()...)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, SeedCategories(context.Background(), db, DefaultCategories))
	return db
}

func createQuestions(t *testing.T, repo *QuestionRepository, questions ...*domain.Question) {
	t.Helper()
	for _, q := range questions {
		require.NoError(t, repo.Create(context.Background(), q))
	}
}

func TestQuestionRepositoryCreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewQuestionRepository(openTestDB(t))

	q := &domain.Question{Question: "What is the title of the 1990 fantasy film?", Answer: "Edward Scissorhands", Category: 5, Difficulty: 3}
	require.NoError(t, repo.Create(ctx, q))
	assert.NotZero(t, q.ID)

	got, err := repo.GetByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, q, got)

	_, err = repo.GetByID(ctx, q.ID+100)
	assert.ErrorIs(t, err, domain.ErrQuestionNotFound)
}

func TestQuestionRepositoryListOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewQuestionRepository(openTestDB(t))

	createQuestions(t, repo,
		&domain.Question{Question: "a", Answer: "a", Category: 1, Difficulty: 1},
		&domain.Question{Question: "b", Answer: "b", Category: 2, Difficulty: 1},
		&domain.Question{Question: "c", Answer: "c", Category: 1, Difficulty: 1},
	)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].ID, all[i].ID)
	}

	science, err := repo.ListByCategory(ctx, 1)
	require.NoError(t, err)
	require.Len(t, science, 2)
	for _, q := range science {
		assert.Equal(t, 1, q.Category)
	}

	none, err := repo.ListByCategory(ctx, 6)
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.NotNil(t, none)
}

func TestQuestionRepositorySearch(t *testing.T) {
	ctx := context.Background()
	repo := NewQuestionRepository(openTestDB(t))

	createQuestions(t, repo,
		&domain.Question{Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", Category: 4, Difficulty: 2},
		&domain.Question{Question: "What movie earned Tom Hanks his third straight Oscar nomination?", Answer: "Apollo 13", Category: 5, Difficulty: 4},
		&domain.Question{Question: "Is 100% of the moon visible?", Answer: "title", Category: 1, Difficulty: 1},
	)

	got, err := repo.Search(ctx, "TITLE")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Question, "entitled")

	got, err = repo.Search(ctx, "100%")
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = repo.Search(ctx, "%")
	require.NoError(t, err)
	assert.Len(t, got, 1, "wildcards must match literally")

	got, err = repo.Search(ctx, "ÉCOLE")
	require.NoError(t, err)
	assert.Empty(t, got)

	createQuestions(t, repo, &domain.Question{Question: "Quelle est la plus vieille école de Paris?", Answer: "La Sorbonne", Category: 4, Difficulty: 3})
	got, err = repo.Search(ctx, "ÉCOLE")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Question, "école")

	got, err = repo.Search(ctx, "apollo")
	require.NoError(t, err)
	assert.Empty(t, got, "answers are not searched")
}

func TestQuestionRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewQuestionRepository(openTestDB(t))

	q := &domain.Question{Question: "q", Answer: "a", Category: 1, Difficulty: 1}
	createQuestions(t, repo, q)

	require.NoError(t, repo.Delete(ctx, q.ID))
	_, err := repo.GetByID(ctx, q.ID)
	assert.ErrorIs(t, err, domain.ErrQuestionNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, q.ID), domain.ErrQuestionNotFound)
}

func TestCategoryRepository(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewCategoryRepository(db)

	categories, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, categories, len(DefaultCategories))
	assert.Equal(t, "Science", categories[0].Type)

	art, err := repo.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, &domain.Category{ID: 2, Type: "Art"}, art)

	_, err = repo.GetByID(ctx, 1000)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	// seeding twice keeps existing rows
	require.NoError(t, SeedCategories(ctx, db, []domain.Category{{ID: 1, Type: "Physics"}}))
	science, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Science", science.Type)
}
