package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/varela/foro-api/internal/domain"
	"github.com/varela/foro-api/internal/repository/postgres"
	"github.com/varela/foro-api/internal/testutil"
)

func TestTopicRepository_GetByID(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewTopicRepository(testDB.DB)
	ctx := context.Background()

	topic := testutil.NewTopicBuilder().
		WithTitle("preload topic").
		Build(t, testDB.DB)

	answer := &domain.Answer{
		ID:        uuid.New(),
		Message:   "an answer",
		TopicID:   topic.ID,
		AuthorID:  topic.AuthorID,
		CreatedAt: time.Now(),
	}
	require.NoError(t, testDB.DB.Create(answer).Error)

	got, err := repo.GetByID(ctx, topic.ID)
	require.NoError(t, err)
	assert.Equal(t, "preload topic", got.Title)

	// Associations are preloaded
	require.NotNil(t, got.Author)
	assert.Equal(t, topic.Author.Name, got.Author.Name)
	require.NotNil(t, got.Course)
	assert.Equal(t, topic.Course.Name, got.Course.Name)
	require.Len(t, got.Answers, 1)
	assert.Equal(t, "an answer", got.Answers[0].Message)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.Error(t, err)
}

func TestTopicRepository_ExistsByTitleAndMessage(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewTopicRepository(testDB.DB)
	ctx := context.Background()

	topic := testutil.NewTopicBuilder().
		WithTitle("unique title").
		WithMessage("unique message").
		Build(t, testDB.DB)

	exists, err := repo.ExistsByTitleAndMessage(ctx, topic.Title, topic.Message)
	require.NoError(t, err)
	assert.True(t, exists)

	// Same title, different message is allowed
	exists, err = repo.ExistsByTitleAndMessage(ctx, topic.Title, "another message")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTopicRepository_List(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewTopicRepository(testDB.DB)
	ctx := context.Background()

	author, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	course := testutil.NewCourseBuilder().Build(t, testDB.DB)
	for i := 0; i < 4; i++ {
		testutil.NewTopicBuilder().
			WithAuthor(author).
			WithCourse(course).
			Build(t, testDB.DB)
	}

	topics, total, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	require.Len(t, topics, 4)

	// Listings carry author and course for the response mapping
	for _, topic := range topics {
		require.NotNil(t, topic.Author)
		require.NotNil(t, topic.Course)
	}
}
