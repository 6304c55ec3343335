//go:build integration

package postgres_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillfeed/quillfeed-api/internal/domain"
	"github.com/quillfeed/quillfeed-api/internal/platform/postgres"
	"github.com/quillfeed/quillfeed-api/internal/store"
	"github.com/quillfeed/quillfeed-api/internal/testdb"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestArticleLifecycle(t *testing.T) {
	db := testdb.New(t)
	testdb.Reset(t, db)
	ctx := context.Background()

	log := discardLogger()
	articles := postgres.NewPostgresArticleStore(db, log)
	comments := postgres.NewPostgresCommentStore(db, log)

	article := domain.NewArticle("tickle122", "Integration title", "Integration body", "coding", "")

	id, err := articles.Create(ctx, article)
	require.NoError(t, err)
	require.Positive(t, id)

	t.Run("read_back_with_zero_comment_count", func(t *testing.T) {
		got, err := articles.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Integration title", got.Title)
		assert.Equal(t, domain.DefaultArticleImageURL, got.ArticleImgURL)
		assert.Zero(t, got.Votes)
		assert.Zero(t, got.CommentCount)
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("votes_accumulate_atomically", func(t *testing.T) {
		require.NoError(t, articles.IncrementVotes(ctx, id, 5))
		require.NoError(t, articles.IncrementVotes(ctx, id, -2))

		got, err := articles.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 3, got.Votes)
	})

	t.Run("comment_count_tracks_comments_table", func(t *testing.T) {
		comment, err := domain.NewComment(id, "grumpy19", "nice one")
		require.NoError(t, err)
		_, err = comments.Create(ctx, comment)
		require.NoError(t, err)

		got, err := articles.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 1, got.CommentCount)

		list, err := articles.GetAll(ctx, store.ArticleFilter{
			SortBy: store.ArticleDefaultSortColumn,
			Order:  store.ArticleDefaultSortOrder,
		})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, 1, list[0].CommentCount)
		assert.Empty(t, list[0].Body)
	})

	t.Run("delete_cascades_to_comments", func(t *testing.T) {
		require.NoError(t, articles.Delete(ctx, id))

		_, err := articles.GetByID(ctx, id)
		assert.ErrorIs(t, err, store.ErrArticleNotFound)

		orphans, err := comments.GetByArticleID(ctx, id)
		require.NoError(t, err)
		assert.Empty(t, orphans)
	})
}

func TestCommentLifecycle(t *testing.T) {
	db := testdb.New(t)
	testdb.Reset(t, db)
	ctx := context.Background()

	log := discardLogger()
	articles := postgres.NewPostgresArticleStore(db, log)
	comments := postgres.NewPostgresCommentStore(db, log)

	article := domain.NewArticle("tickle122", "Host article", "Body", "football", "")
	articleID, err := articles.Create(ctx, article)
	require.NoError(t, err)

	comment, err := domain.NewComment(articleID, "happyamy2016", "first!")
	require.NoError(t, err)
	created, err := comments.Create(ctx, comment)
	require.NoError(t, err)
	require.Positive(t, created.ID)
	assert.Zero(t, created.Votes)

	t.Run("votes_accumulate", func(t *testing.T) {
		require.NoError(t, comments.IncrementVotes(ctx, created.ID, 10))

		got, err := comments.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, 10, got.Votes)
	})

	t.Run("unknown_author_is_rejected_by_constraint", func(t *testing.T) {
		bad, err := domain.NewComment(articleID, "nobody", "hello")
		require.NoError(t, err)

		_, err = comments.Create(ctx, bad)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})

	t.Run("second_delete_reports_not_found", func(t *testing.T) {
		require.NoError(t, comments.Delete(ctx, created.ID))
		assert.ErrorIs(t, comments.Delete(ctx, created.ID), store.ErrCommentNotFound)
	})
}

func TestReferenceDataSeeded(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()

	topics := postgres.NewPostgresTopicStore(db, discardLogger())
	users := postgres.NewPostgresUserStore(db, discardLogger())

	allTopics, err := topics.GetAll(ctx)
	require.NoError(t, err)
	slugs := make([]string, 0, len(allTopics))
	for _, topic := range allTopics {
		slugs = append(slugs, topic.Slug)
	}
	assert.Subset(t, slugs, []string{"coding", "cooking", "football"})

	require.NoError(t, users.CheckExists(ctx, "tickle122"))
	assert.ErrorIs(t, users.CheckExists(ctx, "nobody"), store.ErrUserNotFound)
}
