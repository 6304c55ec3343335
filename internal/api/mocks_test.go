package api

import (
	"context"

	"github.com/quillfeed/quillfeed-api/internal/domain"
	"github.com/quillfeed/quillfeed-api/internal/store"
)

// MockTopicStore is a mock implementation of store.TopicStore for testing
type MockTopicStore struct {
	GetAllFn      func(ctx context.Context) ([]*domain.Topic, error)
	CheckExistsFn func(ctx context.Context, slug string) error
}

func (m *MockTopicStore) GetAll(ctx context.Context) ([]*domain.Topic, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(ctx)
	}
	return []*domain.Topic{}, nil
}

func (m *MockTopicStore) CheckExists(ctx context.Context, slug string) error {
	if m.CheckExistsFn != nil {
		return m.CheckExistsFn(ctx, slug)
	}
	return nil
}

// MockArticleStore is a mock implementation of store.ArticleStore for testing
type MockArticleStore struct {
	GetAllFn         func(ctx context.Context, filter store.ArticleFilter) ([]*domain.Article, error)
	GetByIDFn        func(ctx context.Context, id int64) (*domain.Article, error)
	CheckExistsFn    func(ctx context.Context, id int64) error
	CreateFn         func(ctx context.Context, article *domain.Article) (int64, error)
	IncrementVotesFn func(ctx context.Context, id int64, delta int64) error
	DeleteFn         func(ctx context.Context, id int64) error
}

func (m *MockArticleStore) GetAll(ctx context.Context, filter store.ArticleFilter) ([]*domain.Article, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(ctx, filter)
	}
	return []*domain.Article{}, nil
}

func (m *MockArticleStore) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrArticleNotFound
}

func (m *MockArticleStore) CheckExists(ctx context.Context, id int64) error {
	if m.CheckExistsFn != nil {
		return m.CheckExistsFn(ctx, id)
	}
	return nil
}

func (m *MockArticleStore) Create(ctx context.Context, article *domain.Article) (int64, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, article)
	}
	return 1, nil
}

func (m *MockArticleStore) IncrementVotes(ctx context.Context, id int64, delta int64) error {
	if m.IncrementVotesFn != nil {
		return m.IncrementVotesFn(ctx, id, delta)
	}
	return nil
}

func (m *MockArticleStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// MockCommentStore is a mock implementation of store.CommentStore for testing
type MockCommentStore struct {
	GetByArticleIDFn func(ctx context.Context, articleID int64) ([]*domain.Comment, error)
	GetByIDFn        func(ctx context.Context, id int64) (*domain.Comment, error)
	CreateFn         func(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	IncrementVotesFn func(ctx context.Context, id int64, delta int64) error
	DeleteFn         func(ctx context.Context, id int64) error
}

func (m *MockCommentStore) GetByArticleID(ctx context.Context, articleID int64) ([]*domain.Comment, error) {
	if m.GetByArticleIDFn != nil {
		return m.GetByArticleIDFn(ctx, articleID)
	}
	return []*domain.Comment{}, nil
}

func (m *MockCommentStore) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrCommentNotFound
}

func (m *MockCommentStore) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, comment)
	}
	return comment, nil
}

func (m *MockCommentStore) IncrementVotes(ctx context.Context, id int64, delta int64) error {
	if m.IncrementVotesFn != nil {
		return m.IncrementVotesFn(ctx, id, delta)
	}
	return nil
}

func (m *MockCommentStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// MockUserStore is a mock implementation of store.UserStore for testing
type MockUserStore struct {
	GetAllFn        func(ctx context.Context) ([]*domain.User, error)
	GetByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
	CheckExistsFn   func(ctx context.Context, username string) error
}

func (m *MockUserStore) GetAll(ctx context.Context) ([]*domain.User, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(ctx)
	}
	return []*domain.User{}, nil
}

func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}
	return nil, store.ErrUserNotFound
}

func (m *MockUserStore) CheckExists(ctx context.Context, username string) error {
	if m.CheckExistsFn != nil {
		return m.CheckExistsFn(ctx, username)
	}
	return nil
}

// Interface conformance checks for the mocks
var (
	_ store.TopicStore   = (*MockTopicStore)(nil)
	_ store.ArticleStore = (*MockArticleStore)(nil)
	_ store.CommentStore = (*MockCommentStore)(nil)
	_ store.UserStore    = (*MockUserStore)(nil)
)
