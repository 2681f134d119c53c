package application_test

import (
	"context"
	"sync"
	"time"

	"github.com/philly/spacetraveling/internal/posts/domain"
	"github.com/philly/spacetraveling/internal/posts/ports"
)

// mockLogger implements the logger.Logger interface for testing
type mockLogger struct {
	mu    sync.Mutex
	warns []string
	errs  []string
}

func (m *mockLogger) Debug(ctx context.Context, msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Info(ctx context.Context, msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warn(ctx context.Context, msg string, keysAndValues ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, msg)
}
func (m *mockLogger) Error(ctx context.Context, msg string, keysAndValues ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs = append(m.errs, msg)
}

// fakeRepository is an in-memory ports.PostRepository
type fakeRepository struct {
	mu sync.Mutex

	list    func(filter ports.ListFilter) (*domain.PostList, error)
	pages   map[domain.Cursor]*domain.PostList
	pageErr error
	posts   map[string]*domain.PostDetail
	findErr error

	filters    []ports.ListFilter
	fetchCalls []domain.Cursor
}

func (f *fakeRepository) ListSummaries(ctx context.Context, filter ports.ListFilter) (*domain.PostList, error) {
	f.mu.Lock()
	f.filters = append(f.filters, filter)
	f.mu.Unlock()
	if f.list == nil {
		return &domain.PostList{}, nil
	}
	return f.list(filter)
}

func (f *fakeRepository) FetchPage(ctx context.Context, cursor domain.Cursor) (*domain.PostList, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetchCalls = append(f.fetchCalls, cursor)
	if f.pageErr != nil {
		return nil, f.pageErr
	}
	page, ok := f.pages[cursor]
	if !ok {
		return nil, ports.ErrInvalidCursor
	}
	return page, nil
}

func (f *fakeRepository) FindByUID(ctx context.Context, uid string, ref string) (*domain.PostDetail, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	post, ok := f.posts[uid]
	if !ok {
		return nil, ports.ErrPostNotFound
	}
	return post, nil
}

func (f *fakeRepository) recordedFilters() []ports.ListFilter {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]ports.ListFilter, len(f.filters))
	copy(out, f.filters)
	return out
}

func date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	return &t
}

func summary(uid string, published *time.Time) domain.PostSummary {
	return domain.PostSummary{
		UID:             uid,
		PublicationDate: published,
		Title:           "Title " + uid,
		Subtitle:        "Subtitle " + uid,
		Author:          "Joseph Oliveira",
	}
}
