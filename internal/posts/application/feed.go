package application

import (
	"context"
	"sync"

	"github.com/philly/spacetraveling/internal/platform/logger"
	"github.com/philly/spacetraveling/internal/posts/domain"
)

// PageLoader follows a pagination cursor. PostsService implements it.
type PageLoader interface {
	LoadMore(ctx context.Context, cursor domain.Cursor) (*domain.PostList, error)
}

var _ PageLoader = (*PostsService)(nil)

// LoadStatus is the outcome of a Feed.LoadMore call
type LoadStatus int

const (
	// LoadOK means a page was fetched and appended
	LoadOK LoadStatus = iota
	// LoadExhausted means there was no cursor left to follow
	LoadExhausted
	// LoadBusy means another load was in flight and this call did nothing
	LoadBusy
	// LoadFailed means the fetch failed and the feed is unchanged
	LoadFailed
)

func (s LoadStatus) String() string {
	switch s {
	case LoadOK:
		return "ok"
	case LoadExhausted:
		return "exhausted"
	case LoadBusy:
		return "busy"
	case LoadFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// LoadResult reports what a load did. Err is set only for LoadFailed.
type LoadResult struct {
	Status LoadStatus
	Added  int
	Err    error
}

// OK reports whether the call left the feed in a consistent, updated state.
func (r LoadResult) OK() bool {
	return r.Status == LoadOK || r.Status == LoadExhausted
}

// Feed is the aggregated post list: every page fetched so far, in fetch
// order, plus the cursor for the next one. Loads are serialized; a call
// made while another is in flight returns LoadBusy without fetching.
type Feed struct {
	loader PageLoader
	logger logger.Logger

	mu      sync.Mutex
	posts   []domain.PostSummary
	next    domain.Cursor
	loading bool
}

// NewFeed starts a feed from an initial page, which may be nil.
func NewFeed(loader PageLoader, logger logger.Logger, initial *domain.PostList) *Feed {
	f := &Feed{loader: loader, logger: logger}
	if initial != nil {
		f.posts = append(f.posts, initial.Results...)
		f.next = initial.NextPage
	}
	return f
}

// Posts returns a copy of the aggregated list.
func (f *Feed) Posts() []domain.PostSummary {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.PostSummary, len(f.posts))
	copy(out, f.posts)
	return out
}

// NextPage returns the cursor the next load will follow.
func (f *Feed) NextPage() domain.Cursor {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.next
}

// HasMore reports whether a cursor is left to follow.
func (f *Feed) HasMore() bool {
	return !f.NextPage().IsEnd()
}

// LoadMore fetches the next page and appends it. On failure the list and
// cursor are left untouched and the error is returned to the caller.
func (f *Feed) LoadMore(ctx context.Context) LoadResult {
	f.mu.Lock()
	if f.loading {
		f.mu.Unlock()
		return LoadResult{Status: LoadBusy}
	}
	if f.next.IsEnd() {
		f.mu.Unlock()
		return LoadResult{Status: LoadExhausted}
	}
	cursor := f.next
	f.loading = true
	f.mu.Unlock()

	list, err := f.loader.LoadMore(ctx, cursor)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.loading = false

	if err != nil {
		f.logger.Warn(ctx, "failed to load more posts", "cursor", string(cursor), "error", err)
		return LoadResult{Status: LoadFailed, Err: err}
	}

	if list == nil {
		f.next = ""
		return LoadResult{Status: LoadExhausted}
	}
	f.posts = append(f.posts, list.Results...)
	f.next = list.NextPage
	return LoadResult{Status: LoadOK, Added: len(list.Results)}
}

// LoadAll keeps loading until the cursor runs out, a load fails, or
// maxPages pages were fetched (maxPages <= 0 means no limit). It returns
// the last result and the total number of posts added.
func (f *Feed) LoadAll(ctx context.Context, maxPages int) (LoadResult, int) {
	added := 0
	for pages := 0; maxPages <= 0 || pages < maxPages; pages++ {
		res := f.LoadMore(ctx)
		if res.Status != LoadOK {
			return res, added
		}
		added += res.Added
	}
	return LoadResult{Status: LoadOK}, added
}
