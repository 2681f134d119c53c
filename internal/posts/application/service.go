package application

import (
	"context"
	"errors"
	"net/http"

	"github.com/philly/spacetraveling/internal/platform/apperror"
	"github.com/philly/spacetraveling/internal/platform/logger"
	"github.com/philly/spacetraveling/internal/posts/domain"
	"github.com/philly/spacetraveling/internal/posts/ports"
)

// Page size bounds for list queries
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Error definitions for service operations
var (
	ErrPostNotFound = apperror.New(
		apperror.CodeNotFound,
		apperror.BusinessCodePostNotFound,
		"post not found",
		http.StatusNotFound,
	)

	ErrInvalidCursor = apperror.New(
		apperror.CodeValidationFailed,
		apperror.BusinessCodeInvalidCursor,
		"invalid pagination cursor",
		http.StatusBadRequest,
	)

	ErrCMSUnavailable = apperror.New(
		apperror.CodeUpstream,
		apperror.BusinessCodeCMSUnavailable,
		"content service unavailable",
		http.StatusBadGateway,
	)
)

// PostsService answers every read the site makes against the CMS
type PostsService struct {
	repo   ports.PostRepository
	logger logger.Logger
}

// NewPostsService creates a new posts service
func NewPostsService(repo ports.PostRepository, logger logger.Logger) *PostsService {
	return &PostsService{
		repo:   repo,
		logger: logger,
	}
}

// PostView is everything a post page shows
type PostView struct {
	Post        *domain.PostDetail
	ReadingTime int
	Previous    *domain.NeighborPost
	Next        *domain.NeighborPost
}

// LoadInitial fetches the first page of post summaries under ref.
func (s *PostsService) LoadInitial(ctx context.Context, pageSize int, ref string) (*domain.PostList, error) {
	filter := ports.DefaultListFilter()
	filter.PageSize = ClampPageSize(pageSize)
	filter.Ref = ref

	list, err := s.repo.ListSummaries(ctx, filter)
	if err != nil {
		return nil, s.mapError(ctx, err, "failed to list posts", "page_size", filter.PageSize)
	}

	s.logger.Debug(ctx, "loaded initial posts page",
		"count", len(list.Results),
		"has_more", list.HasMore(),
		"preview", ref != "",
	)
	return list, nil
}

// LoadMore follows cursor. An empty cursor is the terminal state and
// returns an empty page without touching the CMS.
func (s *PostsService) LoadMore(ctx context.Context, cursor domain.Cursor) (*domain.PostList, error) {
	if cursor.IsEnd() {
		return &domain.PostList{}, nil
	}

	list, err := s.repo.FetchPage(ctx, cursor)
	if err != nil {
		return nil, s.mapError(ctx, err, "failed to load next posts page", "cursor", string(cursor))
	}

	s.logger.Debug(ctx, "loaded next posts page", "count", len(list.Results), "has_more", list.HasMore())
	return list, nil
}

// GetPost retrieves a post by UID
func (s *PostsService) GetPost(ctx context.Context, uid string, ref string) (*domain.PostDetail, error) {
	post, err := s.repo.FindByUID(ctx, uid, ref)
	if err != nil {
		return nil, s.mapError(ctx, err, "failed to retrieve post", "uid", uid)
	}
	return post, nil
}

// GetPostView retrieves a post together with its reading time and neighbors
func (s *PostsService) GetPostView(ctx context.Context, uid string, ref string) (*PostView, error) {
	post, err := s.GetPost(ctx, uid, ref)
	if err != nil {
		return nil, err
	}

	previous, next, err := s.FindNeighbors(ctx, post, ref)
	if err != nil {
		return nil, err
	}

	return &PostView{
		Post:        post,
		ReadingTime: domain.EstimateReadingTime(post.Content),
		Previous:    previous,
		Next:        next,
	}, nil
}

// StaticPaths returns the UIDs of the limit most recent posts, the pages
// generated ahead of time. Everything else is generated on request.
// A limit of zero or less pre-renders no post.
func (s *PostsService) StaticPaths(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}

	filter := ports.ListFilter{
		Fetch:    []string{ports.FieldUID},
		PageSize: ClampPageSize(limit),
		Orderings: []ports.Ordering{
			{Field: ports.OrderByFirstPublicationDate, Desc: true},
		},
	}

	list, err := s.repo.ListSummaries(ctx, filter)
	if err != nil {
		return nil, s.mapError(ctx, err, "failed to list static paths", "limit", limit)
	}

	uids := make([]string, 0, len(list.Results))
	for _, post := range list.Results {
		uids = append(uids, post.UID)
	}
	return uids, nil
}

// ClampPageSize bounds a requested page size to [1, MaxPageSize]; zero or
// negative values select the default.
func ClampPageSize(pageSize int) int {
	switch {
	case pageSize <= 0:
		return DefaultPageSize
	case pageSize > MaxPageSize:
		return MaxPageSize
	default:
		return pageSize
	}
}

// Private helper methods

// mapError translates repository errors into application errors and logs
// the unexpected ones.
func (s *PostsService) mapError(ctx context.Context, err error, msg string, args ...any) error {
	switch {
	case errors.Is(err, ports.ErrPostNotFound):
		return ErrPostNotFound
	case errors.Is(err, ports.ErrInvalidCursor):
		return ErrInvalidCursor.WithDetails(err.Error())
	case errors.Is(err, context.Canceled):
		return err
	}

	s.logger.Error(ctx, msg, append(args, "error", err)...)
	return ErrCMSUnavailable.WithInner(err)
}
