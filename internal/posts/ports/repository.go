package ports

import (
	"context"
	"errors"

	"github.com/philly/spacetraveling/internal/posts/domain"
)

// Repository errors - these are the canonical errors that repository
// implementations should return. The CMS implementation translates its
// transport-level failures to these where they carry meaning.
var (
	// ErrPostNotFound is returned when no post has the requested UID
	ErrPostNotFound = errors.New("post not found")

	// ErrInvalidCursor is returned when a cursor is not a next-page URL of the configured CMS
	ErrInvalidCursor = errors.New("invalid pagination cursor")

	// ErrInvalidPreviewToken is returned when the CMS rejects a preview ref
	ErrInvalidPreviewToken = errors.New("invalid preview token")
)

// CMS field names of the post custom type.
const (
	FieldUID      = "post.uid"
	FieldTitle    = "post.title"
	FieldSubtitle = "post.subtitle"
	FieldAuthor   = "post.author"
)

// SummaryFields are the fields a list view needs.
var SummaryFields = []string{FieldTitle, FieldSubtitle, FieldAuthor}

// OrderField is a CMS field posts can be ordered by.
type OrderField string

const (
	OrderByFirstPublicationDate OrderField = "document.first_publication_date"
)

// Ordering is a single sort directive.
type Ordering struct {
	Field OrderField
	Desc  bool
}

// ListFilter contains the query options for listing posts
type ListFilter struct {
	// Fetch restricts the returned data fields (empty means all fields)
	Fetch []string

	// PageSize bounds the number of results per page
	PageSize int

	// Ref selects a content version; empty means the published (master) ref
	Ref string

	// After starts the page right after the document with this id
	After string

	// Orderings overrides the CMS default order
	Orderings []Ordering
}

// DefaultListFilter returns the filter used by the home page
func DefaultListFilter() ListFilter {
	return ListFilter{
		Fetch:    SummaryFields,
		PageSize: 20,
	}
}

// PostRepository is the driven port over the headless CMS
type PostRepository interface {
	// ListSummaries queries post documents
	ListSummaries(ctx context.Context, filter ListFilter) (*domain.PostList, error)

	// FetchPage follows a next-page cursor returned by a previous query
	FetchPage(ctx context.Context, cursor domain.Cursor) (*domain.PostList, error)

	// FindByUID retrieves a full post, under ref when it is not empty
	FindByUID(ctx context.Context, uid string, ref string) (*domain.PostDetail, error)
}

// PreviewResolver resolves a preview token and document id to the document
// the editor is previewing.
type PreviewResolver interface {
	// ResolvePreview returns ErrInvalidPreviewToken when the CMS rejects the
	// token, and a nil document when the document cannot be found.
	ResolvePreview(ctx context.Context, token string, documentID string) (*domain.DocumentRef, error)
}

// HealthChecker reports whether the CMS is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
