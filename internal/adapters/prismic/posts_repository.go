package prismic

import (
	"context"
	"errors"
	"fmt"

	"github.com/philly/spacetraveling/internal/posts/domain"
	"github.com/philly/spacetraveling/internal/posts/ports"
)

// PostRepository implements ports.PostRepository and ports.PreviewResolver
// over the Prismic search API
type PostRepository struct {
	client *Client
}

var (
	_ ports.PostRepository  = (*PostRepository)(nil)
	_ ports.PreviewResolver = (*PostRepository)(nil)
	_ ports.HealthChecker   = (*PostRepository)(nil)
)

// NewPostRepository creates a new Prismic posts repository
func NewPostRepository(client *Client) *PostRepository {
	return &PostRepository{client: client}
}

// ListSummaries queries post documents
func (r *PostRepository) ListSummaries(ctx context.Context, filter ports.ListFilter) (*domain.PostList, error) {
	opts := QueryOptions{
		Ref:      filter.Ref,
		Fetch:    filter.Fetch,
		PageSize: filter.PageSize,
		After:    filter.After,
	}
	for _, o := range filter.Orderings {
		opts.Orderings = append(opts.Orderings, Ordering{Field: string(o.Field), Desc: o.Desc})
	}

	resp, err := r.client.Query(ctx, []Predicate{At("document.type", domain.DocumentType)}, opts)
	if err != nil {
		return nil, fmt.Errorf("PostRepository.ListSummaries: %w", err)
	}

	list, err := r.toPostList(resp)
	if err != nil {
		return nil, fmt.Errorf("PostRepository.ListSummaries: %w", err)
	}
	return list, nil
}

// FetchPage follows a next-page cursor
func (r *PostRepository) FetchPage(ctx context.Context, cursor domain.Cursor) (*domain.PostList, error) {
	resp, err := r.client.FetchURL(ctx, string(cursor))
	if err != nil {
		if errors.Is(err, ErrForeignURL) || errors.Is(err, ErrInvalidRef) {
			return nil, fmt.Errorf("PostRepository.FetchPage: %w: %v", ports.ErrInvalidCursor, err)
		}
		return nil, fmt.Errorf("PostRepository.FetchPage: %w", err)
	}

	list, err := r.toPostList(resp)
	if err != nil {
		return nil, fmt.Errorf("PostRepository.FetchPage: %w", err)
	}
	return list, nil
}

// FindByUID retrieves a full post
func (r *PostRepository) FindByUID(ctx context.Context, uid string, ref string) (*domain.PostDetail, error) {
	resp, err := r.client.Query(ctx,
		[]Predicate{At("my."+domain.DocumentType+".uid", uid)},
		QueryOptions{Ref: ref, PageSize: 1},
	)
	if err != nil {
		return nil, fmt.Errorf("PostRepository.FindByUID: %w", err)
	}
	if len(resp.Results) == 0 {
		return nil, ports.ErrPostNotFound
	}

	post, err := toDetail(resp.Results[0])
	if err != nil {
		return nil, fmt.Errorf("PostRepository.FindByUID: %w", err)
	}
	return post, nil
}

// ResolvePreview looks up documentID under the preview ref token
func (r *PostRepository) ResolvePreview(ctx context.Context, token string, documentID string) (*domain.DocumentRef, error) {
	if documentID == "" {
		return nil, nil
	}

	resp, err := r.client.Query(ctx,
		[]Predicate{At("document.id", documentID)},
		QueryOptions{Ref: token, PageSize: 1},
	)
	if err != nil {
		if errors.Is(err, ErrInvalidRef) {
			return nil, fmt.Errorf("PostRepository.ResolvePreview: %w: %v", ports.ErrInvalidPreviewToken, err)
		}
		return nil, fmt.Errorf("PostRepository.ResolvePreview: %w", err)
	}
	if len(resp.Results) == 0 {
		return nil, nil
	}

	doc := resp.Results[0]
	return &domain.DocumentRef{ID: doc.ID, UID: doc.UID, Type: doc.Type}, nil
}

// Ping checks the CMS is reachable
func (r *PostRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx)
}

func (r *PostRepository) toPostList(resp *SearchResponse) (*domain.PostList, error) {
	list := &domain.PostList{Results: make([]domain.PostSummary, 0, len(resp.Results))}
	if resp.NextPage != nil {
		list.NextPage = domain.Cursor(r.client.PublicURL(*resp.NextPage))
	}
	for _, doc := range resp.Results {
		summary, err := toSummary(doc)
		if err != nil {
			return nil, err
		}
		list.Results = append(list.Results, summary)
	}
	return list, nil
}
