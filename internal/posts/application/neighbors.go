package application

import (
	"context"

	"github.com/philly/spacetraveling/internal/posts/domain"
	"github.com/philly/spacetraveling/internal/posts/ports"
	"golang.org/x/sync/errgroup"
)

// FindNeighbors returns the next-older (previous) and next-newer (next)
// published posts relative to post. Either may be nil. A post without a
// publication date has no neighbors.
func (s *PostsService) FindNeighbors(ctx context.Context, post *domain.PostDetail, ref string) (previous, next *domain.NeighborPost, err error) {
	if post == nil || !post.IsPublished() || post.ID == "" {
		return nil, nil, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		previous, err = s.findNeighbor(gctx, post.ID, ref, true)
		return err
	})
	g.Go(func() error {
		var err error
		next, err = s.findNeighbor(gctx, post.ID, ref, false)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, s.mapError(ctx, err, "failed to resolve neighbor posts", "post_id", post.ID)
	}
	return previous, next, nil
}

// neighborScanSize bounds how many candidates a preview lookup inspects.
// Preview refs surface drafts, which sit among the published posts.
const neighborScanSize = 10

// findNeighbor takes the first published post after id in publication
// order: descending order yields the older post, ascending the newer one.
func (s *PostsService) findNeighbor(ctx context.Context, id string, ref string, older bool) (*domain.NeighborPost, error) {
	pageSize := 1
	if ref != "" {
		pageSize = neighborScanSize
	}
	filter := ports.ListFilter{
		Fetch:    []string{ports.FieldTitle},
		PageSize: pageSize,
		Ref:      ref,
		After:    id,
		Orderings: []ports.Ordering{
			{Field: ports.OrderByFirstPublicationDate, Desc: older},
		},
	}

	list, err := s.repo.ListSummaries(ctx, filter)
	if err != nil {
		return nil, err
	}
	for _, candidate := range list.Results {
		if candidate.IsPublished() {
			return &domain.NeighborPost{UID: candidate.UID, Title: candidate.Title}, nil
		}
	}
	return nil, nil
}
