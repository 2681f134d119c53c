package domain

import (
	"time"
)

// DocumentType is the CMS custom type of blog posts.
const DocumentType = "post"

// Cursor identifies the next batch of a paginated CMS query. It is the
// next_page URL returned by the CMS; empty means there are no more pages.
type Cursor string

// IsEnd reports whether the cursor is the terminal (empty) state.
func (c Cursor) IsEnd() bool {
	return c == ""
}

// PostSummary is the projection of a post used by list views.
type PostSummary struct {
	UID string
	// PublicationDate is nil for content only visible through a preview ref.
	PublicationDate *time.Time
	Title           string
	Subtitle        string
	Author          string
}

// IsPublished reports whether the post has a first publication date.
func (p PostSummary) IsPublished() bool {
	return p.PublicationDate != nil
}

// PostDetail is a full post as rendered on its own page.
type PostDetail struct {
	PostSummary
	ID        string // CMS document id, needed for cursoring neighbor queries
	BannerURL string
	Content   []ContentBlock
}

// ContentBlock is one section of a post: an optional heading followed by
// a rich-text body.
type ContentBlock struct {
	Heading string
	Body    RichText
}

// PostList is one page of post summaries plus the cursor for the next one.
type PostList struct {
	NextPage Cursor
	Results  []PostSummary
}

// HasMore reports whether another page can be requested.
func (l *PostList) HasMore() bool {
	return l != nil && !l.NextPage.IsEnd()
}

// NeighborPost is the chronologically adjacent published post.
type NeighborPost struct {
	UID   string
	Title string
}
