package rest

import (
	"time"

	"github.com/philly/spacetraveling/internal/posts/application"
	"github.com/philly/spacetraveling/internal/posts/domain"
)

// timestampLayout matches the CMS metadata format so clients written
// against the CMS read our responses unchanged.
const timestampLayout = "2006-01-02T15:04:05-0700"

// PostsPageResponse is one page of the post list
type PostsPageResponse struct {
	NextPage *string               `json:"next_page"`
	Results  []PostSummaryResponse `json:"results"`
}

// PostSummaryResponse is a list entry
type PostSummaryResponse struct {
	UID                  string      `json:"uid"`
	FirstPublicationDate *string     `json:"first_publication_date"`
	Data                 SummaryData `json:"data"`
}

// SummaryData holds the fields of a list entry
type SummaryData struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Author   string `json:"author"`
}

// PostResponse is a single post with its derived fields
type PostResponse struct {
	ID                   string            `json:"id"`
	UID                  string            `json:"uid"`
	FirstPublicationDate *string           `json:"first_publication_date"`
	ReadingTime          int               `json:"reading_time"`
	Data                 PostData          `json:"data"`
	Previous             *NeighborResponse `json:"previous"`
	Next                 *NeighborResponse `json:"next"`
}

// PostData holds the fields of a post
type PostData struct {
	Title    string            `json:"title"`
	Subtitle string            `json:"subtitle"`
	Author   string            `json:"author"`
	Banner   BannerResponse    `json:"banner"`
	Content  []ContentResponse `json:"content"`
}

// BannerResponse is the post banner image
type BannerResponse struct {
	URL *string `json:"url"`
}

// ContentResponse is one section of a post
type ContentResponse struct {
	Heading string              `json:"heading"`
	Body    []RichTextBlockJSON `json:"body"`
}

// RichTextBlockJSON is a structured-text block
type RichTextBlockJSON struct {
	Type  string     `json:"type"`
	Text  string     `json:"text,omitempty"`
	URL   string     `json:"url,omitempty"`
	Alt   string     `json:"alt,omitempty"`
	Spans []SpanJSON `json:"spans"`
}

// SpanJSON is a markup range of a block
type SpanJSON struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Type  string `json:"type"`
	URL   string `json:"url,omitempty"`
}

// NeighborResponse links to an adjacent post
type NeighborResponse struct {
	UID   string `json:"uid"`
	Title string `json:"title"`
}

func formatTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(timestampLayout)
	return &s
}

func postListToAPI(list *domain.PostList) PostsPageResponse {
	resp := PostsPageResponse{Results: make([]PostSummaryResponse, 0, len(list.Results))}
	if list.HasMore() {
		next := string(list.NextPage)
		resp.NextPage = &next
	}
	for _, p := range list.Results {
		resp.Results = append(resp.Results, PostSummaryResponse{
			UID:                  p.UID,
			FirstPublicationDate: formatTimestamp(p.PublicationDate),
			Data: SummaryData{
				Title:    p.Title,
				Subtitle: p.Subtitle,
				Author:   p.Author,
			},
		})
	}
	return resp
}

func postViewToAPI(view *application.PostView) PostResponse {
	post := view.Post
	resp := PostResponse{
		ID:                   post.ID,
		UID:                  post.UID,
		FirstPublicationDate: formatTimestamp(post.PublicationDate),
		ReadingTime:          view.ReadingTime,
		Data: PostData{
			Title:    post.Title,
			Subtitle: post.Subtitle,
			Author:   post.Author,
			Content:  make([]ContentResponse, 0, len(post.Content)),
		},
		Previous: neighborToAPI(view.Previous),
		Next:     neighborToAPI(view.Next),
	}
	if post.BannerURL != "" {
		resp.Data.Banner.URL = &post.BannerURL
	}

	for _, section := range post.Content {
		body := make([]RichTextBlockJSON, 0, len(section.Body))
		for _, block := range section.Body {
			spans := make([]SpanJSON, 0, len(block.Spans))
			for _, s := range block.Spans {
				spans = append(spans, SpanJSON{Start: s.Start, End: s.End, Type: s.Type, URL: s.URL})
			}
			body = append(body, RichTextBlockJSON{
				Type:  block.Type,
				Text:  block.Text,
				URL:   block.URL,
				Alt:   block.Alt,
				Spans: spans,
			})
		}
		resp.Data.Content = append(resp.Data.Content, ContentResponse{Heading: section.Heading, Body: body})
	}
	return resp
}

func neighborToAPI(n *domain.NeighborPost) *NeighborResponse {
	if n == nil {
		return nil
	}
	return &NeighborResponse{UID: n.UID, Title: n.Title}
}
