package prismic

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/philly/spacetraveling/internal/posts/domain"
)

// publicationDateLayout is the timestamp format of document metadata.
const publicationDateLayout = "2006-01-02T15:04:05-0700"

type postData struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Author   string `json:"author"`
	Banner   struct {
		URL string `json:"url"`
		Alt string `json:"alt"`
	} `json:"banner"`
	Content []struct {
		Heading string          `json:"heading"`
		Body    []richTextBlock `json:"body"`
	} `json:"content"`
}

type richTextBlock struct {
	Type   string `json:"type"`
	Text   string `json:"text"`
	URL    string `json:"url"`
	Alt    string `json:"alt"`
	Spans  []span `json:"spans"`
	OEmbed *struct {
		EmbedURL string `json:"embed_url"`
	} `json:"oembed"`
}

type span struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Type  string `json:"type"`
	Data  *struct {
		URL string `json:"url"`
	} `json:"data"`
}

// parsePublicationDate accepts the API's "+0000" offsets as well as RFC 3339.
func parsePublicationDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse(publicationDateLayout, *raw)
	if err != nil {
		var rfcErr error
		if t, rfcErr = time.Parse(time.RFC3339, *raw); rfcErr != nil {
			return nil, fmt.Errorf("parse publication date %q: %w", *raw, err)
		}
	}
	return &t, nil
}

func decodeData(doc Document) (postData, error) {
	var data postData
	if len(doc.Data) == 0 || string(doc.Data) == "null" {
		return data, nil
	}
	if err := json.Unmarshal(doc.Data, &data); err != nil {
		return data, fmt.Errorf("decode document %s data: %w", doc.ID, err)
	}
	return data, nil
}

func toSummary(doc Document) (domain.PostSummary, error) {
	data, err := decodeData(doc)
	if err != nil {
		return domain.PostSummary{}, err
	}
	published, err := parsePublicationDate(doc.FirstPublicationDate)
	if err != nil {
		return domain.PostSummary{}, err
	}
	return domain.PostSummary{
		UID:             doc.UID,
		PublicationDate: published,
		Title:           data.Title,
		Subtitle:        data.Subtitle,
		Author:          data.Author,
	}, nil
}

func toDetail(doc Document) (*domain.PostDetail, error) {
	data, err := decodeData(doc)
	if err != nil {
		return nil, err
	}
	published, err := parsePublicationDate(doc.FirstPublicationDate)
	if err != nil {
		return nil, err
	}

	content := make([]domain.ContentBlock, 0, len(data.Content))
	for _, section := range data.Content {
		content = append(content, domain.ContentBlock{
			Heading: section.Heading,
			Body:    toRichText(section.Body),
		})
	}

	return &domain.PostDetail{
		PostSummary: domain.PostSummary{
			UID:             doc.UID,
			PublicationDate: published,
			Title:           data.Title,
			Subtitle:        data.Subtitle,
			Author:          data.Author,
		},
		ID:        doc.ID,
		BannerURL: data.Banner.URL,
		Content:   content,
	}, nil
}

func toRichText(blocks []richTextBlock) domain.RichText {
	rt := make(domain.RichText, 0, len(blocks))
	for _, b := range blocks {
		block := domain.RichTextBlock{
			Type: b.Type,
			Text: b.Text,
			URL:  b.URL,
			Alt:  b.Alt,
		}
		if b.Type == domain.BlockEmbed && b.OEmbed != nil {
			block.URL = b.OEmbed.EmbedURL
		}
		for _, s := range b.Spans {
			sp := domain.Span{Start: s.Start, End: s.End, Type: s.Type}
			if s.Data != nil {
				sp.URL = s.Data.URL
			}
			block.Spans = append(block.Spans, sp)
		}
		rt = append(rt, block)
	}
	return rt
}
