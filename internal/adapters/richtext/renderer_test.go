package richtext_test

import (
	"strings"
	"testing"

	"github.com/philly/spacetraveling/internal/adapters/richtext"
	"github.com/philly/spacetraveling/internal/posts/domain"
	"github.com/stretchr/testify/assert"
)

func TestAsHTML(t *testing.T) {
	r := richtext.NewRenderer()

	tests := []struct {
		name string
		in   domain.RichText
		want string
	}{
		{
			name: "paragraph with escaping",
			in:   domain.RichText{{Type: domain.BlockParagraph, Text: "a < b & c"}},
			want: "<p>a &lt; b &amp; c</p>",
		},
		{
			name: "heading",
			in:   domain.RichText{{Type: domain.BlockHeading2, Text: "Title"}},
			want: "<h2>Title</h2>",
		},
		{
			name: "spans on accented text",
			in: domain.RichText{{
				Type:  domain.BlockParagraph,
				Text:  "Olá mundo",
				Spans: []domain.Span{{Start: 0, End: 3, Type: domain.SpanStrong}},
			}},
			want: "<p><strong>Olá</strong> mundo</p>",
		},
		{
			name: "nested spans",
			in: domain.RichText{{
				Type: domain.BlockParagraph,
				Text: "abcdef",
				Spans: []domain.Span{
					{Start: 0, End: 6, Type: domain.SpanStrong},
					{Start: 2, End: 4, Type: domain.SpanEm},
				},
			}},
			want: "<p><strong>ab<em>cd</em>ef</strong></p>",
		},
		{
			name: "overlapping spans stay well formed",
			in: domain.RichText{{
				Type: domain.BlockParagraph,
				Text: "abcd",
				Spans: []domain.Span{
					{Start: 0, End: 3, Type: domain.SpanStrong},
					{Start: 2, End: 4, Type: domain.SpanEm},
				},
			}},
			want: "<p><strong>ab<em>c</em></strong><em>d</em></p>",
		},
		{
			name: "inner span outlives outer",
			in: domain.RichText{{
				Type: domain.BlockParagraph,
				Text: "abcd",
				Spans: []domain.Span{
					{Start: 1, End: 3, Type: domain.SpanStrong},
					{Start: 0, End: 2, Type: domain.SpanEm},
				},
			}},
			want: "<p><em>a<strong>b</strong></em><strong>c</strong>d</p>",
		},
		{
			name: "offsets count UTF-16 code units",
			in: domain.RichText{{
				Type:  domain.BlockParagraph,
				Text:  "🚀 go",
				Spans: []domain.Span{{Start: 3, End: 5, Type: domain.SpanStrong}},
			}},
			want: "<p>🚀 <strong>go</strong></p>",
		},
		{
			name: "span splitting a surrogate pair ignored",
			in: domain.RichText{{
				Type:  domain.BlockParagraph,
				Text:  "🚀 go",
				Spans: []domain.Span{{Start: 1, End: 4, Type: domain.SpanStrong}},
			}},
			want: "<p>🚀 go</p>",
		},
		{
			name: "grouped lists",
			in: domain.RichText{
				{Type: domain.BlockListItem, Text: "one"},
				{Type: domain.BlockListItem, Text: "two"},
				{Type: domain.BlockOListItem, Text: "first"},
				{Type: domain.BlockParagraph, Text: "end"},
			},
			want: "<ul><li>one</li><li>two</li></ul><ol><li>first</li></ol><p>end</p>",
		},
		{
			name: "out of range span ignored",
			in: domain.RichText{{
				Type:  domain.BlockParagraph,
				Text:  "abc",
				Spans: []domain.Span{{Start: 1, End: 10, Type: domain.SpanStrong}},
			}},
			want: "<p>abc</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(r.AsHTML(tt.in)))
		})
	}
}

func TestAsHTML_Hyperlink(t *testing.T) {
	r := richtext.NewRenderer()

	out := string(r.AsHTML(domain.RichText{{
		Type:  domain.BlockParagraph,
		Text:  "see docs",
		Spans: []domain.Span{{Start: 4, End: 8, Type: domain.SpanHyperlink, URL: "https://example.com/docs"}},
	}}))

	assert.Contains(t, out, `href="https://example.com/docs"`)
	assert.Contains(t, out, ">docs</a>")
}

func TestAsHTML_SanitizesUnsafeURLs(t *testing.T) {
	r := richtext.NewRenderer()

	out := string(r.AsHTML(domain.RichText{{
		Type:  domain.BlockParagraph,
		Text:  "click",
		Spans: []domain.Span{{Start: 0, End: 5, Type: domain.SpanHyperlink, URL: "javascript:alert(1)"}},
	}}))

	assert.False(t, strings.Contains(out, "javascript:"), out)
	assert.Contains(t, out, "click")
}

func TestAsHTML_ImageAndEmbed(t *testing.T) {
	r := richtext.NewRenderer()

	out := string(r.AsHTML(domain.RichText{
		{Type: domain.BlockImage, URL: "https://images.prismic.io/a.png", Alt: "rocket"},
		{Type: domain.BlockEmbed, URL: "https://youtu.be/x"},
	}))

	assert.Contains(t, out, `src="https://images.prismic.io/a.png"`)
	assert.Contains(t, out, `alt="rocket"`)
	assert.Contains(t, out, `href="https://youtu.be/x"`)
}
