package domain_test

import (
	"strings"
	"testing"

	"github.com/philly/spacetraveling/internal/posts/domain"
	"github.com/stretchr/testify/assert"
)

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("palavra ", n))
}

func TestEstimateReadingTime_Boundaries(t *testing.T) {
	tests := []struct {
		name  string
		words int
		want  int
	}{
		{name: "no words", words: 0, want: 0},
		{name: "one word", words: 1, want: 1},
		{name: "exactly one minute", words: 200, want: 1},
		{name: "just over one minute", words: 201, want: 2},
		{name: "exactly two minutes", words: 400, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := []domain.ContentBlock{
				{Body: domain.RichText{{Type: domain.BlockParagraph, Text: words(tt.words)}}},
			}
			assert.Equal(t, tt.want, domain.EstimateReadingTime(content))
		})
	}
}

func TestEstimateReadingTime_EmptyContent(t *testing.T) {
	assert.Equal(t, 0, domain.EstimateReadingTime(nil))
	assert.Equal(t, 0, domain.EstimateReadingTime([]domain.ContentBlock{{}}))
}

func TestEstimateReadingTime_CountsHeadingsAndAllBlocks(t *testing.T) {
	content := []domain.ContentBlock{
		{
			Heading: "Proin et varius",
			Body: domain.RichText{
				{Type: domain.BlockParagraph, Text: words(100)},
				{Type: domain.BlockListItem, Text: "item   um"},
			},
		},
		{
			Heading: "Cras laoreet mi",
			Body: domain.RichText{
				{Type: domain.BlockImage, URL: "https://images.example/banner.png"},
				{Type: domain.BlockParagraph, Text: words(93)},
			},
		},
	}

	// 3 + 100 + 2 + 3 + 93 = 201 words
	assert.Equal(t, 2, domain.EstimateReadingTime(content))
}

func TestCountWords(t *testing.T) {
	assert.Equal(t, 0, domain.CountWords(""))
	assert.Equal(t, 0, domain.CountWords(" \n\t "))
	assert.Equal(t, 3, domain.CountWords(" um\tdois\ntrês "))
}

func TestRichText_PlainText(t *testing.T) {
	rt := domain.RichText{
		{Type: domain.BlockHeading2, Text: "Título"},
		{Type: domain.BlockImage, URL: "https://images.example/a.png"},
		{Type: domain.BlockParagraph, Text: "Corpo do texto."},
	}
	assert.Equal(t, "Título Corpo do texto.", rt.PlainText())
	assert.Equal(t, "", domain.RichText(nil).PlainText())
}
