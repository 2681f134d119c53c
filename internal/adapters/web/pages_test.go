package web_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/philly/spacetraveling/internal/adapters/richtext"
	"github.com/philly/spacetraveling/internal/adapters/web"
	"github.com/philly/spacetraveling/internal/posts/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHome_LoadMoreUsesSiteTimeZone(t *testing.T) {
	saoPaulo, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Skip("time zone database unavailable")
	}
	pages, err := web.NewPages(web.Site{Name: "spacetraveling", Location: saoPaulo}, richtext.NewRenderer())
	require.NoError(t, err)

	var buf bytes.Buffer
	err = pages.RenderHome(&buf, &domain.PostList{
		NextPage: "https://repo.cdn.prismic.io/api/v2/documents/search?page=2",
		Results: []domain.PostSummary{
			{UID: "virada", PublicationDate: at("2021-01-01T01:00:00Z"), Title: "Virada", Author: "Ana"},
		},
	}, false)

	require.NoError(t, err)
	body := buf.String()
	assert.Contains(t, body, `data-timezone="America/Sao_Paulo"`)
	assert.Contains(t, body, "31 dez 2020")
}

func TestRenderHome_DefaultsToUTC(t *testing.T) {
	pages, err := web.NewPages(web.Site{Name: "spacetraveling"}, richtext.NewRenderer())
	require.NoError(t, err)

	var buf bytes.Buffer
	err = pages.RenderHome(&buf, &domain.PostList{NextPage: "https://repo.cdn.prismic.io/api/v2/documents/search?page=2"}, false)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `data-timezone="UTC"`)
}
