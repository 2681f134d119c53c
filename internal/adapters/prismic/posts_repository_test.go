package prismic_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/philly/spacetraveling/internal/adapters/prismic"
	"github.com/philly/spacetraveling/internal/posts/domain"
	"github.com/philly/spacetraveling/internal/posts/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postDocument(id, uid, published string) map[string]any {
	doc := map[string]any{
		"id":   id,
		"uid":  uid,
		"type": "post",
		"data": map[string]any{
			"title":    "Title " + uid,
			"subtitle": "Subtitle " + uid,
			"author":   "Joseph Oliveira",
			"banner":   map[string]any{"url": "https://images.prismic.io/" + uid + ".png"},
			"content": []any{
				map[string]any{
					"heading": "Intro",
					"body": []any{
						map[string]any{
							"type": "paragraph",
							"text": "Hello world",
							"spans": []any{
								map[string]any{"start": 0, "end": 5, "type": "strong"},
								map[string]any{"start": 6, "end": 11, "type": "hyperlink", "data": map[string]any{"link_type": "Web", "url": "https://example.com"}},
							},
						},
						map[string]any{"type": "embed", "oembed": map[string]any{"embed_url": "https://youtu.be/x"}},
					},
				},
			},
		},
	}
	if published != "" {
		doc["first_publication_date"] = published
	} else {
		doc["first_publication_date"] = nil
	}
	return doc
}

func newRepository(t *testing.T, cms *fakeCMS) *prismic.PostRepository {
	return prismic.NewPostRepository(newClient(t, cms, "secret"))
}

func TestListSummaries(t *testing.T) {
	cms := newFakeCMS(t)
	cms.search = func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"page":      1,
			"next_page": cms.endpoint() + "/documents/search?ref=" + masterRef + "&page=2&pageSize=2&access_token=secret",
			"results": []any{
				postDocument("D1", "como-utilizar-hooks", "2021-03-15T19:25:28+0000"),
				postDocument("D2", "draft", ""),
			},
		})
	}
	repo := newRepository(t, cms)

	list, err := repo.ListSummaries(context.Background(), ports.ListFilter{
		Fetch:    ports.SummaryFields,
		PageSize: 2,
	})
	require.NoError(t, err)

	require.Len(t, list.Results, 2)
	first := list.Results[0]
	assert.Equal(t, "como-utilizar-hooks", first.UID)
	assert.Equal(t, "Title como-utilizar-hooks", first.Title)
	assert.Equal(t, "Joseph Oliveira", first.Author)
	require.NotNil(t, first.PublicationDate)
	assert.True(t, first.PublicationDate.Equal(time.Date(2021, 3, 15, 19, 25, 28, 0, time.UTC)))
	assert.Nil(t, list.Results[1].PublicationDate)

	assert.True(t, list.HasMore())
	assert.NotContains(t, string(list.NextPage), "access_token")

	q := cms.lastSearch(t).URL.Query()
	assert.Equal(t, `[[at(document.type,"post")]]`, q.Get("q"))
	assert.Equal(t, "post.title,post.subtitle,post.author", q.Get("fetch"))
}

func TestListSummaries_LastPageHasNoCursor(t *testing.T) {
	cms := newFakeCMS(t)
	repo := newRepository(t, cms)

	list, err := repo.ListSummaries(context.Background(), ports.DefaultListFilter())

	require.NoError(t, err)
	assert.Empty(t, list.Results)
	assert.False(t, list.HasMore())
}

func TestFetchPage(t *testing.T) {
	cms := newFakeCMS(t)
	cms.search = func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"next_page": nil,
			"results":   []any{postDocument("D3", "third", "2021-03-10T10:00:00+0000")},
		})
	}
	repo := newRepository(t, cms)

	t.Run("own cursor", func(t *testing.T) {
		list, err := repo.FetchPage(context.Background(), domain.Cursor(cms.endpoint()+"/documents/search?ref=r&page=2"))
		require.NoError(t, err)
		require.Len(t, list.Results, 1)
		assert.Equal(t, "third", list.Results[0].UID)
		assert.False(t, list.HasMore())
	})

	t.Run("foreign cursor", func(t *testing.T) {
		_, err := repo.FetchPage(context.Background(), "https://attacker.example/api/v2/documents/search")
		assert.ErrorIs(t, err, ports.ErrInvalidCursor)
	})
}

func TestFetchPage_ServerErrorIsNotCursorError(t *testing.T) {
	cms := newFakeCMS(t)
	cms.search = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	repo := newRepository(t, cms)

	_, err := repo.FetchPage(context.Background(), domain.Cursor(cms.endpoint()+"/documents/search?ref=r&page=2"))

	require.Error(t, err)
	assert.NotErrorIs(t, err, ports.ErrInvalidCursor)
	assert.ErrorIs(t, err, prismic.ErrUnexpectedStatus)
}

func TestFindByUID(t *testing.T) {
	cms := newFakeCMS(t)
	cms.search = func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == `[[at(my.post.uid,"missing")]]` {
			writeJSON(w, map[string]any{"results": []any{}})
			return
		}
		writeJSON(w, map[string]any{"results": []any{postDocument("D1", "hooks", "2021-03-15T19:25:28+0000")}})
	}
	repo := newRepository(t, cms)

	t.Run("found", func(t *testing.T) {
		post, err := repo.FindByUID(context.Background(), "hooks", "preview-ref")
		require.NoError(t, err)

		assert.Equal(t, "D1", post.ID)
		assert.Equal(t, "hooks", post.UID)
		assert.Equal(t, "https://images.prismic.io/hooks.png", post.BannerURL)
		require.Len(t, post.Content, 1)
		assert.Equal(t, "Intro", post.Content[0].Heading)

		body := post.Content[0].Body
		require.Len(t, body, 2)
		assert.Equal(t, "Hello world", body[0].Text)
		assert.Equal(t, []domain.Span{
			{Start: 0, End: 5, Type: domain.SpanStrong},
			{Start: 6, End: 11, Type: domain.SpanHyperlink, URL: "https://example.com"},
		}, body[0].Spans)
		assert.Equal(t, "https://youtu.be/x", body[1].URL)

		assert.Equal(t, "preview-ref", cms.lastSearch(t).URL.Query().Get("ref"))
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.FindByUID(context.Background(), "missing", "")
		assert.ErrorIs(t, err, ports.ErrPostNotFound)
	})
}

func TestResolvePreview(t *testing.T) {
	cms := newFakeCMS(t)
	cms.search = func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch {
		case q.Get("ref") == "expired":
			w.WriteHeader(http.StatusNotFound)
		case q.Get("q") == fmt.Sprintf(`[[at(document.id,%q)]]`, "D1"):
			writeJSON(w, map[string]any{"results": []any{postDocument("D1", "hooks", "")}})
		default:
			writeJSON(w, map[string]any{"results": []any{}})
		}
	}
	repo := newRepository(t, cms)

	t.Run("known document", func(t *testing.T) {
		doc, err := repo.ResolvePreview(context.Background(), "valid", "D1")
		require.NoError(t, err)
		assert.Equal(t, &domain.DocumentRef{ID: "D1", UID: "hooks", Type: "post"}, doc)
	})

	t.Run("unknown document", func(t *testing.T) {
		doc, err := repo.ResolvePreview(context.Background(), "valid", "D9")
		require.NoError(t, err)
		assert.Nil(t, doc)
	})

	t.Run("rejected token", func(t *testing.T) {
		_, err := repo.ResolvePreview(context.Background(), "expired", "D1")
		assert.ErrorIs(t, err, ports.ErrInvalidPreviewToken)
	})
}

func TestPing(t *testing.T) {
	cms := newFakeCMS(t)
	repo := newRepository(t, cms)

	require.NoError(t, repo.Ping(context.Background()))

	cms.Close()
	assert.Error(t, repo.Ping(context.Background()))
}
