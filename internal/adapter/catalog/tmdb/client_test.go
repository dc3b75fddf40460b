package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const listingBody = `{
	"page": 1,
	"results": [
		{
			"id": 603,
			"title": "The Matrix",
			"overview": "A computer hacker learns the truth.",
			"poster_path": "/matrix.jpg",
			"backdrop_path": "/matrix-backdrop.jpg",
			"release_date": "1999-03-30",
			"vote_average": 8.2
		}
	],
	"total_results": 42
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{APIKey: "test-token", BaseURL: srv.URL}, zaptest.NewLogger(t))
}

func TestClient_Trending(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/trending/movie/week", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(listingBody))
	})

	page, err := client.Trending(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 42, page.TotalResults)
	require.Len(t, page.Results, 1)
	assert.Equal(t, int64(603), page.Results[0].ID)
	assert.Equal(t, "The Matrix", page.Results[0].Title)
	assert.Equal(t, "/matrix.jpg", page.Results[0].PosterPath)
	assert.InDelta(t, 8.2, page.Results[0].VoteAverage, 0.001)
}

func TestClient_Search(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "the matrix", r.URL.Query().Get("query"))
		_, _ = w.Write([]byte(listingBody))
	})

	page, err := client.Search(context.Background(), "the matrix")

	require.NoError(t, err)
	require.Len(t, page.Results, 1)
}

func TestClient_RecentReleases_QueriesWindow(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/discover/movie", r.URL.Path)
		q := r.URL.Query()
		assert.NotEmpty(t, q.Get("primary_release_date.gte"))
		assert.NotEmpty(t, q.Get("primary_release_date.lte"))
		assert.Equal(t, "primary_release_date.desc", q.Get("sort_by"))
		_, _ = w.Write([]byte(listingBody))
	})

	page, err := client.RecentReleases(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
}

func TestClient_NonOKStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.Trending(context.Background())

	assert.Error(t, err)
}

func TestClient_ImageURLs(t *testing.T) {
	client := NewClient(Config{APIKey: "k"}, zaptest.NewLogger(t))

	assert.Equal(t, "https://image.tmdb.org/t/p/w500/matrix.jpg", client.PosterURL("/matrix.jpg", ""))
	assert.Equal(t, "https://image.tmdb.org/t/p/w185/matrix.jpg", client.PosterURL("/matrix.jpg", "w185"))
	assert.Equal(t, posterPlaceholder, client.PosterURL("", "w500"))

	assert.Equal(t, "https://image.tmdb.org/t/p/original/b.jpg", client.BackdropURL("/b.jpg", ""))
	assert.Equal(t, backdropPlaceholder, client.BackdropURL("", ""))
}
