package tmdb

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jose-valero/thiccboi-bot/internal/domain"
)

const inceptionDetails = `{
  "id": 27205,
  "title": "Inception",
  "overview": "Cobb, a skilled thief who commits corporate espionage by infiltrating the subconscious of his targets, is offered a chance to regain his old life as payment for a task considered to be impossible: planting an idea into the mind of a CEO.",
  "release_date": "2010-07-15",
  "runtime": 148,
  "vote_average": 8.4,
  "budget": 160000000,
  "revenue": 825532764,
  "imdb_id": "tt1375666",
  "poster_path": "/inception-poster.jpg",
  "backdrop_path": "/inception-backdrop.jpg",
  "genres": [{"name": "Action"}, {"name": "Science Fiction"}],
  "credits": {
    "cast": [
      {"name": "Leonardo DiCaprio", "character": "Dom Cobb", "popularity": 98.4, "profile_path": "/leo.jpg"},
      {"name": "Joseph Gordon-Levitt", "character": "Arthur", "popularity": 45.1, "profile_path": "/jgl.jpg"},
      {"name": "Elliot Page", "character": "Ariadne", "popularity": 40.0, "profile_path": "/ep.jpg"},
      {"name": "Tom Hardy", "character": "Eames", "popularity": 70.2, "profile_path": "/th.jpg"},
      {"name": "Ken Watanabe", "character": "Saito", "popularity": 30.3, "profile_path": "/kw.jpg"}
    ],
    "crew": [
      {"name": "Hans Zimmer", "job": "Original Music Composer"},
      {"name": "Christopher Nolan", "job": "Director"}
    ]
  },
  "videos": {"results": [
    {"key": "teaser1", "site": "YouTube", "type": "Teaser"},
    {"key": "YoHD9XEInc0", "site": "YouTube", "type": "Trailer"}
  ]}
}`

func newTestServer(t *testing.T) (*httptest.Server, *Client) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/search/movie", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("api_key") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Query().Get("query") != "Inception" {
			fmt.Fprint(w, `{"results": []}`)
			return
		}
		fmt.Fprint(w, `{"results": [{"id": 27205, "title": "Inception"}, {"id": 64956, "title": "Inception: The Cobol Job"}]}`)
	})
	mux.HandleFunc("/search/multi", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results": [
			{"id": 6193, "media_type": "person", "name": "Leonardo DiCaprio"},
			{"id": 27205, "media_type": "movie", "title": "Inception"},
			{"id": 1396, "media_type": "tv", "name": "Breaking Bad"}
		]}`)
	})
	mux.HandleFunc("/movie/27205", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, inceptionDetails)
	})
	mux.HandleFunc("/movie/27205/credits", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"cast": [
			{"name": "Leonardo DiCaprio", "character": "Dom Cobb", "popularity": 98.4, "profile_path": "/leo.jpg"},
			{"name": "Uncredited Extra", "character": "", "popularity": 0.1, "profile_path": ""},
			{"name": "Tom Hardy", "character": "Eames", "popularity": 70.2, "profile_path": "/th.jpg"}
		], "crew": []}`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, New("test-key", WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
}

func TestSearchThenDetails(t *testing.T) {
	_, c := newTestServer(t)
	ctx := context.Background()

	hits, err := c.Search(ctx, "Inception", domain.KindMovie, 0)
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	assert.Equal(t, 27205, hits[0].ID)
	assert.Equal(t, domain.KindMovie, hits[0].Kind)

	sub, err := c.Details(ctx, hits[0].ID, hits[0].Kind)
	require.NoError(t, err)
	assert.Equal(t, "Inception", sub.Title)
	assert.Equal(t, 2010, sub.ReleaseYear)
	assert.Equal(t, 148, sub.RuntimeMinutes)
	assert.Contains(t, sub.Genres, "Science Fiction")
	assert.Equal(t, "Christopher Nolan", sub.Director)
	assert.Equal(t, "YoHD9XEInc0", sub.TrailerKey)
	assert.Equal(t, "tt1375666", sub.IMDbID)
	assert.Len(t, sub.TopCast, 4)
	assert.True(t, sub.HasCast)
}

func TestSearchMultiDiscardsPeople(t *testing.T) {
	_, c := newTestServer(t)

	hits, err := c.Search(context.Background(), "leo", "", 0)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, domain.KindMovie, hits[0].Kind)
	assert.Equal(t, "Inception", hits[0].Title)
	assert.Equal(t, domain.KindTV, hits[1].Kind)
	assert.Equal(t, "Breaking Bad", hits[1].Title)
}

func TestSearchEmptyResultIsNotFound(t *testing.T) {
	_, c := newTestServer(t)

	_, err := c.Search(context.Background(), "zzzz no such movie", domain.KindMovie, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreditsFilterToPhotoBearing(t *testing.T) {
	_, c := newTestServer(t)

	cast, err := c.Credits(context.Background(), 27205, domain.KindMovie)
	require.NoError(t, err)
	require.Len(t, cast, 2)
	assert.Equal(t, "Leonardo DiCaprio", cast[0].Name)
	assert.Equal(t, "Tom Hardy", cast[1].Name)
}

func TestStatusCategorization(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, domain.ErrUnauthorized},
		{http.StatusNotFound, domain.ErrNotFound},
		{http.StatusTooManyRequests, domain.ErrRateLimited},
		{http.StatusBadGateway, domain.ErrUnavailable},
		{http.StatusServiceUnavailable, domain.ErrUnavailable},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprint(tc.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer srv.Close()

			c := New("k", WithBaseURL(srv.URL))
			_, err := c.Details(context.Background(), 1, domain.KindMovie)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestUnknownStatusIsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New("k", WithBaseURL(srv.URL))
	_, err := c.Details(context.Background(), 1, domain.KindMovie)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
}

func TestConnectionFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse everything

	c := New("k", WithBaseURL(srv.URL))
	_, err := c.Details(context.Background(), 1, domain.KindMovie)
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}
