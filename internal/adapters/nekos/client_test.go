package nekos

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jose-valero/thiccboi-bot/internal/domain"
)

func TestRandomImageFollowsRedirect(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/images/random/file", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "safe", r.URL.Query().Get("rating"))
		http.Redirect(w, r, "/cdn/img-123.png", http.StatusFound)
	})
	mux.HandleFunc("/cdn/img-123.png", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	got, err := c.RandomImage(context.Background(), RatingSafe)
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/cdn/img-123.png", got)
}

func TestRandomImageRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	_, err := c.RandomImage(context.Background(), RatingExplicit)
	assert.ErrorIs(t, err, domain.ErrRateLimited)
}

func TestRandomImageConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(WithBaseURL(srv.URL))
	_, err := c.RandomImage(context.Background(), RatingSafe)
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}
