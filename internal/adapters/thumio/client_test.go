package thumio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureBuildsPathAndReturnsBytes(t *testing.T) {
	png := []byte("\x89PNG fake image data")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/width/1280/crop/720/noanimate/https://example.com", r.URL.Path)
		_, _ = w.Write(png)
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	got, err := c.Capture(context.Background(), "https://example.com", 1280, 720)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestCaptureNon2xxFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "render failed", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	_, err := c.Capture(context.Background(), "https://example.com", 1280, 720)
	assert.Error(t, err)
}
