package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jose-valero/thiccboi-bot/internal/domain"
)

const (
	defaultBase = "https://api.themoviedb.org/3"
	userAgent   = "ThiccBoiBot/1.0"
)

// Image assets are addressed by joining a fixed base with the path fragment
// TMDB returns in its JSON bodies.
const (
	posterImageBase   = "https://image.tmdb.org/t/p/w500"
	profileImageBase  = "https://image.tmdb.org/t/p/w300"
	backdropImageBase = "https://media.themoviedb.org/t/p/w1280"
)

func PosterURL(path string) string   { return posterImageBase + path }
func ProfileURL(path string) string  { return profileImageBase + path }
func BackdropURL(path string) string { return backdropImageBase + path }

type Client struct {
	apiKey  string
	http    *http.Client
	baseURL string
}

func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
		baseURL: defaultBase,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// doJSON: builds the URL, adds api_key auth, maps statuses onto the
// categorized errors in domain. No retries: the caller surfaces the failure
// and the hosting message is updated exactly once.
func (c *Client) doJSON(ctx context.Context, path string, q url.Values, out any) error {
	if q == nil {
		q = url.Values{}
	}
	q.Set("api_key", c.apiKey)
	u := c.baseURL + path + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		// timeout / DNS / refused all land here
		return fmt.Errorf("tmdb http: %v: %w", err, domain.ErrUnavailable)
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusTooManyRequests:
		return domain.ErrRateLimited
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		return domain.ErrUnavailable
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(res.Body, 4<<10))
		return &APIError{Status: res.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("tmdb decode: %w", err)
	}
	return nil
}
