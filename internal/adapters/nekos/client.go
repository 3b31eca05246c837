// Package nekos wraps the nekosapi random-image endpoint. The API answers
// with the image file itself after a redirect, so the interesting part of a
// response is the final request URL, not the body.
package nekos

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/jose-valero/thiccboi-bot/internal/domain"
)

const (
	defaultBase = "https://api.nekosapi.com/v4"
	userAgent   = "ThiccBoiBot/1.0"
)

// Rating selects the content rating of the returned image.
type Rating string

const (
	RatingSafe     Rating = "safe"
	RatingExplicit Rating = "explicit"
)

type Client struct {
	http    *http.Client
	baseURL string
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

func New(opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: 8 * time.Second},
		baseURL: defaultBase,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// RandomImage returns the URL of one random image with the given rating.
func (c *Client) RandomImage(ctx context.Context, rating Rating) (string, error) {
	q := url.Values{}
	q.Set("rating", string(rating))
	u := c.baseURL + "/images/random/file?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	res, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("nekos http: %v: %w", err, domain.ErrUnavailable)
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusNotFound:
		return "", domain.ErrNotFound
	case http.StatusTooManyRequests:
		return "", domain.ErrRateLimited
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		return "", domain.ErrUnavailable
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return "", fmt.Errorf("nekos api status %d", res.StatusCode)
	}

	// The client followed any redirects for us; this is the image address.
	return res.Request.URL.String(), nil
}
