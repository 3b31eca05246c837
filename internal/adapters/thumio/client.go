// Package thumio captures website screenshots through the thum.io rendering
// service. Pure passthrough: one request in, one PNG out.
package thumio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jose-valero/thiccboi-bot/internal/domain"
)

const (
	defaultBase = "https://image.thum.io/get"
	userAgent   = "ThiccBoiBot/1.0"

	maxImageBytes = 8 << 20
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
		http:    &http.Client{Timeout: 10 * time.Second},
		baseURL: defaultBase,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Capture renders site at the given viewport and returns the PNG bytes.
// site must already carry a scheme.
func (c *Client) Capture(ctx context.Context, site string, width, height int) ([]byte, error) {
	u := fmt.Sprintf("%s/width/%d/crop/%d/noanimate/%s", c.baseURL, width, height, site)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("thumio http: %v: %w", err, domain.ErrUnavailable)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("thumio api status %d", res.StatusCode)
	}

	img, err := io.ReadAll(io.LimitReader(res.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("thumio read: %w", err)
	}
	return img, nil
}
