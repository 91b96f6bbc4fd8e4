package scraper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/mvdberg/valuebet/internal/pkg/config"
)

// HTTPClient is a shared retrying JSON client for the provider scrapers.
// Responses with status 204/304/404 decode to "no data" (nil target) rather
// than an error: providers routinely answer 404 for leagues out of season.
type HTTPClient struct {
	client    *http.Client
	retries   int
	userAgent string
}

func NewHTTPClient(cfg *config.HTTPConfig) *HTTPClient {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 60 * time.Second}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &HTTPClient{
		client:    &http.Client{Timeout: cfg.Timeout, Transport: transport},
		retries:   cfg.Retries,
		userAgent: cfg.UserAgent,
	}
}

// GetJSON fetches url (plus query params) and decodes the body into target.
// Returns (false, nil) when the provider had no data.
func (c *HTTPClient) GetJSON(ctx context.Context, rawURL string, params url.Values, headers map[string]string, target any) (bool, error) {
	if len(params) > 0 {
		u, err := url.Parse(rawURL)
		if err != nil {
			return false, fmt.Errorf("bad url %q: %w", rawURL, err)
		}
		q := u.Query()
		for k, vs := range params {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
		rawURL = u.String()
	}
	return c.doWithRetry(ctx, http.MethodGet, rawURL, nil, headers, target)
}

// PostJSON sends body as JSON and decodes the response into target.
func (c *HTTPClient) PostJSON(ctx context.Context, rawURL string, body any, headers map[string]string, target any) (bool, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return false, fmt.Errorf("marshal request body: %w", err)
	}
	if headers == nil {
		headers = map[string]string{}
	}
	headers["Content-Type"] = "application/json"
	return c.doWithRetry(ctx, http.MethodPost, rawURL, payload, headers, target)
}

func (c *HTTPClient) doWithRetry(ctx context.Context, method, rawURL string, body []byte, headers map[string]string, target any) (bool, error) {
	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			// Linear backoff like the upstream scrapers use.
			select {
			case <-time.After(time.Duration(attempt) * 500 * time.Millisecond):
			case <-ctx.Done():
				return false, ctx.Err()
			}
		}

		ok, err := c.do(ctx, method, rawURL, body, headers, target)
		if err == nil {
			return ok, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
	}
	return false, lastErr
}

func (c *HTTPClient) do(ctx context.Context, method, rawURL string, body []byte, headers map[string]string, target any) (bool, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return false, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", "nl-NL,nl;q=0.9,en;q=0.6")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("%s %s: %w", method, rawURL, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return false, fmt.Errorf("decode %s: %w", rawURL, err)
		}
		return true, nil
	case http.StatusNoContent, http.StatusNotModified, http.StatusNotFound:
		io.Copy(io.Discard, resp.Body)
		return false, nil
	default:
		io.Copy(io.Discard, resp.Body)
		return false, fmt.Errorf("%s %s: unexpected status %d", method, rawURL, resp.StatusCode)
	}
}
