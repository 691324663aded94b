// Package fetch provides the HTTP collaborator shared by the web scanners:
// a single explicitly constructed client with rotating user agents, a fixed
// timeout, and a bounded retry loop with linear backoff.
package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
)

var defaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
}

// Config tunes the client; zero values fall back to defaults.
type Config struct {
	Timeout    time.Duration
	Retries    int
	Delay      time.Duration
	UserAgents []string
}

// Client wraps http.Client with the retry and pacing policy of the
// collection pipeline. It carries its own user-agent rotation state instead
// of mutating anything module-level.
type Client struct {
	http    *http.Client
	agents  []string
	retries int
	delay   time.Duration
	next    int
	logger  *slog.Logger
}

// NewClient builds a client; logger may be nil.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Retries <= 0 {
		cfg.Retries = 3
	}
	if cfg.Delay <= 0 {
		cfg.Delay = 2 * time.Second
	}
	if len(cfg.UserAgents) == 0 {
		cfg.UserAgents = defaultUserAgents
	}

	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		agents:  cfg.UserAgents,
		retries: cfg.Retries,
		delay:   cfg.Delay,
		logger:  logger,
	}
}

// Get fetches the URL, retrying failed attempts with linear backoff. The
// response body is open on success; the caller closes it.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	var lastErr error

	for attempt := 1; attempt <= c.retries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("User-Agent", c.rotateUserAgent())
		req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
		req.Header.Set("Accept-Language", "en-US,en;q=0.5")

		resp, err := c.http.Do(req)
		if err == nil && resp.StatusCode < http.StatusBadRequest {
			return resp, nil
		}

		if err == nil {
			resp.Body.Close()
			err = fmt.Errorf("unexpected status %s", resp.Status)
		}
		lastErr = err

		c.warn("request failed", "url", url, "attempt", attempt, "retries", c.retries, "error", err)

		if attempt < c.retries {
			if err := c.sleep(ctx, c.delay*time.Duration(attempt)); err != nil {
				return nil, err
			}
		}
	}

	return nil, fmt.Errorf("fetch %s after %d attempts: %w", url, c.retries, lastErr)
}

// Document fetches the URL and parses the body as HTML.
func (c *Client) Document(ctx context.Context, url string) (*goquery.Document, error) {
	resp, err := c.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse document %s: %w", url, err)
	}

	return doc, nil
}

// Pause waits the configured inter-request delay, respecting cancellation.
func (c *Client) Pause(ctx context.Context) error {
	return c.sleep(ctx, c.delay)
}

func (c *Client) rotateUserAgent() string {
	agent := c.agents[c.next%len(c.agents)]
	c.next++
	return agent
}

func (c *Client) sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Client) warn(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Warn(msg, args...)
	}
}
