// Package feed fetches remote text feeds (rule files, handle lists) over
// HTTP. It handles the transport concerns so repos and services can stay
// focused on parsing and comparison logic.
package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/quietmint/handlevet/internal/vet/repos/rules"
	"github.com/quietmint/handlevet/internal/vet/services/compare"
)

// Error message constants for consistent error handling
const (
	errEmptyURL         = "feed URL is empty"
	errRequestFailed    = "feed request failed: %w"
	errUnexpectedStatus = "feed %s returned status %s"
	errReadBody         = "failed to read feed body: %w"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "handlevet/1.0"
)

// Client downloads feeds with a fixed timeout and User-Agent. A single
// attempt is made per Get; callers decide whether a failure is fatal.
type Client struct {
	http      *http.Client
	userAgent string
}

// Options defines configuration parameters for the feed client.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	// HTTP client to inject for testing purposes
	Client *http.Client
}

// New creates a feed client. Zero-value options fall back to a 30 second
// timeout and the default User-Agent.
func New(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.Client == nil {
		opts.Client = &http.Client{Timeout: opts.Timeout}
	}
	return &Client{
		http:      opts.Client,
		userAgent: opts.UserAgent,
	}
}

// Get downloads the feed at url and returns its raw body. A non-empty
// accept value is sent as the Accept header. Any status other than 200
// is an error.
func (c *Client) Get(ctx context.Context, url, accept string) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf(errEmptyURL)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf(errRequestFailed, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf(errRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(errUnexpectedStatus, url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf(errReadBody, err)
	}
	return body, nil
}

var _ rules.Getter = (*Client)(nil)
var _ compare.Fetcher = (*Client)(nil)
