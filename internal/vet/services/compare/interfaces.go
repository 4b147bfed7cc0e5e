package compare

import (
	"context"
	"time"
)

// Fetcher downloads the minted-handle feed. Implemented by
// gateways/feed.Client.
type Fetcher interface {
	Get(ctx context.Context, url, accept string) ([]byte, error)
}

// Store persists the downloaded handle list between runs. Implemented by
// repos/handles.Store.
type Store interface {
	Path() string
	Stat() (modTime time.Time, ok bool)
	Read() (string, error)
	Write(text string) error
}

// Prompt asks the user a yes/no question and returns the raw answer.
// Injected so tests and non-interactive callers can script the reply.
type Prompt func(question string) (string, error)
