package rules

import "context"

// Getter downloads a feed body. Implementations live in gateways; the
// accept parameter becomes the Accept header when non-empty.
type Getter interface {
	Get(ctx context.Context, url, accept string) ([]byte, error)
}
