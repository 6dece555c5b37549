package vnfeed

import "context"

// Fetcher retrieves documents over the network.
type Fetcher interface {
	// Fetch returns the body at url decoded as UTF-8.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases transport resources.
	Close() error
}
