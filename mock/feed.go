package mock

import (
	"context"

	"github.com/fwojciec/vnfeed"
)

var _ vnfeed.FeedService = (*FeedService)(nil)

// FeedService is a mock implementation of vnfeed.FeedService.
type FeedService struct {
	EntriesFn func(ctx context.Context, q vnfeed.FeedQuery) ([]*vnfeed.Entry, error)
}

func (s *FeedService) Entries(ctx context.Context, q vnfeed.FeedQuery) ([]*vnfeed.Entry, error) {
	return s.EntriesFn(ctx, q)
}
