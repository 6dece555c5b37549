package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/vnfeed"
)

// Ensure LoggingFeedService implements vnfeed.FeedService.
var _ vnfeed.FeedService = (*LoggingFeedService)(nil)

// LoggingFeedService wraps a FeedService with logging.
type LoggingFeedService struct {
	next   vnfeed.FeedService
	logger *slog.Logger
}

// NewLoggingFeedService creates a new LoggingFeedService.
func NewLoggingFeedService(next vnfeed.FeedService, logger *slog.Logger) *LoggingFeedService {
	return &LoggingFeedService{next: next, logger: logger}
}

// Entries delegates to the wrapped service and logs the page request.
func (s *LoggingFeedService) Entries(ctx context.Context, q vnfeed.FeedQuery) (entries []*vnfeed.Entry, err error) {
	defer func(begin time.Time) {
		s.logger.Info("feed page",
			"category", q.Category,
			"start", q.StartIndex,
			"max", q.MaxResults,
			"count", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Entries(ctx, q)
}
