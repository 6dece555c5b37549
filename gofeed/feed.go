// Package gofeed implements vnfeed.FeedService for Blogger Atom feeds using
// github.com/mmcdole/gofeed.
package gofeed

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/fwojciec/vnfeed"
	"github.com/mmcdole/gofeed/atom"
)

const (
	// DefaultBaseURL is the root of Blogger's feed API.
	DefaultBaseURL = "https://www.blogger.com/feeds"

	// DefaultBlogID identifies Visual Novel para PC.
	DefaultBlogID = "6976968703909484667"

	// DefaultPublishedOffset is the UTC offset the blog publishes in. Date
	// bounds are midnight at this offset.
	DefaultPublishedOffset = "-05:00"
)

// Ensure FeedService implements vnfeed.FeedService at compile time.
var _ vnfeed.FeedService = (*FeedService)(nil)

// FeedService queries a Blogger blog's post feed.
type FeedService struct {
	fetcher vnfeed.Fetcher
	blogID  string
	baseURL string
	offset  string
}

// Option configures a FeedService.
type Option func(*FeedService)

// WithBaseURL overrides the feed API root.
func WithBaseURL(u string) Option {
	return func(s *FeedService) {
		s.baseURL = strings.TrimSuffix(u, "/")
	}
}

// WithPublishedOffset sets the UTC offset used for date bounds.
func WithPublishedOffset(offset string) Option {
	return func(s *FeedService) {
		s.offset = offset
	}
}

// NewFeedService creates a FeedService for the given blog.
func NewFeedService(fetcher vnfeed.Fetcher, blogID string, opts ...Option) *FeedService {
	s := &FeedService{
		fetcher: fetcher,
		blogID:  blogID,
		baseURL: DefaultBaseURL,
		offset:  DefaultPublishedOffset,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FeedURL builds the feed URL for a query.
func (s *FeedService) FeedURL(q vnfeed.FeedQuery) string {
	u := s.baseURL + "/" + url.PathEscape(s.blogID) + "/posts/default"
	if q.Category != "" {
		u += "/-/" + url.PathEscape(q.Category)
	}

	v := url.Values{}
	if q.StartIndex > 0 {
		v.Set("start-index", strconv.Itoa(q.StartIndex))
	}
	if q.MaxResults > 0 {
		v.Set("max-results", strconv.Itoa(q.MaxResults))
	}
	if q.PublishedMin != "" {
		v.Set("published-min", q.PublishedMin+"T00:00:00"+s.offset)
	}
	if q.PublishedMax != "" {
		v.Set("published-max", q.PublishedMax+"T00:00:00"+s.offset)
	}
	if len(v) > 0 {
		u += "?" + v.Encode()
	}
	return u
}

// Entries fetches and parses one page of the feed.
func (s *FeedService) Entries(ctx context.Context, q vnfeed.FeedQuery) ([]*vnfeed.Entry, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	body, err := s.fetcher.Fetch(ctx, s.FeedURL(q))
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}

	fp := &atom.Parser{}
	feed, err := fp.Parse(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	entries := make([]*vnfeed.Entry, 0, len(feed.Entries))
	for _, e := range feed.Entries {
		entries = append(entries, toEntry(e))
	}
	return entries, nil
}

// toEntry maps an Atom entry onto the transport-neutral entry shape.
func toEntry(e *atom.Entry) *vnfeed.Entry {
	entry := &vnfeed.Entry{
		ID:        vnfeed.NormalizeText(e.ID),
		Title:     vnfeed.NormalizeText(e.Title),
		Published: e.Published,
		Updated:   e.Updated,
	}
	if e.Content != nil {
		entry.Content = vnfeed.NormalizeText(e.Content.Value)
	}
	for _, l := range e.Links {
		entry.Links = append(entry.Links, vnfeed.Link{
			Rel:   l.Rel,
			Type:  l.Type,
			Href:  vnfeed.NormalizeText(l.Href),
			Title: l.Title,
		})
	}
	for _, c := range e.Categories {
		entry.Categories = append(entry.Categories, vnfeed.NormalizeText(c.Term))
	}
	return entry
}
