package vnfeed

import (
	"context"
	"time"
)

// Entry represents one syndicated blog post as returned by the feed.
type Entry struct {
	ID         string
	Title      string
	Content    string // HTML fragment
	Links      []Link // document order
	Categories []string
	Published  string
	Updated    string
}

// Link is a link relation attached to an entry.
type Link struct {
	Rel   string
	Type  string
	Href  string
	Title string
}

// FeedQuery selects entries from the blog feed.
type FeedQuery struct {
	Category     string // empty means unfiltered
	StartIndex   int    // 1-based, 0 omits the parameter
	MaxResults   int    // 0 omits the parameter
	PublishedMin string // YYYY-MM-DD, inclusive
	PublishedMax string // YYYY-MM-DD, inclusive
}

// Validate returns an error if the query contains invalid fields.
func (q *FeedQuery) Validate() error {
	if q.StartIndex < 0 {
		return Errorf(EINVALID, "start index must not be negative")
	}
	if q.MaxResults < 0 {
		return Errorf(EINVALID, "max results must not be negative")
	}
	for _, d := range []string{q.PublishedMin, q.PublishedMax} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(DateLayout, d); err != nil {
			return Errorf(EINVALID, "invalid date bound %q, want YYYY-MM-DD", d)
		}
	}
	return nil
}

// FeedService retrieves raw entries from the blog feed.
type FeedService interface {
	// Entries returns the entries matching the query, possibly none.
	Entries(ctx context.Context, q FeedQuery) ([]*Entry, error)
}
