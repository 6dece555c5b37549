// Package blogger assembles visual novel and Android records from a Blogger
// post feed. It pages through the feed, runs every entry through a parser and
// keeps the entries that fail as reportable failures.
package blogger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fwojciec/vnfeed"
)

const (
	// DefaultStartIndex is the first feed position. Blogger indexes from 1.
	DefaultStartIndex = 1

	// DefaultMaxResults is the section page size.
	DefaultMaxResults = 25

	// DefaultPageSize is the page size used when walking the whole feed.
	DefaultPageSize = 100
)

// Ensure Client implements vnfeed.PostSource at compile time.
var _ vnfeed.PostSource = (*Client)(nil)

// Client retrieves and parses posts from the blog's feed.
type Client struct {
	Feed    vnfeed.FeedService
	Parser  vnfeed.PostParser
	Android vnfeed.AndroidExtractor
	Logger  *slog.Logger

	// PageSize is the page size for AllPosts. Zero means DefaultPageSize.
	PageSize int

	// ApkTitles names the games of the apk section in post order.
	// Nil means vnfeed.ApkTitles.
	ApkTitles []string
}

// Section returns one page of a section's posts.
func (c *Client) Section(ctx context.Context, q vnfeed.SectionQuery) (*vnfeed.ParseResult, error) {
	section, err := vnfeed.LookupSection(q.Key)
	if err != nil {
		return nil, err
	}

	fq := vnfeed.FeedQuery{
		Category:     section.Category,
		StartIndex:   q.StartIndex,
		MaxResults:   q.MaxResults,
		PublishedMin: q.PublishedMin,
		PublishedMax: q.PublishedMax,
	}
	if fq.StartIndex == 0 {
		fq.StartIndex = DefaultStartIndex
	}
	if fq.MaxResults == 0 {
		fq.MaxResults = DefaultMaxResults
	}

	entries, err := c.Feed.Entries(ctx, fq)
	if err != nil {
		return nil, fmt.Errorf("section %s: %w", section.Key, err)
	}

	posts, failures := ParseEntries(c.Parser, entries)
	c.logFailures(failures)
	return &vnfeed.ParseResult{Posts: posts, Failures: failures}, nil
}

// AllPosts walks the unfiltered feed page by page until a page comes back
// empty. Posts appear in feed order without deduplication.
func (c *Client) AllPosts(ctx context.Context) (*vnfeed.ParseResult, error) {
	pageSize := c.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	result := &vnfeed.ParseResult{}
	for start := DefaultStartIndex; ; start += pageSize {
		entries, err := c.Feed.Entries(ctx, vnfeed.FeedQuery{
			StartIndex: start,
			MaxResults: pageSize,
		})
		if err != nil {
			return nil, fmt.Errorf("feed page at %d: %w", start, err)
		}
		if len(entries) == 0 {
			break
		}

		posts, failures := ParseEntries(c.Parser, entries)
		c.logFailures(failures)
		result.Posts = append(result.Posts, posts...)
		result.Failures = append(result.Failures, failures...)
	}
	return result, nil
}

// ApkSection returns the games listed in the Android apk post.
func (c *Client) ApkSection(ctx context.Context) ([]*vnfeed.AndroidPost, error) {
	entry, err := c.firstEntry(ctx, vnfeed.CategoryAndroidApk)
	if err != nil {
		return nil, err
	}

	titles := c.ApkTitles
	if titles == nil {
		titles = vnfeed.ApkTitles
	}
	return c.Android.ExtractApk(entry.Content, titles)
}

// Kirikiroid2Section returns the games listed in the Kirikiroid2 post.
func (c *Client) Kirikiroid2Section(ctx context.Context) ([]*vnfeed.AndroidPost, error) {
	entry, err := c.firstEntry(ctx, vnfeed.CategoryKirikiroid2)
	if err != nil {
		return nil, err
	}
	return c.Android.ExtractKirikiroid2(entry.Content)
}

// Kirikiroid2Emulator returns the emulator download link from the
// Kirikiroid2 post.
func (c *Client) Kirikiroid2Emulator(ctx context.Context) (string, error) {
	entry, err := c.firstEntry(ctx, vnfeed.CategoryKirikiroid2)
	if err != nil {
		return "", err
	}
	return c.Android.ExtractEmulatorURL(entry.Content)
}

// firstEntry returns the newest entry of a category.
func (c *Client) firstEntry(ctx context.Context, category string) (*vnfeed.Entry, error) {
	entries, err := c.Feed.Entries(ctx, vnfeed.FeedQuery{
		Category:   category,
		StartIndex: DefaultStartIndex,
		MaxResults: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("%s post: %w", category, err)
	}
	if len(entries) == 0 {
		return nil, vnfeed.Errorf(vnfeed.ENOTFOUND, "no %s post found", category)
	}
	return entries[0], nil
}

func (c *Client) logFailures(failures []vnfeed.ParseFailure) {
	if c.Logger == nil {
		return
	}
	for _, f := range failures {
		c.Logger.Warn("skipped entry",
			"post_id", f.PostID,
			"entry_id", f.EntryID,
			"err", f.Err,
		)
	}
}

// ParseEntries runs every entry through the parser. Excluded entries are
// dropped silently; entries that fail to parse are returned as failures and
// do not stop the rest of the batch.
func ParseEntries(parser vnfeed.PostParser, entries []*vnfeed.Entry) ([]*vnfeed.Post, []vnfeed.ParseFailure) {
	posts := make([]*vnfeed.Post, 0, len(entries))
	var failures []vnfeed.ParseFailure
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		post, err := parser.ParsePost(entry)
		if err != nil {
			id, _ := vnfeed.PostIDFromEntryID(entry.ID)
			failures = append(failures, vnfeed.ParseFailure{
				EntryID: entry.ID,
				PostID:  id,
				Err:     err,
			})
			continue
		}
		if post == nil {
			continue
		}
		posts = append(posts, post)
	}
	return posts, failures
}
