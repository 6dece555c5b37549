package vnfeed

import (
	"context"
	"fmt"
	"regexp"
)

// Post represents a visual novel release parsed from one feed entry.
type Post struct {
	FullURL         string            `json:"fullUrl"`
	ID              string            `json:"idPost"`
	Title           string            `json:"title"`
	Synopsis        string            `json:"synopsis"`
	CoverURL        string            `json:"coverUrl"`
	ScreenshotURLs  []string          `json:"screenshotUrls"`
	Specifications  map[string]string `json:"specifications"`
	Labels          []string          `json:"labels"`
	PublicationDate string            `json:"publicationDate"`
	UpdateDate      string            `json:"updateDate"`
}

// String renders the post in the multi-line inspection format.
func (p *Post) String() string {
	return fmt.Sprintf("Url: %s\nID: %s\nTitle: %s\nCover Image: %s\nSynopsis: %s\nScreenshots: %v\nSpecifications: %v\nLabels: %v\nPublication Date: %s\nUpdate Date: %s",
		p.FullURL, p.ID, p.Title, p.CoverURL, p.Synopsis, p.ScreenshotURLs,
		p.Specifications, p.Labels, p.PublicationDate, p.UpdateDate)
}

// Validate returns an error if the post contains invalid fields.
func (p *Post) Validate() error {
	if !postIDRe.MatchString(p.ID) {
		return Errorf(EINVALID, "post ID must be numeric: %q", p.ID)
	}
	if p.FullURL == "" {
		return Errorf(EINVALID, "post full URL required")
	}
	return nil
}

var (
	postIDRe      = regexp.MustCompile(`^\d+$`)
	entryPostIDRe = regexp.MustCompile(`post-(\d+)`)
)

// PostIDFromEntryID extracts the numeric post identifier from an opaque
// feed entry id such as "tag:blogger.com,1999:blog-1.post-42".
func PostIDFromEntryID(entryID string) (string, bool) {
	m := entryPostIDRe.FindStringSubmatch(entryID)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// AndroidType identifies the blog section an AndroidPost was taken from.
type AndroidType string

// Android section types.
const (
	AndroidTypeApk         AndroidType = "apk"
	AndroidTypeKirikiroid2 AndroidType = "kirikiroid2"
)

// Validate returns EINVALID for an unknown section type.
func (t AndroidType) Validate() error {
	switch t {
	case AndroidTypeApk, AndroidTypeKirikiroid2:
		return nil
	}
	return Errorf(EINVALID, "unknown android type %q", string(t))
}

// AndroidPost represents one game listed in an Android section post.
type AndroidPost struct {
	Title    string      `json:"title"`
	FullURL  string      `json:"fullUrl"`
	CoverURL string      `json:"coverUrl"`
	Type     AndroidType `json:"androidType"`
}

// String renders the post in the multi-line inspection format.
func (p *AndroidPost) String() string {
	return fmt.Sprintf("Title: %s\nUrl: %s\nUrl Image: %s\nType: %s",
		p.Title, p.FullURL, p.CoverURL, p.Type)
}

// ParseFailure describes a feed entry that could not be parsed.
type ParseFailure struct {
	EntryID string
	PostID  string // empty when the id itself could not be extracted
	Err     error
}

// ParseResult holds the posts parsed from a batch of entries together with
// the entries that were dropped.
type ParseResult struct {
	Posts    []*Post
	Failures []ParseFailure
}

// PostParser converts feed entries into posts.
type PostParser interface {
	// ParsePost parses a single entry.
	// Returns nil, nil when the entry is excluded by title.
	ParsePost(entry *Entry) (*Post, error)
}

// AndroidExtractor extracts Android records from the single post that
// hosts a whole Android section.
type AndroidExtractor interface {
	// ExtractApk pairs the given titles with the post's images and
	// "Apk" links. Returns an *AlignmentError if the counts differ.
	ExtractApk(content string, titles []string) ([]*AndroidPost, error)

	// ExtractKirikiroid2 derives titles from underlined text and pairs them
	// with images and "Mediafire" links. Returns an *AlignmentError if the
	// counts differ.
	ExtractKirikiroid2(content string) ([]*AndroidPost, error)

	// ExtractEmulatorURL returns the emulator download link.
	// Returns ENOTFOUND if the post has no such link.
	ExtractEmulatorURL(content string) (string, error)
}

// SectionQuery selects a page of posts from a section.
type SectionQuery struct {
	Key          string
	StartIndex   int
	MaxResults   int
	PublishedMin string // YYYY-MM-DD, inclusive
	PublishedMax string // YYYY-MM-DD, inclusive
}

// PostSource retrieves parsed records from the blog.
type PostSource interface {
	// Section returns the posts of one page of a section.
	// Returns ENOTFOUND if the section key is unknown.
	Section(ctx context.Context, q SectionQuery) (*ParseResult, error)

	// AllPosts pages through the unfiltered feed until an empty page.
	AllPosts(ctx context.Context) (*ParseResult, error)

	// ApkSection returns the entries of the Android apk section.
	ApkSection(ctx context.Context) ([]*AndroidPost, error)

	// Kirikiroid2Section returns the entries of the Kirikiroid2 section.
	Kirikiroid2Section(ctx context.Context) ([]*AndroidPost, error)

	// Kirikiroid2Emulator returns the emulator download URL.
	Kirikiroid2Emulator(ctx context.Context) (string, error)
}

// PostService persists parsed posts on behalf of the front end.
type PostService interface {
	// SavePost inserts or updates a post by ID.
	// Reports whether anything was written.
	SavePost(ctx context.Context, post *Post) (bool, error)

	// FindPostByID retrieves a post by ID.
	// Returns ENOTFOUND if the post does not exist.
	FindPostByID(ctx context.Context, id string) (*Post, error)

	// FindPosts retrieves posts matching the filter.
	FindPosts(ctx context.Context, filter PostFilter) ([]*Post, error)

	// DeletePost permanently removes a post.
	// Returns ENOTFOUND if the post does not exist.
	DeletePost(ctx context.Context, id string) error
}

// PostFilter represents a filter for FindPosts.
type PostFilter struct {
	Label *string `json:"label"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// AndroidPostService persists Android section records.
type AndroidPostService interface {
	// ReplaceAndroidPosts atomically replaces all records of a type.
	ReplaceAndroidPosts(ctx context.Context, typ AndroidType, posts []*AndroidPost) error

	// FindAndroidPosts returns the records of a type in section order.
	FindAndroidPosts(ctx context.Context, typ AndroidType) ([]*AndroidPost, error)
}

