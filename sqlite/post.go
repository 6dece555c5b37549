package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/vnfeed"
)

// Compile-time interface verification.
var _ vnfeed.PostService = (*PostService)(nil)

// PostService implements vnfeed.PostService using SQLite.
type PostService struct {
	db *DB
}

// NewPostService creates a new PostService.
func NewPostService(db *DB) *PostService {
	return &PostService{db: db}
}

const postColumns = `id_post, full_url, title, synopsis, cover_url, screenshot_urls,
	specifications, labels, publication_date, update_date`

// SavePost inserts a post or replaces the stored copy. A post whose content
// hash matches the stored one is left untouched and reported as unchanged.
func (s *PostService) SavePost(ctx context.Context, post *vnfeed.Post) (bool, error) {
	if err := post.Validate(); err != nil {
		return false, err
	}

	row := normalizePost(post)
	encoded, err := json.Marshal(row)
	if err != nil {
		return false, fmt.Errorf("failed to encode post: %w", err)
	}
	hash := hashContent(encoded)

	var stored string
	err = s.db.QueryRowContext(ctx, "SELECT content_hash FROM posts WHERE id_post = ?", post.ID).Scan(&stored)
	if err != nil && err != sql.ErrNoRows {
		return false, err
	}
	if stored == hash {
		return false, nil
	}

	screenshots, err := marshalColumn(row.ScreenshotURLs, "screenshot_urls")
	if err != nil {
		return false, err
	}
	specifications, err := marshalColumn(row.Specifications, "specifications")
	if err != nil {
		return false, err
	}
	labels, err := marshalColumn(row.Labels, "labels")
	if err != nil {
		return false, err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO posts (`+postColumns+`, content_hash, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id_post) DO UPDATE SET
			full_url = excluded.full_url,
			title = excluded.title,
			synopsis = excluded.synopsis,
			cover_url = excluded.cover_url,
			screenshot_urls = excluded.screenshot_urls,
			specifications = excluded.specifications,
			labels = excluded.labels,
			publication_date = excluded.publication_date,
			update_date = excluded.update_date,
			content_hash = excluded.content_hash,
			saved_at = excluded.saved_at
	`, post.ID, post.FullURL, post.Title, post.Synopsis, post.CoverURL, screenshots,
		specifications, labels, post.PublicationDate, post.UpdateDate,
		hash, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return false, err
	}
	return true, nil
}

// FindPostByID retrieves a post by ID.
func (s *PostService) FindPostByID(ctx context.Context, id string) (*vnfeed.Post, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+postColumns+" FROM posts WHERE id_post = ?", id)
	post, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, vnfeed.Errorf(vnfeed.ENOTFOUND, "post not found")
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

// FindPosts retrieves posts matching the filter, newest publication first.
func (s *PostService) FindPosts(ctx context.Context, filter vnfeed.PostFilter) ([]*vnfeed.Post, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + postColumns + " FROM posts WHERE 1=1")

	if filter.Label != nil {
		query.WriteString(" AND EXISTS (SELECT 1 FROM json_each(posts.labels) WHERE lower(json_each.value) = lower(?))")
		args = append(args, *filter.Label)
	}

	query.WriteString(" ORDER BY publication_date DESC, id_post DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]*vnfeed.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// DeletePost permanently removes a post.
func (s *PostService) DeletePost(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM posts WHERE id_post = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return vnfeed.Errorf(vnfeed.ENOTFOUND, "post not found")
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPost(row scanner) (*vnfeed.Post, error) {
	var post vnfeed.Post
	var screenshots, specifications, labels string

	if err := row.Scan(&post.ID, &post.FullURL, &post.Title, &post.Synopsis, &post.CoverURL,
		&screenshots, &specifications, &labels, &post.PublicationDate, &post.UpdateDate); err != nil {
		return nil, err
	}

	if err := unmarshalColumn(screenshots, &post.ScreenshotURLs, "screenshot_urls"); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(specifications, &post.Specifications, "specifications"); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(labels, &post.Labels, "labels"); err != nil {
		return nil, err
	}
	return &post, nil
}

// normalizePost returns a copy of post with empty collections in place of
// nil ones, so a post hashes the same before and after a round trip.
func normalizePost(post *vnfeed.Post) *vnfeed.Post {
	p := *post
	if p.ScreenshotURLs == nil {
		p.ScreenshotURLs = []string{}
	}
	if p.Specifications == nil {
		p.Specifications = map[string]string{}
	}
	if p.Labels == nil {
		p.Labels = []string{}
	}
	return &p
}
