package sqlite

import (
	"context"
	"time"

	"github.com/fwojciec/vnfeed"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ vnfeed.AndroidPostService = (*AndroidPostService)(nil)

// AndroidPostService implements vnfeed.AndroidPostService using SQLite.
type AndroidPostService struct {
	db *DB
}

// NewAndroidPostService creates a new AndroidPostService.
func NewAndroidPostService(db *DB) *AndroidPostService {
	return &AndroidPostService{db: db}
}

// ReplaceAndroidPosts deletes the stored records of a type and inserts posts
// in their place within one transaction.
func (s *AndroidPostService) ReplaceAndroidPosts(ctx context.Context, typ vnfeed.AndroidType, posts []*vnfeed.AndroidPost) error {
	if err := typ.Validate(); err != nil {
		return err
	}
	for _, p := range posts {
		if p.Type != typ {
			return vnfeed.Errorf(vnfeed.EINVALID, "android post %q has type %q, want %q", p.Title, p.Type, typ)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM android_posts WHERE android_type = ?", string(typ)); err != nil {
		return err
	}

	savedAt := time.Now().UTC().Format(time.RFC3339)
	for i, p := range posts {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO android_posts (id, android_type, position, title, full_url, cover_url, saved_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), string(typ), i, p.Title, p.FullURL, p.CoverURL, savedAt)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindAndroidPosts returns the stored records of a type in section order.
func (s *AndroidPostService) FindAndroidPosts(ctx context.Context, typ vnfeed.AndroidType) ([]*vnfeed.AndroidPost, error) {
	if err := typ.Validate(); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT title, full_url, cover_url, android_type
		FROM android_posts
		WHERE android_type = ?
		ORDER BY position ASC
	`, string(typ))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]*vnfeed.AndroidPost, 0)
	for rows.Next() {
		var p vnfeed.AndroidPost
		var t string
		if err := rows.Scan(&p.Title, &p.FullURL, &p.CoverURL, &t); err != nil {
			return nil, err
		}
		p.Type = vnfeed.AndroidType(t)
		posts = append(posts, &p)
	}
	return posts, rows.Err()
}
