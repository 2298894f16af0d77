// Package repository contains data access logic separated from HTTP handlers.
// Repositories return plain records and sentinel errors; deciding how a
// failure degrades on a page is left to the service layer.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iliyamo/clinic-space-site/internal/model"
	"github.com/iliyamo/clinic-space-site/internal/utils"
)

// ErrPostNotFound is returned when no published post matches a slug.
var ErrPostNotFound = errors.New("post not found")

const postColumns = `id, title, slug, excerpt, content, cover_image, author, category, published, created_at, updated_at`

// PostRepo reads blog posts.  The site never writes posts.
type PostRepo struct {
	db *sql.DB
}

func NewPostRepo(db *sql.DB) *PostRepo {
	return &PostRepo{db: db}
}

// ListPublished returns published posts newest first, dropping rows whose
// slug cannot be linked.  limit <= 0 means no limit.  The limit is applied
// after slug filtering so callers always get up to limit usable posts.
func (r *PostRepo) ListPublished(ctx context.Context, limit int) ([]model.Post, error) {
	q := `SELECT ` + postColumns + ` FROM posts WHERE published = TRUE ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	out := make([]model.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		if !utils.ValidSlug(p.Slug) {
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return out, nil
}

// GetPublishedBySlug fetches a published post by exact slug.  It returns
// ErrPostNotFound when no row matches.
func (r *PostRepo) GetPublishedBySlug(ctx context.Context, slug string) (*model.Post, error) {
	q := `SELECT ` + postColumns + ` FROM posts WHERE slug = ? AND published = TRUE LIMIT 1`
	p, err := scanPost(r.db.QueryRowContext(ctx, q, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("get post %q: %w", slug, err)
	}
	return &p, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPost(s scanner) (model.Post, error) {
	var (
		p                                   model.Post
		slug, excerpt, cover, author, categ sql.NullString
		updated                             sql.NullTime
	)
	if err := s.Scan(&p.ID, &p.Title, &slug, &excerpt, &p.Content, &cover, &author, &categ,
		&p.Published, &p.CreatedAt, &updated); err != nil {
		return model.Post{}, err
	}
	p.Slug = slug.String
	p.Excerpt = excerpt.String
	p.Author = author.String
	p.Category = categ.String
	if cover.Valid && cover.String != "" {
		c := cover.String
		p.CoverImage = &c
	}
	if updated.Valid {
		u := updated.Time
		p.UpdatedAt = &u
	}
	return p, nil
}
