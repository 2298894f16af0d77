package model

import "time"

// Post mirrors a row of the `posts` table.  Slug may be empty when the
// admin tooling saved a draft without one; such posts are never linked.
type Post struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Slug       string     `json:"slug"`
	Excerpt    string     `json:"excerpt"`
	Content    string     `json:"content"` // HTML body
	CoverImage *string    `json:"cover_image,omitempty"`
	Author     string     `json:"author"`
	Category   string     `json:"category"`
	Published  bool       `json:"published"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}
