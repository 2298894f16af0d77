package service

import (
	"context"
	"net/url"
	"time"

	"github.com/iliyamo/clinic-space-site/internal/model"
)

// SitemapEntry is one URL of the sitemap.
type SitemapEntry struct {
	URL             string    `json:"url"`
	LastModified    time.Time `json:"lastModified"`
	ChangeFrequency string    `json:"changeFrequency"`
	Priority        float64   `json:"priority"`
}

type staticRoute struct {
	path     string
	freq     string
	priority float64
}

// StaticRoutes are the fixed marketing pages.
var staticRoutes = []staticRoute{
	{"/", "daily", 1.0},
	{"/rooms", "monthly", 0.8},
	{"/blog", "monthly", 0.8},
	{"/about", "monthly", 0.8},
	{"/contact", "monthly", 0.8},
}

// BuildSitemap assembles the sitemap from already-fetched posts and rooms.
// now is used for static routes and for records without timestamps.
func BuildSitemap(baseURL string, posts []model.Post, rooms []model.Room, now time.Time) []SitemapEntry {
	out := make([]SitemapEntry, 0, len(staticRoutes)+len(posts)+len(rooms))
	for _, r := range staticRoutes {
		out = append(out, SitemapEntry{URL: baseURL + r.path, LastModified: now, ChangeFrequency: r.freq, Priority: r.priority})
	}
	for _, p := range posts {
		out = append(out, SitemapEntry{
			URL:             baseURL + "/blog/" + url.PathEscape(p.Slug),
			LastModified:    lastModified(p.UpdatedAt, now),
			ChangeFrequency: "weekly",
			Priority:        0.7,
		})
	}
	for _, r := range rooms {
		out = append(out, SitemapEntry{
			URL:             baseURL + "/rooms/" + url.PathEscape(r.ID),
			LastModified:    lastModified(r.UpdatedAt, now),
			ChangeFrequency: "weekly",
			Priority:        0.9,
		})
	}
	return out
}

func lastModified(updated *time.Time, now time.Time) time.Time {
	if updated != nil && !updated.IsZero() {
		return *updated
	}
	return now
}

// Sitemap fetches posts and rooms and builds the sitemap.  Store failures
// leave the affected section out rather than failing the whole document.
func (s *ContentService) Sitemap(ctx context.Context, baseURL string, now time.Time) []SitemapEntry {
	posts := s.AllPosts(ctx)
	rooms := s.Rooms(ctx, RoomFilter{})
	return BuildSitemap(baseURL, posts, rooms, now)
}
