// Package service holds the site's business rules: how rooms and posts are
// selected and displayed, how leads are validated, and how failures of the
// backing store degrade.  Handlers never see store errors from this layer.
package service

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/iliyamo/clinic-space-site/internal/model"
	"github.com/iliyamo/clinic-space-site/internal/repository"
	"github.com/iliyamo/clinic-space-site/internal/utils"
)

// PostStore is the read side of the posts table.
type PostStore interface {
	ListPublished(ctx context.Context, limit int) ([]model.Post, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*model.Post, error)
}

// RoomStore is the read side of the rooms table.
type RoomStore interface {
	List(ctx context.Context, neighborhood string) ([]model.Room, error)
	GetByID(ctx context.Context, id string) (*model.Room, error)
}

type degradedKey struct{}

// TrackDegraded returns a context on which store failures are recorded and
// a func reporting whether any read made with it was degraded.  Pages built
// from a degraded read must not be cached.
func TrackDegraded(ctx context.Context) (context.Context, func() bool) {
	var flag atomic.Bool
	return context.WithValue(ctx, degradedKey{}, &flag), flag.Load
}

func markDegraded(ctx context.Context) {
	if flag, ok := ctx.Value(degradedKey{}).(*atomic.Bool); ok {
		flag.Store(true)
	}
}

// ContentService answers every read the pages need.  Store failures are
// logged and turned into empty results; "not found" is returned as nil.
type ContentService struct {
	Posts   PostStore
	Catalog RoomStore
	Log     *zap.Logger
}

func NewContentService(posts PostStore, rooms RoomStore, log *zap.Logger) *ContentService {
	if posts == nil || rooms == nil {
		panic("nil store passed to NewContentService")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ContentService{Posts: posts, Catalog: rooms, Log: log}
}

// AllPosts lists published, linkable posts newest first.
func (s *ContentService) AllPosts(ctx context.Context) []model.Post {
	return s.RecentPosts(ctx, 0)
}

// RecentPosts lists at most n published posts (n <= 0: all).
func (s *ContentService) RecentPosts(ctx context.Context, n int) []model.Post {
	posts, err := s.Posts.ListPublished(ctx, n)
	if err != nil {
		s.Log.Error("list posts failed", zap.Int("limit", n), zap.Error(err))
		markDegraded(ctx)
		return []model.Post{}
	}
	out := make([]model.Post, 0, len(posts))
	for _, p := range posts {
		if utils.ValidSlug(p.Slug) {
			out = append(out, p)
		}
	}
	return out
}

// PostBySlug resolves a slug taken from a URL.  Invalid slugs are rejected
// without a query.  A missing post and a failed query both yield nil; only
// the latter is logged.
func (s *ContentService) PostBySlug(ctx context.Context, raw string) *model.Post {
	slug, ok := utils.DecodeSlug(raw)
	if !ok {
		return nil
	}
	p, err := s.Posts.GetPublishedBySlug(ctx, slug)
	if err != nil {
		if !errors.Is(err, repository.ErrPostNotFound) {
			s.Log.Error("get post failed", zap.String("slug", slug), zap.Error(err))
			markDegraded(ctx)
		}
		return nil
	}
	return p
}

// RoomFilter narrows the room catalog.  Empty fields and "all" mean no
// constraint.
type RoomFilter struct {
	Neighborhood string
	Specialty    string
	Modality     string
}

func (f RoomFilter) normalized() RoomFilter {
	clean := func(s string) string {
		s = strings.TrimSpace(s)
		if strings.EqualFold(s, "all") {
			return ""
		}
		return s
	}
	return RoomFilter{Neighborhood: clean(f.Neighborhood), Specialty: clean(f.Specialty), Modality: clean(f.Modality)}
}

// Rooms lists rooms newest first.  The neighborhood goes to the store; the
// list-valued constraints are applied here.
func (s *ContentService) Rooms(ctx context.Context, f RoomFilter) []model.Room {
	f = f.normalized()
	rooms, err := s.listRooms(ctx, f.Neighborhood)
	if err != nil {
		return []model.Room{}
	}
	return FilterRooms(rooms, f)
}

// listRooms is the unfiltered fetch shared by Rooms and FeaturedRooms.
func (s *ContentService) listRooms(ctx context.Context, neighborhood string) ([]model.Room, error) {
	rooms, err := s.Catalog.List(ctx, neighborhood)
	if err != nil {
		s.Log.Error("list rooms failed", zap.String("neighborhood", neighborhood), zap.Error(err))
		markDegraded(ctx)
		return nil, err
	}
	return rooms, nil
}

// RoomByID returns a room or nil.
func (s *ContentService) RoomByID(ctx context.Context, id string) *model.Room {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	room, err := s.Catalog.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrRoomNotFound) {
			s.Log.Error("get room failed", zap.String("room_id", id), zap.Error(err))
			markDegraded(ctx)
		}
		return nil
	}
	return room
}

// FeaturedRooms picks a varied subset of the catalog for the home page.
func (s *ContentService) FeaturedRooms(ctx context.Context) []model.Room {
	rooms, err := s.listRooms(ctx, "")
	if err != nil {
		return []model.Room{}
	}
	return SelectFeatured(rooms, FeaturedLimit)
}
