package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iliyamo/clinic-space-site/internal/model"
)

func TestAllPosts_FiltersInvalidSlugs(t *testing.T) {
	posts := &fakePosts{posts: []model.Post{
		{ID: "1", Slug: "a", Published: true},
		{ID: "2", Slug: "", Published: true},
		{ID: "3", Slug: "b", Published: true},
	}}
	svc := NewContentService(posts, &fakeRooms{}, zap.NewNop())

	got := svc.AllPosts(context.Background())

	slugs := []string{}
	for _, p := range got {
		slugs = append(slugs, p.Slug)
	}
	assert.Equal(t, []string{"a", "b"}, slugs)
}

func TestAllPosts_StoreErrorDegradesToEmpty(t *testing.T) {
	svc := NewContentService(&fakePosts{err: errors.New("down")}, &fakeRooms{}, zap.NewNop())

	got := svc.AllPosts(context.Background())

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRecentPosts_Limit(t *testing.T) {
	posts := &fakePosts{posts: []model.Post{{Slug: "a"}, {Slug: "b"}, {Slug: "c"}}}
	svc := NewContentService(posts, &fakeRooms{}, nil)

	assert.Len(t, svc.RecentPosts(context.Background(), 2), 2)
}

func TestPostBySlug(t *testing.T) {
	posts := &fakePosts{posts: []model.Post{{ID: "1", Slug: "saúde-mental", Published: true}}}
	svc := NewContentService(posts, &fakeRooms{}, nil)

	p := svc.PostBySlug(context.Background(), "sa%C3%BAde-mental")
	require.NotNil(t, p)
	assert.Equal(t, "1", p.ID)

	assert.Nil(t, svc.PostBySlug(context.Background(), "nao-existe"))
}

func TestPostBySlug_InvalidSlugSkipsQuery(t *testing.T) {
	posts := &fakePosts{}
	svc := NewContentService(posts, &fakeRooms{}, nil)

	for _, raw := range []string{"", "undefined", "null", "%zz"} {
		assert.Nil(t, svc.PostBySlug(context.Background(), raw))
	}
	assert.Empty(t, posts.slugCalls)
}

func TestPostBySlug_StoreError(t *testing.T) {
	svc := NewContentService(&fakePosts{err: errors.New("timeout")}, &fakeRooms{}, nil)
	assert.Nil(t, svc.PostBySlug(context.Background(), "a"))
}

func TestRooms_NeighborhoodAndSpecialty(t *testing.T) {
	rooms := &fakeRooms{rooms: []model.Room{
		{ID: "1", Neighborhood: "Tirol", Specialties: []string{"Psicologia"}},
		{ID: "2", Neighborhood: "Tirol", Specialties: []string{"Dermatologia"}},
		{ID: "3", Neighborhood: "Petrópolis", Specialties: []string{"psicologia"}},
		{ID: "4", Neighborhood: "Tirol", Specialties: []string{"Nutrição", "Neuropsicologia"}},
	}}
	svc := NewContentService(&fakePosts{}, rooms, nil)

	got := svc.Rooms(context.Background(), RoomFilter{Neighborhood: "Tirol", Specialty: "psicologia"})

	ids := []string{}
	for _, r := range got {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"1", "4"}, ids)
}

func TestRooms_AllMeansNoConstraint(t *testing.T) {
	rooms := &fakeRooms{rooms: []model.Room{room("1", "a"), room("2")}}
	svc := NewContentService(&fakePosts{}, rooms, nil)

	got := svc.Rooms(context.Background(), RoomFilter{Neighborhood: "all", Specialty: "ALL", Modality: ""})
	assert.Len(t, got, 2)
}

func TestRooms_StoreError(t *testing.T) {
	svc := NewContentService(&fakePosts{}, &fakeRooms{err: errors.New("down")}, nil)

	got := svc.Rooms(context.Background(), RoomFilter{})
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Empty(t, svc.FeaturedRooms(context.Background()))
}

func TestRoomByID(t *testing.T) {
	svc := NewContentService(&fakePosts{}, &fakeRooms{rooms: []model.Room{room("r1")}}, nil)

	require.NotNil(t, svc.RoomByID(context.Background(), "r1"))
	assert.Nil(t, svc.RoomByID(context.Background(), "r2"))
	assert.Nil(t, svc.RoomByID(context.Background(), " "))
}

func TestFeaturedRooms_UsesCatalogOrder(t *testing.T) {
	rooms := &fakeRooms{rooms: []model.Room{room("1", "cardio"), room("2", "cardio"), room("3", "derma"), room("4")}}
	svc := NewContentService(&fakePosts{}, rooms, nil)

	got := svc.FeaturedRooms(context.Background())
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
}

func TestTrackDegraded(t *testing.T) {
	broken := NewContentService(&fakePosts{err: errors.New("timeout")}, &fakeRooms{err: errors.New("timeout")}, zap.NewNop())
	ctx, degraded := TrackDegraded(context.Background())
	assert.False(t, degraded())
	assert.Empty(t, broken.Rooms(ctx, RoomFilter{}))
	assert.True(t, degraded())

	healthy := NewContentService(&fakePosts{}, &fakeRooms{}, zap.NewNop())
	ctx, degraded = TrackDegraded(context.Background())
	assert.Nil(t, healthy.PostBySlug(ctx, "missing"))
	assert.Nil(t, healthy.RoomByID(ctx, "missing"))
	assert.False(t, degraded())

	// untracked contexts are fine too
	assert.Empty(t, broken.AllPosts(context.Background()))
}
