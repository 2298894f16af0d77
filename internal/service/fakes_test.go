package service

import (
	"context"
	"sync"

	"github.com/iliyamo/clinic-space-site/internal/model"
	"github.com/iliyamo/clinic-space-site/internal/queue"
	"github.com/iliyamo/clinic-space-site/internal/repository"
)

type fakePosts struct {
	posts     []model.Post
	err       error
	slugCalls []string
}

func (f *fakePosts) ListPublished(_ context.Context, limit int) ([]model.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := append([]model.Post(nil), f.posts...)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakePosts) GetPublishedBySlug(_ context.Context, slug string) (*model.Post, error) {
	f.slugCalls = append(f.slugCalls, slug)
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.posts {
		if p.Slug == slug && p.Published {
			p := p
			return &p, nil
		}
	}
	return nil, repository.ErrPostNotFound
}

type fakeRooms struct {
	rooms []model.Room
	err   error
}

func (f *fakeRooms) List(_ context.Context, neighborhood string) ([]model.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []model.Room{}
	for _, r := range f.rooms {
		if neighborhood == "" || r.Neighborhood == neighborhood {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRooms) GetByID(_ context.Context, id string) (*model.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.rooms {
		if r.ID == id {
			r := r
			return &r, nil
		}
	}
	return nil, repository.ErrRoomNotFound
}

type fakeLeads struct {
	created []model.Lead
	err     error
}

func (f *fakeLeads) Create(_ context.Context, l *model.Lead) error {
	if f.err != nil {
		return f.err
	}
	l.ID = "lead-1"
	f.created = append(f.created, *l)
	return nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []queue.SiteEvent
	err    error
}

func (f *fakePublisher) Publish(_ context.Context, ev queue.SiteEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, ev)
	return f.err
}

type fakeForwarder struct {
	events []queue.SiteEvent
	err    error
}

func (f *fakeForwarder) Forward(_ context.Context, ev queue.SiteEvent) error {
	f.events = append(f.events, ev)
	return f.err
}

func room(id string, specialties ...string) model.Room {
	if specialties == nil {
		specialties = []string{}
	}
	return model.Room{ID: id, Name: "Sala " + id, Specialties: specialties, Modalities: []string{}, Images: []string{}, Amenities: []string{}}
}

func price(v float64) *float64 { return &v }
