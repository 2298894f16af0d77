// Package handler exposes the site's HTTP handlers: server-rendered pages,
// the read-only browse API, the lead form endpoint, the tracking relay and
// the sitemap.
package handler

import (
	"context"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/clinic-space-site/internal/model"
	"github.com/iliyamo/clinic-space-site/internal/service"
	"github.com/iliyamo/clinic-space-site/internal/view"
)

// homePostCount is how many recent articles the home page lists.
const homePostCount = 3

const siteName = "Salas Clínicas"

// PageHandler renders the marketing pages.  Store failures never surface
// here: the content service already degraded them to empty sections.
type PageHandler struct {
	Content *service.ContentService
	Pricing service.PricingPolicy
	BaseURL string
}

func NewPageHandler(content *service.ContentService, pricing service.PricingPolicy, baseURL string) *PageHandler {
	if content == nil {
		panic("nil content service passed to NewPageHandler")
	}
	return &PageHandler{Content: content, Pricing: pricing, BaseURL: baseURL}
}

func (h *PageHandler) page(c echo.Context, title string) view.Page {
	path := c.Request().URL.Path
	return view.Page{Title: title, Canonical: h.BaseURL + path, Path: path}
}

// homeData fetches featured rooms and recent posts concurrently; the two
// reads are independent.
func (h *PageHandler) homeData(ctx context.Context) ([]model.Room, []model.Post) {
	var (
		wg    sync.WaitGroup
		rooms []model.Room
		posts []model.Post
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		rooms = h.Content.FeaturedRooms(ctx)
	}()
	go func() {
		defer wg.Done()
		posts = h.Content.RecentPosts(ctx, homePostCount)
	}()
	wg.Wait()
	return rooms, posts
}

// Home renders "/".
func (h *PageHandler) Home(c echo.Context) error {
	ctx, done := readCtx(c)
	rooms, posts := h.homeData(ctx)
	done()
	p := h.page(c, siteName+" · Aluguel de consultórios")
	p.JSONLD = map[string]any{
		"@context": "https://schema.org",
		"@type":    "LocalBusiness",
		"name":     siteName,
		"url":      h.BaseURL,
	}
	return c.Render(http.StatusOK, "home", view.HomePage{
		Page:  p,
		Rooms: view.Cards(rooms, h.Pricing),
		Posts: posts,
	})
}

// Rooms renders "/rooms" with optional ?neighborhood=&specialty=&modality=.
func (h *PageHandler) Rooms(c echo.Context) error {
	ctx, done := readCtx(c)
	filter := filterFromQuery(c)
	rooms := h.Content.Rooms(ctx, filter)
	// the dropdown lists every neighborhood, not only the filtered ones
	all := rooms
	if filter.Neighborhood != "" || filter.Specialty != "" || filter.Modality != "" {
		all = h.Content.Rooms(ctx, service.RoomFilter{})
	}
	done()
	return c.Render(http.StatusOK, "rooms", view.RoomsPage{
		Page:          h.page(c, "Salas disponíveis · "+siteName),
		Rooms:         view.Cards(rooms, h.Pricing),
		Filter:        filter,
		Neighborhoods: service.Neighborhoods(all),
	})
}

// RoomDetail renders "/rooms/:id".
func (h *PageHandler) RoomDetail(c echo.Context) error {
	ctx, done := readCtx(c)
	room := h.Content.RoomByID(ctx, c.Param("id"))
	done()
	if room == nil {
		return h.NotFound(c)
	}
	p := h.page(c, room.Name+" · "+siteName)
	price := h.Pricing.Display(*room)
	p.JSONLD = view.RoomLD(*room, p.Canonical, price)
	return c.Render(http.StatusOK, "room", view.RoomPage{Page: p, Room: *room, Price: price})
}

// Blog renders "/blog".
func (h *PageHandler) Blog(c echo.Context) error {
	ctx, done := readCtx(c)
	posts := h.Content.AllPosts(ctx)
	done()
	return c.Render(http.StatusOK, "blog", view.BlogPage{
		Page:  h.page(c, "Blog · "+siteName),
		Posts: posts,
	})
}

// BlogPost renders "/blog/:slug".
func (h *PageHandler) BlogPost(c echo.Context) error {
	ctx, done := readCtx(c)
	post := h.Content.PostBySlug(ctx, c.Param("slug"))
	done()
	if post == nil {
		return h.NotFound(c)
	}
	p := h.page(c, post.Title+" · "+siteName)
	p.JSONLD = view.PostLD(*post, p.Canonical)
	return c.Render(http.StatusOK, "post", view.PostPage{Page: p, Post: *post})
}

// NotFound renders the 404 page.
func (h *PageHandler) NotFound(c echo.Context) error {
	p := view.Page{Title: "Página não encontrada · " + siteName, Path: c.Request().URL.Path}
	return c.Render(http.StatusNotFound, "notfound", p)
}

// readCtx tracks store failures during the reads for c.  Calling done
// before writing the response marks a degraded response as no-store so
// the page cache does not keep it.
func readCtx(c echo.Context) (ctx context.Context, done func()) {
	ctx, degraded := service.TrackDegraded(c.Request().Context())
	return ctx, func() {
		if degraded() {
			c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
		}
	}
}

func filterFromQuery(c echo.Context) service.RoomFilter {
	return service.RoomFilter{
		Neighborhood: c.QueryParam("neighborhood"),
		Specialty:    c.QueryParam("specialty"),
		Modality:     c.QueryParam("modality"),
	}
}
