package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/clinic-space-site/internal/model"
	"github.com/iliyamo/clinic-space-site/internal/service"
)

// PublicHandler serves the read-only JSON browse API used by the site's
// client-side widgets.  Responses mirror what the pages show, including the
// display price.
type PublicHandler struct {
	Content *service.ContentService
	Pricing service.PricingPolicy
	BaseURL string
}

func NewPublicHandler(content *service.ContentService, pricing service.PricingPolicy, baseURL string) *PublicHandler {
	if content == nil {
		panic("nil content service passed to NewPublicHandler")
	}
	return &PublicHandler{Content: content, Pricing: pricing, BaseURL: baseURL}
}

// PublicRoom is a room plus its display price.
type PublicRoom struct {
	model.Room
	Price service.PriceDisplay `json:"price"`
}

func (h *PublicHandler) publicRooms(rooms []model.Room) []PublicRoom {
	out := make([]PublicRoom, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, PublicRoom{Room: r, Price: h.Pricing.Display(r)})
	}
	return out
}

// GetRooms lists rooms.  Query: neighborhood, specialty, modality.
func (h *PublicHandler) GetRooms(c echo.Context) error {
	ctx, done := readCtx(c)
	rooms := h.Content.Rooms(ctx, filterFromQuery(c))
	done()
	return c.JSON(http.StatusOK, echo.Map{"items": h.publicRooms(rooms)})
}

// GetFeaturedRooms lists the home page selection.
func (h *PublicHandler) GetFeaturedRooms(c echo.Context) error {
	ctx, done := readCtx(c)
	rooms := h.Content.FeaturedRooms(ctx)
	done()
	return c.JSON(http.StatusOK, echo.Map{"items": h.publicRooms(rooms)})
}

// GetRoom returns one room or 404.
func (h *PublicHandler) GetRoom(c echo.Context) error {
	ctx, done := readCtx(c)
	room := h.Content.RoomByID(ctx, c.Param("id"))
	done()
	if room == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
	}
	return c.JSON(http.StatusOK, PublicRoom{Room: *room, Price: h.Pricing.Display(*room)})
}

// GetPosts lists published posts; ?limit=n returns the n most recent.
func (h *PublicHandler) GetPosts(c echo.Context) error {
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil || limit < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid limit"})
		}
	}
	ctx, done := readCtx(c)
	posts := h.Content.RecentPosts(ctx, limit)
	done()
	return c.JSON(http.StatusOK, echo.Map{"items": posts})
}

// GetPost returns one published post or 404.
func (h *PublicHandler) GetPost(c echo.Context) error {
	ctx, done := readCtx(c)
	post := h.Content.PostBySlug(ctx, c.Param("slug"))
	done()
	if post == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "post not found"})
	}
	return c.JSON(http.StatusOK, post)
}

// GetSitemap returns the sitemap entries as JSON.
func (h *PublicHandler) GetSitemap(c echo.Context) error {
	ctx, done := readCtx(c)
	entries := h.Content.Sitemap(ctx, h.BaseURL, time.Now().UTC())
	done()
	return c.JSON(http.StatusOK, echo.Map{"items": entries})
}
