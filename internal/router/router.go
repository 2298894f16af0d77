// Package router registers the site's HTTP routes.
package router

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/clinic-space-site/internal/handler"
)

// Deps bundles what the routes need.  Cache wraps cacheable GETs and Limit
// guards the write endpoints; either may be a pass-through.
type Deps struct {
	DB       *sql.DB
	Pages    *handler.PageHandler
	Public   *handler.PublicHandler
	Leads    *handler.LeadHandler
	Tracking *handler.TrackingHandler
	Cache    echo.MiddlewareFunc
	Limit    echo.MiddlewareFunc
}

func passThrough(next echo.HandlerFunc) echo.HandlerFunc { return next }

// RegisterRoutes registers probes, pages, the browse API, the write
// endpoints and the sitemap.
func RegisterRoutes(e *echo.Echo, d Deps) {
	if d.Cache == nil {
		d.Cache = passThrough
	}
	if d.Limit == nil {
		d.Limit = passThrough
	}

	e.GET("/healthz", handler.Health)
	if d.DB != nil {
		e.GET("/readyz", handler.Ready(d.DB))
	}

	RegisterPages(e, d.Pages, d.Cache)
	RegisterPublic(e, d.Public, d.Cache)

	api := e.Group("/api", d.Limit)
	api.POST("/leads", d.Leads.Submit)
	api.POST("/track", d.Tracking.Track)
}

// RegisterPages registers the server-rendered pages and the fallback 404.
func RegisterPages(e *echo.Echo, p *handler.PageHandler, cache echo.MiddlewareFunc) {
	e.GET("/", p.Home, cache)
	e.GET("/rooms", p.Rooms, cache)
	e.GET("/rooms/:id", p.RoomDetail, cache)
	e.GET("/blog", p.Blog, cache)
	e.GET("/blog/:slug", p.BlogPost, cache)

	e.HTTPErrorHandler = notFoundPage(e, p)
}

// RegisterPublic registers the JSON browse API and the XML sitemap.
func RegisterPublic(e *echo.Echo, h *handler.PublicHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/v1", cache)
	g.GET("/rooms", h.GetRooms)
	g.GET("/rooms/featured", h.GetFeaturedRooms)
	g.GET("/rooms/:id", h.GetRoom)
	g.GET("/posts", h.GetPosts)
	g.GET("/posts/:slug", h.GetPost)
	g.GET("/sitemap", h.GetSitemap)

	e.GET("/sitemap.xml", h.SitemapXML, cache)
}

// notFoundPage renders the HTML 404 page for unmatched browser routes and
// defers everything else to echo's default handler.
func notFoundPage(e *echo.Echo, p *handler.PageHandler) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		var he *echo.HTTPError
		if errors.As(err, &he) && he.Code == http.StatusNotFound && c.Request().Method == http.MethodGet &&
			!isAPIPath(c.Request().URL.Path) {
			if rerr := p.NotFound(c); rerr == nil {
				return
			}
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}

func isAPIPath(path string) bool {
	return strings.HasPrefix(path, "/v1/") || strings.HasPrefix(path, "/api/")
}
