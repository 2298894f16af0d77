package handler

import (
	"encoding/xml"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

type urlset struct {
	XMLName xml.Name    `xml:"urlset"`
	Xmlns   string      `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// SitemapXML serves /sitemap.xml in the sitemaps.org format.
func (h *PublicHandler) SitemapXML(c echo.Context) error {
	ctx, done := readCtx(c)
	entries := h.Content.Sitemap(ctx, h.BaseURL, time.Now().UTC())
	done()
	set := urlset{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9", URLs: make([]sitemapURL, 0, len(entries))}
	for _, e := range entries {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        e.URL,
			LastMod:    e.LastModified.UTC().Format(time.RFC3339),
			ChangeFreq: e.ChangeFrequency,
			Priority:   strconv.FormatFloat(e.Priority, 'f', 1, 64),
		})
	}
	return c.XML(http.StatusOK, set)
}
