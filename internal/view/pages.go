package view

import (
	"github.com/iliyamo/clinic-space-site/internal/model"
	"github.com/iliyamo/clinic-space-site/internal/service"
)

// Page carries the fields the layout reads.  Every page's data embeds it.
type Page struct {
	Title     string
	Canonical string
	Path      string
	JSONLD    any
}

// RoomCard pairs a room with its display price.
type RoomCard struct {
	Room  model.Room
	Price service.PriceDisplay
}

type HomePage struct {
	Page
	Rooms []RoomCard
	Posts []model.Post
}

type RoomsPage struct {
	Page
	Rooms         []RoomCard
	Filter        service.RoomFilter
	Neighborhoods []string
}

type RoomPage struct {
	Page
	Room  model.Room
	Price service.PriceDisplay
}

type BlogPage struct {
	Page
	Posts []model.Post
}

type PostPage struct {
	Page
	Post model.Post
}

// Cards applies the pricing policy to each room.
func Cards(rooms []model.Room, p service.PricingPolicy) []RoomCard {
	out := make([]RoomCard, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, RoomCard{Room: r, Price: p.Display(r)})
	}
	return out
}

// RoomLD builds the schema.org block for a room detail page.
func RoomLD(r model.Room, url string, price service.PriceDisplay) map[string]any {
	ld := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Place",
		"name":        r.Name,
		"description": r.Description,
		"url":         url,
		"address": map[string]any{
			"@type":           "PostalAddress",
			"streetAddress":   r.Address,
			"addressLocality": r.Neighborhood,
		},
	}
	if len(r.Images) > 0 {
		ld["image"] = r.Images
	}
	if price.Hourly != nil {
		ld["makesOffer"] = map[string]any{
			"@type":         "Offer",
			"price":         *price.Hourly,
			"priceCurrency": "BRL",
		}
	}
	if r.Rating != nil {
		ld["aggregateRating"] = map[string]any{"@type": "AggregateRating", "ratingValue": *r.Rating}
	}
	return ld
}

// PostLD builds the schema.org BlogPosting block for an article.
func PostLD(p model.Post, url string) map[string]any {
	ld := map[string]any{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      p.Title,
		"description":   p.Excerpt,
		"url":           url,
		"datePublished": p.CreatedAt,
		"author":        map[string]any{"@type": "Person", "name": p.Author},
	}
	if p.UpdatedAt != nil {
		ld["dateModified"] = *p.UpdatedAt
	}
	if p.CoverImage != nil {
		ld["image"] = *p.CoverImage
	}
	return ld
}
