package model

import "time"

// Room represents a rentable clinic room as stored in the `rooms` table.
// The list-typed columns (images, amenities, specialties, modalities) are
// written by external admin tooling, sometimes as JSON arrays and sometimes
// as JSON-encoded strings; the repository normalizes them before a Room is
// built, so every list here is non-nil.
//
// Fields:
//  ID           – primary key identifier (uuid).
//  Name         – display name of the room.
//  Description  – free-text description.
//  Neighborhood – neighborhood used for exact-match filtering.
//  Address      – street address.
//  Images       – image URLs, first one is the cover.
//  HourlyPrice  – price per hour (nil when not published).
//  ShiftPrice   – price per shift (nil when not published).
//  Amenities    – amenity labels.
//  Specialties  – medical specialties the room suits; the first is primary.
//  Modalities   – rental modalities (hourly, shift, monthly...).
//  Rating       – optional average rating.
//  Size         – optional size in square meters.
type Room struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Neighborhood string     `json:"neighborhood"`
	Address      string     `json:"address"`
	Images       []string   `json:"images"`
	HourlyPrice  *float64   `json:"hourly_price,omitempty"`
	ShiftPrice   *float64   `json:"shift_price,omitempty"`
	Amenities    []string   `json:"amenities"`
	Specialties  []string   `json:"specialties"`
	Modalities   []string   `json:"modalities"`
	Rating       *float64   `json:"rating,omitempty"`
	Size         *float64   `json:"size,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// PrimarySpecialty returns the first specialty or "" when none is set.
func (r Room) PrimarySpecialty() string {
	if len(r.Specialties) == 0 {
		return ""
	}
	return r.Specialties[0]
}

// CoverImage returns the first image URL or "".
func (r Room) CoverImage() string {
	if len(r.Images) == 0 {
		return ""
	}
	return r.Images[0]
}
