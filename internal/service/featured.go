package service

import (
	"strings"

	"github.com/iliyamo/clinic-space-site/internal/model"
)

// FeaturedLimit caps the home page selection.
const FeaturedLimit = 4

// SelectFeatured keeps the first room for each distinct primary specialty,
// in input order, up to limit rooms.  Rooms without specialties are skipped.
func SelectFeatured(rooms []model.Room, limit int) []model.Room {
	out := make([]model.Room, 0, limit)
	seen := make(map[string]struct{}, limit)
	for _, r := range rooms {
		if len(out) >= limit {
			break
		}
		key := strings.ToLower(strings.TrimSpace(r.PrimarySpecialty()))
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}
