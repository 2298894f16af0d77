package service

import (
	"strings"

	"github.com/iliyamo/clinic-space-site/internal/model"
)

// FilterRooms applies the specialty and modality constraints of f.  The
// neighborhood is matched exactly here as well, so the function is correct
// on its own even when the store already applied it.
func FilterRooms(rooms []model.Room, f RoomFilter) []model.Room {
	f = f.normalized()
	out := make([]model.Room, 0, len(rooms))
	for _, r := range rooms {
		if f.Neighborhood != "" && r.Neighborhood != f.Neighborhood {
			continue
		}
		if f.Specialty != "" && !containsFold(r.Specialties, f.Specialty) {
			continue
		}
		if f.Modality != "" && !containsFold(r.Modalities, f.Modality) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// containsFold reports whether any entry contains needle, ignoring case.
func containsFold(list []string, needle string) bool {
	needle = strings.ToLower(needle)
	for _, v := range list {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}

// Neighborhoods returns the distinct neighborhoods of rooms in first-seen
// order, for the catalog filter dropdown.
func Neighborhoods(rooms []model.Room) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, r := range rooms {
		if r.Neighborhood == "" || seen[r.Neighborhood] {
			continue
		}
		seen[r.Neighborhood] = true
		out = append(out, r.Neighborhood)
	}
	return out
}
