package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/clinic-space-site/internal/model"
)

func ids(rooms []model.Room) []string {
	out := []string{}
	for _, r := range rooms {
		out = append(out, r.ID)
	}
	return out
}

func TestSelectFeatured_OnePerSpecialty(t *testing.T) {
	rooms := []model.Room{room("1", "cardio"), room("2", "cardio"), room("3", "derma"), room("4")}

	assert.Equal(t, []string{"1", "3"}, ids(SelectFeatured(rooms, FeaturedLimit)))
}

func TestSelectFeatured_CaseAndSpaceInsensitive(t *testing.T) {
	rooms := []model.Room{room("1", "Psicologia"), room("2", " psicologia "), room("3", "PSICOLOGIA", "nutri")}

	assert.Equal(t, []string{"1"}, ids(SelectFeatured(rooms, FeaturedLimit)))
}

func TestSelectFeatured_Cap(t *testing.T) {
	rooms := []model.Room{
		room("1", "a"), room("2", "b"), room("3", "a"), room("4", "c"),
		room("5", "d"), room("6", "e"), room("7", "f"),
	}

	assert.Equal(t, []string{"1", "2", "4", "5"}, ids(SelectFeatured(rooms, FeaturedLimit)))
}

func TestSelectFeatured_Empty(t *testing.T) {
	assert.Empty(t, SelectFeatured(nil, FeaturedLimit))
	assert.Empty(t, SelectFeatured([]model.Room{room("1"), room("2", "")}, FeaturedLimit))
}
