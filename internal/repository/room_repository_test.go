package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var roomCols = []string{"id", "name", "description", "neighborhood", "address", "images", "hourly_price", "shift_price",
	"amenities", "specialties", "modalities", "rating", "size", "created_at", "updated_at"}

func setupRoomRepo(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *RoomRepo) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return db, mock, NewRoomRepo(db)
}

func TestRoomList_NormalizesListColumns(t *testing.T) {
	db, mock, repo := setupRoomRepo(t)
	defer db.Close()

	created := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(roomCols).
		AddRow("r1", "Sala 1", "Ampla", "Tirol", "Rua A, 10",
			`["https://cdn/1.jpg"]`, 60.0, 200.0,
			`"[\"wifi\",\"maca\"]"`, `["Psicologia"]`, nil,
			4.8, 12.5, created, nil).
		AddRow("r2", "Sala 2", nil, "Tirol", nil,
			"not-json", nil, nil,
			nil, `{"bad":true}`, `["turno"]`,
			nil, nil, created.Add(-time.Hour), created)

	mock.ExpectQuery(`FROM rooms WHERE neighborhood = \? ORDER BY created_at DESC`).
		WithArgs("Tirol").
		WillReturnRows(rows)

	rooms, err := repo.List(context.Background(), "Tirol")

	require.NoError(t, err)
	require.Len(t, rooms, 2)

	r1 := rooms[0]
	assert.Equal(t, []string{"https://cdn/1.jpg"}, r1.Images)
	assert.Equal(t, []string{"wifi", "maca"}, r1.Amenities)
	assert.Equal(t, []string{"Psicologia"}, r1.Specialties)
	assert.Equal(t, []string{}, r1.Modalities)
	require.NotNil(t, r1.HourlyPrice)
	assert.Equal(t, 60.0, *r1.HourlyPrice)
	assert.Nil(t, r1.UpdatedAt)

	r2 := rooms[1]
	assert.Empty(t, r2.Images)
	assert.Empty(t, r2.Specialties)
	assert.Equal(t, []string{"turno"}, r2.Modalities)
	assert.Nil(t, r2.HourlyPrice)
	assert.NotNil(t, r2.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomList_NoNeighborhood(t *testing.T) {
	db, mock, repo := setupRoomRepo(t)
	defer db.Close()

	mock.ExpectQuery(`FROM rooms WHERE 1=1 ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows(roomCols))

	rooms, err := repo.List(context.Background(), "")

	require.NoError(t, err)
	assert.NotNil(t, rooms)
	assert.Empty(t, rooms)
}

func TestRoomGetByID_NotFound(t *testing.T) {
	db, mock, repo := setupRoomRepo(t)
	defer db.Close()

	mock.ExpectQuery(`FROM rooms WHERE id = \?`).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows(roomCols))

	room, err := repo.GetByID(context.Background(), "nope")

	assert.Nil(t, room)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}
