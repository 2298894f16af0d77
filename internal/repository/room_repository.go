package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/iliyamo/clinic-space-site/internal/model"
	"github.com/iliyamo/clinic-space-site/internal/utils"
)

// ErrRoomNotFound is returned when a room id does not exist.
var ErrRoomNotFound = errors.New("room not found")

const roomColumns = `id, name, description, neighborhood, address, images, hourly_price, shift_price,
	amenities, specialties, modalities, rating, size, created_at, updated_at`

// RoomRepo reads rental rooms.
type RoomRepo struct {
	db *sql.DB
}

func NewRoomRepo(db *sql.DB) *RoomRepo {
	return &RoomRepo{db: db}
}

// List returns rooms newest first.  A non-empty neighborhood is matched
// exactly in SQL; list-valued columns are not queryable and are filtered by
// the caller.
func (r *RoomRepo) List(ctx context.Context, neighborhood string) ([]model.Room, error) {
	where := []string{}
	args := []any{}
	if neighborhood != "" {
		where = append(where, "neighborhood = ?")
		args = append(args, neighborhood)
	}
	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}
	q := `SELECT ` + roomColumns + ` FROM rooms WHERE ` + cond + ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	out := make([]model.Room, 0)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		out = append(out, room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return out, nil
}

// GetByID fetches a room.  It returns ErrRoomNotFound if no row is found.
func (r *RoomRepo) GetByID(ctx context.Context, id string) (*model.Room, error) {
	q := `SELECT ` + roomColumns + ` FROM rooms WHERE id = ? LIMIT 1`
	room, err := scanRoom(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("get room %q: %w", id, err)
	}
	return &room, nil
}

// scanRoom is the single place where loosely encoded list columns are
// normalized.
func scanRoom(s scanner) (model.Room, error) {
	var (
		room                                       model.Room
		desc, hood, addr                           sql.NullString
		images, amenities, specialties, modalities []byte
		hourly, shift, rating, size                sql.NullFloat64
		updated                                    sql.NullTime
	)
	if err := s.Scan(&room.ID, &room.Name, &desc, &hood, &addr, &images, &hourly, &shift,
		&amenities, &specialties, &modalities, &rating, &size, &room.CreatedAt, &updated); err != nil {
		return model.Room{}, err
	}
	room.Description = desc.String
	room.Neighborhood = hood.String
	room.Address = addr.String
	room.Images = utils.Strings(images)
	room.Amenities = utils.Strings(amenities)
	room.Specialties = utils.Strings(specialties)
	room.Modalities = utils.Strings(modalities)
	room.HourlyPrice = floatPtr(hourly)
	room.ShiftPrice = floatPtr(shift)
	room.Rating = floatPtr(rating)
	room.Size = floatPtr(size)
	if updated.Valid {
		u := updated.Time
		room.UpdatedAt = &u
	}
	return room, nil
}

func floatPtr(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}
