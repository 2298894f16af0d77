package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/clinic-space-site/internal/model"
)

// LeadRepo writes contact requests.  There is no read path.
type LeadRepo struct {
	db *sql.DB
}

func NewLeadRepo(db *sql.DB) *LeadRepo {
	return &LeadRepo{db: db}
}

// Create inserts a lead.  ID and CreatedAt are filled in when empty.
// Duplicate submissions are stored as separate rows.
func (r *LeadRepo) Create(ctx context.Context, l *model.Lead) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	const q = "INSERT INTO leads (id, name, phone, specialty, source, created_at) VALUES (?, ?, ?, ?, ?, ?)"
	if _, err := r.db.ExecContext(ctx, q, l.ID, l.Name, l.Phone, l.Specialty, nullIfEmpty(l.Source), l.CreatedAt); err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
