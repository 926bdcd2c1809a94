package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/siteoptz/capture-service/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// Insert persists a lead and fills the store-assigned id and timestamp.
func (r *LeadRepository) Insert(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, email, source, page_url, user_agent, ip_address)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	lead.ID = uuid.New().String()

	return r.DB.QueryRowContext(
		ctx,
		query,
		lead.ID,
		lead.Email,
		lead.Source,
		nullString(lead.PageURL),
		nullString(lead.UserAgent),
		nullString(lead.IPAddress),
	).Scan(&lead.CreatedAt)
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
