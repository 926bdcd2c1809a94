package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/siteoptz/capture-service/internal/entity"
)

const uniqueViolation = "23505"

type QuoteRepository struct {
	DB *sql.DB
}

func NewQuoteRepository(db *sql.DB) *QuoteRepository {
	return &QuoteRepository{DB: db}
}

// Insert persists a quote. A collision on the quote_id unique index comes
// back as entity.ErrDuplicateQuoteID so the caller can retry with a new
// token; every other failure is returned as-is.
func (r *QuoteRepository) Insert(ctx context.Context, quote *entity.Quote) error {
	query := `
		INSERT INTO quotes (id, quote_id, email, tool_name, selected_plan, discount_code, expires_at, reminded, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	quote.ID = uuid.New().String()

	_, err := r.DB.ExecContext(ctx, query,
		quote.ID,
		quote.QuoteID,
		quote.Email,
		quote.ToolName,
		nullString(quote.SelectedPlan),
		nullString(quote.DiscountCode),
		quote.ExpiresAt,
		quote.Reminded,
		quote.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation && pqErr.Constraint == "idx_quotes_quote_id" {
			return entity.ErrDuplicateQuoteID
		}
		return err
	}

	return nil
}

// FindDueForReminder returns active quotes expiring within the window that
// have not been reminded yet.
func (r *QuoteRepository) FindDueForReminder(ctx context.Context, window time.Duration) ([]*entity.Quote, error) {
	query := `
		SELECT id, quote_id, email, tool_name, COALESCE(selected_plan, ''), COALESCE(discount_code, ''), expires_at, reminded, created_at
		FROM quotes
		WHERE reminded = FALSE
		  AND expires_at > NOW()
		  AND expires_at <= NOW() + $1 * INTERVAL '1 second'
		ORDER BY expires_at
	`

	rows, err := r.DB.QueryContext(ctx, query, int64(window.Seconds()))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quotes []*entity.Quote
	for rows.Next() {
		q := &entity.Quote{}
		if err := rows.Scan(
			&q.ID,
			&q.QuoteID,
			&q.Email,
			&q.ToolName,
			&q.SelectedPlan,
			&q.DiscountCode,
			&q.ExpiresAt,
			&q.Reminded,
			&q.CreatedAt,
		); err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}

	return quotes, rows.Err()
}

// MarkReminded flags a quote so the reminder job does not email twice.
func (r *QuoteRepository) MarkReminded(ctx context.Context, quoteID string) error {
	query := `UPDATE quotes SET reminded = TRUE WHERE quote_id = $1`

	_, err := r.DB.ExecContext(ctx, query, quoteID)
	return err
}
