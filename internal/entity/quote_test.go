package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/siteoptz/capture-service/internal/entity"
)

func TestQuoteExpired(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	q := &entity.Quote{
		CreatedAt: created,
		ExpiresAt: created.Add(entity.QuoteValidity),
	}

	assert.False(t, q.Expired(created))
	assert.False(t, q.Expired(created.Add(entity.QuoteValidity-time.Second)))
	// Expiry boundary is inclusive.
	assert.True(t, q.Expired(created.Add(entity.QuoteValidity)))
	assert.True(t, q.Expired(created.Add(entity.QuoteValidity+time.Hour)))
}
