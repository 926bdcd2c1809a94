package usecase

import (
	"context"

	"github.com/siteoptz/capture-service/internal/entity"
	"github.com/siteoptz/capture-service/internal/infra/queue"
)

type CaptureLeadInput struct {
	Email   string `json:"email"`
	Source  string `json:"source,omitempty"`
	PageURL string `json:"pageUrl,omitempty"`

	// Filled from the transport layer, never from the request body.
	UserAgent string `json:"-"`
	IPAddress string `json:"-"`
}

type CaptureLeadOutput struct {
	ID string `json:"id"`
}

type CreateQuoteInput struct {
	Email        string `json:"email"`
	ToolName     string `json:"toolName"`
	SelectedPlan string `json:"selectedPlan,omitempty"`
	DiscountCode string `json:"discountCode,omitempty"`
}

type CreateQuoteOutput struct {
	QuoteID  string `json:"quoteId"`
	DeepLink string `json:"deepLink"`
}

type LeadRepositoryInterface interface {
	Insert(ctx context.Context, lead *entity.Lead) error
}

type QuoteRepositoryInterface interface {
	Insert(ctx context.Context, quote *entity.Quote) error
}

type TokenGenerator interface {
	Generate() (string, error)
}

type QueueProducerInterface interface {
	PublishQuoteEmail(ctx context.Context, payload queue.QuoteEmailPayload) error
}
