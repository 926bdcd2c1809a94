package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/siteoptz/capture-service/internal/entity"
	"github.com/siteoptz/capture-service/internal/infra/queue"
)

// maxTokenAttempts bounds quote-id regeneration when the store reports a
// collision. Exhausting it means the random source is broken or the token
// space is saturated, neither of which is recoverable per-request.
const maxTokenAttempts = 5

type CreateQuoteUseCase struct {
	Repo    QuoteRepositoryInterface
	Tokens  TokenGenerator
	Queue   QueueProducerInterface
	BaseURL string
	Logger  *slog.Logger
}

func NewCreateQuoteUseCase(
	repo QuoteRepositoryInterface,
	tokens TokenGenerator,
	producer QueueProducerInterface,
	baseURL string,
	logger *slog.Logger,
) *CreateQuoteUseCase {
	return &CreateQuoteUseCase{
		Repo:    repo,
		Tokens:  tokens,
		Queue:   producer,
		BaseURL: baseURL,
		Logger:  logger,
	}
}

func (uc *CreateQuoteUseCase) Execute(ctx context.Context, input CreateQuoteInput) (*CreateQuoteOutput, error) {
	if validationErrors := ValidateCreateQuoteInput(input); len(validationErrors) > 0 {
		return nil, &DomainError{
			Code:    CodeValidation,
			Message: joinValidationErrors(validationErrors),
		}
	}

	now := time.Now()
	quote := &entity.Quote{
		Email:        input.Email,
		ToolName:     input.ToolName,
		SelectedPlan: input.SelectedPlan,
		DiscountCode: input.DiscountCode,
		ExpiresAt:    now.Add(entity.QuoteValidity),
		CreatedAt:    now,
	}

	// The unique index on quote_id is the only arbiter of uniqueness:
	// multiple API instances may race, so collisions surface as insert
	// failures and we retry with a fresh token.
	inserted := false
	for attempt := 0; attempt < maxTokenAttempts; attempt++ {
		tok, err := uc.Tokens.Generate()
		if err != nil {
			return nil, &TechnicalError{
				Code:    CodeGenerationExhausted,
				Message: "token generation failed: " + err.Error(),
			}
		}
		quote.QuoteID = tok

		err = uc.Repo.Insert(ctx, quote)
		if err == nil {
			inserted = true
			break
		}
		if errors.Is(err, entity.ErrDuplicateQuoteID) {
			continue
		}
		return nil, &TechnicalError{
			Code:    CodeSaveFailed,
			Message: "failed to persist quote: " + err.Error(),
		}
	}
	if !inserted {
		return nil, &TechnicalError{
			Code:    CodeGenerationExhausted,
			Message: fmt.Sprintf("no unique quote id after %d attempts", maxTokenAttempts),
		}
	}

	deepLink := uc.DeepLink(quote.QuoteID)

	// The quote is committed at this point. A dead broker must not fail
	// the request or roll anything back.
	payload := queue.QuoteEmailPayload{
		QuoteID:  quote.QuoteID,
		Email:    quote.Email,
		ToolName: quote.ToolName,
		DeepLink: deepLink,
	}
	if err := uc.Queue.PublishQuoteEmail(ctx, payload); err != nil {
		uc.Logger.Error("quote email publish failed",
			"quote_id", quote.QuoteID, "error", err)
	}

	return &CreateQuoteOutput{QuoteID: quote.QuoteID, DeepLink: deepLink}, nil
}

// DeepLink builds the pricing-page URL the emailed call-to-action points at.
func (uc *CreateQuoteUseCase) DeepLink(quoteID string) string {
	return strings.TrimRight(uc.BaseURL, "/") + "/pricing?quoteId=" + url.QueryEscape(quoteID)
}
