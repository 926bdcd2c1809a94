package usecase

import (
	"context"
	"strings"

	"github.com/siteoptz/capture-service/internal/entity"
)

type CaptureLeadUseCase struct {
	Repo LeadRepositoryInterface
}

func NewCaptureLeadUseCase(repo LeadRepositoryInterface) *CaptureLeadUseCase {
	return &CaptureLeadUseCase{Repo: repo}
}

func (uc *CaptureLeadUseCase) Execute(ctx context.Context, input CaptureLeadInput) (*CaptureLeadOutput, error) {
	if validationErrors := ValidateCaptureLeadInput(input); len(validationErrors) > 0 {
		return nil, &DomainError{
			Code:    CodeValidation,
			Message: joinValidationErrors(validationErrors),
		}
	}

	source := strings.TrimSpace(input.Source)
	if source == "" {
		source = entity.DefaultLeadSource
	}

	lead := &entity.Lead{
		Email:     input.Email,
		Source:    source,
		PageURL:   input.PageURL,
		UserAgent: input.UserAgent,
		IPAddress: input.IPAddress,
	}

	if err := uc.Repo.Insert(ctx, lead); err != nil {
		return nil, &TechnicalError{
			Code:    CodeSaveFailed,
			Message: "failed to persist lead: " + err.Error(),
		}
	}

	return &CaptureLeadOutput{ID: lead.ID}, nil
}
