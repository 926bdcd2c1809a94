package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/siteoptz/capture-service/internal/infra/http/middleware"
	"github.com/siteoptz/capture-service/internal/usecase"
)

type QuoteHandler struct {
	UseCase *usecase.CreateQuoteUseCase
}

func NewQuoteHandler(uc *usecase.CreateQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{UseCase: uc}
}

func (h *QuoteHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateQuoteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, quoteResponse{
			Success: false,
			Error:   "invalid_json",
			Message: "request body must be valid JSON",
		})
		return
	}

	output, err := h.UseCase.Execute(r.Context(), input)
	if err != nil {
		if usecase.IsDomainError(err) {
			middleware.RecordQuoteCreation("rejected")
			writeJSON(w, http.StatusBadRequest, quoteResponse{
				Success: false,
				Error:   "validation_error",
				Message: err.Error(),
			})
			return
		}

		middleware.RecordQuoteCreation("failed")
		writeJSON(w, http.StatusInternalServerError, quoteResponse{
			Success: false,
			Error:   "save_failed",
		})
		return
	}

	middleware.RecordQuoteCreation("ok")
	writeJSON(w, http.StatusOK, quoteResponse{
		Success:  true,
		QuoteID:  output.QuoteID,
		DeepLink: output.DeepLink,
	})
}
