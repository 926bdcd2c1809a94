package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/siteoptz/capture-service/internal/infra/http/middleware"
	"github.com/siteoptz/capture-service/internal/usecase"
)

type LeadHandler struct {
	UseCase *usecase.CaptureLeadUseCase
}

func NewLeadHandler(uc *usecase.CaptureLeadUseCase) *LeadHandler {
	return &LeadHandler{UseCase: uc}
}

func (h *LeadHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.CaptureLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, captureResponse{
			Success: false,
			Error:   "invalid_json",
			Message: "request body must be valid JSON",
		})
		return
	}

	// Request metadata comes from the transport, never the body.
	input.UserAgent = r.UserAgent()
	input.IPAddress = getClientIP(r)

	if _, err := h.UseCase.Execute(r.Context(), input); err != nil {
		if usecase.IsDomainError(err) {
			middleware.RecordLeadCapture("rejected")
			writeJSON(w, http.StatusBadRequest, captureResponse{
				Success: false,
				Error:   "validation_error",
				Message: err.Error(),
			})
			return
		}

		middleware.RecordLeadCapture("failed")
		writeJSON(w, http.StatusInternalServerError, captureResponse{
			Success: false,
			Error:   "save_failed",
		})
		return
	}

	middleware.RecordLeadCapture("ok")
	writeJSON(w, http.StatusOK, captureResponse{Success: true})
}
