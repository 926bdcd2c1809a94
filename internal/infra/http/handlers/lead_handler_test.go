package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/siteoptz/capture-service/internal/entity"
	"github.com/siteoptz/capture-service/internal/infra/http/handlers"
	"github.com/siteoptz/capture-service/internal/usecase"
)

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Insert(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func newLeadHandler(repo usecase.LeadRepositoryInterface) *handlers.LeadHandler {
	return handlers.NewLeadHandler(usecase.NewCaptureLeadUseCase(repo))
}

func postJSON(handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestLeadHandlerSuccess(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	rec := postJSON(newLeadHandler(mockRepo).Handle, "/leads", `{"email":"user@example.com"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.NotContains(t, resp, "error")
}

func TestLeadHandlerCapturesTransportMetadata(t *testing.T) {
	mockRepo := new(MockLeadRepository)

	var stored *entity.Lead
	mockRepo.On("Insert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*entity.Lead)
	}).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/leads",
		strings.NewReader(`{"email":"user@example.com","userAgent":"spoofed","ipAddress":"1.1.1.1"}`))
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64)")
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	rec := httptest.NewRecorder()

	newLeadHandler(mockRepo).Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	// Transport wins over anything smuggled in the body.
	assert.Equal(t, "Mozilla/5.0 (X11; Linux x86_64)", stored.UserAgent)
	assert.Equal(t, "203.0.113.7", stored.IPAddress)
}

func TestLeadHandlerMissingEmail(t *testing.T) {
	mockRepo := new(MockLeadRepository)

	rec := postJSON(newLeadHandler(mockRepo).Handle, "/leads", `{"source":"website"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "validation_error", resp["error"])
	assert.Contains(t, resp["message"], "email")

	mockRepo.AssertNotCalled(t, "Insert")
}

func TestLeadHandlerMalformedJSON(t *testing.T) {
	mockRepo := new(MockLeadRepository)

	rec := postJSON(newLeadHandler(mockRepo).Handle, "/leads", `{"email":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_json", resp["error"])

	mockRepo.AssertNotCalled(t, "Insert")
}

func TestLeadHandlerStorageFailure(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("Insert", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	rec := postJSON(newLeadHandler(mockRepo).Handle, "/leads", `{"email":"user@example.com"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "save_failed", resp["error"])
	// Internal detail never leaks into the body.
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
