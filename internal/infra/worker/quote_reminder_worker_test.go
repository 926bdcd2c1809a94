package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/siteoptz/capture-service/internal/entity"
)

type MockQuoteSource struct {
	mock.Mock
}

func (m *MockQuoteSource) FindDueForReminder(ctx context.Context, window time.Duration) ([]*entity.Quote, error) {
	args := m.Called(ctx, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Quote), args.Error(1)
}

func (m *MockQuoteSource) MarkReminded(ctx context.Context, quoteID string) error {
	args := m.Called(ctx, quoteID)
	return args.Error(0)
}

type MockReminderSender struct {
	mock.Mock
}

func (m *MockReminderSender) SendQuoteReminder(to, toolName, deepLink string, expiresAt time.Time) error {
	args := m.Called(to, toolName, deepLink, expiresAt)
	return args.Error(0)
}

func newTestWorker(source QuoteSource, sender ReminderSender) *QuoteReminderWorker {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewQuoteReminderWorker(source, sender, "https://siteoptz.ai", 24*time.Hour, time.Minute, logger)
}

func TestRemindDueQuotes(t *testing.T) {
	ctx := context.Background()
	source := new(MockQuoteSource)
	sender := new(MockReminderSender)

	expiresAt := time.Now().Add(12 * time.Hour)
	due := []*entity.Quote{{
		QuoteID:   "Ab3dEf9h",
		Email:     "a@b.com",
		ToolName:  "ChatGPT",
		ExpiresAt: expiresAt,
	}}

	source.On("FindDueForReminder", ctx, 24*time.Hour).Return(due, nil)
	sender.On("SendQuoteReminder", "a@b.com", "ChatGPT",
		"https://siteoptz.ai/pricing?quoteId=Ab3dEf9h", expiresAt).Return(nil)
	source.On("MarkReminded", ctx, "Ab3dEf9h").Return(nil)

	newTestWorker(source, sender).remindDueQuotes(ctx)

	sender.AssertNumberOfCalls(t, "SendQuoteReminder", 1)
	source.AssertCalled(t, "MarkReminded", ctx, "Ab3dEf9h")
}

func TestRemindDueQuotesSendFailureLeavesUnmarked(t *testing.T) {
	ctx := context.Background()
	source := new(MockQuoteSource)
	sender := new(MockReminderSender)

	due := []*entity.Quote{{
		QuoteID:   "Zz8xYy1w",
		Email:     "a@b.com",
		ToolName:  "Claude",
		ExpiresAt: time.Now().Add(6 * time.Hour),
	}}

	source.On("FindDueForReminder", ctx, 24*time.Hour).Return(due, nil)
	sender.On("SendQuoteReminder", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("smtp down"))

	newTestWorker(source, sender).remindDueQuotes(ctx)

	// The next tick retries; marking reminded would lose the email.
	source.AssertNotCalled(t, "MarkReminded")
}

func TestRemindDueQuotesQueryFailure(t *testing.T) {
	ctx := context.Background()
	source := new(MockQuoteSource)
	sender := new(MockReminderSender)

	source.On("FindDueForReminder", ctx, 24*time.Hour).Return(nil, errors.New("db down"))

	newTestWorker(source, sender).remindDueQuotes(ctx)

	sender.AssertNotCalled(t, "SendQuoteReminder")
}

func TestRemindDueQuotesNothingDue(t *testing.T) {
	ctx := context.Background()
	source := new(MockQuoteSource)
	sender := new(MockReminderSender)

	source.On("FindDueForReminder", ctx, 24*time.Hour).Return([]*entity.Quote{}, nil)

	newTestWorker(source, sender).remindDueQuotes(ctx)

	sender.AssertNotCalled(t, "SendQuoteReminder")
	source.AssertNotCalled(t, "MarkReminded")
}
