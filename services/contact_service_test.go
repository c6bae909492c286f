package services

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	apperrors "github.com/diljithmon170/GK-Group/errors"
	"github.com/diljithmon170/GK-Group/internal/store"
	"github.com/diljithmon170/GK-Group/logger"
	"github.com/diljithmon170/GK-Group/types"
	"github.com/diljithmon170/GK-Group/validation"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.IsTest = true
}

func validSubmission() types.ContactSubmission {
	return types.ContactSubmission{
		Name:         "Jane Doe",
		Email:        "Jane@Example.com",
		Subject:      "Bulk order",
		InterestArea: "gk_textiles",
		Message:      "We would like a quote for cotton yarn.",
	}
}

func newContactService(t *testing.T, notifier ContactNotifier) (*ContactService, *mockContactStore, *SubmissionMetrics) {
	t.Helper()
	st := &mockContactStore{}
	metrics := NewSubmissionMetrics(prometheus.NewRegistry())
	return NewContactService(validation.New(true), st, notifier, metrics), st, metrics
}

func TestContactService_Submit_Valid(t *testing.T) {
	notifier := &mockNotifier{}
	svc, st, metrics := newContactService(t, notifier)

	st.On("CreateMessage", mock.Anything, mock.MatchedBy(func(m *types.ContactMessage) bool {
		return m.Email == "jane@example.com" &&
			m.IPAddress == "203.0.113.9" &&
			m.UserAgent == "curl/8" &&
			!m.IsRead && !m.IsArchived
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*types.ContactMessage).ID = "new-id"
	}).Return(nil).Once()
	notifier.On("NotifyContactMessage", mock.Anything, mock.Anything).Return(nil).Once()

	msg, err := svc.Submit(context.Background(), validSubmission(), "203.0.113.9", "curl/8")
	require.NoError(t, err)
	assert.Equal(t, "new-id", msg.ID)

	st.AssertNumberOfCalls(t, "CreateMessage", 1)
	notifier.AssertExpectations(t)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.contactSubmissions.WithLabelValues(OutcomeAccepted)))
}

func TestContactService_Submit_InvalidPersistsNothing(t *testing.T) {
	svc, st, metrics := newContactService(t, nil)

	sub := validSubmission()
	sub.Subject = "A"

	msg, err := svc.Submit(context.Background(), sub, "203.0.113.9", "curl/8")
	assert.Nil(t, msg)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, apperrors.ValidationError, appErr.Type)
	assert.Equal(t, []string{validation.ReasonTooShort}, appErr.Fields["subject"])

	st.AssertNotCalled(t, "CreateMessage", mock.Anything, mock.Anything)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.contactSubmissions.WithLabelValues(OutcomeRejected)))
}

func TestContactService_Submit_StoreError(t *testing.T) {
	svc, st, _ := newContactService(t, nil)
	st.On("CreateMessage", mock.Anything, mock.Anything).Return(stderrors.New("connection refused"))

	_, err := svc.Submit(context.Background(), validSubmission(), "", "")
	var appErr *apperrors.AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, apperrors.DatabaseError, appErr.Type)
}

func TestContactService_Submit_NotificationFailureIsNotFatal(t *testing.T) {
	notifier := &mockNotifier{}
	svc, st, _ := newContactService(t, notifier)
	st.On("CreateMessage", mock.Anything, mock.Anything).Return(nil)
	notifier.On("NotifyContactMessage", mock.Anything, mock.Anything).Return(stderrors.New("resend down"))

	msg, err := svc.Submit(context.Background(), validSubmission(), "", "")
	require.NoError(t, err)
	assert.NotNil(t, msg)
}

func TestContactService_Submit_TruncatesUserAgent(t *testing.T) {
	svc, st, _ := newContactService(t, nil)
	st.On("CreateMessage", mock.Anything, mock.MatchedBy(func(m *types.ContactMessage) bool {
		return len(m.UserAgent) == maxUserAgentLen
	})).Return(nil)

	_, err := svc.Submit(context.Background(), validSubmission(), "", strings.Repeat("u", 2000))
	require.NoError(t, err)
	st.AssertExpectations(t)
}

func TestContactService_GetMessage(t *testing.T) {
	svc, st, _ := newContactService(t, nil)
	st.On("GetMessage", mock.Anything, "missing").Return(nil, store.ErrNotFound)
	st.On("GetMessage", mock.Anything, "broken").Return(nil, stderrors.New("boom"))
	st.On("GetMessage", mock.Anything, "ok").Return(&types.ContactMessage{ID: "ok"}, nil)

	_, err := svc.GetMessage(context.Background(), "missing")
	var appErr *apperrors.AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, apperrors.NotFoundError, appErr.Type)

	_, err = svc.GetMessage(context.Background(), "broken")
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, apperrors.DatabaseError, appErr.Type)

	msg, err := svc.GetMessage(context.Background(), "ok")
	require.NoError(t, err)
	assert.Equal(t, "ok", msg.ID)
}

func TestContactService_ListMessages(t *testing.T) {
	svc, st, _ := newContactService(t, nil)
	filter := types.MessageFilter{Page: 0, PageSize: 25}
	expected := filter
	expected.Page = 1

	st.On("ListMessages", mock.Anything, expected).
		Return([]types.ContactMessage{{ID: "a"}}, int64(30), nil)

	msgs, page, err := svc.ListMessages(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
	assert.Equal(t, 2, page.TotalPages)
	assert.True(t, page.HasMore)
}

func TestContactService_UpdateStatus(t *testing.T) {
	svc, st, metrics := newContactService(t, nil)
	st.On("UpdateMessageStatus", mock.Anything, []string{"a", "b"}, types.ActionArchive).Return(int64(2), nil)

	n, err := svc.UpdateStatus(context.Background(), []string{"a", "b", "a"}, types.ActionArchive)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.adminUpdates.WithLabelValues("archive")))

	_, err = svc.UpdateStatus(context.Background(), []string{"a"}, types.MessageAction("delete"))
	var appErr *apperrors.AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, apperrors.ValidationError, appErr.Type)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abcdef", 2))
	// "é" is two bytes; never cut it in half.
	assert.Equal(t, "a", truncate("aé", 2))
}
