package services

import (
	"context"
	"errors"

	apperrors "github.com/diljithmon170/GK-Group/errors"
	"github.com/diljithmon170/GK-Group/internal/store"
	"github.com/diljithmon170/GK-Group/logger"
	"github.com/diljithmon170/GK-Group/types"
	"github.com/diljithmon170/GK-Group/validation"
	"go.uber.org/zap"
)

// maxUserAgentLen caps the stored client identifier, in bytes.
const maxUserAgentLen = 512

// ContactNotifier is told about every accepted contact message.
type ContactNotifier interface {
	NotifyContactMessage(ctx context.Context, msg *types.ContactMessage) error
}

// ContactService accepts contact form submissions and serves the admin
// review operations over stored messages.
type ContactService struct {
	rules    *validation.Rules
	store    store.ContactStore
	notifier ContactNotifier
	metrics  *SubmissionMetrics
	log      *zap.SugaredLogger
}

// NewContactService creates a ContactService. notifier and metrics may be nil.
func NewContactService(rules *validation.Rules, contactStore store.ContactStore, notifier ContactNotifier, metrics *SubmissionMetrics) *ContactService {
	return &ContactService{
		rules:    rules,
		store:    contactStore,
		notifier: notifier,
		metrics:  metrics,
		log:      logger.GetLogger(),
	}
}

// Submit validates sub and stores it with the client's address and agent.
// Invalid input yields a validation AppError carrying every failing field
// and nothing is stored.
func (s *ContactService) Submit(ctx context.Context, sub types.ContactSubmission, clientIP, userAgent string) (*types.ContactMessage, error) {
	msg, fieldErrs := s.rules.Contact(sub)
	if fieldErrs != nil {
		s.metrics.contact(OutcomeRejected)
		return nil, apperrors.FieldValidationFailed("Please correct the errors below.", fieldErrs)
	}

	msg.IPAddress = clientIP
	msg.UserAgent = truncate(userAgent, maxUserAgentLen)

	if err := s.store.CreateMessage(ctx, msg); err != nil {
		s.metrics.contact(OutcomeError)
		return nil, apperrors.NewDatabaseError(err)
	}
	s.metrics.contact(OutcomeAccepted)

	s.log.Infow("Contact message received",
		"message_id", msg.ID,
		"interest_area", msg.InterestArea,
		"email", logger.MaskEmail(msg.Email))

	if s.notifier != nil {
		if err := s.notifier.NotifyContactMessage(ctx, msg); err != nil {
			// Notification failure never fails the submission.
			s.log.Warnw("Contact notification failed", "message_id", msg.ID, "error", err)
		}
	}

	return msg, nil
}

// ListMessages returns one page of messages and its pagination info.
func (s *ContactService) ListMessages(ctx context.Context, filter types.MessageFilter) ([]types.ContactMessage, *types.PageInfo, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	msgs, total, err := s.store.ListMessages(ctx, filter)
	if err != nil {
		return nil, nil, apperrors.NewDatabaseError(err)
	}
	return msgs, types.NewPageInfo(filter.Page, filter.PageSize, total), nil
}

// GetMessage returns a single message.
func (s *ContactService) GetMessage(ctx context.Context, id string) (*types.ContactMessage, error) {
	msg, err := s.store.GetMessage(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NotFound("Contact message", id)
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return msg, nil
}

// UpdateStatus applies a bulk action and returns the number of messages changed.
func (s *ContactService) UpdateStatus(ctx context.Context, ids []string, action types.MessageAction) (int64, error) {
	if !action.IsValid() {
		return 0, apperrors.ValidationFailed("Unknown action", string(action))
	}
	n, err := s.store.UpdateMessageStatus(ctx, dedupe(ids), action)
	if err != nil {
		return 0, apperrors.NewDatabaseError(err)
	}
	s.metrics.adminUpdate(string(action), n)
	return n, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	// Back off to a rune boundary.
	for n > 0 && s[n]&0xC0 == 0x80 {
		n--
	}
	return s[:n]
}
