package services

import (
	"context"

	apperrors "github.com/diljithmon170/GK-Group/errors"
	"github.com/diljithmon170/GK-Group/internal/store"
	"github.com/diljithmon170/GK-Group/logger"
	"github.com/diljithmon170/GK-Group/types"
	"github.com/diljithmon170/GK-Group/validation"
	"go.uber.org/zap"
)

// NewsletterService records newsletter signups.
type NewsletterService struct {
	rules   *validation.Rules
	store   store.NewsletterStore
	metrics *SubmissionMetrics
	log     *zap.SugaredLogger
}

// NewNewsletterService creates a NewsletterService. metrics may be nil.
func NewNewsletterService(rules *validation.Rules, newsletterStore store.NewsletterStore, metrics *SubmissionMetrics) *NewsletterService {
	return &NewsletterService{
		rules:   rules,
		store:   newsletterStore,
		metrics: metrics,
		log:     logger.GetLogger(),
	}
}

// Subscribe validates and records email. Subscribing an address twice
// succeeds without creating a second record; created reports which case
// happened.
func (s *NewsletterService) Subscribe(ctx context.Context, rawEmail string) (created bool, err error) {
	email, fieldErrs := s.rules.NewsletterEmail(rawEmail)
	if fieldErrs != nil {
		s.metrics.newsletter(OutcomeRejected)
		return false, apperrors.FieldValidationFailed("Please enter a valid email address.", fieldErrs)
	}

	sub, created, err := s.store.Subscribe(ctx, email)
	if err != nil {
		s.metrics.newsletter(OutcomeError)
		return false, apperrors.NewDatabaseError(err)
	}

	if created {
		s.metrics.newsletter(OutcomeAccepted)
		s.log.Infow("Newsletter subscription created",
			"subscription_id", sub.ID,
			"email", logger.MaskEmail(sub.Email))
	} else {
		s.metrics.newsletter(OutcomeDuplicate)
	}
	return created, nil
}

// ListSubscriptions returns one page of subscriptions and its pagination info.
func (s *NewsletterService) ListSubscriptions(ctx context.Context, filter types.SubscriptionFilter) ([]types.NewsletterSubscription, *types.PageInfo, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	subs, total, err := s.store.ListSubscriptions(ctx, filter)
	if err != nil {
		return nil, nil, apperrors.NewDatabaseError(err)
	}
	return subs, types.NewPageInfo(filter.Page, filter.PageSize, total), nil
}
