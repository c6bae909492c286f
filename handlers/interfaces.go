package handlers

import (
	"context"

	"github.com/diljithmon170/GK-Group/types"
)

// ContactServiceInterface defines the contact message operations used by handlers.
type ContactServiceInterface interface {
	Submit(ctx context.Context, sub types.ContactSubmission, clientIP, userAgent string) (*types.ContactMessage, error)
	ListMessages(ctx context.Context, filter types.MessageFilter) ([]types.ContactMessage, *types.PageInfo, error)
	GetMessage(ctx context.Context, id string) (*types.ContactMessage, error)
	UpdateStatus(ctx context.Context, ids []string, action types.MessageAction) (int64, error)
}

// NewsletterServiceInterface defines the newsletter operations used by handlers.
type NewsletterServiceInterface interface {
	Subscribe(ctx context.Context, rawEmail string) (bool, error)
	ListSubscriptions(ctx context.Context, filter types.SubscriptionFilter) ([]types.NewsletterSubscription, *types.PageInfo, error)
}

// HealthChecker reports dependency health.
type HealthChecker interface {
	CheckHealth(ctx context.Context) types.HealthCheck
}
