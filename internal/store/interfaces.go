// Package store defines the persistence interfaces for submitted forms.
package store

import (
	"context"

	"github.com/diljithmon170/GK-Group/types"
)

// ContactStore persists contact messages.
type ContactStore interface {
	// CreateMessage inserts msg and fills its ID and timestamps.
	CreateMessage(ctx context.Context, msg *types.ContactMessage) error
	GetMessage(ctx context.Context, id string) (*types.ContactMessage, error)
	// ListMessages returns one page of messages matching filter, newest first,
	// and the number of matching messages across all pages.
	ListMessages(ctx context.Context, filter types.MessageFilter) ([]types.ContactMessage, int64, error)
	// UpdateMessageStatus applies action to every message in ids in a single
	// statement and returns the number of rows changed.
	UpdateMessageStatus(ctx context.Context, ids []string, action types.MessageAction) (int64, error)
}

// NewsletterStore persists newsletter subscriptions.
type NewsletterStore interface {
	// Subscribe records email. A repeated address returns the existing
	// subscription with created set to false.
	Subscribe(ctx context.Context, email string) (sub *types.NewsletterSubscription, created bool, err error)
	ListSubscriptions(ctx context.Context, filter types.SubscriptionFilter) ([]types.NewsletterSubscription, int64, error)
}
