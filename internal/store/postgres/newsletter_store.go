package postgres

import (
	"context"
	"fmt"

	"github.com/diljithmon170/GK-Group/internal/store"
	"github.com/diljithmon170/GK-Group/types"
)

// Ensure NewsletterStore implements store.NewsletterStore
var _ store.NewsletterStore = (*NewsletterStore)(nil)

// NewsletterStore implements store.NewsletterStore using PostgreSQL.
type NewsletterStore struct {
	db DBTX
}

// NewNewsletterStore creates a new NewsletterStore instance.
func NewNewsletterStore(db DBTX) *NewsletterStore {
	return &NewsletterStore{db: db}
}

// Subscribe records email in one statement. On a repeated address the
// no-op update returns the existing row and xmax tells the two cases apart.
func (s *NewsletterStore) Subscribe(ctx context.Context, email string) (*types.NewsletterSubscription, bool, error) {
	query := `
		INSERT INTO newsletter_subscriptions (email)
		VALUES ($1)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id, email, created_at, (xmax = 0) AS inserted`

	var (
		sub     types.NewsletterSubscription
		created bool
	)
	err := s.db.QueryRow(ctx, query, email).Scan(&sub.ID, &sub.Email, &sub.CreatedAt, &created)
	if err != nil {
		return nil, false, fmt.Errorf("failed to save newsletter subscription: %w", err)
	}
	return &sub, created, nil
}

var (
	subscriptionSearchColumns = map[string]bool{"email": true}
	defaultSubscriptionSearch = []string{"email"}
)

// ListSubscriptions returns one page of subscriptions, newest first.
func (s *NewsletterStore) ListSubscriptions(ctx context.Context, filter types.SubscriptionFilter) ([]types.NewsletterSubscription, int64, error) {
	where := &whereBuilder{}
	if !filter.CreatedSince.IsZero() {
		where.add("created_at >= ?", filter.CreatedSince)
	}
	if filter.Search != "" {
		clause, err := searchClause(filter.SearchFields, defaultSubscriptionSearch, subscriptionSearchColumns)
		if err != nil {
			return nil, 0, err
		}
		where.add(clause, likePattern(filter.Search))
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM newsletter_subscriptions` + where.sql()
	if err := s.db.QueryRow(ctx, countQuery, where.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count newsletter subscriptions: %w", err)
	}

	query := `SELECT id, email, created_at FROM newsletter_subscriptions` + where.sql() +
		` ORDER BY created_at DESC, id LIMIT ` + where.next(filter.PageSize) +
		` OFFSET ` + where.next(filter.Offset())

	rows, err := s.db.Query(ctx, query, where.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list newsletter subscriptions: %w", err)
	}
	defer rows.Close()

	subs := make([]types.NewsletterSubscription, 0, filter.PageSize)
	for rows.Next() {
		var sub types.NewsletterSubscription
		if err := rows.Scan(&sub.ID, &sub.Email, &sub.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan newsletter subscription: %w", err)
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating newsletter subscriptions: %w", err)
	}

	return subs, total, nil
}
