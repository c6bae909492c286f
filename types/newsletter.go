package types

import "time"

// NewsletterSubscription is a stored newsletter signup.
type NewsletterSubscription struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// FieldValue returns the value of a column by its stored name.
func (s NewsletterSubscription) FieldValue(field string) (interface{}, bool) {
	switch field {
	case "id":
		return s.ID, true
	case "email":
		return s.Email, true
	case "created_at":
		return s.CreatedAt, true
	}
	return nil, false
}

// SubscriptionFilter narrows an admin listing of newsletter subscriptions.
type SubscriptionFilter struct {
	CreatedSince time.Time
	Search       string
	SearchFields []string
	Page         int
	PageSize     int
}

// Offset returns the row offset for the filter's page (pages start at 1).
func (f SubscriptionFilter) Offset() int {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}

// NewsletterSignup is the request body for a newsletter signup.
type NewsletterSignup struct {
	Email string `json:"email" form:"email"`
}
