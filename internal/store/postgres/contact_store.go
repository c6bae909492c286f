package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/diljithmon170/GK-Group/internal/store"
	"github.com/diljithmon170/GK-Group/types"
	"github.com/jackc/pgx/v5"
)

// Ensure ContactStore implements store.ContactStore
var _ store.ContactStore = (*ContactStore)(nil)

const contactColumns = `id, name, email, phone, subject, interest_area, message,
		ip_address, user_agent, is_read, is_archived, created_at, updated_at`

// ContactStore implements store.ContactStore using PostgreSQL.
type ContactStore struct {
	db DBTX
}

// NewContactStore creates a new ContactStore instance.
func NewContactStore(db DBTX) *ContactStore {
	return &ContactStore{db: db}
}

// CreateMessage inserts a new contact message. Status flags always start false.
func (s *ContactStore) CreateMessage(ctx context.Context, msg *types.ContactMessage) error {
	query := `
		INSERT INTO contact_messages
			(name, email, phone, subject, interest_area, message, ip_address, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, is_read, is_archived, created_at, updated_at`

	err := s.db.QueryRow(ctx, query,
		msg.Name,
		msg.Email,
		msg.Phone,
		msg.Subject,
		string(msg.InterestArea),
		msg.Message,
		msg.IPAddress,
		msg.UserAgent,
	).Scan(&msg.ID, &msg.IsRead, &msg.IsArchived, &msg.CreatedAt, &msg.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

// GetMessage retrieves a contact message by its ID.
func (s *ContactStore) GetMessage(ctx context.Context, id string) (*types.ContactMessage, error) {
	query := `SELECT ` + contactColumns + ` FROM contact_messages WHERE id = $1`

	msg, err := scanMessage(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get contact message: %w", err)
	}
	return msg, nil
}

// messageSearchColumns are the contact_messages columns an admin search may
// cover.
var messageSearchColumns = map[string]bool{
	"name":    true,
	"email":   true,
	"phone":   true,
	"subject": true,
	"message": true,
}

var defaultMessageSearch = []string{"name", "email", "subject", "message"}

// ListMessages returns one page of messages matching filter, newest first.
func (s *ContactStore) ListMessages(ctx context.Context, filter types.MessageFilter) ([]types.ContactMessage, int64, error) {
	where := &whereBuilder{}
	if filter.IsRead != nil {
		where.add("is_read = ?", *filter.IsRead)
	}
	if filter.IsArchived != nil {
		where.add("is_archived = ?", *filter.IsArchived)
	}
	if filter.InterestArea != "" {
		where.add("interest_area = ?", string(filter.InterestArea))
	}
	if !filter.CreatedSince.IsZero() {
		where.add("created_at >= ?", filter.CreatedSince)
	}
	if filter.Search != "" {
		clause, err := searchClause(filter.SearchFields, defaultMessageSearch, messageSearchColumns)
		if err != nil {
			return nil, 0, err
		}
		where.add(clause, likePattern(filter.Search))
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM contact_messages` + where.sql()
	if err := s.db.QueryRow(ctx, countQuery, where.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count contact messages: %w", err)
	}

	query := `SELECT ` + contactColumns + ` FROM contact_messages` + where.sql() +
		` ORDER BY created_at DESC, id LIMIT ` + where.next(filter.PageSize) +
		` OFFSET ` + where.next(filter.Offset())

	rows, err := s.db.Query(ctx, query, where.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list contact messages: %w", err)
	}
	defer rows.Close()

	messages := make([]types.ContactMessage, 0, filter.PageSize)
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan contact message: %w", err)
		}
		messages = append(messages, *msg)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating contact messages: %w", err)
	}

	return messages, total, nil
}

// UpdateMessageStatus applies action to every message in ids.
func (s *ContactStore) UpdateMessageStatus(ctx context.Context, ids []string, action types.MessageAction) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var set string
	switch action {
	case types.ActionMarkRead:
		set = "is_read = TRUE"
	case types.ActionMarkUnread:
		set = "is_read = FALSE"
	case types.ActionArchive:
		set = "is_archived = TRUE"
	default:
		return 0, fmt.Errorf("unsupported message action %q", action)
	}

	query := `UPDATE contact_messages SET ` + set + `, updated_at = NOW() WHERE id = ANY($1::uuid[])`
	tag, err := s.db.Exec(ctx, query, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to update contact messages: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanMessage(row pgx.Row) (*types.ContactMessage, error) {
	var (
		msg  types.ContactMessage
		area string
	)
	err := row.Scan(
		&msg.ID,
		&msg.Name,
		&msg.Email,
		&msg.Phone,
		&msg.Subject,
		&area,
		&msg.Message,
		&msg.IPAddress,
		&msg.UserAgent,
		&msg.IsRead,
		&msg.IsArchived,
		&msg.CreatedAt,
		&msg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	msg.InterestArea = types.InterestArea(area)
	return &msg, nil
}
