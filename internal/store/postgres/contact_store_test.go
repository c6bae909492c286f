package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/diljithmon170/GK-Group/internal/store"
	"github.com/diljithmon170/GK-Group/types"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var messageColumns = []string{
	"id", "name", "email", "phone", "subject", "interest_area", "message",
	"ip_address", "user_agent", "is_read", "is_archived", "created_at", "updated_at",
}

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func createTestMessage() *types.ContactMessage {
	return &types.ContactMessage{
		Name:         "Jane Doe",
		Email:        "jane@example.com",
		Phone:        "+1 (555) 123-4567",
		Subject:      "Bulk order",
		InterestArea: types.InterestTextiles,
		Message:      "We would like a quote for cotton yarn.",
		IPAddress:    "203.0.113.9",
		UserAgent:    "Mozilla/5.0",
	}
}

func TestContactStore_CreateMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("successful creation", func(t *testing.T) {
		mock := newMockPool(t)
		s := NewContactStore(mock)
		msg := createTestMessage()
		id := uuid.NewString()
		now := time.Now()

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO contact_messages")).
			WithArgs(msg.Name, msg.Email, msg.Phone, msg.Subject, "gk_textiles",
				msg.Message, msg.IPAddress, msg.UserAgent).
			WillReturnRows(pgxmock.NewRows([]string{"id", "is_read", "is_archived", "created_at", "updated_at"}).
				AddRow(id, false, false, now, now))

		require.NoError(t, s.CreateMessage(ctx, msg))
		assert.Equal(t, id, msg.ID)
		assert.False(t, msg.IsRead)
		assert.False(t, msg.IsArchived)
		assert.Equal(t, now, msg.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		mock := newMockPool(t)
		s := NewContactStore(mock)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO contact_messages")).
			WillReturnError(errors.New("database connection failed"))

		err := s.CreateMessage(ctx, createTestMessage())
		assert.ErrorContains(t, err, "database connection failed")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestContactStore_GetMessage(t *testing.T) {
	ctx := context.Background()
	id := uuid.NewString()

	t.Run("found", func(t *testing.T) {
		mock := newMockPool(t)
		s := NewContactStore(mock)
		now := time.Now()

		mock.ExpectQuery(regexp.QuoteMeta("FROM contact_messages WHERE id = $1")).
			WithArgs(id).
			WillReturnRows(pgxmock.NewRows(messageColumns).AddRow(
				id, "Jane Doe", "jane@example.com", "", "Hello", "gk_steels", "A message long enough",
				"203.0.113.9", "curl/8", true, false, now, now))

		msg, err := s.GetMessage(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, msg.ID)
		assert.Equal(t, types.InterestSteels, msg.InterestArea)
		assert.True(t, msg.IsRead)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock := newMockPool(t)
		s := NewContactStore(mock)

		mock.ExpectQuery(regexp.QuoteMeta("FROM contact_messages WHERE id = $1")).
			WithArgs(id).
			WillReturnError(pgx.ErrNoRows)

		_, err := s.GetMessage(ctx, id)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestContactStore_ListMessages(t *testing.T) {
	ctx := context.Background()

	t.Run("with filters and search", func(t *testing.T) {
		mock := newMockPool(t)
		s := NewContactStore(mock)
		read := false
		archived := true
		now := time.Now()

		filter := types.MessageFilter{
			IsRead:       &read,
			IsArchived:   &archived,
			InterestArea: types.InterestPartnership,
			Search:       "50%_off",
			Page:         2,
			PageSize:     25,
		}
		pattern := `%50\%\_off%`

		mock.ExpectQuery(regexp.QuoteMeta(
			"SELECT COUNT(*) FROM contact_messages WHERE is_read = $1 AND is_archived = $2 AND interest_area = $3 AND (name ILIKE $4 OR email ILIKE $4 OR subject ILIKE $4 OR message ILIKE $4)")).
			WithArgs(false, true, "partnership", pattern).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(26)))

		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC, id LIMIT $5 OFFSET $6")).
			WithArgs(false, true, "partnership", pattern, 25, 25).
			WillReturnRows(pgxmock.NewRows(messageColumns).AddRow(
				uuid.NewString(), "Jane Doe", "jane@example.com", "", "Hello", "partnership",
				"A message long enough", "", "", false, true, now, now))

		msgs, total, err := s.ListMessages(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(26), total)
		require.Len(t, msgs, 1)
		assert.Equal(t, types.InterestPartnership, msgs[0].InterestArea)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("search limited to configured fields", func(t *testing.T) {
		mock := newMockPool(t)
		s := NewContactStore(mock)

		mock.ExpectQuery(regexp.QuoteMeta(
			"SELECT COUNT(*) FROM contact_messages WHERE (email ILIKE $1 OR phone ILIKE $1)")).
			WithArgs("%555%").
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))
		mock.ExpectQuery(regexp.QuoteMeta("WHERE (email ILIKE $1 OR phone ILIKE $1) ORDER BY created_at DESC, id LIMIT $2 OFFSET $3")).
			WithArgs("%555%", 25, 0).
			WillReturnRows(pgxmock.NewRows(messageColumns))

		_, _, err := s.ListMessages(ctx, types.MessageFilter{
			Search: "555", SearchFields: []string{"email", "phone"}, Page: 1, PageSize: 25,
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown search field is rejected before querying", func(t *testing.T) {
		mock := newMockPool(t)
		s := NewContactStore(mock)

		_, _, err := s.ListMessages(ctx, types.MessageFilter{
			Search: "x", SearchFields: []string{"name; DROP TABLE contact_messages"}, PageSize: 25,
		})
		assert.ErrorContains(t, err, "unknown search field")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unfiltered empty result", func(t *testing.T) {
		mock := newMockPool(t)
		s := NewContactStore(mock)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM contact_messages")).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))
		mock.ExpectQuery(regexp.QuoteMeta("FROM contact_messages ORDER BY created_at DESC, id LIMIT $1 OFFSET $2")).
			WithArgs(25, 0).
			WillReturnRows(pgxmock.NewRows(messageColumns))

		msgs, total, err := s.ListMessages(ctx, types.MessageFilter{Page: 1, PageSize: 25})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.NotNil(t, msgs)
		assert.Empty(t, msgs)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("created since", func(t *testing.T) {
		mock := newMockPool(t)
		s := NewContactStore(mock)
		since := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE created_at >= $1")).
			WithArgs(since).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))
		mock.ExpectQuery(regexp.QuoteMeta("LIMIT $2 OFFSET $3")).
			WithArgs(since, 10, 0).
			WillReturnRows(pgxmock.NewRows(messageColumns))

		_, _, err := s.ListMessages(ctx, types.MessageFilter{CreatedSince: since, PageSize: 10})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("count error", func(t *testing.T) {
		mock := newMockPool(t)
		s := NewContactStore(mock)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
			WillReturnError(errors.New("timeout"))

		_, _, err := s.ListMessages(ctx, types.MessageFilter{PageSize: 25})
		assert.ErrorContains(t, err, "failed to count contact messages")
	})
}

func TestContactStore_UpdateMessageStatus(t *testing.T) {
	ctx := context.Background()
	ids := []string{uuid.NewString(), uuid.NewString()}

	tests := []struct {
		action types.MessageAction
		set    string
	}{
		{types.ActionMarkRead, "SET is_read = TRUE"},
		{types.ActionMarkUnread, "SET is_read = FALSE"},
		{types.ActionArchive, "SET is_archived = TRUE"},
	}
	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			mock := newMockPool(t)
			s := NewContactStore(mock)

			mock.ExpectExec(regexp.QuoteMeta("UPDATE contact_messages "+tt.set+", updated_at = NOW() WHERE id = ANY($1::uuid[])")).
				WithArgs(ids).
				WillReturnResult(pgxmock.NewResult("UPDATE", 2))

			n, err := s.UpdateMessageStatus(ctx, ids, tt.action)
			require.NoError(t, err)
			assert.Equal(t, int64(2), n)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}

	t.Run("no ids", func(t *testing.T) {
		mock := newMockPool(t)
		n, err := NewContactStore(mock).UpdateMessageStatus(ctx, nil, types.ActionArchive)
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown action", func(t *testing.T) {
		mock := newMockPool(t)
		_, err := NewContactStore(mock).UpdateMessageStatus(ctx, ids, types.MessageAction("delete"))
		assert.Error(t, err)
	})
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%yarn%", likePattern("yarn"))
	assert.Equal(t, `%a\\b%`, likePattern(`a\b`))
}
