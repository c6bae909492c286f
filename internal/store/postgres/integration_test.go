package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diljithmon170/GK-Group/db"
	"github.com/diljithmon170/GK-Group/types"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	postgresContainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupPostgres starts a disposable PostgreSQL, applies the embedded
// migrations and returns a pool connected to it.
func setupPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()
	pgContainer, err := postgresContainer.Run(ctx,
		"postgres:16-alpine",
		postgresContainer.WithDatabase("gk_test"),
		postgresContainer.WithUsername("gk"),
		postgresContainer.WithPassword("gk"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Skipf("docker unavailable: %v", err)
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate postgres container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations(connStr))

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestIntegration_ContactLifecycle(t *testing.T) {
	pool := setupPostgres(t)
	ctx := context.Background()
	s := NewContactStore(pool)

	msg := createTestMessage()
	require.NoError(t, s.CreateMessage(ctx, msg))
	require.NotEmpty(t, msg.ID)
	assert.False(t, msg.IsRead)
	assert.False(t, msg.IsArchived)

	other := createTestMessage()
	other.InterestArea = types.InterestSteels
	other.Subject = "Steel beams"
	require.NoError(t, s.CreateMessage(ctx, other))

	n, err := s.UpdateMessageStatus(ctx, []string{msg.ID}, types.ActionArchive)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = s.UpdateMessageStatus(ctx, []string{msg.ID}, types.ActionMarkUnread)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := s.GetMessage(ctx, msg.ID)
	require.NoError(t, err)
	assert.True(t, got.IsArchived)
	assert.False(t, got.IsRead)

	archived := true
	list, total, err := s.ListMessages(ctx, types.MessageFilter{IsArchived: &archived, Page: 1, PageSize: 25})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, msg.ID, list[0].ID)

	list, total, err = s.ListMessages(ctx, types.MessageFilter{Search: "STEEL", Page: 1, PageSize: 25})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, other.ID, list[0].ID)
}

func TestIntegration_RejectsUnknownInterestArea(t *testing.T) {
	pool := setupPostgres(t)
	s := NewContactStore(pool)

	msg := createTestMessage()
	msg.InterestArea = types.InterestArea("shipping")
	err := s.CreateMessage(context.Background(), msg)
	require.Error(t, err)

	var pgErr *pgconn.PgError
	require.True(t, errors.As(err, &pgErr))
	assert.Equal(t, "23514", pgErr.Code)
}

func TestIntegration_NewsletterUpsert(t *testing.T) {
	pool := setupPostgres(t)
	ctx := context.Background()
	s := NewNewsletterStore(pool)

	first, created, err := s.Subscribe(ctx, "news@example.com")
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := s.Subscribe(ctx, "news@example.com")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	subs, total, err := s.ListSubscriptions(ctx, types.SubscriptionFilter{Page: 1, PageSize: 25})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, subs, 1)
}
