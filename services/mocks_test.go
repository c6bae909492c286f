package services

import (
	"context"

	"github.com/diljithmon170/GK-Group/types"
	"github.com/stretchr/testify/mock"
)

type mockContactStore struct {
	mock.Mock
}

func (m *mockContactStore) CreateMessage(ctx context.Context, msg *types.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *mockContactStore) GetMessage(ctx context.Context, id string) (*types.ContactMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ContactMessage), args.Error(1)
}

func (m *mockContactStore) ListMessages(ctx context.Context, filter types.MessageFilter) ([]types.ContactMessage, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]types.ContactMessage), args.Get(1).(int64), args.Error(2)
}

func (m *mockContactStore) UpdateMessageStatus(ctx context.Context, ids []string, action types.MessageAction) (int64, error) {
	args := m.Called(ctx, ids, action)
	return args.Get(0).(int64), args.Error(1)
}

type mockNewsletterStore struct {
	mock.Mock
}

func (m *mockNewsletterStore) Subscribe(ctx context.Context, email string) (*types.NewsletterSubscription, bool, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*types.NewsletterSubscription), args.Bool(1), args.Error(2)
}

func (m *mockNewsletterStore) ListSubscriptions(ctx context.Context, filter types.SubscriptionFilter) ([]types.NewsletterSubscription, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]types.NewsletterSubscription), args.Get(1).(int64), args.Error(2)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) NotifyContactMessage(ctx context.Context, msg *types.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
