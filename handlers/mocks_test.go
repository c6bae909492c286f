package handlers

import (
	"context"

	"github.com/diljithmon170/GK-Group/logger"
	"github.com/diljithmon170/GK-Group/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

func init() {
	logger.IsTest = true
	gin.SetMode(gin.TestMode)
}

// MockContactService implements ContactServiceInterface for handler tests.
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Submit(ctx context.Context, sub types.ContactSubmission, clientIP, userAgent string) (*types.ContactMessage, error) {
	args := m.Called(ctx, sub, clientIP, userAgent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ContactMessage), args.Error(1)
}

func (m *MockContactService) ListMessages(ctx context.Context, filter types.MessageFilter) ([]types.ContactMessage, *types.PageInfo, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]types.ContactMessage), args.Get(1).(*types.PageInfo), args.Error(2)
}

func (m *MockContactService) GetMessage(ctx context.Context, id string) (*types.ContactMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ContactMessage), args.Error(1)
}

func (m *MockContactService) UpdateStatus(ctx context.Context, ids []string, action types.MessageAction) (int64, error) {
	args := m.Called(ctx, ids, action)
	return args.Get(0).(int64), args.Error(1)
}

// MockNewsletterService implements NewsletterServiceInterface for handler tests.
type MockNewsletterService struct {
	mock.Mock
}

func (m *MockNewsletterService) Subscribe(ctx context.Context, rawEmail string) (bool, error) {
	args := m.Called(ctx, rawEmail)
	return args.Bool(0), args.Error(1)
}

func (m *MockNewsletterService) ListSubscriptions(ctx context.Context, filter types.SubscriptionFilter) ([]types.NewsletterSubscription, *types.PageInfo, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]types.NewsletterSubscription), args.Get(1).(*types.PageInfo), args.Error(2)
}

type stubHealthChecker struct {
	health types.HealthCheck
}

func (s stubHealthChecker) CheckHealth(context.Context) types.HealthCheck {
	return s.health
}
