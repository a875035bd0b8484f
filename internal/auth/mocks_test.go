package auth

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockStore is a mock implementation of Store.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockStore) CreateUser(ctx context.Context, user *User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockStore) CountSessions(ctx context.Context, userID int64) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockStore) CreateSession(ctx context.Context, session *Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockStore) HasSession(ctx context.Context, userID int64, token string) (bool, error) {
	args := m.Called(ctx, userID, token)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) DeleteSession(ctx context.Context, userID int64, token string) error {
	args := m.Called(ctx, userID, token)
	return args.Error(0)
}

func (m *MockStore) DeleteAllSessions(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) CreateMagicToken(ctx context.Context, token *MagicToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockStore) GetMagicToken(ctx context.Context, userID int64, token string) (*MagicToken, error) {
	args := m.Called(ctx, userID, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*MagicToken), args.Error(1)
}

// MockBoundedStore is a MockStore that also implements BoundedSessionStore.
type MockBoundedStore struct {
	MockStore
}

func (m *MockBoundedStore) CreateSessionIfUnder(ctx context.Context, session *Session, bound int) (bool, error) {
	args := m.Called(ctx, session, bound)
	return args.Bool(0), args.Error(1)
}

// MockGoogleVerifier is a mock implementation of GoogleVerifier.
type MockGoogleVerifier struct {
	mock.Mock
}

func (m *MockGoogleVerifier) Verify(ctx context.Context, accessToken string) (GoogleProfile, error) {
	args := m.Called(ctx, accessToken)
	return args.Get(0).(GoogleProfile), args.Error(1)
}

// MockMagicLinkSender is a mock implementation of MagicLinkSender.
type MockMagicLinkSender struct {
	mock.Mock
}

func (m *MockMagicLinkSender) SendMagicLink(ctx context.Context, email, link string) error {
	args := m.Called(ctx, email, link)
	return args.Error(0)
}
