package mocks

import (
	"context"

	"github.com/soundshelf/soundshelf-api/internal/app/domain"
	"github.com/stretchr/testify/mock"
)

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) CreateUserWithDefaultPlaylist(ctx context.Context, name, email, passwordHash string) (domain.User, error) {
	args := m.Called(ctx, name, email, passwordHash)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserStore) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(userID int64) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}
