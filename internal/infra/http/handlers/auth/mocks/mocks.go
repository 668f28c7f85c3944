package mocks

import (
	"context"

	"github.com/soundshelf/soundshelf-api/internal/app/domain"
	appauth "github.com/soundshelf/soundshelf-api/internal/app/services/auth"
	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, in appauth.RegisterInput) (domain.User, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (appauth.LoginResult, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(appauth.LoginResult), args.Error(1)
}
