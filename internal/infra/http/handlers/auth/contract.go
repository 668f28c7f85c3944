package auth

import (
	"context"

	"github.com/soundshelf/soundshelf-api/internal/app/domain"
	appauth "github.com/soundshelf/soundshelf-api/internal/app/services/auth"
)

type AuthService interface {
	Register(ctx context.Context, in appauth.RegisterInput) (domain.User, error)
	Login(ctx context.Context, email, password string) (appauth.LoginResult, error)
}
