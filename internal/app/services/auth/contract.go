package auth

import (
	"context"

	"github.com/soundshelf/soundshelf-api/internal/app/domain"
)

type UserStore interface {
	CreateUserWithDefaultPlaylist(ctx context.Context, name, email, passwordHash string) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
}

type TokenIssuer interface {
	Issue(userID int64) (string, error)
}
