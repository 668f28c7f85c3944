package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/soundshelf/soundshelf-api/internal/app/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/crypto/bcrypt"
)

type LoginResult struct {
	User  domain.PublicUser
	Token string
}

// Login checks the password against the stored hash and issues a session
// token. An unknown email and a wrong password fail the same way.
func (s AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	ctx, span := s.tracer.Start(ctx, "AuthService.Login")
	defer span.End()

	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return LoginResult{}, domain.ErrInvalidCredentials
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return LoginResult{}, fmt.Errorf("%w: %s", domain.ErrStore, err.Error())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return LoginResult{}, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return LoginResult{}, fmt.Errorf("issue token: %w", err)
	}

	span.SetAttributes(attribute.Int64("user.id", user.ID))
	return LoginResult{User: user.Public(), Token: token}, nil
}
