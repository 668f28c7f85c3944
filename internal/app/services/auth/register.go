package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/soundshelf/soundshelf-api/internal/app/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// Register creates the account and its Favorites playlist. The password is
// stored only as a bcrypt hash.
func (s AuthService) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	ctx, span := s.tracer.Start(ctx, "AuthService.Register")
	defer span.End()

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if err := s.validate.Struct(in); err != nil {
		return domain.User{}, fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return domain.User{}, fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}

	user, err := s.store.CreateUserWithDefaultPlaylist(ctx, in.Name, in.Email, string(hash))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if errors.Is(err, domain.ErrEmailTaken) {
			return domain.User{}, err
		}
		return domain.User{}, fmt.Errorf("%w: %s", domain.ErrStore, err.Error())
	}

	span.SetAttributes(attribute.Int64("user.id", user.ID))
	return user, nil
}
