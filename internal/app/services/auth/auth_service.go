package auth

import (
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	tracer     trace.Tracer
	store      UserStore
	tokens     TokenIssuer
	bcryptCost int
	validate   *validator.Validate
}

func New(tracer trace.Tracer, store UserStore, tokens TokenIssuer, bcryptCost int) AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}

	return AuthService{
		tracer:     tracer,
		store:      store,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
	}
}
