package library

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/soundshelf/soundshelf-api/internal/app/domain"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const MaxPlaylistNameLength = 100

type LibraryService struct {
	tracer   trace.Tracer
	store    Store
	validate *validator.Validate
}

func New(tracer trace.Tracer, store Store) LibraryService {
	return LibraryService{
		tracer:   tracer,
		store:    store,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// storeErr passes the domain sentinels through and folds anything else
// into ErrStore.
func storeErr(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	for _, known := range []error{domain.ErrSongNotFound, domain.ErrPlaylistNotFound} {
		if errors.Is(err, known) {
			return err
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrStore, err.Error())
}
