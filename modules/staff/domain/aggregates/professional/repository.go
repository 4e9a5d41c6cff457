package professional

import (
	"context"

	"github.com/go-faster/errors"
)

var ErrNotFound = errors.New("professional not found")

type Repository interface {
	Create(ctx context.Context, p Professional) (Professional, error)

	// FindByName performs a case-insensitive exact match on first and last
	// name. When several professionals share a name the lowest id wins;
	// duplicate names are not disambiguated further.
	FindByName(ctx context.Context, firstName, lastName string) (Professional, error)

	// LinkUser attaches a provisioned account to the professional.
	LinkUser(ctx context.Context, professionalID, userID int64) error
}
