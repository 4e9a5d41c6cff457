package user

import (
	"context"

	"github.com/go-faster/errors"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("user email already taken")
)

type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
