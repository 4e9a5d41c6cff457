package client

import (
	"context"

	"github.com/go-faster/errors"
)

var ErrNotFound = errors.New("client not found")

type Repository interface {
	Create(ctx context.Context, c Client) (Client, error)
}
