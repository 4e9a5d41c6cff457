package persistence

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campos-estilistas/salon-sdk/modules/crm/domain/aggregates/client"
)

type ClientRepository struct {
	pool *pgxpool.Pool
}

func NewClientRepository(pool *pgxpool.Pool) client.Repository {
	return &ClientRepository{pool: pool}
}

func (r *ClientRepository) Create(ctx context.Context, c client.Client) (client.Client, error) {
	var (
		id        int64
		createdAt pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, `
		INSERT INTO clients (first_name, last_name, email, phone, birth_date, notes, source_ref, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`,
		c.FirstName(),
		c.LastName(),
		pgText(c.Email()),
		pgText(c.Phone()),
		pgDate(c.BirthDate()),
		pgText(c.SourceNote()),
		pgText(c.SourceRef()),
		c.IsActive(),
	).Scan(&id, &createdAt)
	if err != nil {
		return client.Client{}, errors.Wrap(err, "create client")
	}

	return client.Hydrate(
		id,
		c.FirstName(), c.LastName(), c.Email(), c.Phone(),
		c.BirthDate(),
		c.SourceNote(), c.SourceRef(),
		c.IsActive(),
		createdAt.Time,
	), nil
}
