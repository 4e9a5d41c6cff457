package persistence

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campos-estilistas/salon-sdk/modules/core/domain/aggregates/user"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) user.Repository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	var (
		id        int64
		createdAt pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, role_id, is_active, email_verified, must_change_password)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`,
		u.Email(),
		u.PasswordHash(),
		int(u.Role()),
		u.IsActive(),
		u.EmailVerified(),
		u.MustChangePassword(),
	).Scan(&id, &createdAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.User{}, user.ErrEmailTaken
		}
		return user.User{}, errors.Wrap(err, "create user")
	}

	return user.Hydrate(
		id,
		u.Email(), u.PasswordHash(),
		u.Role(),
		u.IsActive(), u.EmailVerified(), u.MustChangePassword(),
		createdAt.Time,
	), nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)
	`, email).Scan(&exists)
	if err != nil {
		return false, errors.Wrap(err, "user exists by email")
	}
	return exists, nil
}
