package persistence

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/campos-estilistas/salon-sdk/modules/staff/domain/aggregates/professional"
)

type ProfessionalRepository struct {
	pool *pgxpool.Pool
}

func NewProfessionalRepository(pool *pgxpool.Pool) professional.Repository {
	return &ProfessionalRepository{pool: pool}
}

func (r *ProfessionalRepository) Create(ctx context.Context, p professional.Professional) (professional.Professional, error) {
	var (
		id        int64
		createdAt pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, `
		INSERT INTO professionals (first_name, last_name, specialty_id, status_id, bio, profile_image, base_salary)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`,
		p.FirstName(),
		p.LastName(),
		int(p.Specialty()),
		int(p.Status()),
		pgText(p.Bio()),
		pgText(p.ProfileImage()),
		p.BaseSalary(),
	).Scan(&id, &createdAt)
	if err != nil {
		return professional.Professional{}, errors.Wrap(err, "create professional")
	}

	return professional.Hydrate(
		id,
		p.FirstName(), p.LastName(),
		p.Specialty(), p.Status(),
		p.Bio(), p.ProfileImage(),
		p.BaseSalary(),
		p.UserID(),
		createdAt.Time,
	), nil
}

func (r *ProfessionalRepository) FindByName(ctx context.Context, firstName, lastName string) (professional.Professional, error) {
	var (
		id           int64
		first, last  string
		specialtyID  int
		statusID     int
		bio          pgtype.Text
		profileImage pgtype.Text
		baseSalary   decimal.Decimal
		userID       pgtype.Int8
		createdAt    pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, first_name, last_name, specialty_id, status_id, bio, profile_image, base_salary, user_id, created_at
		FROM professionals
		WHERE LOWER(first_name) = LOWER($1) AND LOWER(last_name) = LOWER($2)
		ORDER BY id
		LIMIT 1
	`, firstName, lastName).Scan(
		&id, &first, &last, &specialtyID, &statusID, &bio, &profileImage, &baseSalary, &userID, &createdAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return professional.Professional{}, professional.ErrNotFound
		}
		return professional.Professional{}, errors.Wrap(err, "find professional by name")
	}

	var linkedUserID int64
	if userID.Valid {
		linkedUserID = userID.Int64
	}
	return professional.Hydrate(
		id,
		first, last,
		professional.Specialty(specialtyID), professional.Status(statusID),
		textValue(bio), textValue(profileImage),
		baseSalary,
		linkedUserID,
		createdAt.Time,
	), nil
}

func (r *ProfessionalRepository) LinkUser(ctx context.Context, professionalID, userID int64) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE professionals
		SET user_id = $1, updated_at = $2
		WHERE id = $3
	`, userID, time.Now().UTC(), professionalID)
	if err != nil {
		return errors.Wrap(err, "link professional to user")
	}
	if tag.RowsAffected() == 0 {
		return professional.ErrNotFound
	}
	return nil
}
