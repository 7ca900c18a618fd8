package profiles

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/trainsmart/internal/telemetry/tracing"
)

// date_of_birth is read back as text so it round trips as YYYY-MM-DD
const profileColumns = `
	user_id, first_name, last_name, sex, to_char(date_of_birth, 'YYYY-MM-DD'),
	height, weight, is_imperial, email, username, created_at
`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanProfile(row pgx.Row) (UserProfile, error) {
	var p UserProfile
	err := row.Scan(
		&p.UserID,
		&p.FirstName,
		&p.LastName,
		&p.Sex,
		&p.DateOfBirth,
		&p.Height,
		&p.Weight,
		&p.IsImperial,
		&p.Email,
		&p.Username,
		&p.CreatedAt,
	)
	return p, err
}

func (r *Repo) Fetch(ctx context.Context, userID string) (_ UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.fetch")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	p, err := scanProfile(r.db.QueryRow(
		ctx,
		`SELECT `+profileColumns+` FROM user_profiles WHERE user_id = $1`,
		userID,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return UserProfile{}, ErrProfileNotFound
	}
	if err != nil {
		return UserProfile{}, fmt.Errorf("profile [query row]: %w", err)
	}

	return p, nil
}

// Update overwrites every editable field of the profile keyed by p.UserID.
func (r *Repo) Update(ctx context.Context, p UserProfile) (_ UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profiles.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", p.UserID))

	updated, err := scanProfile(r.db.QueryRow(
		ctx,
		`
			UPDATE user_profiles
			SET first_name = $2, last_name = $3, username = $4, email = $5, sex = $6,
				date_of_birth = $7::date, height = $8, weight = $9, is_imperial = $10
			WHERE user_id = $1
			RETURNING `+profileColumns,
		p.UserID, p.FirstName, p.LastName, p.Username, p.Email, p.Sex,
		p.DateOfBirth, p.Height, p.Weight, p.IsImperial,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return UserProfile{}, ErrProfileNotFound
	}
	if err != nil {
		return UserProfile{}, fmt.Errorf("update profile [query row]: %w", err)
	}

	return updated, nil
}
