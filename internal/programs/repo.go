package programs

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/trainsmart/internal/telemetry/tracing"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanProgram(row pgx.Row) (Program, error) {
	var p Program
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.UserID, &p.Time)
	return p, err
}

func (r *Repo) Insert(ctx context.Context, userID string, in ProgramInput) (_ Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.insert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	p, err := scanProgram(r.db.QueryRow(
		ctx,
		`
			INSERT INTO programs (name, description, user_id)
			VALUES ($1, $2, $3)
			RETURNING id, name, description, user_id, time
		`,
		in.Name, in.Description, userID,
	))
	if err != nil {
		return Program{}, fmt.Errorf("insert program [query row]: %w", err)
	}

	return p, nil
}

// FetchForUser returns the user's programs, newest first.
func (r *Repo) FetchForUser(ctx context.Context, userID string) (_ []Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.fetch_for_user")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, name, description, user_id, time
			FROM programs
			WHERE user_id = $1
			ORDER BY time DESC
		`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("programs [query]: %w", err)
	}
	defer rows.Close()

	programs := make([]Program, 0)
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, fmt.Errorf("programs [rows scan]: %w", err)
		}
		programs = append(programs, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("programs [rows error]: %w", err)
	}

	return programs, nil
}

func (r *Repo) FetchOne(ctx context.Context, userID string, id int64) (_ Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.fetch_one")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("program.id", id))

	p, err := scanProgram(r.db.QueryRow(
		ctx,
		`
			SELECT id, name, description, user_id, time
			FROM programs
			WHERE id = $1 AND user_id = $2
		`,
		id, userID,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return Program{}, ErrProgramNotFound
	}
	if err != nil {
		return Program{}, fmt.Errorf("program [query row]: %w", err)
	}

	return p, nil
}

// Update only touches the row when name or description actually differ,
// ErrProgramNotUpdated is returned when no row came back.
func (r *Repo) Update(ctx context.Context, userID string, id int64, in ProgramInput) (_ Program, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("program.id", id))

	p, err := scanProgram(r.db.QueryRow(
		ctx,
		`
			UPDATE programs
			SET name = $3, description = $4
			WHERE id = $1 AND user_id = $2
			  AND (name IS DISTINCT FROM $3 OR description IS DISTINCT FROM $4)
			RETURNING id, name, description, user_id, time
		`,
		id, userID, in.Name, in.Description,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return Program{}, ErrProgramNotUpdated
	}
	if err != nil {
		return Program{}, fmt.Errorf("update program [query row]: %w", err)
	}

	return p, nil
}

func (r *Repo) Delete(ctx context.Context, userID string, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("program.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM programs WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete program [exec]: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProgramNotFound
	}

	return nil
}
