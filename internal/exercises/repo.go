package exercises

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/trainsmart/internal/telemetry/tracing"
)

const exerciseColumns = `
	id, name, description, is_time_based, primary_muscle_group_id,
	secondary_muscle_group_id, user_id, is_template, time_created
`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanExercise(row pgx.Row) (Exercise, error) {
	var e Exercise
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Description,
		&e.IsTimeBased,
		&e.PrimaryMuscleGroupID,
		&e.SecondaryMuscleGroupID,
		&e.UserID,
		&e.IsTemplate,
		&e.TimeCreated,
	)
	return e, err
}

func (r *Repo) Insert(ctx context.Context, ne NewExercise) (_ Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.insert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", ne.UserID))

	e, err := scanExercise(r.db.QueryRow(
		ctx,
		`
			INSERT INTO exercises (
				name, description, is_time_based, primary_muscle_group_id,
				secondary_muscle_group_id, user_id, is_template
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING `+exerciseColumns,
		ne.Name,
		ne.Description,
		ne.IsTimeBased,
		ne.PrimaryMuscleGroupID,
		ne.SecondaryMuscleGroupID,
		ne.UserID,
		ne.IsTemplate,
	))
	if err != nil {
		return Exercise{}, fmt.Errorf("insert exercise [query row]: %w", err)
	}

	return e, nil
}

// FetchForUser returns the user's own exercises plus all templates,
// narrowed down to a single id when exerciseID is set. No ordering.
func (r *Repo) FetchForUser(ctx context.Context, userID string, exerciseID *int64) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.fetch_for_user")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))
	if exerciseID != nil {
		span.SetAttributes(attribute.Int64("exercise.id", *exerciseID))
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT `+exerciseColumns+`
			FROM exercises
			WHERE (user_id = $1 OR is_template = true)
			  AND ($2::bigint IS NULL OR id = $2)
		`,
		userID,
		exerciseID,
	)
	if err != nil {
		return nil, fmt.Errorf("exercises [query]: %w", err)
	}
	defer rows.Close()

	exercises := make([]Exercise, 0)
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("exercises [rows scan]: %w", err)
		}
		exercises = append(exercises, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercises [rows error]: %w", err)
	}

	return exercises, nil
}

// Update rewrites all editable fields of one of the user's exercises.
func (r *Repo) Update(ctx context.Context, userID string, eu ExerciseUpdate) (_ Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("exercise.id", eu.ID))

	e, err := scanExercise(r.db.QueryRow(
		ctx,
		`
			UPDATE exercises
			SET name = $3,
				description = $4,
				is_time_based = $5,
				primary_muscle_group_id = $6,
				secondary_muscle_group_id = $7,
				is_template = $8
			WHERE id = $1 AND user_id = $2
			RETURNING `+exerciseColumns,
		eu.ID,
		userID,
		eu.Name,
		eu.Description,
		eu.IsTimeBased,
		eu.PrimaryMuscleGroupID,
		eu.SecondaryMuscleGroupID,
		eu.IsTemplate,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return Exercise{}, ErrExerciseNotFound
	}
	if err != nil {
		return Exercise{}, fmt.Errorf("update exercise [query row]: %w", err)
	}

	return e, nil
}

func (r *Repo) Delete(ctx context.Context, userID string, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("exercise.id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM exercises WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("delete exercise [exec]: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}

	return nil
}
