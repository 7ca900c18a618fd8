package workouts

import (
	"context"
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

func scanWorkout(row pgx.Row) (Workout, error) {
	var w Workout
	err := row.Scan(&w.ID, &w.Name, &w.Description, &w.ProgramID, &w.UserID, &w.TimeCreated)
	return w, err
}

func (r *Repo) Insert(ctx context.Context, nw NewWorkout) (_ Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.insert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user.id", nw.UserID),
		attribute.Int64("program.id", nw.ProgramID),
	)

	w, err := scanWorkout(r.db.QueryRow(
		ctx,
		`
			INSERT INTO program_workouts (workout_name, description, program_id, user_id)
			VALUES ($1, $2, $3, $4)
			RETURNING id, workout_name, description, program_id, user_id, time_created
		`,
		nw.Name, nw.Description, nw.ProgramID, nw.UserID,
	))
	if err != nil {
		return Workout{}, fmt.Errorf("insert workout [query row]: %w", err)
	}

	return w, nil
}

func (r *Repo) FetchForProgram(ctx context.Context, userID string, programID int64) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.fetch_for_program")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("program.id", programID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, workout_name, description, program_id, user_id, time_created
			FROM program_workouts
			WHERE user_id = $1 AND program_id = $2
			ORDER BY id
		`,
		userID, programID,
	)
	if err != nil {
		return nil, fmt.Errorf("workouts [query]: %w", err)
	}
	defer rows.Close()

	workouts := make([]Workout, 0)
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, fmt.Errorf("workouts [rows scan]: %w", err)
		}
		workouts = append(workouts, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("workouts [rows error]: %w", err)
	}

	return workouts, nil
}

func (r *Repo) Delete(ctx context.Context, userID string, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("workout.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM program_workouts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete workout [exec]: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}

	return nil
}
