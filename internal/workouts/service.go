package workouts

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/trainsmart/internal/envelope"
	"github.com/2beens/trainsmart/internal/events"
	"github.com/2beens/trainsmart/internal/telemetry/metrics"
	"github.com/2beens/trainsmart/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Insert(ctx context.Context, nw NewWorkout) (Workout, error)
	FetchForProgram(ctx context.Context, userID string, programID int64) ([]Workout, error)
	Delete(ctx context.Context, userID string, id int64) error
}

type eventRecorder interface {
	Record(ctx context.Context, event events.Event)
}

type Service struct {
	repo           workoutsRepo
	recorder       eventRecorder
	metricsManager *metrics.Manager
}

func NewService(repo workoutsRepo, recorder eventRecorder, metricsManager *metrics.Manager) *Service {
	if recorder == nil {
		recorder = events.NewRecorder(nil, metricsManager)
	}
	return &Service{
		repo:           repo,
		recorder:       recorder,
		metricsManager: metricsManager,
	}
}

func (s *Service) Insert(ctx context.Context, nw NewWorkout) envelope.Result[Workout] {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.insert")
	defer span.End()

	if err := nw.Validate(); err != nil {
		return envelope.FailWith[Workout](envelope.CodeInvalid, err.Error())
	}

	w, err := s.repo.Insert(ctx, nw)
	if err != nil {
		log.Errorf("insert workout [%s] in program [%d]: %s", nw.Name, nw.ProgramID, err)
		s.metricsManager.RepoFailure("workout", "insert")
		return envelope.Fail[Workout](err)
	}

	s.recorder.Record(ctx, events.New(events.TypeWorkoutCreated, nw.UserID, w.ID, w))
	return envelope.Ok(w)
}

func (s *Service) FetchForProgram(ctx context.Context, userID string, programID int64) envelope.Result[[]Workout] {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.fetch_for_program")
	defer span.End()

	workouts, err := s.repo.FetchForProgram(ctx, userID, programID)
	if err != nil {
		log.Errorf("fetch workouts of program [%d] for user [%s]: %s", programID, userID, err)
		s.metricsManager.RepoFailure("workout", "fetch")
		return envelope.Fail[[]Workout](err)
	}

	return envelope.Ok(workouts)
}

func (s *Service) Delete(ctx context.Context, userID string, id int64) envelope.Result[int64] {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.delete")
	defer span.End()

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		log.Errorf("delete workout [%d] for user [%s]: %s", id, userID, err)
		s.metricsManager.RepoFailure("workout", "delete")
		return envelope.Fail[int64](err)
	}

	s.recorder.Record(ctx, events.New(events.TypeWorkoutDeleted, userID, id, nil))
	return envelope.Ok(id)
}
