package exercises

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/trainsmart/internal/envelope"
	"github.com/2beens/trainsmart/internal/events"
	"github.com/2beens/trainsmart/internal/telemetry/metrics"
	"github.com/2beens/trainsmart/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=exercises_test

type exercisesRepo interface {
	Insert(ctx context.Context, ne NewExercise) (Exercise, error)
	FetchForUser(ctx context.Context, userID string, exerciseID *int64) ([]Exercise, error)
	Update(ctx context.Context, userID string, eu ExerciseUpdate) (Exercise, error)
	Delete(ctx context.Context, userID string, id int64) error
}

type eventRecorder interface {
	Record(ctx context.Context, event events.Event)
}

// Service exposes the exercise repository functions. Every call returns an
// envelope, store failures never escape as errors or panics.
type Service struct {
	repo           exercisesRepo
	recorder       eventRecorder
	metricsManager *metrics.Manager
}

func NewService(repo exercisesRepo, recorder eventRecorder, metricsManager *metrics.Manager) *Service {
	if recorder == nil {
		recorder = events.NewRecorder(nil, metricsManager)
	}
	return &Service{
		repo:           repo,
		recorder:       recorder,
		metricsManager: metricsManager,
	}
}

func (s *Service) Insert(ctx context.Context, ne NewExercise) envelope.Result[Exercise] {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.insert")
	defer span.End()

	if err := ne.Validate(); err != nil {
		return envelope.FailWith[Exercise](envelope.CodeInvalid, err.Error())
	}

	e, err := s.repo.Insert(ctx, ne)
	if err != nil {
		log.Errorf("insert exercise [%s] for user [%s]: %s", ne.Name, ne.UserID, err)
		s.metricsManager.RepoFailure("exercise", "insert")
		return envelope.Fail[Exercise](err)
	}

	s.recorder.Record(ctx, events.New(events.TypeExerciseCreated, ne.UserID, e.ID, e))
	return envelope.Ok(e)
}

func (s *Service) FetchForUser(ctx context.Context, userID string, exerciseID *int64) envelope.Result[[]Exercise] {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.fetch_for_user")
	defer span.End()

	exercises, err := s.repo.FetchForUser(ctx, userID, exerciseID)
	if err != nil {
		log.Errorf("fetch exercises for user [%s]: %s", userID, err)
		s.metricsManager.RepoFailure("exercise", "fetch")
		return envelope.Fail[[]Exercise](err)
	}

	return envelope.Ok(exercises)
}

// FetchOne returns a single exercise visible to the user (own or template).
func (s *Service) FetchOne(ctx context.Context, userID string, id int64) envelope.Result[Exercise] {
	res := s.FetchForUser(ctx, userID, &id)
	if !res.Success {
		return envelope.Result[Exercise]{Error: res.Error}
	}
	if len(res.Data) == 0 {
		return envelope.Fail[Exercise](ErrExerciseNotFound)
	}
	return envelope.Ok(res.Data[0])
}

func (s *Service) Update(ctx context.Context, userID string, eu ExerciseUpdate) envelope.Result[Exercise] {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.update")
	defer span.End()

	e, err := s.repo.Update(ctx, userID, eu)
	if err != nil {
		log.Errorf("update exercise [%d] for user [%s]: %s", eu.ID, userID, err)
		s.metricsManager.RepoFailure("exercise", "update")
		return envelope.Fail[Exercise](err)
	}

	s.recorder.Record(ctx, events.New(events.TypeExerciseUpdated, userID, e.ID, e))
	return envelope.Ok(e)
}

func (s *Service) Delete(ctx context.Context, userID string, id int64) envelope.Result[int64] {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.exercises.delete")
	defer span.End()

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		log.Errorf("delete exercise [%d] for user [%s]: %s", id, userID, err)
		s.metricsManager.RepoFailure("exercise", "delete")
		return envelope.Fail[int64](err)
	}

	s.recorder.Record(ctx, events.New(events.TypeExerciseDeleted, userID, id, nil))
	return envelope.Ok(id)
}
