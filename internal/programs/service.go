package programs

import (
	"context"
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/trainsmart/internal/envelope"
	"github.com/2beens/trainsmart/internal/events"
	"github.com/2beens/trainsmart/internal/telemetry/metrics"
	"github.com/2beens/trainsmart/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=programs_test

type programsRepo interface {
	Insert(ctx context.Context, userID string, in ProgramInput) (Program, error)
	FetchForUser(ctx context.Context, userID string) ([]Program, error)
	FetchOne(ctx context.Context, userID string, id int64) (Program, error)
	Update(ctx context.Context, userID string, id int64, in ProgramInput) (Program, error)
	Delete(ctx context.Context, userID string, id int64) error
}

type eventRecorder interface {
	Record(ctx context.Context, event events.Event)
}

type Service struct {
	repo           programsRepo
	recorder       eventRecorder
	metricsManager *metrics.Manager
}

func NewService(repo programsRepo, recorder eventRecorder, metricsManager *metrics.Manager) *Service {
	if recorder == nil {
		recorder = events.NewRecorder(nil, metricsManager)
	}
	return &Service{
		repo:           repo,
		recorder:       recorder,
		metricsManager: metricsManager,
	}
}

func (s *Service) Insert(ctx context.Context, userID string, in ProgramInput) envelope.Result[Program] {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.programs.insert")
	defer span.End()

	if strings.TrimSpace(in.Name) == "" {
		return envelope.FailWith[Program](envelope.CodeInvalid, "program name empty")
	}

	p, err := s.repo.Insert(ctx, userID, in)
	if err != nil {
		log.Errorf("insert program [%s] for user [%s]: %s", in.Name, userID, err)
		s.metricsManager.RepoFailure("program", "insert")
		return envelope.Fail[Program](err)
	}

	s.recorder.Record(ctx, events.New(events.TypeProgramCreated, userID, p.ID, p))
	return envelope.Ok(p)
}

func (s *Service) FetchForUser(ctx context.Context, userID string) envelope.Result[[]Program] {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.programs.fetch_for_user")
	defer span.End()

	programs, err := s.repo.FetchForUser(ctx, userID)
	if err != nil {
		log.Errorf("fetch programs for user [%s]: %s", userID, err)
		s.metricsManager.RepoFailure("program", "fetch")
		return envelope.Fail[[]Program](err)
	}

	return envelope.Ok(programs)
}

func (s *Service) FetchOne(ctx context.Context, userID string, id int64) envelope.Result[Program] {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.programs.fetch_one")
	defer span.End()

	p, err := s.repo.FetchOne(ctx, userID, id)
	if errors.Is(err, ErrProgramNotFound) {
		return envelope.FailWith[Program](envelope.CodeNotFound, MessageProgramNotFound)
	}
	if err != nil {
		log.Errorf("fetch program [%d] for user [%s]: %s", id, userID, err)
		s.metricsManager.RepoFailure("program", "fetch_one")
		return envelope.Fail[Program](err)
	}

	return envelope.Ok(p)
}

// Update distinguishes the two reasons for an empty update result: a missing
// program is an error, an unchanged one is a success carrying MessageNoChanges.
func (s *Service) Update(ctx context.Context, userID string, id int64, in ProgramInput) envelope.Result[Program] {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.programs.update")
	defer span.End()

	if strings.TrimSpace(in.Name) == "" {
		return envelope.FailWith[Program](envelope.CodeInvalid, "program name empty")
	}

	p, err := s.repo.Update(ctx, userID, id, in)
	switch {
	case err == nil:
		s.recorder.Record(ctx, events.New(events.TypeProgramUpdated, userID, p.ID, p))
		return envelope.Ok(p)
	case errors.Is(err, ErrProgramNotUpdated):
		existing := s.FetchOne(ctx, userID, id)
		if !existing.Success {
			return existing
		}
		return envelope.OkWithMessage(existing.Data, MessageNoChanges)
	default:
		log.Errorf("update program [%d] for user [%s]: %s", id, userID, err)
		s.metricsManager.RepoFailure("program", "update")
		return envelope.Fail[Program](err)
	}
}

func (s *Service) Delete(ctx context.Context, userID string, id int64) envelope.Result[int64] {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.programs.delete")
	defer span.End()

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, ErrProgramNotFound) {
			return envelope.FailWith[int64](envelope.CodeNotFound, MessageProgramNotFound)
		}
		log.Errorf("delete program [%d] for user [%s]: %s", id, userID, err)
		s.metricsManager.RepoFailure("program", "delete")
		return envelope.Fail[int64](err)
	}

	s.recorder.Record(ctx, events.New(events.TypeProgramDeleted, userID, id, nil))
	return envelope.Ok(id)
}
