package profiles

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/trainsmart/internal/envelope"
	"github.com/2beens/trainsmart/internal/events"
	"github.com/2beens/trainsmart/internal/telemetry/metrics"
	"github.com/2beens/trainsmart/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=profiles_test

const megabyte = 1024 * 1024

type profilesRepo interface {
	Fetch(ctx context.Context, userID string) (UserProfile, error)
	Update(ctx context.Context, p UserProfile) (UserProfile, error)
}

type eventRecorder interface {
	Record(ctx context.Context, event events.Event)
}

type ServiceParams struct {
	Repo           profilesRepo
	Recorder       eventRecorder
	MetricsManager *metrics.Manager
	CacheSizeMB    int
	CacheTTL       time.Duration
}

// Service serves profile reads from an in-process cache, every form mount
// starts with a profile fetch. Update caches the written row.
//
// Each user has a write version, bumped when an update starts and when it
// ends. A fetch only caches what it read if no write started or ended
// meanwhile, so a read racing an update never caches the old row.
type Service struct {
	repo           profilesRepo
	recorder       eventRecorder
	metricsManager *metrics.Manager
	cache          *freecache.Cache
	cacheTTLSec    int

	mutex    sync.Mutex
	versions map[string]uint64
}

func NewService(params ServiceParams) *Service {
	recorder := params.Recorder
	if recorder == nil {
		recorder = events.NewRecorder(nil, params.MetricsManager)
	}

	s := &Service{
		repo:           params.Repo,
		recorder:       recorder,
		metricsManager: params.MetricsManager,
		cacheTTLSec:    int(params.CacheTTL.Seconds()),
		versions:       make(map[string]uint64),
	}
	// a zero ttl would keep entries forever, so no cache at all then
	if params.CacheSizeMB > 0 && s.cacheTTLSec > 0 {
		s.cache = freecache.NewCache(params.CacheSizeMB * megabyte)
	}

	return s
}

func (s *Service) Fetch(ctx context.Context, userID string) envelope.Result[UserProfile] {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profiles.fetch")
	defer span.End()

	if p, ok := s.fromCache(userID); ok {
		return envelope.Ok(p)
	}

	version := s.version(userID)
	p, err := s.repo.Fetch(ctx, userID)
	if err != nil {
		log.Errorf("fetch profile for user [%s]: %s", userID, err)
		s.metricsManager.RepoFailure("profile", "fetch")
		return envelope.Fail[UserProfile](err)
	}

	s.cacheIfUnchanged(p, version)
	return envelope.Ok(p)
}

func (s *Service) Update(ctx context.Context, p UserProfile) envelope.Result[UserProfile] {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profiles.update")
	defer span.End()

	if p.UserID == "" {
		return envelope.FailWith[UserProfile](envelope.CodeInvalid, "profile user id empty")
	}
	if p.DateOfBirth != nil {
		if _, err := time.Parse(DateLayout, *p.DateOfBirth); err != nil {
			return envelope.FailWith[UserProfile](envelope.CodeInvalid, "date of birth must be YYYY-MM-DD")
		}
	}

	s.beginWrite(p.UserID)
	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		s.endWrite(p.UserID, nil)
		log.Errorf("update profile for user [%s]: %s", p.UserID, err)
		s.metricsManager.RepoFailure("profile", "update")
		return envelope.Fail[UserProfile](err)
	}
	s.endWrite(p.UserID, &updated)

	s.recorder.Record(ctx, events.New(events.TypeProfileUpdated, p.UserID, 0, updated))
	return envelope.Ok(updated)
}

func (s *Service) version(userID string) uint64 {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.versions[userID]
}

func (s *Service) beginWrite(userID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.versions[userID]++
	s.invalidate(userID)
}

// endWrite caches the written row, or only drops the entry when the write failed.
func (s *Service) endWrite(userID string, written *UserProfile) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.versions[userID]++
	if written == nil {
		s.invalidate(userID)
		return
	}
	s.toCache(*written)
}

func (s *Service) cacheIfUnchanged(p UserProfile, version uint64) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.versions[p.UserID] != version {
		return
	}
	s.toCache(p)
}

func (s *Service) fromCache(userID string) (UserProfile, bool) {
	if s.cache == nil {
		return UserProfile{}, false
	}

	profileBytes, err := s.cache.Get([]byte(userID))
	if err != nil {
		return UserProfile{}, false
	}

	var p UserProfile
	if err := json.Unmarshal(profileBytes, &p); err != nil {
		log.Errorf("unmarshal cached profile for user [%s]: %s", userID, err)
		return UserProfile{}, false
	}

	return p, true
}

func (s *Service) toCache(p UserProfile) {
	if s.cache == nil {
		return
	}

	profileBytes, err := json.Marshal(p)
	if err != nil {
		log.Errorf("marshal profile for user [%s]: %s", p.UserID, err)
		return
	}

	if err := s.cache.Set([]byte(p.UserID), profileBytes, s.cacheTTLSec); err != nil {
		log.Errorf("cache profile for user [%s]: %s", p.UserID, err)
	}
}

func (s *Service) invalidate(userID string) {
	if s.cache != nil {
		s.cache.Del([]byte(userID))
	}
}
