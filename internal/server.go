package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/multierr"

	"github.com/2beens/trainsmart/internal/cache"
	"github.com/2beens/trainsmart/internal/config"
	"github.com/2beens/trainsmart/internal/db"
	"github.com/2beens/trainsmart/internal/events"
	"github.com/2beens/trainsmart/internal/exercises"
	"github.com/2beens/trainsmart/internal/forms"
	"github.com/2beens/trainsmart/internal/identity"
	"github.com/2beens/trainsmart/internal/middleware"
	"github.com/2beens/trainsmart/internal/musclegroups"
	"github.com/2beens/trainsmart/internal/picker"
	"github.com/2beens/trainsmart/internal/profiles"
	"github.com/2beens/trainsmart/internal/programs"
	"github.com/2beens/trainsmart/internal/telemetry/metrics"
	"github.com/2beens/trainsmart/internal/telemetry/tracing"
	"github.com/2beens/trainsmart/internal/workouts"
	"github.com/2beens/trainsmart/pkg"
)

const (
	routerName = "main-router"
	// upper bound of concurrently kept picker sessions
	maxPickerSessions = 10_000
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config    *config.Config
	dbPool    *pgxpool.Pool
	publisher events.Publisher
	recorder  *events.Recorder

	redisClient    *redis.Client
	svc            *services
	pickerSessions *picker.Sessions

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		StoreURL:       params.Config.StoreURL,
		StoreKey:       params.Config.StoreKey,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": "trainsmart"},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("trainsmart", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	var rdb *redis.Client
	if params.Config.RateLimitEnabled {
		rdb = redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
			Password: params.RedisPassword,
			DB:       0,
		})
		if params.HoneycombTracingEnabled {
			rdb.AddHook(redisotel.NewTracingHook())
		}

		rdbStatus := rdb.Ping(ctx)
		if err := rdbStatus.Err(); err != nil {
			log.Errorf("--> failed to ping redis: %s", err)
		} else {
			log.Debugf("redis ping: %s", rdbStatus.Val())
		}
	}

	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "trainsmart-backend")
	if err != nil {
		return nil, err
	}

	var publisher events.Publisher = events.NopPublisher{}
	if len(params.Config.KafkaBrokers) > 0 {
		publisher = events.NewKafkaPublisher(params.Config.KafkaBrokers, params.Config.KafkaTopic)
		log.Debugf("publishing domain events to [%s] on %v", params.Config.KafkaTopic, params.Config.KafkaBrokers)
	}

	sessionsCache, err := cache.NewRistrettoCache(maxPickerSessions, picker.CloseEvicted)
	if err != nil {
		return nil, fmt.Errorf("picker sessions cache: %w", err)
	}

	s := &Server{
		config:      params.Config,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,
		publisher:   publisher,
		recorder:    events.NewRecorder(publisher, metricsManager),

		redisClient: rdb,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}
	s.pickerSessions = s.newPickerSessions(sessionsCache)

	return s, nil
}

type services struct {
	exercises *exercises.Service
	programs  *programs.Service
	workouts  *workouts.Service
	profiles  *profiles.Service
}

// services builds the domain services once, all handlers share them.
func (s *Server) services() *services {
	if s.svc != nil {
		return s.svc
	}
	s.svc = &services{
		exercises: exercises.NewService(exercises.NewRepo(s.dbPool), s.recorder, s.metricsManager),
		programs:  programs.NewService(programs.NewRepo(s.dbPool), s.recorder, s.metricsManager),
		workouts:  workouts.NewService(workouts.NewRepo(s.dbPool), s.recorder, s.metricsManager),
		profiles: profiles.NewService(profiles.ServiceParams{
			Repo:           profiles.NewRepo(s.dbPool),
			Recorder:       s.recorder,
			MetricsManager: s.metricsManager,
			CacheSizeMB:    s.config.ProfileCacheSizeMB,
			CacheTTL:       s.config.ProfileCacheTTL(),
		}),
	}
	return s.svc
}

func (s *Server) newPickerSessions(c cache.Cache) *picker.Sessions {
	svc := s.services()
	return picker.NewSessions(c, s.config.PickerSessionTTL(), picker.SetParams{
		Exercises:        svc.exercises,
		Programs:         svc.programs,
		Workouts:         svc.workouts,
		MetricsManager:   s.metricsManager,
		ReconcileTimeout: s.config.PickerReconcileTimeout(),
	})
}

func (s *Server) routerSetup() (*mux.Router, error) {
	if s.pickerSessions == nil {
		return nil, errors.New("picker sessions not set")
	}

	r := mux.NewRouter()
	r.Use(otelmux.Middleware(routerName))

	svc := s.services()

	r.HandleFunc("/muscle-groups", musclegroups.HandleList).Methods("GET", "OPTIONS")
	r.HandleFunc("/version", s.handleVersion).Methods("GET", "OPTIONS")

	exercisesHandler := exercises.NewHandler(svc.exercises)
	programsHandler := programs.NewHandler(svc.programs)
	workoutsHandler := workouts.NewHandler(svc.workouts)
	profilesHandler := profiles.NewHandler(svc.profiles)
	pickerHandler := picker.NewHandler(s.pickerSessions)
	formsHandler := forms.NewHandler(
		forms.NewExerciseForms(svc.profiles, svc.exercises, s.metricsManager),
		forms.NewProgramForms(svc.profiles, svc.programs, s.metricsManager),
		forms.NewWorkoutForms(svc.programs, svc.workouts, s.pickerSessions, s.metricsManager),
		forms.NewProfileForms(svc.profiles, s.metricsManager),
	)

	// profile
	r.HandleFunc("/profile", profilesHandler.HandleGet).Methods("GET", "OPTIONS")
	r.HandleFunc("/profile", formsHandler.HandleProfileEdit).Methods("PUT", "OPTIONS")
	r.HandleFunc("/forms/profile", formsHandler.HandleProfileLoad).Methods("GET", "OPTIONS")

	// exercises
	r.HandleFunc("/exercises", exercisesHandler.HandleList).Methods("GET", "OPTIONS")
	r.HandleFunc("/exercises", formsHandler.HandleExerciseCreate).Methods("POST", "OPTIONS")
	r.HandleFunc("/exercises/{id}", formsHandler.HandleExerciseEdit).Methods("PUT", "OPTIONS")
	r.HandleFunc("/exercises/{id}", exercisesHandler.HandleDelete).Methods("DELETE", "OPTIONS")
	r.HandleFunc("/exercises/from-template/{id}", formsHandler.HandleExerciseFromTemplate).Methods("POST", "OPTIONS")
	r.HandleFunc("/forms/exercises", formsHandler.HandleExerciseCreateLoad).Methods("GET", "OPTIONS")
	r.HandleFunc("/forms/exercises/template/{id}", formsHandler.HandleExerciseTemplateLoad).Methods("GET", "OPTIONS")
	r.HandleFunc("/forms/exercises/{id}", formsHandler.HandleExerciseEditLoad).Methods("GET", "OPTIONS")

	// programs and their workouts
	r.HandleFunc("/programs", programsHandler.HandleList).Methods("GET", "OPTIONS")
	r.HandleFunc("/programs", formsHandler.HandleProgramCreate).Methods("POST", "OPTIONS")
	r.HandleFunc("/programs/{id}", programsHandler.HandleGet).Methods("GET", "OPTIONS")
	r.HandleFunc("/programs/{id}", formsHandler.HandleProgramEdit).Methods("PUT", "OPTIONS")
	r.HandleFunc("/programs/{id}", formsHandler.HandleProgramDelete).Methods("DELETE", "OPTIONS")
	r.HandleFunc("/forms/programs/{id}", formsHandler.HandleProgramEditLoad).Methods("GET", "OPTIONS")
	r.HandleFunc("/programs/{id}/workouts", workoutsHandler.HandleListForProgram).Methods("GET", "OPTIONS")
	r.HandleFunc("/programs/{id}/workouts", formsHandler.HandleWorkoutCreate).Methods("POST", "OPTIONS")
	r.HandleFunc("/workouts/{id}", workoutsHandler.HandleDelete).Methods("DELETE", "OPTIONS")

	// pickers
	r.HandleFunc("/pickers/{name}", pickerHandler.HandleGet).Methods("GET", "OPTIONS")
	r.HandleFunc("/pickers/{name}/selection", pickerHandler.HandleSelect).Methods("PUT", "OPTIONS")
	r.HandleFunc("/pickers/{name}/options/{id}/{action}", pickerHandler.HandleAction).Methods("POST", "OPTIONS")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(identity.Middleware("/muscle-groups", "/version"))
	if s.redisClient != nil {
		r.Use(middleware.RateLimitMutations(
			redis_rate.NewLimiter(s.redisClient),
			s.metricsManager,
			routerName,
			s.config.MutationsRateLimitPerMin,
		))
	}
	r.Use(middleware.LimitAndDrainBody(middleware.DefaultMaxBodyBytes))

	return r, nil
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteResponse(w, pkg.ContentType.Text, s.versionInfo, http.StatusOK)
}

func (s *Server) Serve(host string, port int) error {
	router, err := s.routerSetup()
	if err != nil {
		return fmt.Errorf("setup router: %w", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
	return nil
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")
	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop taking requests first, everything below is used by the handlers
	var err error
	if s.httpServer != nil {
		err = multierr.Append(err, s.httpServer.Shutdown(ctx))
		log.Warnln("server shut down")
	}
	if s.metricsHttpServer != nil {
		err = multierr.Append(err, s.metricsHttpServer.Shutdown(ctx))
		log.Warnln("metrics server shut down")
	}

	if s.pickerSessions != nil {
		s.pickerSessions.Close()
	}

	if s.publisher != nil {
		err = multierr.Append(err, s.publisher.Close())
	}

	if s.otelShutdown != nil {
		s.otelShutdown()
		log.Trace("otel shut down ...")
	}

	if s.redisClient != nil {
		err = multierr.Append(err, s.redisClient.Close())
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	for _, shutdownErr := range multierr.Errors(err) {
		log.Errorf(" >>> graceful shutdown: %s", shutdownErr)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
