package picker

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/trainsmart/internal/cache"
	"github.com/2beens/trainsmart/internal/envelope"
	"github.com/2beens/trainsmart/internal/exercises"
	"github.com/2beens/trainsmart/internal/musclegroups"
	"github.com/2beens/trainsmart/internal/nav"
	"github.com/2beens/trainsmart/internal/programs"
	"github.com/2beens/trainsmart/internal/telemetry/metrics"
	"github.com/2beens/trainsmart/internal/workouts"
)

//go:generate mockgen -source=$GOFILE -destination=sessions_mocks_test.go -package=picker_test

const (
	FieldExercises            = "exercises"
	FieldPrograms             = "programs"
	FieldWorkouts             = "workouts"
	FieldPrimaryMuscleGroup   = "primaryMuscleGroup"
	FieldSecondaryMuscleGroup = "secondaryMuscleGroup"
)

// Picker is the type independent face of a Field.
type Picker interface {
	Name() string
	Slot() *Slot
	Load(ctx context.Context) error
	View(ctx context.Context) (View, error)
	SetDependency(ctx context.Context, dep int64) error
	Reload(ctx context.Context, dep int64) error
	ClearDependency()
	Select(ctx context.Context, value *int64) error
	Act(ctx context.Context, id int64, kind ActionKind) (ActResult, error)
	Wait()
	Close()
}

type exercisesService interface {
	FetchForUser(ctx context.Context, userID string, exerciseID *int64) envelope.Result[[]exercises.Exercise]
	Delete(ctx context.Context, userID string, id int64) envelope.Result[int64]
}

type programsService interface {
	FetchForUser(ctx context.Context, userID string) envelope.Result[[]programs.Program]
}

type workoutsService interface {
	FetchForProgram(ctx context.Context, userID string, programID int64) envelope.Result[[]workouts.Workout]
	Delete(ctx context.Context, userID string, id int64) envelope.Result[int64]
}

type SetParams struct {
	Exercises        exercisesService
	Programs         programsService
	Workouts         workoutsService
	MetricsManager   *metrics.Manager
	ReconcileTimeout time.Duration
}

// Set is the group of pickers one user works with.
type Set struct {
	UserID string
	fields map[string]Picker
}

func NewSet(userID string, params SetParams) *Set {
	exercisesField := NewField(Config[exercises.Exercise]{
		Name:        FieldExercises,
		Label:       "Exercise",
		Placeholder: "Select an exercise",
		Load: func(ctx context.Context, _ int64) ([]exercises.Exercise, error) {
			res := params.Exercises.FetchForUser(ctx, userID, nil)
			return res.Data, res.Err()
		},
		Map: exerciseOption(userID),
		Delete: func(ctx context.Context, id int64) error {
			return params.Exercises.Delete(ctx, userID, id).Err()
		},
		Navigate: map[ActionKind]func(id int64) string{
			ActionEdit:      nav.EditExercise,
			ActionDuplicate: nav.ExerciseFromTemplate,
		},
		ReconcileTimeout: params.ReconcileTimeout,
		MetricsManager:   params.MetricsManager,
	})

	workoutsField := NewField(Config[workouts.Workout]{
		Name:        FieldWorkouts,
		Label:       "Workout",
		Placeholder: "Select a workout",
		Load: func(ctx context.Context, programID int64) ([]workouts.Workout, error) {
			res := params.Workouts.FetchForProgram(ctx, userID, programID)
			return res.Data, res.Err()
		},
		Map:             workoutOption,
		NeedsDependency: true,
		Delete: func(ctx context.Context, id int64) error {
			return params.Workouts.Delete(ctx, userID, id).Err()
		},
		ReconcileTimeout: params.ReconcileTimeout,
		MetricsManager:   params.MetricsManager,
	})

	programsField := NewField(Config[programs.Program]{
		Name:        FieldPrograms,
		Label:       "Program",
		Placeholder: "Select a program",
		Load: func(ctx context.Context, _ int64) ([]programs.Program, error) {
			res := params.Programs.FetchForUser(ctx, userID)
			return res.Data, res.Err()
		},
		Map: programOption,
		Navigate: map[ActionKind]func(id int64) string{
			ActionEdit: nav.EditProgram,
		},
		OnSelect: func(ctx context.Context, programID *int64) {
			if programID == nil {
				workoutsField.ClearDependency()
				return
			}
			if err := workoutsField.SetDependency(ctx, *programID); err != nil {
				log.Errorf("load workouts for program [%d]: %s", *programID, err)
			}
		},
		ReconcileTimeout: params.ReconcileTimeout,
		MetricsManager:   params.MetricsManager,
	})

	return &Set{
		UserID: userID,
		fields: map[string]Picker{
			FieldExercises:            exercisesField,
			FieldPrograms:             programsField,
			FieldWorkouts:             workoutsField,
			FieldPrimaryMuscleGroup:   newMuscleGroupField(FieldPrimaryMuscleGroup, "Primary muscle group", params.MetricsManager),
			FieldSecondaryMuscleGroup: newMuscleGroupField(FieldSecondaryMuscleGroup, "Secondary muscle group", params.MetricsManager),
		},
	}
}

func newMuscleGroupField(name, label string, metricsManager *metrics.Manager) *Field[musclegroups.MuscleGroup] {
	return NewField(Config[musclegroups.MuscleGroup]{
		Name:        name,
		Label:       label,
		Placeholder: "Select a muscle group",
		Load: func(context.Context, int64) ([]musclegroups.MuscleGroup, error) {
			return musclegroups.All(), nil
		},
		Map: func(mg musclegroups.MuscleGroup) Option {
			return Option{Value: mg.ID, Label: mg.Name}
		},
		MetricsManager: metricsManager,
	})
}

// exerciseOption offers duplicate on templates, edit and delete on the user's
// own exercises.
func exerciseOption(userID string) func(e exercises.Exercise) Option {
	return func(e exercises.Exercise) Option {
		o := Option{
			Value:       e.ID,
			Label:       e.Name,
			Description: e.Description,
			IsTemplate:  e.IsTemplate,
		}
		switch {
		case e.IsTemplate:
			o.Actions = []ActionKind{ActionDuplicate}
		case e.OwnedBy(userID):
			o.Actions = []ActionKind{ActionEdit, ActionDelete}
		}
		return o
	}
}

func programOption(p programs.Program) Option {
	return Option{
		Value:       p.ID,
		Label:       p.Name,
		Description: p.Description,
		Actions:     []ActionKind{ActionEdit},
	}
}

func workoutOption(w workouts.Workout) Option {
	return Option{
		Value:       w.ID,
		Label:       w.Name,
		Description: w.Description,
		Actions:     []ActionKind{ActionDelete},
	}
}

func (s *Set) Get(name string) (Picker, bool) {
	p, ok := s.fields[name]
	return p, ok
}

func (s *Set) Close() {
	for _, p := range s.fields {
		p.Close()
	}
}

// CloseEvicted is the eviction callback of the sessions cache.
func CloseEvicted(value any) {
	if set, ok := value.(*Set); ok {
		log.Debugf("picker session of user [%s] evicted", set.UserID)
		set.Close()
	}
}

// Sessions keeps one Set per user between requests.
type Sessions struct {
	cache     cache.Cache
	ttl       time.Duration
	setParams SetParams
	mutex     sync.Mutex
}

func NewSessions(c cache.Cache, ttl time.Duration, setParams SetParams) *Sessions {
	return &Sessions{
		cache:     c,
		ttl:       ttl,
		setParams: setParams,
	}
}

// For returns the user's Set, creating it on first use.
func (s *Sessions) For(userID string) *Set {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if cached, ok := s.cache.Get(userID); ok {
		if set, ok := cached.(*Set); ok {
			return set
		}
	}

	set := NewSet(userID, s.setParams)
	if !s.cache.SetWithTTL(userID, set, s.ttl) {
		log.Warnf("picker session for user [%s] not cached", userID)
	}

	return set
}

// ReloadWorkouts refreshes the user's workouts picker for the program, used
// after a workout was created outside the picker.
func (s *Sessions) ReloadWorkouts(ctx context.Context, userID string, programID int64) error {
	p, ok := s.For(userID).Get(FieldWorkouts)
	if !ok {
		return fmt.Errorf("picker [%s] missing", FieldWorkouts)
	}
	return p.Reload(ctx, programID)
}

func (s *Sessions) Close() {
	s.cache.Close()
}
