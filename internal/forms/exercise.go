package forms

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/trainsmart/internal/envelope"
	"github.com/2beens/trainsmart/internal/exercises"
	"github.com/2beens/trainsmart/internal/musclegroups"
	"github.com/2beens/trainsmart/internal/nav"
	"github.com/2beens/trainsmart/internal/profiles"
	"github.com/2beens/trainsmart/internal/telemetry/metrics"
	"github.com/2beens/trainsmart/internal/telemetry/tracing"
	"github.com/2beens/trainsmart/pkg"
)

const (
	MessageExerciseCreated      = "Exercise created!"
	MessageExerciseNameTaken    = "An exercise with this name already exists"
	MessageExerciseInsertFailed = "Failed to insert exercise. Please try again."
	MessageExerciseUpdateFailed = "Failed to update exercise. Please try again."
)

var exerciseMessages = map[string]string{
	"exerciseName.notblank":                     "Exercise name is required",
	"primaryMuscleGroupId.required":             "Please choose a primary muscle group",
	"primaryMuscleGroupId.musclegroup":          "Please choose a primary muscle group",
	"secondaryMuscleGroupId.musclegroup|eq=222": "Please choose a valid secondary muscle group",
}

type ExerciseForm struct {
	Name                   string  `json:"exerciseName" validate:"notblank"`
	Description            *string `json:"exerciseDescription"`
	IsTimeBased            bool    `json:"isTimeBased"`
	PrimaryMuscleGroupID   int64   `json:"primaryMuscleGroupId" validate:"required,musclegroup"`
	SecondaryMuscleGroupID *int64  `json:"secondaryMuscleGroupId" validate:"omitempty,musclegroup|eq=222"`
}

// ExercisePage is what a mounted exercise form starts from.
type ExercisePage struct {
	Profile profiles.UserProfile `json:"profile"`
	Values  ExerciseForm         `json:"values"`
}

func exerciseFormFrom(e exercises.Exercise) ExerciseForm {
	return ExerciseForm{
		Name:                   e.Name,
		Description:            e.Description,
		IsTimeBased:            e.IsTimeBased,
		PrimaryMuscleGroupID:   e.PrimaryMuscleGroupID,
		SecondaryMuscleGroupID: e.SecondaryMuscleGroupID,
	}
}

func (f ExerciseForm) description() *string {
	if f.Description == nil {
		return nil
	}
	return pkg.EmptyToNil(strings.TrimSpace(*f.Description))
}

func (f ExerciseForm) newExercise(ownerID string) exercises.NewExercise {
	return exercises.NewExercise{
		Name:                   strings.TrimSpace(f.Name),
		Description:            f.description(),
		IsTimeBased:            f.IsTimeBased,
		PrimaryMuscleGroupID:   f.PrimaryMuscleGroupID,
		SecondaryMuscleGroupID: musclegroups.Normalize(f.SecondaryMuscleGroupID),
		UserID:                 ownerID,
		IsTemplate:             false,
	}
}

type ExerciseForms struct {
	submitter
	profilesSvc  profilesService
	exercisesSvc exercisesService
}

func NewExerciseForms(
	profilesSvc profilesService,
	exercisesSvc exercisesService,
	metricsManager *metrics.Manager,
) *ExerciseForms {
	return &ExerciseForms{
		submitter:    submitter{metricsManager: metricsManager},
		profilesSvc:  profilesSvc,
		exercisesSvc: exercisesSvc,
	}
}

func (f *ExerciseForms) LoadCreate(ctx context.Context, userID string) (ExercisePage, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "forms.exercise.load_create")
	defer span.End()

	profile, err := requireProfile(ctx, f.profilesSvc, userID)
	if err != nil {
		return ExercisePage{}, err
	}

	return ExercisePage{
		Profile: profile,
		Values: ExerciseForm{
			PrimaryMuscleGroupID: musclegroups.None,
		},
	}, nil
}

func (f *ExerciseForms) Create(ctx context.Context, userID string, form ExerciseForm) (Outcome, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "forms.exercise.create")
	defer span.End()

	return f.submit("exercise_create", func() (Outcome, error) {
		if errs := validateForm(form, exerciseMessages); errs != nil {
			return fieldErrors(http.StatusBadRequest, errs), nil
		}

		profile, err := requireProfile(ctx, f.profilesSvc, userID)
		if err != nil {
			return Outcome{}, err
		}

		res := f.exercisesSvc.Insert(ctx, form.newExercise(profile.UserID))
		switch {
		case res.Success:
			return succeeded(http.StatusCreated, "", MessageExerciseCreated, res.Data), nil
		case res.HasCode(envelope.CodeUniqueViolation):
			return fieldError(http.StatusConflict, "exerciseName", MessageExerciseNameTaken), nil
		default:
			log.Errorf("create exercise for user [%s]: %s", userID, res.Err())
			return bannerFor(res, MessageExerciseInsertFailed), nil
		}
	})
}

// loadExercise fetches the exercise an edit or template page works on.
func (f *ExerciseForms) loadExercise(ctx context.Context, userID string, id int64) (exercises.Exercise, error) {
	res := f.exercisesSvc.FetchOne(ctx, userID, id)
	if !res.Success {
		log.Errorf("exercise [%d] for user [%s] not loaded: %s", id, userID, res.Err())
		return exercises.Exercise{}, fmt.Errorf("%w: exercise %d not loaded", ErrPrecondition, id)
	}
	return res.Data, nil
}

// loadTemplate is loadExercise restricted to shared templates.
func (f *ExerciseForms) loadTemplate(ctx context.Context, userID string, id int64) (exercises.Exercise, error) {
	exercise, err := f.loadExercise(ctx, userID, id)
	if err != nil {
		return exercises.Exercise{}, err
	}
	if !exercise.IsTemplate {
		log.Warnf("exercise [%d] used as template by user [%s] is not one", id, userID)
		return exercises.Exercise{}, fmt.Errorf("%w: exercise %d is not a template", ErrPrecondition, id)
	}
	return exercise, nil
}

func (f *ExerciseForms) LoadEdit(ctx context.Context, userID string, id int64) (ExercisePage, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "forms.exercise.load_edit")
	defer span.End()

	profile, err := requireProfile(ctx, f.profilesSvc, userID)
	if err != nil {
		return ExercisePage{}, err
	}

	exercise, err := f.loadExercise(ctx, userID, id)
	if err != nil {
		return ExercisePage{}, err
	}

	return ExercisePage{
		Profile: profile,
		Values:  exerciseFormFrom(exercise),
	}, nil
}

func (f *ExerciseForms) Edit(ctx context.Context, userID string, id int64, form ExerciseForm) (Outcome, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "forms.exercise.edit")
	defer span.End()

	return f.submit("exercise_edit", func() (Outcome, error) {
		if errs := validateForm(form, exerciseMessages); errs != nil {
			return fieldErrors(http.StatusBadRequest, errs), nil
		}

		if _, err := requireProfile(ctx, f.profilesSvc, userID); err != nil {
			return Outcome{}, err
		}

		existing, err := f.loadExercise(ctx, userID, id)
		if err != nil {
			return Outcome{}, err
		}

		ne := form.newExercise(userID)
		res := f.exercisesSvc.Update(ctx, userID, exercises.ExerciseUpdate{
			ID:                     existing.ID,
			Name:                   ne.Name,
			Description:            ne.Description,
			IsTimeBased:            ne.IsTimeBased,
			PrimaryMuscleGroupID:   ne.PrimaryMuscleGroupID,
			SecondaryMuscleGroupID: ne.SecondaryMuscleGroupID,
			IsTemplate:             existing.IsTemplate,
		})
		switch {
		case res.Success:
			return succeeded(http.StatusOK, nav.Exercises, res.Message, res.Data), nil
		case res.HasCode(envelope.CodeUniqueViolation):
			return fieldError(http.StatusConflict, "exerciseName", MessageExerciseNameTaken), nil
		default:
			log.Errorf("update exercise [%d] for user [%s]: %s", id, userID, res.Err())
			return bannerFor(res, MessageExerciseUpdateFailed), nil
		}
	})
}

func (f *ExerciseForms) LoadFromTemplate(ctx context.Context, userID string, templateID int64) (ExercisePage, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "forms.exercise.load_from_template")
	defer span.End()

	profile, err := requireProfile(ctx, f.profilesSvc, userID)
	if err != nil {
		return ExercisePage{}, err
	}

	template, err := f.loadTemplate(ctx, userID, templateID)
	if err != nil {
		return ExercisePage{}, err
	}

	return ExercisePage{
		Profile: profile,
		Values:  exerciseFormFrom(template),
	}, nil
}

// CreateFromTemplate inserts the submitted values as a new exercise of the
// user. The template itself is never touched.
func (f *ExerciseForms) CreateFromTemplate(ctx context.Context, userID string, templateID int64, form ExerciseForm) (Outcome, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "forms.exercise.create_from_template")
	defer span.End()

	return f.submit("exercise_from_template", func() (Outcome, error) {
		if errs := validateForm(form, exerciseMessages); errs != nil {
			return fieldErrors(http.StatusBadRequest, errs), nil
		}

		profile, err := requireProfile(ctx, f.profilesSvc, userID)
		if err != nil {
			return Outcome{}, err
		}

		if _, err := f.loadTemplate(ctx, userID, templateID); err != nil {
			return Outcome{}, err
		}

		res := f.exercisesSvc.Insert(ctx, form.newExercise(profile.UserID))
		switch {
		case res.Success:
			return succeeded(http.StatusCreated, nav.Exercises, "", res.Data), nil
		case res.HasCode(envelope.CodeUniqueViolation):
			return fieldError(http.StatusConflict, "exerciseName", MessageExerciseNameTaken), nil
		default:
			log.Errorf("create exercise from template [%d] for user [%s]: %s", templateID, userID, res.Err())
			return bannerFor(res, MessageExerciseInsertFailed), nil
		}
	})
}
