package forms

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/trainsmart/internal/telemetry/metrics"
	"github.com/2beens/trainsmart/internal/telemetry/tracing"
	"github.com/2beens/trainsmart/internal/workouts"
	"github.com/2beens/trainsmart/pkg"
)

const MessageWorkoutCreateFailed = "Failed to create workout. Please try again."

var workoutMessages = map[string]string{
	"workoutName.notblank": "Workout name is required",
}

type WorkoutForm struct {
	Name        string  `json:"workoutName" validate:"notblank"`
	Description *string `json:"workoutDescription"`
}

// WorkoutForms backs the modal that adds a workout to a program.
type WorkoutForms struct {
	submitter
	programsSvc programsService
	workoutsSvc workoutsService
	reloader    workoutsReloader
}

func NewWorkoutForms(
	programsSvc programsService,
	workoutsSvc workoutsService,
	reloader workoutsReloader,
	metricsManager *metrics.Manager,
) *WorkoutForms {
	return &WorkoutForms{
		submitter:   submitter{metricsManager: metricsManager},
		programsSvc: programsSvc,
		workoutsSvc: workoutsSvc,
		reloader:    reloader,
	}
}

// Create inserts the workout into one of the user's programs and reloads the
// user's workouts picker. The modal closes on success, there is nothing to
// navigate to.
func (f *WorkoutForms) Create(ctx context.Context, userID string, programID int64, form WorkoutForm) (Outcome, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "forms.workout.create")
	defer span.End()

	return f.submit("workout_create", func() (Outcome, error) {
		if errs := validateForm(form, workoutMessages); errs != nil {
			return fieldErrors(http.StatusBadRequest, errs), nil
		}

		if program := f.programsSvc.FetchOne(ctx, userID, programID); !program.Success {
			log.Errorf("program [%d] for user [%s] not loaded: %s", programID, userID, program.Err())
			return Outcome{}, fmt.Errorf("%w: program %d not loaded", ErrPrecondition, programID)
		}

		nw := workouts.NewWorkout{
			Name:      strings.TrimSpace(form.Name),
			ProgramID: programID,
			UserID:    userID,
		}
		if form.Description != nil {
			nw.Description = pkg.EmptyToNil(strings.TrimSpace(*form.Description))
		}

		res := f.workoutsSvc.Insert(ctx, nw)
		if !res.Success {
			log.Errorf("create workout in program [%d] for user [%s]: %s", programID, userID, res.Err())
			return bannerFor(res, MessageWorkoutCreateFailed), nil
		}

		if f.reloader != nil {
			if err := f.reloader.ReloadWorkouts(ctx, userID, programID); err != nil {
				log.Warnf("reload workouts picker after create for user [%s]: %s", userID, err)
			}
		}

		return succeeded(http.StatusCreated, "", "", res.Data), nil
	})
}
