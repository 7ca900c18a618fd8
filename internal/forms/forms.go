// Package forms orchestrates the create and edit pages: load what the page
// needs, validate the submitted values, map them onto the repository shape,
// call the mutation and turn the envelope into an Outcome for the client.
package forms

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/trainsmart/internal/envelope"
	"github.com/2beens/trainsmart/internal/exercises"
	"github.com/2beens/trainsmart/internal/profiles"
	"github.com/2beens/trainsmart/internal/programs"
	"github.com/2beens/trainsmart/internal/telemetry/metrics"
	"github.com/2beens/trainsmart/internal/workouts"
)

//go:generate mockgen -source=$GOFILE -destination=forms_mocks_test.go -package=forms_test

// ErrPrecondition aborts a form when the profile or the edited entity cannot
// be loaded.
var ErrPrecondition = errors.New("form precondition failed")

const MessageSubmitFailed = "Submitting form failed!"

type profilesService interface {
	Fetch(ctx context.Context, userID string) envelope.Result[profiles.UserProfile]
	Update(ctx context.Context, p profiles.UserProfile) envelope.Result[profiles.UserProfile]
}

type exercisesService interface {
	Insert(ctx context.Context, ne exercises.NewExercise) envelope.Result[exercises.Exercise]
	FetchOne(ctx context.Context, userID string, id int64) envelope.Result[exercises.Exercise]
	Update(ctx context.Context, userID string, eu exercises.ExerciseUpdate) envelope.Result[exercises.Exercise]
}

type programsService interface {
	Insert(ctx context.Context, userID string, in programs.ProgramInput) envelope.Result[programs.Program]
	FetchOne(ctx context.Context, userID string, id int64) envelope.Result[programs.Program]
	Update(ctx context.Context, userID string, id int64, in programs.ProgramInput) envelope.Result[programs.Program]
	Delete(ctx context.Context, userID string, id int64) envelope.Result[int64]
}

type workoutsService interface {
	Insert(ctx context.Context, nw workouts.NewWorkout) envelope.Result[workouts.Workout]
}

type workoutsReloader interface {
	ReloadWorkouts(ctx context.Context, userID string, programID int64) error
}

// Outcome is what the client gets back from a form submission: a redirect to
// follow, a banner message, or errors to attach to single fields.
type Outcome struct {
	Success     bool              `json:"success"`
	Message     string            `json:"message,omitempty"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
	Redirect    string            `json:"redirect,omitempty"`
	Data        any               `json:"data,omitempty"`

	status int
}

func (o Outcome) HTTPStatus() int {
	if o.status != 0 {
		return o.status
	}
	if o.Success {
		return http.StatusOK
	}
	return http.StatusInternalServerError
}

func (o Outcome) result() string {
	switch {
	case o.Success:
		return "success"
	case len(o.FieldErrors) > 0:
		return "field_error"
	default:
		return "banner"
	}
}

func succeeded(status int, redirect, message string, data any) Outcome {
	return Outcome{
		Success:  true,
		Redirect: redirect,
		Message:  message,
		Data:     data,
		status:   status,
	}
}

func fieldErrors(status int, errs map[string]string) Outcome {
	return Outcome{
		FieldErrors: errs,
		status:      status,
	}
}

func fieldError(status int, field, message string) Outcome {
	return fieldErrors(status, map[string]string{field: message})
}

func banner(status int, message string) Outcome {
	return Outcome{
		Message: message,
		status:  status,
	}
}

// bannerFor shows message for any failed envelope, keeping its status code.
func bannerFor[T any](res envelope.Result[T], message string) Outcome {
	return banner(res.HTTPStatus(), message)
}

// submitter runs form submissions: counts them and turns a panic inside a
// submission into the generic failure banner.
type submitter struct {
	metricsManager *metrics.Manager
}

func (s submitter) submit(form string, fn func() (Outcome, error)) (out Outcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("form [%s]: submission panicked: %v\n%s", form, r, debug.Stack())
			out, err = banner(http.StatusInternalServerError, MessageSubmitFailed), nil
			s.metricsManager.FormSubmission(form, "panic")
			return
		}

		switch {
		case errors.Is(err, ErrPrecondition):
			s.metricsManager.FormSubmission(form, "precondition")
		case err != nil:
			s.metricsManager.FormSubmission(form, "error")
		default:
			s.metricsManager.FormSubmission(form, out.result())
		}
	}()

	return fn()
}

// requireProfile loads the profile every form needs before it submits.
func requireProfile(ctx context.Context, profilesSvc profilesService, userID string) (profiles.UserProfile, error) {
	res := profilesSvc.Fetch(ctx, userID)
	if !res.Success {
		log.Errorf("user profile [%s] not loaded: %s", userID, res.Err())
		return profiles.UserProfile{}, fmt.Errorf("%w: user profile not loaded", ErrPrecondition)
	}
	return res.Data, nil
}
