package forms

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/trainsmart/internal/envelope"
	"github.com/2beens/trainsmart/internal/nav"
	"github.com/2beens/trainsmart/internal/profiles"
	"github.com/2beens/trainsmart/internal/programs"
	"github.com/2beens/trainsmart/internal/telemetry/metrics"
	"github.com/2beens/trainsmart/internal/telemetry/tracing"
	"github.com/2beens/trainsmart/pkg"
)

const (
	MessageProgramNameTaken    = "A program with this name already exists"
	MessageProgramCreateFailed = "Failed to create program. Please try again."
	MessageProgramUpdateFailed = "Failed to update program. Please try again."
	MessageProgramDeleteFailed = "Failed to delete program. Please try again."
)

var programMessages = map[string]string{
	"programName.notblank": "Program name is required",
}

type ProgramForm struct {
	Name        string  `json:"programName" validate:"notblank"`
	Description *string `json:"programDescription"`
}

func (f ProgramForm) input() programs.ProgramInput {
	in := programs.ProgramInput{Name: strings.TrimSpace(f.Name)}
	if f.Description != nil {
		in.Description = pkg.EmptyToNil(strings.TrimSpace(*f.Description))
	}
	return in
}

type ProgramPage struct {
	Profile profiles.UserProfile `json:"profile"`
	Values  ProgramForm          `json:"values"`
}

type ProgramForms struct {
	submitter
	profilesSvc profilesService
	programsSvc programsService
}

func NewProgramForms(
	profilesSvc profilesService,
	programsSvc programsService,
	metricsManager *metrics.Manager,
) *ProgramForms {
	return &ProgramForms{
		submitter:   submitter{metricsManager: metricsManager},
		profilesSvc: profilesSvc,
		programsSvc: programsSvc,
	}
}

func (f *ProgramForms) Create(ctx context.Context, userID string, form ProgramForm) (Outcome, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "forms.program.create")
	defer span.End()

	return f.submit("program_create", func() (Outcome, error) {
		if errs := validateForm(form, programMessages); errs != nil {
			return fieldErrors(http.StatusBadRequest, errs), nil
		}

		profile, err := requireProfile(ctx, f.profilesSvc, userID)
		if err != nil {
			return Outcome{}, err
		}

		res := f.programsSvc.Insert(ctx, profile.UserID, form.input())
		switch {
		case res.Success:
			return succeeded(http.StatusCreated, nav.Programs, "", res.Data), nil
		case res.HasCode(envelope.CodeUniqueViolation):
			return fieldError(http.StatusConflict, "programName", MessageProgramNameTaken), nil
		default:
			log.Errorf("create program for user [%s]: %s", userID, res.Err())
			return bannerFor(res, MessageProgramCreateFailed), nil
		}
	})
}

func (f *ProgramForms) LoadEdit(ctx context.Context, userID string, id int64) (ProgramPage, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "forms.program.load_edit")
	defer span.End()

	profile, err := requireProfile(ctx, f.profilesSvc, userID)
	if err != nil {
		return ProgramPage{}, err
	}

	res := f.programsSvc.FetchOne(ctx, userID, id)
	if !res.Success {
		log.Errorf("program [%d] for user [%s] not loaded: %s", id, userID, res.Err())
		return ProgramPage{}, fmt.Errorf("%w: program %d not loaded", ErrPrecondition, id)
	}

	return ProgramPage{
		Profile: profile,
		Values: ProgramForm{
			Name:        res.Data.Name,
			Description: res.Data.Description,
		},
	}, nil
}

// Edit redirects back to the list on success. An update that changed nothing
// still succeeds and carries the note from the service.
func (f *ProgramForms) Edit(ctx context.Context, userID string, id int64, form ProgramForm) (Outcome, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "forms.program.edit")
	defer span.End()

	return f.submit("program_edit", func() (Outcome, error) {
		if errs := validateForm(form, programMessages); errs != nil {
			return fieldErrors(http.StatusBadRequest, errs), nil
		}

		if _, err := requireProfile(ctx, f.profilesSvc, userID); err != nil {
			return Outcome{}, err
		}

		res := f.programsSvc.Update(ctx, userID, id, form.input())
		switch {
		case res.Success:
			return succeeded(http.StatusOK, nav.Programs, res.Message, res.Data), nil
		case res.HasCode(envelope.CodeNotFound):
			return banner(http.StatusNotFound, programs.MessageProgramNotFound), nil
		case res.HasCode(envelope.CodeUniqueViolation):
			return fieldError(http.StatusConflict, "programName", MessageProgramNameTaken), nil
		default:
			log.Errorf("update program [%d] for user [%s]: %s", id, userID, res.Err())
			return bannerFor(res, MessageProgramUpdateFailed), nil
		}
	})
}

func (f *ProgramForms) Delete(ctx context.Context, userID string, id int64) (Outcome, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "forms.program.delete")
	defer span.End()

	return f.submit("program_delete", func() (Outcome, error) {
		res := f.programsSvc.Delete(ctx, userID, id)
		switch {
		case res.Success:
			return succeeded(http.StatusOK, nav.Programs, "", res.Data), nil
		case res.HasCode(envelope.CodeNotFound):
			return banner(http.StatusNotFound, programs.MessageProgramNotFound), nil
		default:
			log.Errorf("delete program [%d] for user [%s]: %s", id, userID, res.Err())
			return bannerFor(res, MessageProgramDeleteFailed), nil
		}
	})
}
