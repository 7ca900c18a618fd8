package forms

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/trainsmart/internal/envelope"
	"github.com/2beens/trainsmart/internal/identity"
	"github.com/2beens/trainsmart/internal/telemetry/tracing"
	"github.com/2beens/trainsmart/pkg"
)

type Handler struct {
	exerciseForms *ExerciseForms
	programForms  *ProgramForms
	workoutForms  *WorkoutForms
	profileForms  *ProfileForms
}

func NewHandler(
	exerciseForms *ExerciseForms,
	programForms *ProgramForms,
	workoutForms *WorkoutForms,
	profileForms *ProfileForms,
) *Handler {
	return &Handler{
		exerciseForms: exerciseForms,
		programForms:  programForms,
		workoutForms:  workoutForms,
		profileForms:  profileForms,
	}
}

func requestUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := identity.UserID(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return "", false
	}
	return userID, true
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func decodeForm[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	var form T
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		log.Debugf("decode form body: %s", err)
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return form, false
	}
	return form, true
}

func writePrecondition(w http.ResponseWriter, err error) bool {
	if errors.Is(err, ErrPrecondition) {
		http.Error(w, http.StatusText(http.StatusPreconditionFailed), http.StatusPreconditionFailed)
		return true
	}
	return false
}

func writePage[T any](w http.ResponseWriter, page T, err error) {
	if err != nil {
		if !writePrecondition(w, err) {
			res := envelope.Fail[T](err)
			pkg.WriteJSONResponse(w, res, res.HTTPStatus())
		}
		return
	}
	pkg.WriteJSONResponse(w, envelope.Ok(page), http.StatusOK)
}

func writeOutcome(w http.ResponseWriter, out Outcome, err error) {
	if err != nil {
		if !writePrecondition(w, err) {
			log.Errorf("form submission: %s", err)
			out = banner(http.StatusInternalServerError, MessageSubmitFailed)
			pkg.WriteJSONResponse(w, out, out.HTTPStatus())
		}
		return
	}
	pkg.WriteJSONResponse(w, out, out.HTTPStatus())
}

// HandleProfileLoad serves GET /forms/profile
func (h *Handler) HandleProfileLoad(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.forms.profile_load")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	page, err := h.profileForms.Load(ctx, userID)
	writePage(w, page, err)
}

// HandleProfileEdit serves PUT /profile
func (h *Handler) HandleProfileEdit(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.forms.profile_edit")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	form, ok := decodeForm[ProfileForm](w, r)
	if !ok {
		return
	}

	out, err := h.profileForms.Edit(ctx, userID, form)
	writeOutcome(w, out, err)
}

// HandleExerciseCreateLoad serves GET /forms/exercises
func (h *Handler) HandleExerciseCreateLoad(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.forms.exercise_create_load")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	page, err := h.exerciseForms.LoadCreate(ctx, userID)
	writePage(w, page, err)
}

// HandleExerciseCreate serves POST /exercises
func (h *Handler) HandleExerciseCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.forms.exercise_create")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	form, ok := decodeForm[ExerciseForm](w, r)
	if !ok {
		return
	}

	out, err := h.exerciseForms.Create(ctx, userID, form)
	writeOutcome(w, out, err)
}

// HandleExerciseEditLoad serves GET /forms/exercises/{id}
func (h *Handler) HandleExerciseEditLoad(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.forms.exercise_edit_load")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	page, err := h.exerciseForms.LoadEdit(ctx, userID, id)
	writePage(w, page, err)
}

// HandleExerciseEdit serves PUT /exercises/{id}
func (h *Handler) HandleExerciseEdit(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.forms.exercise_edit")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	form, ok := decodeForm[ExerciseForm](w, r)
	if !ok {
		return
	}

	out, err := h.exerciseForms.Edit(ctx, userID, id, form)
	writeOutcome(w, out, err)
}

// HandleExerciseTemplateLoad serves GET /forms/exercises/template/{id}
func (h *Handler) HandleExerciseTemplateLoad(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.forms.exercise_template_load")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	page, err := h.exerciseForms.LoadFromTemplate(ctx, userID, id)
	writePage(w, page, err)
}

// HandleExerciseFromTemplate serves POST /exercises/from-template/{id}
func (h *Handler) HandleExerciseFromTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.forms.exercise_from_template")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	form, ok := decodeForm[ExerciseForm](w, r)
	if !ok {
		return
	}

	out, err := h.exerciseForms.CreateFromTemplate(ctx, userID, id, form)
	writeOutcome(w, out, err)
}

// HandleProgramCreate serves POST /programs
func (h *Handler) HandleProgramCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.forms.program_create")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	form, ok := decodeForm[ProgramForm](w, r)
	if !ok {
		return
	}

	out, err := h.programForms.Create(ctx, userID, form)
	writeOutcome(w, out, err)
}

// HandleProgramEditLoad serves GET /forms/programs/{id}
func (h *Handler) HandleProgramEditLoad(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.forms.program_edit_load")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	page, err := h.programForms.LoadEdit(ctx, userID, id)
	writePage(w, page, err)
}

// HandleProgramEdit serves PUT /programs/{id}
func (h *Handler) HandleProgramEdit(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.forms.program_edit")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	form, ok := decodeForm[ProgramForm](w, r)
	if !ok {
		return
	}

	out, err := h.programForms.Edit(ctx, userID, id, form)
	writeOutcome(w, out, err)
}

// HandleProgramDelete serves DELETE /programs/{id}
func (h *Handler) HandleProgramDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.forms.program_delete")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	out, err := h.programForms.Delete(ctx, userID, id)
	writeOutcome(w, out, err)
}

// HandleWorkoutCreate serves POST /programs/{id}/workouts
func (h *Handler) HandleWorkoutCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.forms.workout_create")
	defer span.End()

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	programID, ok := pathID(w, r)
	if !ok {
		return
	}
	form, ok := decodeForm[WorkoutForm](w, r)
	if !ok {
		return
	}

	out, err := h.workoutForms.Create(ctx, userID, programID, form)
	writeOutcome(w, out, err)
}
