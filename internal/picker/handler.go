package picker

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
	sessions *Sessions
}

func NewHandler(sessions *Sessions) *Handler {
	return &Handler{
		sessions: sessions,
	}
}

type selectionRequest struct {
	Value *int64 `json:"value"`
}

func (h *Handler) picker(w http.ResponseWriter, r *http.Request) (Picker, bool) {
	userID, ok := identity.UserID(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return nil, false
	}

	name := mux.Vars(r)["name"]
	p, ok := h.sessions.For(userID).Get(name)
	if !ok {
		res := envelope.FailWith[View](envelope.CodeNotFound, "unknown picker: "+name)
		pkg.WriteJSONResponse(w, res, res.HTTPStatus())
		return nil, false
	}

	return p, true
}

// HandleGet serves GET /pickers/{name}[?programId=N]. Every mount fetches the
// options again, rows may have changed through the forms since the last one.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.picker.get")
	defer span.End()

	p, ok := h.picker(w, r.WithContext(ctx))
	if !ok {
		return
	}

	if programIDParam := r.URL.Query().Get("programId"); programIDParam != "" {
		programID, err := strconv.ParseInt(programIDParam, 10, 64)
		if err != nil {
			http.Error(w, "error, programId NaN", http.StatusBadRequest)
			return
		}
		if err := p.Reload(ctx, programID); err != nil {
			log.Errorf("picker [%s]: load for program [%d]: %s", p.Name(), programID, err)
			h.writeFailure(w, err)
			return
		}
	} else if err := p.Load(ctx); err != nil {
		log.Errorf("picker [%s]: load: %s", p.Name(), err)
		h.writeFailure(w, err)
		return
	}

	view, err := p.View(ctx)
	if err != nil {
		log.Errorf("picker [%s]: view: %s", p.Name(), err)
		h.writeFailure(w, err)
		return
	}

	pkg.WriteJSONResponse(w, envelope.Ok(view), http.StatusOK)
}

// HandleSelect serves PUT /pickers/{name}/selection with {"value": N | null}
func (h *Handler) HandleSelect(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.picker.select")
	defer span.End()

	p, ok := h.picker(w, r.WithContext(ctx))
	if !ok {
		return
	}

	var req selectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid selection body", http.StatusBadRequest)
		return
	}

	// options must be there before a value can be checked against them
	if _, err := p.View(ctx); err != nil {
		h.writeFailure(w, err)
		return
	}

	if err := p.Select(ctx, req.Value); err != nil {
		res := envelope.FailWith[View](envelope.CodeInvalid, err.Error())
		pkg.WriteJSONResponse(w, res, res.HTTPStatus())
		return
	}

	view, err := p.View(ctx)
	if err != nil {
		h.writeFailure(w, err)
		return
	}

	pkg.WriteJSONResponse(w, envelope.Ok(view), http.StatusOK)
}

// HandleAction serves POST /pickers/{name}/options/{id}/{action}
func (h *Handler) HandleAction(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.picker.action")
	defer span.End()

	p, ok := h.picker(w, r.WithContext(ctx))
	if !ok {
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}
	kind := ActionKind(vars["action"])
	if !kind.IsValid() {
		http.Error(w, "unknown action", http.StatusBadRequest)
		return
	}

	if _, err := p.View(ctx); err != nil {
		h.writeFailure(w, err)
		return
	}

	result, err := p.Act(ctx, id, kind)
	if err != nil {
		h.writeFailure(w, err)
		return
	}

	pkg.WriteJSONResponse(w, envelope.Ok(result), http.StatusOK)
}

func (h *Handler) writeFailure(w http.ResponseWriter, err error) {
	var res envelope.Result[View]
	switch {
	case errors.Is(err, ErrUnknownOption):
		res = envelope.FailWith[View](envelope.CodeNotFound, err.Error())
	case errors.Is(err, ErrActionNotAllowed):
		res = envelope.FailWith[View](envelope.CodeInvalid, err.Error())
	default:
		res = envelope.Fail[View](err)
	}
	pkg.WriteJSONResponse(w, res, res.HTTPStatus())
}
