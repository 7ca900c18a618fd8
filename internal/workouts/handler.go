package workouts

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/2beens/trainsmart/internal/envelope"
	"github.com/2beens/trainsmart/internal/identity"
	"github.com/2beens/trainsmart/internal/telemetry/tracing"
	"github.com/2beens/trainsmart/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsService interface {
	FetchForProgram(ctx context.Context, userID string, programID int64) envelope.Result[[]Workout]
	Delete(ctx context.Context, userID string, id int64) envelope.Result[int64]
}

type Handler struct {
	service workoutsService
}

func NewHandler(service workoutsService) *Handler {
	return &Handler{
		service: service,
	}
}

// HandleListForProgram serves GET /programs/{id}/workouts
func (h *Handler) HandleListForProgram(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	userID, ok := identity.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	programID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "error, program id NaN", http.StatusBadRequest)
		return
	}

	res := h.service.FetchForProgram(ctx, userID, programID)
	pkg.WriteJSONResponse(w, res, res.HTTPStatus())
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	userID, ok := identity.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	res := h.service.Delete(ctx, userID, id)
	pkg.WriteJSONResponse(w, res, res.HTTPStatus())
}
