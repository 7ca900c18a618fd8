package exercises

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/trainsmart/internal/envelope"
	"github.com/2beens/trainsmart/internal/identity"
	"github.com/2beens/trainsmart/internal/telemetry/tracing"
	"github.com/2beens/trainsmart/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=exercises_test

type exercisesService interface {
	FetchForUser(ctx context.Context, userID string, exerciseID *int64) envelope.Result[[]Exercise]
	Delete(ctx context.Context, userID string, id int64) envelope.Result[int64]
}

type Handler struct {
	service exercisesService
}

func NewHandler(service exercisesService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	userID, ok := identity.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	exerciseID, err := pkg.ParseOptionalInt64(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	res := h.service.FetchForUser(ctx, userID, exerciseID)
	pkg.WriteJSONResponse(w, res, res.HTTPStatus())
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.delete")
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
	if !res.Success {
		log.Debugf("delete exercise [%d] not done: %s", id, res.Err())
	}
	pkg.WriteJSONResponse(w, res, res.HTTPStatus())
}
