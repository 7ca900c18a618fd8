package programs

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=programs_test

type programsService interface {
	FetchForUser(ctx context.Context, userID string) envelope.Result[[]Program]
	FetchOne(ctx context.Context, userID string, id int64) envelope.Result[Program]
}

type Handler struct {
	service programsService
}

func NewHandler(service programsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.list")
	defer span.End()

	userID, ok := identity.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	res := h.service.FetchForUser(ctx, userID)
	pkg.WriteJSONResponse(w, res, res.HTTPStatus())
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.programs.get")
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

	res := h.service.FetchOne(ctx, userID, id)
	pkg.WriteJSONResponse(w, res, res.HTTPStatus())
}
