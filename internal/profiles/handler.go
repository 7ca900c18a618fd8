package profiles

import (
	"context"
	"net/http"

	"github.com/2beens/trainsmart/internal/envelope"
	"github.com/2beens/trainsmart/internal/identity"
	"github.com/2beens/trainsmart/internal/telemetry/tracing"
	"github.com/2beens/trainsmart/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=profiles_test

type profilesService interface {
	Fetch(ctx context.Context, userID string) envelope.Result[UserProfile]
}

type Handler struct {
	service profilesService
}

func NewHandler(service profilesService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profiles.get")
	defer span.End()

	userID, ok := identity.UserID(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	res := h.service.Fetch(ctx, userID)
	pkg.WriteJSONResponse(w, res, res.HTTPStatus())
}
