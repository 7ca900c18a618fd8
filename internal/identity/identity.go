// Package identity carries the already authenticated user id through the request.
// Authentication itself happens upstream, the gateway forwards the id in HeaderUserID.
package identity

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const HeaderUserID = "X-TrainSmart-User-ID"

type ctxKey struct{}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

func UserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(ctxKey{}).(string)
	return userID, ok && userID != ""
}

// Middleware rejects requests without a valid user id. Preflight requests and
// the given public paths pass through untouched.
func Middleware(publicPaths ...string) func(next http.Handler) http.Handler {
	public := make(map[string]bool, len(publicPaths))
	for _, p := range publicPaths {
		public[p] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions || public[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			rawUserID := r.Header.Get(HeaderUserID)
			parsed, err := uuid.Parse(rawUserID)
			if err != nil {
				log.Tracef("[identity] missing or invalid user id [%s] => %s", rawUserID, r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), parsed.String())))
		})
	}
}
