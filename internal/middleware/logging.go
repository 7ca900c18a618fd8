package middleware

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/trainsmart/internal/identity"
	"github.com/2beens/trainsmart/pkg"
)

func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.WithFields(log.Fields{
				"method": r.Method,
				"path":   r.URL.Path,
				"user":   r.Header.Get(identity.HeaderUserID),
				"ip":     pkg.ClientIP(r),
				"ua":     r.Header.Get("User-Agent"),
			}).Trace(" ====> request")
			next.ServeHTTP(w, r)
		})
	}
}
