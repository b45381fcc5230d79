package app

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/tripforge/tripforge/internal/config"
	"github.com/tripforge/tripforge/pkg/user"
)

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Propagate X-User-Id header into context for downstream services.
	// The planning endpoints work without a user; trip persistence
	// requires one.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := req.Context()

			if userIdHeader := req.Header.Get("X-User-Id"); userIdHeader != "" {
				ctx = user.WithUser(ctx, userIdHeader)
			}
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
}
