package app

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/finpercent/finpercent/internal/rest"
	"github.com/finpercent/finpercent/pkg/user"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router, deps *Dependencies) {
	r.Use(CurrentUserMiddleware(deps.UserService))
}

// CurrentUserMiddleware puts the requesting user into the context. A bearer
// token takes precedence over the X-User-Id header, which accepts either the
// numeric id or the uid. Requests carrying neither pass through anonymously.
func CurrentUserMiddleware(users user.Service) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := req.Context()

			if authorization := req.Header.Get("Authorization"); authorization != "" {
				token, found := strings.CutPrefix(authorization, "Bearer ")
				if !found {
					rest.WriteError(w, http.StatusUnauthorized, "Unsupported authorization scheme", "")
					return
				}
				u, err := users.Authenticate(ctx, strings.TrimSpace(token))
				if err != nil {
					if errors.Is(err, user.ErrInvalidToken) {
						log.Debugf("rejected bearer token: %v", err)
						rest.WriteError(w, http.StatusUnauthorized, "Invalid token", err.Error())
						return
					}
					log.Errorf("failed to authenticate: %v", err)
					http.Error(w, err.Error(), http.StatusInternalServerError)
					return
				}
				next.ServeHTTP(w, req.WithContext(user.WithUser(ctx, u)))
				return
			}

			if userIdHeader := req.Header.Get("X-User-Id"); userIdHeader != "" {
				u, err := lookupUser(ctx, users, userIdHeader)
				if err != nil {
					if errors.Is(err, user.ErrUserNotFound) {
						log.Debugf("user not found: %s", userIdHeader)
						http.Error(w, "user not found", http.StatusForbidden)
						return
					}
					log.Errorf("failed to get user: %v", err)
					http.Error(w, err.Error(), http.StatusBadRequest)
					return
				}
				log.Tracef("user found: %s", u.Uid)
				ctx = user.WithUser(ctx, u)
			}
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	}
}

func lookupUser(ctx context.Context, users user.Service, header string) (user.User, error) {
	if id, err := strconv.Atoi(header); err == nil {
		return users.GetUser(ctx, id)
	}
	return users.GetUserByUid(ctx, header)
}
