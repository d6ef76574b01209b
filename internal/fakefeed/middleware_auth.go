package fakefeed

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-broadcast-datafeed/internal/logger"
	"github.com/MKhiriev/go-broadcast-datafeed/internal/utils"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// The token must be a valid JWT issued by this server and its session must
// still be live, i.e. not logged out and not replaced by a refresh. On
// success the login and the raw token are stored in the request context
// under [utils.LoginCtxKey] and [utils.TokenCtxKey].
func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeFailure(w, ErrEmptyAuthorizationHeader, http.StatusUnauthorized)
			return
		}

		token, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			writeFailure(w, err, http.StatusUnauthorized)
			return
		}

		login, err := s.sessions.authenticate(token)
		if err != nil {
			log.Err(err).Msg("token rejected")
			writeFailure(w, err, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.LoginCtxKey, login)
		ctx = context.WithValue(ctx, utils.TokenCtxKey, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
