package fakefeed

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router of the fake feed.
func (s *Server) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.withTraceID, s.withLogging, s.countHits)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/Authentication/v1/login", s.login)
		r.Post("/Authentication/v1/refresh", s.refresh)
	})

	router.Group(func(r chi.Router) {
		r.Use(s.auth)
		r.Get("/Authentication/v1/logout", s.logout)
		r.Get("/Authentication/v1/keep", s.keep)
		r.Post("/stock/v1/quote/request", s.quote)
	})

	return router
}
