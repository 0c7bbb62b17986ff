package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(h.cfg.RequestTimeout))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/signup", h.signup)
		r.Post("/signin", h.signin)
	})

	// routes behind JWT authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/signout", h.signout)

		r.Route("/notes", func(r chi.Router) {
			r.Get("/", h.listNotes)
			r.Post("/", h.createNote)
			r.Get("/search", h.searchNotes)
			r.Put("/{noteID}", h.updateNote)
			r.Delete("/{noteID}", h.deleteNote)
			r.Put("/{noteID}/pin", h.togglePin)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
