package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withAuthVerdict)

	// single dispatch endpoint: the auth gate annotates every request, each
	// operation enforces its own identity requirement
	router.Post("/api/query", h.query)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
