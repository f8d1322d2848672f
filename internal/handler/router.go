package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nirbhik/walletgpt/backend/internal/handler/explain"
	middlewarePkg "github.com/nirbhik/walletgpt/backend/internal/middleware"
	"github.com/nirbhik/walletgpt/backend/internal/service/ai"
)

// NewRouter wires HTTP routes to core services. aiSvc may be nil when no
// completion credential is configured; the explain handler then answers 500
// for every valid request.
func NewRouter(aiSvc *ai.Service, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS(allowedOrigins))

	var svc explain.Explainer
	if aiSvc != nil {
		svc = aiSvc
	}
	explainHandler := explain.New(svc)

	r.Route("/api", func(api chi.Router) {
		explainHandler.RegisterRoutes(api)
	})

	return r
}
