package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"numlookup/internal/aggregate"
	"numlookup/internal/handlers"
	"numlookup/internal/upstream"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes() {
	client := upstream.NewClient(s.Cfg.UpstreamTimeout)
	agg := aggregate.New(client, s.Cfg)

	lookupHandler := handlers.NewLookupHandler(agg)
	healthHandler := handlers.NewHealthHandler()

	// Lookup routes. /info is the legacy path, kept for older clients.
	s.App.Get("/get_details", lookupHandler.GetDetails)
	s.App.Get("/info", lookupHandler.GetDetails)

	// Operational routes
	s.App.Get("/healthz", healthHandler.Check)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
