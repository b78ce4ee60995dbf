package server

import (
	"net/http"

	"github.com/Lutefd/currency-conversion/internal/commons"
	"github.com/Lutefd/currency-conversion/internal/handler"
	api_middleware "github.com/Lutefd/currency-conversion/internal/middleware"
	"github.com/Lutefd/currency-conversion/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"
)

const conversionPath = "/from/{from}/to/{to}/quantity/{quantity}"

func (s *Server) registerRoutes(directService, proxyService service.ConversionServiceInterface) {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	readinessHandler := handler.NewReadinessHandler(s.registry, s.config.ExchangeServiceName)
	directHandler := handler.NewConversionHandler(directService)
	proxyHandler := handler.NewConversionHandler(proxyService)
	rateLimiter := api_middleware.NewRateLimiter(rate.Limit(commons.AllowedRPS), commons.AllowedBurst)

	router.Get("/healthz", readinessHandler.Ready)
	router.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	router.Group(func(r chi.Router) {
		r.Use(rateLimiter.Limit)
		r.Get("/currency-conversion"+conversionPath, directHandler.Convert)
		r.Get("/currency-conversion-feign"+conversionPath, proxyHandler.Convert)
	})
	s.router = router
}
