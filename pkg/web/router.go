// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/social-widgets/event-widget-service/internal/db"
	"github.com/social-widgets/event-widget-service/internal/logging"
	"github.com/social-widgets/event-widget-service/internal/monitoring"
	"github.com/social-widgets/event-widget-service/internal/tracing"
	"github.com/social-widgets/event-widget-service/pkg/instance"
	"github.com/social-widgets/event-widget-service/pkg/metrics"
	"github.com/social-widgets/event-widget-service/pkg/status"
	"github.com/social-widgets/event-widget-service/pkg/widget"
)

func NewRouter(
	widgetAPI *widget.API,
	instanceMdw *instance.Middleware,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	// Every widget route requires a verified instance token. Writes run
	// inside a request scoped transaction that is rolled back on any
	// failure status.
	router.Group(func(r chi.Router) {
		r.Use(instanceMdw.Authenticate())
		r.Use(db.TransactionMiddleware(dbClient, logger))
		widgetAPI.RegisterEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func middlewareCORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(
		cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{"GET", "PUT", "OPTIONS"},
			AllowedHeaders: []string{
				"Accept",
				"Content-Type",
				instance.HeaderName,
				widget.HeaderEventID,
				widget.HeaderDesiredData,
				widget.HeaderObjectID,
				widget.HeaderUntil,
				widget.HeaderAfter,
			},
			MaxAge: 300,
		},
	)
}
