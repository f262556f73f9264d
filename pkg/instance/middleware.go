// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package instance

import (
	"net/http"

	"github.com/social-widgets/event-widget-service/internal/apierror"
	"github.com/social-widgets/event-widget-service/internal/logging"
	"github.com/social-widgets/event-widget-service/internal/monitoring"
	"github.com/social-widgets/event-widget-service/internal/tracing"
)

// HeaderName is the header the platform passes the signed instance token in.
const HeaderName = "X-Wix-Instance"

type Middleware struct {
	verifier VerifierInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Authenticate rejects requests without an authentic instance token and
// injects the decoded claims into the request context.
func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "instance.Middleware.Authenticate")
			defer span.End()

			token := r.Header.Get(HeaderName)
			if token == "" {
				apierror.Write(w, apierror.ErrRequestIncomplete, m.logger)
				return
			}

			claims, err := m.verifier.Verify(ctx, token)
			if err != nil {
				m.logger.Debugf("instance token verification failed: %v", err)
				m.logger.Security().AuthnFailure("unknown", "instance_token")
				apierror.Write(w, apierror.ErrInvalidInstance, m.logger)
				return
			}

			ctx = WithClaims(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func NewMiddleware(verifier VerifierInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		verifier: verifier,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
