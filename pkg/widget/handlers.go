// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package widget

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/social-widgets/event-widget-service/internal/apierror"
	"github.com/social-widgets/event-widget-service/internal/logging"
	"github.com/social-widgets/event-widget-service/internal/monitoring"
	"github.com/social-widgets/event-widget-service/internal/tracing"
	"github.com/social-widgets/event-widget-service/pkg/instance"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type API struct {
	service    ServiceInterface
	authorizer *Authorizer

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	authorizer *Authorizer,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:    service,
		authorizer: authorizer,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}

// RegisterEndpoints mounts the widget API. The route names are part of the
// platform client contract.
func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Put("/SaveSettings/{compID}", a.saveSettings)
	mux.Put("/SaveAccessToken/{compID}", a.saveAccessToken)
	mux.Put("/Logout/{compID}", a.logout)
	mux.Get("/GetSettingsWidget/{compID}", a.widget)
	mux.Get("/GetSettingsSettings/{compID}", a.settings)
	mux.Get("/GetAllEvents/{compID}", a.allEvents)
	mux.Get("/GetModalEvent/{compID}", a.eventDetail)
	mux.Get("/GetModalFeed/{compID}", a.eventFeed)
}

func (a *API) saveSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "widget.API.saveSettings")
	defer span.End()

	authCtx, err := a.authorize(ctx, r, OpSaveSettings)
	if err != nil {
		apierror.Write(w, err, a.logger)
		return
	}

	req, err := a.authorizer.DecodeSaveSettings(r)
	if err != nil {
		apierror.Write(w, err, a.logger)
		return
	}

	if err := a.service.SaveSettings(ctx, authCtx, req); err != nil {
		apierror.Write(w, err, a.logger)
		return
	}

	a.respond(w, MessageResponse{Message: "Saved settings Successfully"})
}

func (a *API) saveAccessToken(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "widget.API.saveAccessToken")
	defer span.End()

	authCtx, err := a.authorize(ctx, r, OpSaveAccessToken)
	if err != nil {
		apierror.Write(w, err, a.logger)
		return
	}

	req, err := a.authorizer.DecodeSaveAccessToken(r)
	if err != nil {
		apierror.Write(w, err, a.logger)
		return
	}

	if err := a.service.SaveAccessToken(ctx, authCtx, req.AccessToken); err != nil {
		apierror.Write(w, err, a.logger)
		return
	}

	a.respond(w, MessageResponse{Message: "Saved access_token Successfully"})
}

func (a *API) logout(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "widget.API.logout")
	defer span.End()

	authCtx, err := a.authorize(ctx, r, OpLogout)
	if err != nil {
		apierror.Write(w, err, a.logger)
		return
	}

	if err := a.service.Logout(ctx, authCtx); err != nil {
		apierror.Write(w, err, a.logger)
		return
	}

	a.respond(w, MessageResponse{Message: "User Logged Out Successfully"})
}

func (a *API) widget(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "widget.API.widget")
	defer span.End()

	authCtx, err := a.authorize(ctx, r, OpGetWidget)
	if err != nil {
		apierror.Write(w, err, a.logger)
		return
	}

	view, err := a.service.Widget(ctx, authCtx)
	if err != nil {
		apierror.Write(w, err, a.logger)
		return
	}

	a.respond(w, view)
}

func (a *API) settings(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "widget.API.settings")
	defer span.End()

	authCtx, err := a.authorize(ctx, r, OpGetSettings)
	if err != nil {
		apierror.Write(w, err, a.logger)
		return
	}

	view, err := a.service.Settings(ctx, authCtx)
	if err != nil {
		apierror.Write(w, err, a.logger)
		return
	}

	a.respond(w, view)
}

func (a *API) allEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "widget.API.allEvents")
	defer span.End()

	authCtx, err := a.authorize(ctx, r, OpGetAllEvents)
	if err != nil {
		apierror.Write(w, err, a.logger)
		return
	}

	events, err := a.service.AllEvents(ctx, authCtx)
	if err != nil {
		apierror.Write(w, err, a.logger)
		return
	}

	a.respond(w, events)
}

func (a *API) eventDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "widget.API.eventDetail")
	defer span.End()

	authCtx, err := a.authorize(ctx, r, OpGetEventDetail)
	if err != nil {
		apierror.Write(w, err, a.logger)
		return
	}

	q, err := a.authorizer.EventQuery(r, false)
	if err != nil {
		apierror.Write(w, err, a.logger)
		return
	}

	data, err := a.service.EventDetail(ctx, authCtx, q)
	if err != nil {
		apierror.Write(w, err, a.logger)
		return
	}

	a.respond(w, data)
}

func (a *API) eventFeed(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "widget.API.eventFeed")
	defer span.End()

	authCtx, err := a.authorize(ctx, r, OpGetEventFeed)
	if err != nil {
		apierror.Write(w, err, a.logger)
		return
	}

	q, err := a.authorizer.EventQuery(r, true)
	if err != nil {
		apierror.Write(w, err, a.logger)
		return
	}

	data, err := a.service.EventFeed(ctx, authCtx, q)
	if err != nil {
		apierror.Write(w, err, a.logger)
		return
	}

	a.respond(w, data)
}

// authorize pulls the verified claims off the context and runs the role
// check for the operation.
func (a *API) authorize(ctx context.Context, r *http.Request, op Operation) (*Context, error) {
	claims, ok := instance.ClaimsFrom(ctx)
	if !ok {
		return nil, apierror.ErrRequestIncomplete
	}

	return a.authorizer.Authorize(ctx, claims, op, chi.URLParam(r, "compID"))
}

func (a *API) respond(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}
