// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package widget

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/social-widgets/event-widget-service/internal/apierror"
	"github.com/social-widgets/event-widget-service/internal/logging"
	"github.com/social-widgets/event-widget-service/internal/monitoring"
	"github.com/social-widgets/event-widget-service/internal/tracing"
	"github.com/social-widgets/event-widget-service/internal/types"
	"github.com/social-widgets/event-widget-service/pkg/instance"
)

// jsonContentType is required verbatim on write requests, matching what the
// platform client sends.
const jsonContentType = "application/json;charset=UTF-8"

// Headers carrying event query parameters.
const (
	HeaderEventID     = "Event-Id"
	HeaderDesiredData = "Desired-Data"
	HeaderObjectID    = "Object-Id"
	HeaderUntil       = "Until"
	HeaderAfter       = "After"
)

type Role string

const (
	RoleOwner  Role = "OWNER"
	RoleViewer Role = "VIEWER"
)

type Operation int

const (
	OpSaveSettings Operation = iota
	OpSaveAccessToken
	OpLogout
	OpGetWidget
	OpGetSettings
	OpGetAllEvents
	OpGetEventDetail
	OpGetEventFeed
)

func (op Operation) String() string {
	switch op {
	case OpSaveSettings:
		return "save_settings"
	case OpSaveAccessToken:
		return "save_access_token"
	case OpLogout:
		return "logout"
	case OpGetWidget:
		return "get_widget"
	case OpGetSettings:
		return "get_settings"
	case OpGetAllEvents:
		return "get_all_events"
	case OpGetEventDetail:
		return "get_event_detail"
	case OpGetEventFeed:
		return "get_event_feed"
	}
	return "unknown"
}

// requiresOwner reports whether the operation is restricted to the widget
// owner. Visitor facing reads are open to any valid instance.
func (op Operation) requiresOwner() bool {
	switch op {
	case OpGetWidget, OpGetEventDetail, OpGetEventFeed:
		return false
	}
	return true
}

// Context identifies one authorized operation on one widget installation.
type Context struct {
	InstanceID  string
	ComponentID string
	Role        Role
}

// SaveSettingsRequest is the body of a settings write. Settings is an opaque
// client blob, events are interpreted only for their eventId.
type SaveSettingsRequest struct {
	Settings json.RawMessage         `json:"settings" validate:"required"`
	Events   []types.EventDescriptor `json:"events" validate:"required"`
}

type SaveAccessTokenRequest struct {
	AccessToken string `json:"access_token" validate:"required"`
}

// EventQuery carries the header parameters of event detail and feed reads.
type EventQuery struct {
	EventID     string
	DesiredData string
	ObjectID    string
	After       string
	Until       string
}

// Authorizer enforces role and completeness rules on incoming operations
// before any persistence or upstream call is made.
type Authorizer struct {
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAuthorizer(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	return &Authorizer{
		validate: validator.New(),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// Authorize checks the decoded claims against the operation's role rule and
// produces the operation context.
func (a *Authorizer) Authorize(ctx context.Context, claims *instance.Claims, op Operation, componentID string) (*Context, error) {
	_, span := a.tracer.Start(ctx, "widget.Authorizer.Authorize")
	defer span.End()

	if claims == nil || claims.InstanceID == "" || componentID == "" {
		return nil, apierror.ErrInvalidInstance
	}

	role := RoleViewer
	if claims.IsOwner() {
		role = RoleOwner
	}

	if op.requiresOwner() && role != RoleOwner {
		a.logger.Security().AuthzFailure(claims.InstanceID, op.String())
		return nil, apierror.ErrInvalidInstance
	}

	return &Context{
		InstanceID:  claims.InstanceID,
		ComponentID: componentID,
		Role:        role,
	}, nil
}

// DecodeSaveSettings validates the content type and body of a settings write.
func (a *Authorizer) DecodeSaveSettings(r *http.Request) (*SaveSettingsRequest, error) {
	if r.Header.Get("Content-Type") != jsonContentType {
		return nil, apierror.ErrBadlyFormedRequest
	}

	var req SaveSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, apierror.ErrBadlyFormedRequest
	}

	if err := a.validate.Struct(&req); err != nil {
		return nil, apierror.ErrMissingFields
	}

	return &req, nil
}

// DecodeSaveAccessToken validates the content type and body of a token write.
func (a *Authorizer) DecodeSaveAccessToken(r *http.Request) (*SaveAccessTokenRequest, error) {
	if r.Header.Get("Content-Type") != jsonContentType {
		return nil, apierror.ErrBadlyFormedRequest
	}

	var req SaveAccessTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, apierror.ErrBadlyFormedRequest
	}

	if err := a.validate.Struct(&req); err != nil {
		return nil, apierror.ErrBadlyFormedRequest
	}

	return &req, nil
}

// EventQuery extracts and validates the event headers. For feed reads one
// and only one of the until/after cursors must be present.
func (a *Authorizer) EventQuery(r *http.Request, withFeed bool) (*EventQuery, error) {
	q := &EventQuery{
		EventID:     r.Header.Get(HeaderEventID),
		DesiredData: r.Header.Get(HeaderDesiredData),
	}

	if q.EventID == "" || q.DesiredData == "" {
		return nil, apierror.ErrMissingValue
	}

	if !withFeed {
		return q, nil
	}

	q.ObjectID = r.Header.Get(HeaderObjectID)
	if q.ObjectID == "" {
		return nil, apierror.ErrMissingValue
	}

	q.Until = r.Header.Get(HeaderUntil)
	q.After = r.Header.Get(HeaderAfter)
	if (q.Until == "") == (q.After == "") {
		return nil, apierror.ErrMissingValue
	}

	return q, nil
}
