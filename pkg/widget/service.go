// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package widget

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/social-widgets/event-widget-service/internal/apierror"
	"github.com/social-widgets/event-widget-service/internal/logging"
	"github.com/social-widgets/event-widget-service/internal/monitoring"
	"github.com/social-widgets/event-widget-service/internal/social"
	"github.com/social-widgets/event-widget-service/internal/storage"
	"github.com/social-widgets/event-widget-service/internal/tracing"
	"github.com/social-widgets/event-widget-service/internal/types"
)

// Service assembles response views by merging the stored widget record with
// live data from the social API. Every failure it returns is part of the
// apierror taxonomy, so handlers only relay.
type Service struct {
	storage StorageInterface
	social  SocialClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	social SocialClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		social:  social,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) SaveSettings(ctx context.Context, authCtx *Context, req *SaveSettingsRequest) error {
	ctx, span := s.tracer.Start(ctx, "widget.Service.SaveSettings")
	defer span.End()

	events, err := json.Marshal(req.Events)
	if err != nil {
		s.logger.Errorf("failed to encode events: %v", err)
		return apierror.Internal("Could Not Save settings")
	}

	if err := s.storage.UpsertSettings(ctx, authCtx.InstanceID, authCtx.ComponentID, req.Settings, events); err != nil {
		s.logger.Errorf("failed to save settings: %v", err)
		return apierror.Internal("Could Not Save settings")
	}

	return nil
}

// SaveAccessToken exchanges the short lived client token for a long lived
// one before storing it. A rejected token is the caller's fault, an upstream
// failure is not.
func (s *Service) SaveAccessToken(ctx context.Context, authCtx *Context, shortToken string) error {
	ctx, span := s.tracer.Start(ctx, "widget.Service.SaveAccessToken")
	defer span.End()

	token, err := s.social.ExchangeToken(ctx, shortToken)
	if err != nil {
		if errors.Is(err, social.ErrInvalidToken) {
			return apierror.Forbidden("This access token is invalid.")
		}
		s.logger.Errorf("token exchange failed: %v", err)
		return apierror.BadGateway("Facebook returned error on access_token")
	}

	tokenData, err := json.Marshal(token)
	if err != nil {
		s.logger.Errorf("failed to encode token data: %v", err)
		return apierror.Internal("Could Not Save access_token")
	}

	if err := s.storage.UpsertAccessToken(ctx, authCtx.InstanceID, authCtx.ComponentID, tokenData); err != nil {
		s.logger.Errorf("failed to save access token data: %v", err)
		return apierror.Internal("Could Not Save access_token")
	}

	return nil
}

// Logout clears the stored session and events but preserves the settings.
func (s *Service) Logout(ctx context.Context, authCtx *Context) error {
	ctx, span := s.tracer.Start(ctx, "widget.Service.Logout")
	defer span.End()

	if err := s.storage.ClearSession(ctx, authCtx.InstanceID, authCtx.ComponentID); err != nil {
		s.logger.Errorf("failed to clear session: %v", err)
		return apierror.Internal("Failed to Logout")
	}

	return nil
}

// Widget builds the visitor facing view. A missing record is the defined
// empty state, not an error.
func (s *Service) Widget(ctx context.Context, authCtx *Context) (*types.WidgetView, error) {
	ctx, span := s.tracer.Start(ctx, "widget.Service.Widget")
	defer span.End()

	record, err := s.storage.GetRecord(ctx, authCtx.InstanceID, authCtx.ComponentID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return types.EmptyWidgetView(), nil
		}
		s.logger.Errorf("failed to load widget record: %v", err)
		return nil, apierror.Internal("Could Not Get Settings")
	}

	view := &types.WidgetView{
		Settings:  blobOrEmpty(record.Settings),
		EventData: "",
		Active:    "false",
	}

	if !record.Active() {
		return view, nil
	}

	eventData, err := s.social.EventData(ctx, record.Events, record.AccessTokenData.AccessToken)
	if err != nil {
		s.logger.Errorf("failed to fetch live event data: %v", err)
		return nil, apierror.BadGateway("Couldn't receive data from Facebook")
	}

	view.EventData = eventData
	view.Active = "true"

	return view, nil
}

// Settings builds the owner facing view, resolving the connected identity
// when a session is stored.
func (s *Service) Settings(ctx context.Context, authCtx *Context) (*types.SettingsView, error) {
	ctx, span := s.tracer.Start(ctx, "widget.Service.Settings")
	defer span.End()

	record, err := s.storage.GetRecord(ctx, authCtx.InstanceID, authCtx.ComponentID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return types.EmptySettingsView(), nil
		}
		s.logger.Errorf("failed to load widget record: %v", err)
		return nil, apierror.Internal("Could Not Get Settings")
	}

	view := types.EmptySettingsView()
	view.Settings = blobOrEmpty(record.Settings)
	view.Events = eventsOrEmpty(record.Events)

	if !record.Active() {
		return view, nil
	}

	name, err := s.social.UserName(ctx, record.AccessTokenData.AccessToken)
	if err != nil {
		s.logger.Errorf("failed to resolve user name: %v", err)
		return nil, apierror.BadGateway("Couldn't receive data from Facebook")
	}

	view.Active = "true"
	view.Name = name
	view.UserID = record.AccessTokenData.UserID

	return view, nil
}

// AllEvents lists every event the owner's connected identity can see.
func (s *Service) AllEvents(ctx context.Context, authCtx *Context) ([]map[string]any, error) {
	ctx, span := s.tracer.Start(ctx, "widget.Service.AllEvents")
	defer span.End()

	record, err := s.activeRecord(ctx, authCtx)
	if err != nil {
		return nil, err
	}

	events, err := s.social.AllEvents(ctx, record.AccessTokenData.AccessToken)
	if err != nil {
		s.logger.Errorf("failed to list events: %v", err)
		return nil, apierror.BadGateway("Couldn't receive data from Facebook")
	}

	return events, nil
}

// EventDetail fetches one event's data. The event must be present in the
// record's stored events; membership is the authorization boundary.
func (s *Service) EventDetail(ctx context.Context, authCtx *Context, q *EventQuery) (any, error) {
	ctx, span := s.tracer.Start(ctx, "widget.Service.EventDetail")
	defer span.End()

	record, err := s.authorizedEvent(ctx, authCtx, q.EventID)
	if err != nil {
		return nil, err
	}

	data, err := s.social.Event(ctx, q.EventID, record.AccessTokenData.AccessToken, q.DesiredData)
	if err != nil || len(data) == 0 {
		s.logger.Errorf("failed to fetch event %s: %v", q.EventID, err)
		return nil, apierror.BadGateway("Couldn't receive data from Facebook")
	}

	if q.DesiredData == "all" {
		return map[string]any{
			"settings":   blobOrEmpty(record.Settings),
			"event_data": data,
		}, nil
	}

	return data, nil
}

// EventFeed fetches one page of an event's feed, under the same membership
// boundary as EventDetail.
func (s *Service) EventFeed(ctx context.Context, authCtx *Context, q *EventQuery) (map[string]any, error) {
	ctx, span := s.tracer.Start(ctx, "widget.Service.EventFeed")
	defer span.End()

	record, err := s.authorizedEvent(ctx, authCtx, q.EventID)
	if err != nil {
		return nil, err
	}

	data, err := s.social.Feed(ctx, q.ObjectID, record.AccessTokenData.AccessToken, q.DesiredData, q.After, q.Until)
	if err != nil || len(data) == 0 {
		s.logger.Errorf("failed to fetch feed page for %s: %v", q.ObjectID, err)
		return nil, apierror.BadGateway("Couldn't receive data from Facebook")
	}

	return data, nil
}

// activeRecord loads the record and requires a stored session. A missing
// record and an inactive one both mean there is no user to read events for.
func (s *Service) activeRecord(ctx context.Context, authCtx *Context) (*types.WidgetRecord, error) {
	record, err := s.storage.GetRecord(ctx, authCtx.InstanceID, authCtx.ComponentID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apierror.NotFound("Could not find User")
		}
		s.logger.Errorf("failed to load widget record: %v", err)
		return nil, apierror.Internal("Could Not Get Events")
	}

	if !record.Active() {
		return nil, apierror.NotFound("Could not find User")
	}

	return record, nil
}

// authorizedEvent loads the active record and checks the stored events for
// eventID before anything is fetched upstream.
func (s *Service) authorizedEvent(ctx context.Context, authCtx *Context, eventID string) (*types.WidgetRecord, error) {
	record, err := s.activeRecord(ctx, authCtx)
	if err != nil {
		return nil, err
	}

	if len(record.Events) == 0 {
		return nil, apierror.NotFound("User has no events to display")
	}

	if _, found := record.FindEvent(eventID); !found {
		s.logger.Security().AuthzFailure(authCtx.InstanceID, "event:"+eventID)
		return nil, apierror.Forbidden("User cannot display this event")
	}

	return record, nil
}

// blobOrEmpty degrades an absent JSON blob to the empty string the platform
// client expects.
func blobOrEmpty(raw json.RawMessage) any {
	if len(raw) == 0 {
		return ""
	}
	return raw
}

func eventsOrEmpty(events []types.EventDescriptor) any {
	if len(events) == 0 {
		return ""
	}
	return events
}
