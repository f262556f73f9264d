// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package widget

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/social-widgets/event-widget-service/internal/apierror"
	"github.com/social-widgets/event-widget-service/internal/social"
	"github.com/social-widgets/event-widget-service/internal/storage"
	"github.com/social-widgets/event-widget-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package widget -destination ./mock_widget.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package widget -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package widget -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package widget -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

var testAuthCtx = &Context{
	InstanceID:  "instance-123",
	ComponentID: "comp-456",
	Role:        RoleOwner,
}

func activeTestRecord() *types.WidgetRecord {
	return &types.WidgetRecord{
		InstanceID:  "instance-123",
		ComponentID: "comp-456",
		Settings:    json.RawMessage(`{"theme":"dark"}`),
		Events: []types.EventDescriptor{
			{"eventId": "evt-1", "name": "Launch Party"},
			{"eventId": "evt-2", "name": "Meetup"},
		},
		AccessTokenData: &types.AccessTokenData{
			AccessToken: "long-lived-token",
			UserID:      "fb-user-9",
		},
	}
}

func assertAPIError(t *testing.T, err error, code int, message string) {
	t.Helper()

	var apiErr *apierror.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Code != code {
		t.Errorf("expected status %d, got %d", code, apiErr.Code)
	}
	if apiErr.Message != message {
		t.Errorf("expected message %q, got %q", message, apiErr.Message)
	}
}

func TestService_SaveSettings(t *testing.T) {
	req := &SaveSettingsRequest{
		Settings: json.RawMessage(`{"theme":"dark"}`),
		Events:   []types.EventDescriptor{{"eventId": "evt-1"}},
	}
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockLoggerInterface)
		wantCode    int
		wantMessage string
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().
					UpsertSettings(gomock.Any(), "instance-123", "comp-456", []byte(req.Settings), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "storage error",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().
					UpsertSettings(gomock.Any(), "instance-123", "comp-456", []byte(req.Settings), gomock.Any()).
					Return(dbErr)
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			wantCode:    http.StatusInternalServerError,
			wantMessage: "Could Not Save settings",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockSocial := NewMockSocialClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "widget.Service.SaveSettings").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockLogger)

			s := NewService(mockStorage, mockSocial, mockTracer, mockMonitor, mockLogger)

			err := s.SaveSettings(context.Background(), testAuthCtx, req)

			if tc.wantMessage == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			assertAPIError(t, err, tc.wantCode, tc.wantMessage)
		})
	}
}

func TestService_SaveAccessToken(t *testing.T) {
	tokenData := &types.AccessTokenData{
		AccessToken: "long-lived-token",
		TokenType:   "bearer",
		ExpiresIn:   5184000,
		UserID:      "fb-user-9",
	}
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockSocialClientInterface, *MockLoggerInterface)
		wantCode    int
		wantMessage string
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface, mockSocial *MockSocialClientInterface, mockLogger *MockLoggerInterface) {
				mockSocial.EXPECT().ExchangeToken(gomock.Any(), "short-token").Return(tokenData, nil)
				mockStorage.EXPECT().
					UpsertAccessToken(gomock.Any(), "instance-123", "comp-456", gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "rejected token",
			setupMocks: func(mockStorage *MockStorageInterface, mockSocial *MockSocialClientInterface, mockLogger *MockLoggerInterface) {
				mockSocial.EXPECT().ExchangeToken(gomock.Any(), "short-token").Return(nil, social.ErrInvalidToken)
			},
			wantCode:    http.StatusForbidden,
			wantMessage: "This access token is invalid.",
		},
		{
			name: "upstream error",
			setupMocks: func(mockStorage *MockStorageInterface, mockSocial *MockSocialClientInterface, mockLogger *MockLoggerInterface) {
				mockSocial.EXPECT().ExchangeToken(gomock.Any(), "short-token").Return(nil, errors.New("502 from upstream"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			wantCode:    http.StatusBadGateway,
			wantMessage: "Facebook returned error on access_token",
		},
		{
			name: "storage error",
			setupMocks: func(mockStorage *MockStorageInterface, mockSocial *MockSocialClientInterface, mockLogger *MockLoggerInterface) {
				mockSocial.EXPECT().ExchangeToken(gomock.Any(), "short-token").Return(tokenData, nil)
				mockStorage.EXPECT().
					UpsertAccessToken(gomock.Any(), "instance-123", "comp-456", gomock.Any()).
					Return(dbErr)
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			wantCode:    http.StatusInternalServerError,
			wantMessage: "Could Not Save access_token",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockSocial := NewMockSocialClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "widget.Service.SaveAccessToken").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockSocial, mockLogger)

			s := NewService(mockStorage, mockSocial, mockTracer, mockMonitor, mockLogger)

			err := s.SaveAccessToken(context.Background(), testAuthCtx, "short-token")

			if tc.wantMessage == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			assertAPIError(t, err, tc.wantCode, tc.wantMessage)
		})
	}
}

func TestService_Logout(t *testing.T) {
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockLoggerInterface)
		wantCode    int
		wantMessage string
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().ClearSession(gomock.Any(), "instance-123", "comp-456").Return(nil)
			},
		},
		{
			name: "missing record",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().ClearSession(gomock.Any(), "instance-123", "comp-456").Return(storage.ErrNotFound)
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			wantCode:    http.StatusInternalServerError,
			wantMessage: "Failed to Logout",
		},
		{
			name: "storage error",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().ClearSession(gomock.Any(), "instance-123", "comp-456").Return(dbErr)
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			wantCode:    http.StatusInternalServerError,
			wantMessage: "Failed to Logout",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockSocial := NewMockSocialClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "widget.Service.Logout").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockLogger)

			s := NewService(mockStorage, mockSocial, mockTracer, mockMonitor, mockLogger)

			err := s.Logout(context.Background(), testAuthCtx)

			if tc.wantMessage == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			assertAPIError(t, err, tc.wantCode, tc.wantMessage)
		})
	}
}

func TestService_Widget(t *testing.T) {
	eventData := []map[string]any{{"id": "evt-1", "name": "Launch Party"}}
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockSocialClientInterface, *MockLoggerInterface)
		wantView    *types.WidgetView
		wantCode    int
		wantMessage string
	}{
		{
			name: "no record yields empty state",
			setupMocks: func(mockStorage *MockStorageInterface, mockSocial *MockSocialClientInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetRecord(gomock.Any(), "instance-123", "comp-456").Return(nil, storage.ErrNotFound)
			},
			wantView: types.EmptyWidgetView(),
		},
		{
			name: "inactive record skips live fetch",
			setupMocks: func(mockStorage *MockStorageInterface, mockSocial *MockSocialClientInterface, mockLogger *MockLoggerInterface) {
				record := activeTestRecord()
				record.AccessTokenData = nil
				mockStorage.EXPECT().GetRecord(gomock.Any(), "instance-123", "comp-456").Return(record, nil)
			},
			wantView: &types.WidgetView{
				Settings:  json.RawMessage(`{"theme":"dark"}`),
				EventData: "",
				Active:    "false",
			},
		},
		{
			name: "active record merges live event data",
			setupMocks: func(mockStorage *MockStorageInterface, mockSocial *MockSocialClientInterface, mockLogger *MockLoggerInterface) {
				record := activeTestRecord()
				mockStorage.EXPECT().GetRecord(gomock.Any(), "instance-123", "comp-456").Return(record, nil)
				mockSocial.EXPECT().EventData(gomock.Any(), record.Events, "long-lived-token").Return(eventData, nil)
			},
			wantView: &types.WidgetView{
				Settings:  json.RawMessage(`{"theme":"dark"}`),
				EventData: eventData,
				Active:    "true",
			},
		},
		{
			name: "lookup error",
			setupMocks: func(mockStorage *MockStorageInterface, mockSocial *MockSocialClientInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetRecord(gomock.Any(), "instance-123", "comp-456").Return(nil, dbErr)
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			wantCode:    http.StatusInternalServerError,
			wantMessage: "Could Not Get Settings",
		},
		{
			name: "upstream error",
			setupMocks: func(mockStorage *MockStorageInterface, mockSocial *MockSocialClientInterface, mockLogger *MockLoggerInterface) {
				record := activeTestRecord()
				mockStorage.EXPECT().GetRecord(gomock.Any(), "instance-123", "comp-456").Return(record, nil)
				mockSocial.EXPECT().EventData(gomock.Any(), record.Events, "long-lived-token").Return(nil, errors.New("timeout"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			wantCode:    http.StatusBadGateway,
			wantMessage: "Couldn't receive data from Facebook",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockSocial := NewMockSocialClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "widget.Service.Widget").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockSocial, mockLogger)

			s := NewService(mockStorage, mockSocial, mockTracer, mockMonitor, mockLogger)

			view, err := s.Widget(context.Background(), testAuthCtx)

			if tc.wantMessage != "" {
				assertAPIError(t, err, tc.wantCode, tc.wantMessage)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if view.Active != tc.wantView.Active {
				t.Errorf("expected active %q, got %q", tc.wantView.Active, view.Active)
			}

			got, _ := json.Marshal(view)
			want, _ := json.Marshal(tc.wantView)
			if string(got) != string(want) {
				t.Errorf("expected view %s, got %s", want, got)
			}
		})
	}
}

func TestService_Settings(t *testing.T) {
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockSocialClientInterface, *MockLoggerInterface)
		wantView    *types.SettingsView
		wantCode    int
		wantMessage string
	}{
		{
			name: "no record yields empty state",
			setupMocks: func(mockStorage *MockStorageInterface, mockSocial *MockSocialClientInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetRecord(gomock.Any(), "instance-123", "comp-456").Return(nil, storage.ErrNotFound)
			},
			wantView: types.EmptySettingsView(),
		},
		{
			name: "logged out record keeps settings and events",
			setupMocks: func(mockStorage *MockStorageInterface, mockSocial *MockSocialClientInterface, mockLogger *MockLoggerInterface) {
				record := activeTestRecord()
				record.AccessTokenData = nil
				mockStorage.EXPECT().GetRecord(gomock.Any(), "instance-123", "comp-456").Return(record, nil)
			},
			wantView: &types.SettingsView{
				Settings: json.RawMessage(`{"theme":"dark"}`),
				Events: []types.EventDescriptor{
					{"eventId": "evt-1", "name": "Launch Party"},
					{"eventId": "evt-2", "name": "Meetup"},
				},
				Active: "false",
			},
		},
		{
			name: "active record resolves connected identity",
			setupMocks: func(mockStorage *MockStorageInterface, mockSocial *MockSocialClientInterface, mockLogger *MockLoggerInterface) {
				record := activeTestRecord()
				mockStorage.EXPECT().GetRecord(gomock.Any(), "instance-123", "comp-456").Return(record, nil)
				mockSocial.EXPECT().UserName(gomock.Any(), "long-lived-token").Return("Ada Lovelace", nil)
			},
			wantView: &types.SettingsView{
				Settings: json.RawMessage(`{"theme":"dark"}`),
				Events: []types.EventDescriptor{
					{"eventId": "evt-1", "name": "Launch Party"},
					{"eventId": "evt-2", "name": "Meetup"},
				},
				Active: "true",
				Name:   "Ada Lovelace",
				UserID: "fb-user-9",
			},
		},
		{
			name: "lookup error",
			setupMocks: func(mockStorage *MockStorageInterface, mockSocial *MockSocialClientInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetRecord(gomock.Any(), "instance-123", "comp-456").Return(nil, dbErr)
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			wantCode:    http.StatusInternalServerError,
			wantMessage: "Could Not Get Settings",
		},
		{
			name: "upstream error",
			setupMocks: func(mockStorage *MockStorageInterface, mockSocial *MockSocialClientInterface, mockLogger *MockLoggerInterface) {
				record := activeTestRecord()
				mockStorage.EXPECT().GetRecord(gomock.Any(), "instance-123", "comp-456").Return(record, nil)
				mockSocial.EXPECT().UserName(gomock.Any(), "long-lived-token").Return("", errors.New("timeout"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			wantCode:    http.StatusBadGateway,
			wantMessage: "Couldn't receive data from Facebook",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockSocial := NewMockSocialClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "widget.Service.Settings").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockSocial, mockLogger)

			s := NewService(mockStorage, mockSocial, mockTracer, mockMonitor, mockLogger)

			view, err := s.Settings(context.Background(), testAuthCtx)

			if tc.wantMessage != "" {
				assertAPIError(t, err, tc.wantCode, tc.wantMessage)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got, _ := json.Marshal(view)
			want, _ := json.Marshal(tc.wantView)
			if string(got) != string(want) {
				t.Errorf("expected view %s, got %s", want, got)
			}
		})
	}
}

func TestService_AllEvents(t *testing.T) {
	allEvents := []map[string]any{{"id": "evt-1"}, {"id": "evt-3"}}
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockSocialClientInterface, *MockLoggerInterface)
		wantEvents  []map[string]any
		wantCode    int
		wantMessage string
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface, mockSocial *MockSocialClientInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetRecord(gomock.Any(), "instance-123", "comp-456").Return(activeTestRecord(), nil)
				mockSocial.EXPECT().AllEvents(gomock.Any(), "long-lived-token").Return(allEvents, nil)
			},
			wantEvents: allEvents,
		},
		{
			name: "no record",
			setupMocks: func(mockStorage *MockStorageInterface, mockSocial *MockSocialClientInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetRecord(gomock.Any(), "instance-123", "comp-456").Return(nil, storage.ErrNotFound)
			},
			wantCode:    http.StatusNotFound,
			wantMessage: "Could not find User",
		},
		{
			name: "logged out record",
			setupMocks: func(mockStorage *MockStorageInterface, mockSocial *MockSocialClientInterface, mockLogger *MockLoggerInterface) {
				record := activeTestRecord()
				record.AccessTokenData = nil
				mockStorage.EXPECT().GetRecord(gomock.Any(), "instance-123", "comp-456").Return(record, nil)
			},
			wantCode:    http.StatusNotFound,
			wantMessage: "Could not find User",
		},
		{
			name: "lookup error",
			setupMocks: func(mockStorage *MockStorageInterface, mockSocial *MockSocialClientInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetRecord(gomock.Any(), "instance-123", "comp-456").Return(nil, dbErr)
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			wantCode:    http.StatusInternalServerError,
			wantMessage: "Could Not Get Events",
		},
		{
			name: "upstream error",
			setupMocks: func(mockStorage *MockStorageInterface, mockSocial *MockSocialClientInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetRecord(gomock.Any(), "instance-123", "comp-456").Return(activeTestRecord(), nil)
				mockSocial.EXPECT().AllEvents(gomock.Any(), "long-lived-token").Return(nil, errors.New("timeout"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			wantCode:    http.StatusBadGateway,
			wantMessage: "Couldn't receive data from Facebook",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockSocial := NewMockSocialClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "widget.Service.AllEvents").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockSocial, mockLogger)

			s := NewService(mockStorage, mockSocial, mockTracer, mockMonitor, mockLogger)

			events, err := s.AllEvents(context.Background(), testAuthCtx)

			if tc.wantMessage != "" {
				assertAPIError(t, err, tc.wantCode, tc.wantMessage)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(events) != len(tc.wantEvents) {
				t.Errorf("expected %d events, got %d", len(tc.wantEvents), len(events))
			}
		})
	}
}

func TestService_EventDetail(t *testing.T) {
	eventData := map[string]any{"id": "evt-1", "name": "Launch Party"}

	testCases := []struct {
		name        string
		query       *EventQuery
		setupMocks  func(*MockStorageInterface, *MockSocialClientInterface, *MockLoggerInterface)
		check       func(*testing.T, any)
		wantCode    int
		wantMessage string
	}{
		{
			name:  "success",
			query: &EventQuery{EventID: "evt-1", DesiredData: "name,description"},
			setupMocks: func(mockStorage *MockStorageInterface, mockSocial *MockSocialClientInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetRecord(gomock.Any(), "instance-123", "comp-456").Return(activeTestRecord(), nil)
				mockSocial.EXPECT().Event(gomock.Any(), "evt-1", "long-lived-token", "name,description").Return(eventData, nil)
			},
			check: func(t *testing.T, data any) {
				if _, ok := data.(map[string]any); !ok {
					t.Errorf("expected raw event data, got %T", data)
				}
			},
		},
		{
			name:  "desired data all wraps settings",
			query: &EventQuery{EventID: "evt-1", DesiredData: "all"},
			setupMocks: func(mockStorage *MockStorageInterface, mockSocial *MockSocialClientInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetRecord(gomock.Any(), "instance-123", "comp-456").Return(activeTestRecord(), nil)
				mockSocial.EXPECT().Event(gomock.Any(), "evt-1", "long-lived-token", "all").Return(eventData, nil)
			},
			check: func(t *testing.T, data any) {
				wrapped, ok := data.(map[string]any)
				if !ok {
					t.Fatalf("expected wrapped payload, got %T", data)
				}
				if _, ok := wrapped["settings"]; !ok {
					t.Error("expected settings in wrapped payload")
				}
				if _, ok := wrapped["event_data"]; !ok {
					t.Error("expected event_data in wrapped payload")
				}
			},
		},
		{
			name:  "no stored events",
			query: &EventQuery{EventID: "evt-1", DesiredData: "all"},
			setupMocks: func(mockStorage *MockStorageInterface, mockSocial *MockSocialClientInterface, mockLogger *MockLoggerInterface) {
				record := activeTestRecord()
				record.Events = nil
				mockStorage.EXPECT().GetRecord(gomock.Any(), "instance-123", "comp-456").Return(record, nil)
			},
			wantCode:    http.StatusNotFound,
			wantMessage: "User has no events to display",
		},
		{
			name:  "event not in stored list",
			query: &EventQuery{EventID: "evt-99", DesiredData: "all"},
			setupMocks: func(mockStorage *MockStorageInterface, mockSocial *MockSocialClientInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetRecord(gomock.Any(), "instance-123", "comp-456").Return(activeTestRecord(), nil)

				mockSecurity := NewMockSecurityLoggerInterface(gomock.NewController(t))
				mockSecurity.EXPECT().AuthzFailure("instance-123", "event:evt-99")
				mockLogger.EXPECT().Security().Return(mockSecurity)
			},
			wantCode:    http.StatusForbidden,
			wantMessage: "User cannot display this event",
		},
		{
			name:  "upstream error",
			query: &EventQuery{EventID: "evt-1", DesiredData: "all"},
			setupMocks: func(mockStorage *MockStorageInterface, mockSocial *MockSocialClientInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetRecord(gomock.Any(), "instance-123", "comp-456").Return(activeTestRecord(), nil)
				mockSocial.EXPECT().Event(gomock.Any(), "evt-1", "long-lived-token", "all").Return(nil, errors.New("timeout"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			wantCode:    http.StatusBadGateway,
			wantMessage: "Couldn't receive data from Facebook",
		},
		{
			name:  "empty upstream payload",
			query: &EventQuery{EventID: "evt-1", DesiredData: "all"},
			setupMocks: func(mockStorage *MockStorageInterface, mockSocial *MockSocialClientInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetRecord(gomock.Any(), "instance-123", "comp-456").Return(activeTestRecord(), nil)
				mockSocial.EXPECT().Event(gomock.Any(), "evt-1", "long-lived-token", "all").Return(map[string]any{}, nil)
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			wantCode:    http.StatusBadGateway,
			wantMessage: "Couldn't receive data from Facebook",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockSocial := NewMockSocialClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "widget.Service.EventDetail").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockSocial, mockLogger)

			s := NewService(mockStorage, mockSocial, mockTracer, mockMonitor, mockLogger)

			data, err := s.EventDetail(context.Background(), testAuthCtx, tc.query)

			if tc.wantMessage != "" {
				assertAPIError(t, err, tc.wantCode, tc.wantMessage)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tc.check(t, data)
		})
	}
}

func TestService_EventFeed(t *testing.T) {
	feedPage := map[string]any{"data": []any{map[string]any{"message": "hello"}}}

	testCases := []struct {
		name        string
		query       *EventQuery
		setupMocks  func(*MockStorageInterface, *MockSocialClientInterface, *MockLoggerInterface)
		wantCode    int
		wantMessage string
	}{
		{
			name:  "success",
			query: &EventQuery{EventID: "evt-1", DesiredData: "feed", ObjectID: "obj-1", Until: "1456000000"},
			setupMocks: func(mockStorage *MockStorageInterface, mockSocial *MockSocialClientInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetRecord(gomock.Any(), "instance-123", "comp-456").Return(activeTestRecord(), nil)
				mockSocial.EXPECT().Feed(gomock.Any(), "obj-1", "long-lived-token", "feed", "", "1456000000").Return(feedPage, nil)
			},
		},
		{
			name:  "event not in stored list",
			query: &EventQuery{EventID: "evt-99", DesiredData: "feed", ObjectID: "obj-1", After: "cursor"},
			setupMocks: func(mockStorage *MockStorageInterface, mockSocial *MockSocialClientInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetRecord(gomock.Any(), "instance-123", "comp-456").Return(activeTestRecord(), nil)

				mockSecurity := NewMockSecurityLoggerInterface(gomock.NewController(t))
				mockSecurity.EXPECT().AuthzFailure("instance-123", "event:evt-99")
				mockLogger.EXPECT().Security().Return(mockSecurity)
			},
			wantCode:    http.StatusForbidden,
			wantMessage: "User cannot display this event",
		},
		{
			name:  "upstream error",
			query: &EventQuery{EventID: "evt-1", DesiredData: "feed", ObjectID: "obj-1", After: "cursor"},
			setupMocks: func(mockStorage *MockStorageInterface, mockSocial *MockSocialClientInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetRecord(gomock.Any(), "instance-123", "comp-456").Return(activeTestRecord(), nil)
				mockSocial.EXPECT().Feed(gomock.Any(), "obj-1", "long-lived-token", "feed", "cursor", "").Return(nil, errors.New("timeout"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			wantCode:    http.StatusBadGateway,
			wantMessage: "Couldn't receive data from Facebook",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockSocial := NewMockSocialClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "widget.Service.EventFeed").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockSocial, mockLogger)

			s := NewService(mockStorage, mockSocial, mockTracer, mockMonitor, mockLogger)

			page, err := s.EventFeed(context.Background(), testAuthCtx, tc.query)

			if tc.wantMessage != "" {
				assertAPIError(t, err, tc.wantCode, tc.wantMessage)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(page) == 0 {
				t.Error("expected a non-empty feed page")
			}
		})
	}
}
