// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package widget

import (
	"context"

	"github.com/social-widgets/event-widget-service/internal/types"
)

type ServiceInterface interface {
	SaveSettings(ctx context.Context, authCtx *Context, req *SaveSettingsRequest) error
	SaveAccessToken(ctx context.Context, authCtx *Context, shortToken string) error
	Logout(ctx context.Context, authCtx *Context) error
	Widget(ctx context.Context, authCtx *Context) (*types.WidgetView, error)
	Settings(ctx context.Context, authCtx *Context) (*types.SettingsView, error)
	AllEvents(ctx context.Context, authCtx *Context) ([]map[string]any, error)
	EventDetail(ctx context.Context, authCtx *Context, q *EventQuery) (any, error)
	EventFeed(ctx context.Context, authCtx *Context, q *EventQuery) (map[string]any, error)
}

// StorageInterface is the subset of the storage layer the assembler needs.
type StorageInterface interface {
	GetRecord(ctx context.Context, instanceID, componentID string) (*types.WidgetRecord, error)
	UpsertSettings(ctx context.Context, instanceID, componentID string, settings []byte, events []byte) error
	UpsertAccessToken(ctx context.Context, instanceID, componentID string, tokenData []byte) error
	ClearSession(ctx context.Context, instanceID, componentID string) error
}

// SocialClientInterface is the subset of the social graph client the
// assembler needs.
type SocialClientInterface interface {
	ExchangeToken(ctx context.Context, shortToken string) (*types.AccessTokenData, error)
	EventData(ctx context.Context, events []types.EventDescriptor, accessToken string) ([]map[string]any, error)
	UserName(ctx context.Context, accessToken string) (string, error)
	AllEvents(ctx context.Context, accessToken string) ([]map[string]any, error)
	Event(ctx context.Context, eventID, accessToken, desiredData string) (map[string]any, error)
	Feed(ctx context.Context, objectID, accessToken, desiredData, after, until string) (map[string]any, error)
}
