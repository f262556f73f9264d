// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/social-widgets/event-widget-service/internal/types"
)

type StorageInterface interface {
	GetRecord(ctx context.Context, instanceID, componentID string) (*types.WidgetRecord, error)
	UpsertSettings(ctx context.Context, instanceID, componentID string, settings []byte, events []byte) error
	UpsertAccessToken(ctx context.Context, instanceID, componentID string, tokenData []byte) error
	ClearSession(ctx context.Context, instanceID, componentID string) error
}
