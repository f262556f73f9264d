// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/social-widgets/event-widget-service/internal/db"
	"github.com/social-widgets/event-widget-service/internal/logging"
	"github.com/social-widgets/event-widget-service/internal/monitoring"
	"github.com/social-widgets/event-widget-service/internal/tracing"
	"github.com/social-widgets/event-widget-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

// GetRecord loads the widget record for one installation. ErrNotFound is
// returned when no row exists, any other error is a lookup failure.
func (s *Storage) GetRecord(ctx context.Context, instanceID, componentID string) (*types.WidgetRecord, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetRecord")
	defer span.End()

	var r types.WidgetRecord
	var settings, events, tokenData []byte

	err := s.db.Statement(ctx).
		Select("instance_id", "component_id", "settings", "events", "access_token_data", "created_at", "updated_at").
		From("widget_settings").
		Where(sq.Eq{"instance_id": instanceID, "component_id": componentID}).
		QueryRowContext(ctx).
		Scan(&r.InstanceID, &r.ComponentID, &settings, &events, &tokenData, &r.CreatedAt, &r.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get widget record: %w", err)
	}

	// Each stored blob is independently optional.
	r.Settings = settings
	if len(events) > 0 {
		if err := json.Unmarshal(events, &r.Events); err != nil {
			return nil, fmt.Errorf("failed to decode stored events: %w", err)
		}
	}
	if len(tokenData) > 0 {
		r.AccessTokenData = new(types.AccessTokenData)
		if err := json.Unmarshal(tokenData, r.AccessTokenData); err != nil {
			return nil, fmt.Errorf("failed to decode stored access token data: %w", err)
		}
	}

	return &r, nil
}

// UpsertSettings stores settings and events for an installation, creating the
// row on first write. The upsert serializes concurrent writes to the same key
// at the database.
func (s *Storage) UpsertSettings(ctx context.Context, instanceID, componentID string, settings []byte, events []byte) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertSettings")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("widget_settings").
		Columns("instance_id", "component_id", "settings", "events").
		Values(instanceID, componentID, settings, events).
		Suffix(`ON CONFLICT (instance_id, component_id) DO UPDATE
			SET settings = EXCLUDED.settings, events = EXCLUDED.events, updated_at = now()`).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to upsert settings: %w", err)
	}

	return nil
}

// UpsertAccessToken stores the long lived session data for an installation,
// creating the row on first write.
func (s *Storage) UpsertAccessToken(ctx context.Context, instanceID, componentID string, tokenData []byte) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertAccessToken")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("widget_settings").
		Columns("instance_id", "component_id", "access_token_data").
		Values(instanceID, componentID, tokenData).
		Suffix(`ON CONFLICT (instance_id, component_id) DO UPDATE
			SET access_token_data = EXCLUDED.access_token_data, updated_at = now()`).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to upsert access token data: %w", err)
	}

	return nil
}

// ClearSession removes the stored events and session data on logout while
// preserving the settings blob.
func (s *Storage) ClearSession(ctx context.Context, instanceID, componentID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.ClearSession")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("widget_settings").
		Set("events", nil).
		Set("access_token_data", nil).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"instance_id": instanceID, "component_id": componentID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
