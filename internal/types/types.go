// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"time"
)

// EventDescriptor carries one event saved by the widget owner, exactly as the
// platform client sent it. Only eventId is interpreted server side; every
// other field is passed through untouched.
type EventDescriptor map[string]any

func (e EventDescriptor) EventID() string {
	id, _ := e["eventId"].(string)
	return id
}

// AccessTokenData is the long lived social session stored for a widget
// installation. Its presence marks the installation as active.
type AccessTokenData struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	ExpiresIn   int64  `json:"expires_in,omitempty"`
	UserID      string `json:"user_id"`
}

// WidgetRecord is one widget installation, keyed by the composite
// (instance ID, component ID) pair.
type WidgetRecord struct {
	InstanceID      string            `db:"instance_id"`
	ComponentID     string            `db:"component_id"`
	Settings        json.RawMessage   `db:"settings"`
	Events          []EventDescriptor `db:"events"`
	AccessTokenData *AccessTokenData  `db:"access_token_data"`
	CreatedAt       time.Time         `db:"created_at"`
	UpdatedAt       time.Time         `db:"updated_at"`
}

// Active reports whether the installation has a stored social session.
func (r *WidgetRecord) Active() bool {
	return r.AccessTokenData != nil && r.AccessTokenData.AccessToken != ""
}

// FindEvent scans the stored events for the given id. First match wins.
func (r *WidgetRecord) FindEvent(eventID string) (EventDescriptor, bool) {
	for _, e := range r.Events {
		if e.EventID() == eventID {
			return e, true
		}
	}
	return nil, false
}

// WidgetView is the read only view served to site visitors. Settings and
// EventData degrade to empty strings when absent, which the platform client
// relies on.
type WidgetView struct {
	Settings  any    `json:"settings"`
	EventData any    `json:"fb_event_data"`
	Active    string `json:"active"`
}

// SettingsView is the privileged view served to the widget owner.
type SettingsView struct {
	Settings any    `json:"settings"`
	Events   any    `json:"events"`
	Active   string `json:"active"`
	Name     string `json:"name"`
	UserID   string `json:"user_id"`
}

// EmptyWidgetView is returned when no record exists for the installation.
func EmptyWidgetView() *WidgetView {
	return &WidgetView{Settings: "", EventData: "", Active: "false"}
}

// EmptySettingsView is returned when no record exists for the installation.
func EmptySettingsView() *SettingsView {
	return &SettingsView{Settings: "", Events: "", Active: "false", Name: "", UserID: ""}
}
