// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package social talks to the social graph API the widget pulls live event
// data from. The gateway never caches or rewrites upstream payloads, it only
// relays them.
package social

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/social-widgets/event-widget-service/internal/logging"
	"github.com/social-widgets/event-widget-service/internal/monitoring"
	"github.com/social-widgets/event-widget-service/internal/tracing"
	"github.com/social-widgets/event-widget-service/internal/types"
)

// Sentinel errors. ErrInvalidToken means the upstream explicitly rejected the
// credential; everything else upstream surfaces as ErrUpstream.
var (
	ErrUpstream     = errors.New("upstream social API failure")
	ErrInvalidToken = errors.New("access token rejected by upstream")
)

const eventFields = "id,name,description,start_time,end_time,place,cover,owner"

type ClientInterface interface {
	ExchangeToken(ctx context.Context, shortToken string) (*types.AccessTokenData, error)
	EventData(ctx context.Context, events []types.EventDescriptor, accessToken string) ([]map[string]any, error)
	UserName(ctx context.Context, accessToken string) (string, error)
	AllEvents(ctx context.Context, accessToken string) ([]map[string]any, error)
	Event(ctx context.Context, eventID, accessToken, desiredData string) (map[string]any, error)
	Feed(ctx context.Context, objectID, accessToken, desiredData, after, until string) (map[string]any, error)
}

type Client struct {
	client  *http.Client
	baseURL string

	appID     string
	appSecret string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(baseURL, appID, appSecret string, timeout time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	return &Client{
		client:    &http.Client{Timeout: timeout},
		baseURL:   strings.TrimRight(baseURL, "/"),
		appID:     appID,
		appSecret: appSecret,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

// ExchangeToken trades a short lived client token for a long lived one and
// resolves the identity it belongs to.
func (c *Client) ExchangeToken(ctx context.Context, shortToken string) (*types.AccessTokenData, error) {
	ctx, span := c.tracer.Start(ctx, "social.Client.ExchangeToken")
	defer span.End()

	q := url.Values{}
	q.Set("grant_type", "fb_exchange_token")
	q.Set("client_id", c.appID)
	q.Set("client_secret", c.appSecret)
	q.Set("fb_exchange_token", shortToken)

	var token types.AccessTokenData
	if err := c.getJSON(ctx, "/oauth/access_token", q, &token); err != nil {
		return nil, err
	}
	if token.AccessToken == "" {
		return nil, fmt.Errorf("empty token in exchange response: %w", ErrUpstream)
	}

	q = url.Values{}
	q.Set("fields", "id")
	q.Set("access_token", token.AccessToken)

	var me struct {
		ID string `json:"id"`
	}
	if err := c.getJSON(ctx, "/me", q, &me); err != nil {
		return nil, err
	}
	token.UserID = me.ID

	return &token, nil
}

// EventData fetches live data for every stored event. An installation with no
// stored events yields an explicit empty result, which is not a failure.
func (c *Client) EventData(ctx context.Context, events []types.EventDescriptor, accessToken string) ([]map[string]any, error) {
	ctx, span := c.tracer.Start(ctx, "social.Client.EventData")
	defer span.End()

	data := make([]map[string]any, 0, len(events))
	for _, e := range events {
		q := url.Values{}
		q.Set("fields", eventFields)
		q.Set("access_token", accessToken)

		var event map[string]any
		if err := c.getJSON(ctx, "/"+url.PathEscape(e.EventID()), q, &event); err != nil {
			return nil, err
		}
		data = append(data, event)
	}

	return data, nil
}

func (c *Client) UserName(ctx context.Context, accessToken string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "social.Client.UserName")
	defer span.End()

	q := url.Values{}
	q.Set("fields", "name")
	q.Set("access_token", accessToken)

	var me struct {
		Name string `json:"name"`
	}
	if err := c.getJSON(ctx, "/me", q, &me); err != nil {
		return "", err
	}

	return me.Name, nil
}

// AllEvents lists every event the connected identity can see.
func (c *Client) AllEvents(ctx context.Context, accessToken string) ([]map[string]any, error) {
	ctx, span := c.tracer.Start(ctx, "social.Client.AllEvents")
	defer span.End()

	q := url.Values{}
	q.Set("fields", eventFields)
	q.Set("access_token", accessToken)

	var page struct {
		Data []map[string]any `json:"data"`
	}
	if err := c.getJSON(ctx, "/me/events", q, &page); err != nil {
		return nil, err
	}

	return page.Data, nil
}

// Event fetches one event. desiredData selects the projection: "feed" reads
// the feed edge, "all" the full field set, anything else is used as the field
// list verbatim.
func (c *Client) Event(ctx context.Context, eventID, accessToken, desiredData string) (map[string]any, error) {
	ctx, span := c.tracer.Start(ctx, "social.Client.Event")
	defer span.End()

	path := "/" + url.PathEscape(eventID)
	q := url.Values{}
	q.Set("access_token", accessToken)

	switch desiredData {
	case "feed":
		path += "/feed"
	case "all":
		q.Set("fields", eventFields)
	default:
		q.Set("fields", desiredData)
	}

	var data map[string]any
	if err := c.getJSON(ctx, path, q, &data); err != nil {
		return nil, err
	}

	return data, nil
}

// Feed fetches one page of the desired edge (feed or comments) of an object,
// positioned by exactly one of the after/until cursors.
func (c *Client) Feed(ctx context.Context, objectID, accessToken, desiredData, after, until string) (map[string]any, error) {
	ctx, span := c.tracer.Start(ctx, "social.Client.Feed")
	defer span.End()

	q := url.Values{}
	q.Set("access_token", accessToken)
	if after != "" {
		q.Set("after", after)
	}
	if until != "" {
		q.Set("until", until)
	}

	path := "/" + url.PathEscape(objectID) + "/" + url.PathEscape(desiredData)

	var data map[string]any
	if err := c.getJSON(ctx, path, q, &data); err != nil {
		return nil, err
	}

	return data, nil
}

// getJSON performs a GET with a single retry on transient failures. A
// rejected credential is surfaced as ErrInvalidToken, anything else that
// keeps the upstream from answering as ErrUpstream.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	var lastErr error

	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(250 * time.Millisecond):
			case <-ctx.Done():
				return fmt.Errorf("%v: %w", ctx.Err(), ErrUpstream)
			}
		}

		retry, err := c.doOnce(ctx, path, query, out)
		if err == nil {
			c.setAvailability(1)
			return nil
		}
		if !retry {
			c.setAvailability(0)
			return err
		}
		lastErr = err
	}

	c.setAvailability(0)
	return lastErr
}

// doOnce reports whether the failure is worth retrying.
func (c *Client) doOnce(ctx context.Context, path string, query url.Values, out any) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return false, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return true, fmt.Errorf("%v: %w", err, ErrUpstream)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return true, fmt.Errorf("failed to read response: %w", ErrUpstream)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return true, fmt.Errorf("upstream returned %d: %w", resp.StatusCode, ErrUpstream)
	}

	if resp.StatusCode != http.StatusOK {
		var graphErr struct {
			Error struct {
				Message string `json:"message"`
				Type    string `json:"type"`
				Code    int    `json:"code"`
			} `json:"error"`
		}
		if err := json.Unmarshal(body, &graphErr); err == nil && graphErr.Error.Type == "OAuthException" {
			c.logger.Debugf("upstream rejected token: %s", graphErr.Error.Message)
			return false, ErrInvalidToken
		}
		return false, fmt.Errorf("upstream returned %d: %w", resp.StatusCode, ErrUpstream)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return false, fmt.Errorf("failed to decode upstream response: %w", ErrUpstream)
	}

	return false, nil
}

func (c *Client) setAvailability(available float64) {
	if err := c.monitor.SetDependencyAvailability(map[string]string{"component": "graph_api"}, available); err != nil {
		c.logger.Errorf("failed to set dependency availability: %v", err)
	}
}
