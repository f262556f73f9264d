// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package instance verifies the signed instance tokens the embedding
// platform attaches to every widget request.
package instance

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"

	"github.com/social-widgets/event-widget-service/internal/logging"
	"github.com/social-widgets/event-widget-service/internal/monitoring"
	"github.com/social-widgets/event-widget-service/internal/tracing"
)

const PermissionOwner = "OWNER"

// ErrInvalidToken is the single failure outcome of verification. Callers
// never learn which step failed.
var ErrInvalidToken = errors.New("invalid instance token")

// Claims is the decoded payload of an instance token. InstanceID and
// Permissions are interpreted here; the remaining fields are platform
// passthrough.
type Claims struct {
	InstanceID      string `json:"instanceId"`
	Permissions     string `json:"permissions"`
	SignDate        string `json:"signDate,omitempty"`
	UID             string `json:"uid,omitempty"`
	SiteOwnerID     string `json:"siteOwnerId,omitempty"`
	VendorProductID string `json:"vendorProductId,omitempty"`
}

func (c *Claims) IsOwner() bool {
	return c.Permissions == PermissionOwner
}

type Verifier struct {
	secret []byte

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewVerifier(secret []byte, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Verifier {
	return &Verifier{
		secret:  secret,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Verify decodes and cryptographically validates a signed instance token of
// the form signature.payload, both parts base64url without padding. Tokens
// with extra separators are rejected outright rather than silently
// truncated.
func (v *Verifier) Verify(ctx context.Context, rawToken string) (*Claims, error) {
	_, span := v.tracer.Start(ctx, "instance.Verifier.Verify")
	defer span.End()

	parts := strings.Split(rawToken, ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, ErrInvalidToken
	}

	signature, err := decodeSegment(parts[0])
	if err != nil {
		return nil, ErrInvalidToken
	}

	// The MAC covers the encoded payload exactly as it appears on the wire.
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(parts[1]))
	if !hmac.Equal(mac.Sum(nil), signature) {
		return nil, ErrInvalidToken
	}

	payload, err := decodeSegment(parts[1])
	if err != nil {
		return nil, ErrInvalidToken
	}

	var claims Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		v.logger.Debugf("token signature valid but payload is not a JSON object: %v", err)
		return nil, ErrInvalidToken
	}

	return &claims, nil
}

// Sign produces a token Verify accepts. Used by tests and the token command.
func Sign(claims *Claims, secret []byte) (string, error) {
	payload, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}

	encoded := base64.RawURLEncoding.EncodeToString(payload)

	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(encoded))
	signature := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))

	return signature + "." + encoded, nil
}

// decodeSegment accepts base64url with or without trailing padding.
func decodeSegment(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
}
