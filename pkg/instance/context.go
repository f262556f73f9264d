// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package instance

import "context"

// Define a private custom type to avoid collisions
type contextKey struct{}

var claimsContextKey = contextKey{}

// WithClaims returns a new context with the given claims derived from the parent context.
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// ClaimsFrom retrieves the verified claims from the context.
// Returns nil and false if no claims are present.
func ClaimsFrom(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*Claims)
	return claims, ok
}
