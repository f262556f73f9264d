// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package instance

import "context"

type VerifierInterface interface {
	// Verify validates a raw signed instance token.
	// Returns the decoded claims if the token is authentic, otherwise ErrInvalidToken.
	Verify(ctx context.Context, rawToken string) (*Claims, error)
}
