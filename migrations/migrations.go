// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package migrations embeds the SQL migration files applied by the migrate
// command.
package migrations

import "embed"

//go:embed *.sql
var EmbedMigrations embed.FS
