// Package migrations embeds the Postgres schema migrations.
package migrations

import "embed"

// FS contains the embedded migration scripts, applied in filename order.
//
//go:embed *.sql
var FS embed.FS
