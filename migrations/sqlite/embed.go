// Package sqlite embeds the SQLite flavour of the schema migrations.
// Timestamps are stored as Unix milliseconds in INTEGER columns.
package sqlite

import "embed"

// FS holds all *.sql migration files for the SQLite store.
//
//go:embed *.sql
var FS embed.FS
