package migrations

import "embed"

// FS carries the schema migrations so the binary can apply them on startup.
//
//go:embed *.sql
var FS embed.FS
