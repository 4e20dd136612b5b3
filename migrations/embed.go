// Package migrations embeds the goose SQL migrations into the binary so the
// server can bring its own schema up to date at startup.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
