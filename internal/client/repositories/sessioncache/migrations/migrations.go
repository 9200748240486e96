// Package migrations embeds the schema migrations for the session cache.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
