// Package migrations embeds the SQL schema files so the binary runs
// standalone.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
