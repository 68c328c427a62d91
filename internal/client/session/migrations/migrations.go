// Package migrations embeds the schema applied to the local session database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
