// Package migrations embebe el esquema SQL versionado (goose).
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
