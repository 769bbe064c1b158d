// Package migrations embeds the goose migration scripts, one directory
// per supported dialect.
package migrations

import "embed"

//go:embed postgres sqlite
var FS embed.FS
