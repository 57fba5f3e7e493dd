// Package migrations embute os arquivos SQL aplicados pelo golang-migrate.
package migrations

import "embed"

// FS contém as migrações no formato <versão>_<nome>.<up|down>.sql
//
//go:embed *.sql
var FS embed.FS
