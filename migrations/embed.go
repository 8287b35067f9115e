// Package migrations embebe los archivos SQL de migración en el binario,
// de modo que el esquema viaja con el ejecutable y no depende de archivos
// sueltos en el filesystem.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
