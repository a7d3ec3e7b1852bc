// Package migrations хранит SQL миграции goose для каждого диалекта
package migrations

import "embed"

// FS содержит каталоги sqlite/ и postgres/
//
//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
