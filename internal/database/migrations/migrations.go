package migrations

import "embed"

// Migrations — SQL-миграции схемы, встроенные в бинарник.
// Имена файлов в формате golang-migrate: NNNNNN_name.{up,down}.sql.
//
//go:embed *.sql
var Migrations embed.FS
