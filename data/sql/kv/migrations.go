package kv

import (
	"embed"

	"github.com/klwxsrx/school-admin/pkg/sql"
)

var Migrations = sql.FSMigrations(migrationFiles)

//go:embed *.sql
var migrationFiles embed.FS
