// Package migrations встраивает SQL-миграции в бинарь сервиса
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
