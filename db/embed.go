// Package db ships the SQL schema migrations with the binary.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory of Migrations holding the .sql files.
const MigrationsDir = "migrations"
