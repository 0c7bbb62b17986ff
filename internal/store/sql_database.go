package store

import (
	"database/sql"
	"errors"

	"github.com/avoronin/go-note-keeper/internal/logger"
	"github.com/avoronin/go-note-keeper/migrations"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// dialect identifies which SQL backend a [DB] talks to. The repositories run
// the same portable SQL against both; the dialect only matters for schema
// management and driver-error classification.
type dialect string

const (
	dialectPostgres dialect = "postgres"
	dialectSQLite   dialect = "sqlite"
)

// DB wraps the raw connection with the backend dialect so repositories can
// stay backend-agnostic.
type DB struct {
	*sql.DB
	dialect dialect
	logger  *logger.Logger
}

// Migrate brings the schema up to date. The PostgreSQL backend runs the
// embedded goose migrations; the SQLite backend bootstraps its schema
// directly since goose migration files are written for PostgreSQL types.
func (db *DB) Migrate() error {
	if db.dialect == dialectSQLite {
		return bootstrapSQLiteSchema(db.DB)
	}
	return migrations.Migrate(db.DB)
}

// isUniqueViolation reports whether err is a unique-constraint violation
// from either supported driver.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return errors.Is(sqliteErr.ExtendedCode, sqlite3.ErrConstraintUnique) ||
			errors.Is(sqliteErr.ExtendedCode, sqlite3.ErrConstraintPrimaryKey)
	}

	return false
}
