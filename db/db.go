// Package db opens the article database and creates its schema.
package db

import (
	"database/sql"
	"fmt"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Open connects to the database for the given driver, pings it and creates
// the news table when missing.
func Open(driver, dsn string) (*sql.DB, error) {
	var (
		conn   *sql.DB
		schema string
		err    error
	)

	switch driver {
	case DriverSQLite:
		conn, err = openSQLite(dsn)
		schema = sqliteSchema
	case DriverPostgres:
		conn, err = openPostgres(dsn)
		schema = postgresSchema
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return conn, nil
}
