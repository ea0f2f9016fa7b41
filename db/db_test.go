package db

import (
	"path/filepath"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestOpen_SQLiteCreatesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "news.db")

	conn, err := Open(DriverSQLite, path)
	assert.Equal(t, nil, err)
	defer conn.Close()

	var count int
	err = conn.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='news'`).Scan(&count)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, count)
}

func TestOpen_SQLiteIsReentrant(t *testing.T) {
	path := filepath.Join(t.TempDir(), "news.db")

	first, err := Open(DriverSQLite, path)
	assert.Equal(t, nil, err)
	first.Close()

	second, err := Open(DriverSQLite, path)
	assert.Equal(t, nil, err)
	second.Close()
}

func TestOpen_UnknownDriver(t *testing.T) {
	conn, err := Open("oracle", "whatever")

	assert.NotEqual(t, nil, err)
	assert.Equal(t, true, conn == nil)
}
