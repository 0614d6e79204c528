// Package testsupport holds database helpers shared by the repository and
// module tests.
package testsupport

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

// NewSQLiteMemoryDB opens a shared in-memory sqlite handle.
func NewSQLiteMemoryDB() (*sql.DB, error) {
	return sql.Open("sqlite3", "file::memory:?cache=shared")
}

// NewBunSQLiteDB wraps an in-memory sqlite handle in bun and creates tables
// for the given models. The connection pool is pinned to one connection so
// the shared-cache database survives for the whole test.
func NewBunSQLiteDB(models ...any) (*bun.DB, error) {
	sqlDB, err := NewSQLiteMemoryDB()
	if err != nil {
		return nil, err
	}

	db := bun.NewDB(sqlDB, sqlitedialect.New())
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating table for %T: %w", model, err)
		}
	}
	return db, nil
}
