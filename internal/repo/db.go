// Package repo implements the data persistence layer for domain entities,
// backed by GORM over the pure-Go SQLite driver. This file contains database
// bootstrapping helpers and schema migrations.
//
// The default deployment uses an in-memory database: all state is
// process-lifetime, created at startup (seed data) and lost at exit.
package repo

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/synthhearts/synthhearts/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for consistency across the service
// layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// OpenSQLite opens a SQLite database and applies PRAGMAs and query tracing.
// A path of ":memory:" (or any "file:...mode=memory" DSN) opens a
// process-local in-memory store.
func OpenSQLite(path string) (*gorm.DB, error) {
	inMemory := isMemoryDSN(path)

	// Fail early if parent directory does not exist (instead of sqlite
	// "out of memory (14)" later).
	if !inMemory {
		if dir := filepath.Dir(path); dir != "." {
			if _, err := os.Stat(dir); err != nil {
				return nil, err
			}
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
		return nil, err
	}

	db.Exec("PRAGMA foreign_keys=ON;")
	if inMemory {
		// A plain ":memory:" DSN yields a distinct database per connection,
		// so the pool must stay at a single connection.
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.SetMaxOpenConns(1)
		}
		return db, nil
	}

	db.Exec("PRAGMA journal_mode=WAL;")
	db.Exec("PRAGMA synchronous=NORMAL;")
	db.Exec("PRAGMA busy_timeout=5000;")

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	return db, nil
}

// AutoMigrate creates or updates the schema for all domain models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Profile{},
		&domain.Swipe{},
		&domain.Match{},
		&domain.Message{},
	)
}

func isMemoryDSN(path string) bool {
	return path == ":memory:" || strings.Contains(path, "mode=memory")
}
