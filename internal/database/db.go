// Package database provides Lute database connection management.
package database

import (
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const (
	driverName = "sqlite3"

	// Pings are retried only on transient lock errors from concurrent
	// writers (Lute itself holding the file).
	pingAttempts = 3
	pingDelay    = 100 * time.Millisecond
)

// Open opens the SQLite store at path read-only and verifies connectivity.
// The pool is clamped to a single connection: the extractor's contract is
// one scoped connection per call.
func Open(path string) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=ro", path)
	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database connection: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := retry.Do(
		db.Ping,
		retry.Attempts(pingAttempts),
		retry.Delay(pingDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isLockedError),
	); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

// isLockedError reports whether err is a transient SQLite lock error.
func isLockedError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked")
}
