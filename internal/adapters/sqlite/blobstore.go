package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/csg33k/employee-register/internal/domain"
)

//go:embed schema.sql
var schema string

// BlobStore keeps string blobs in a single SQLite table, one row per key.
type BlobStore struct {
	db *sql.DB
}

// New opens the SQLite database and creates the blobs table if needed. dsn
// is a file path or a file: URI and may already carry query parameters.
func New(dsn string) (*BlobStore, error) {
	db, err := sql.Open("sqlite3", withBusyTimeout(dsn))
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &BlobStore{db: db}, nil
}

func (s *BlobStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM blobs WHERE key=?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Put upserts every entry inside one transaction.
func (s *BlobStore) Put(ctx context.Context, entries ...domain.BlobEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()
	for _, e := range entries {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO blobs (key, value, updated_at) VALUES (?,?,?)
			ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at`,
			e.Key, e.Value, now,
		); err != nil {
			return fmt.Errorf("put %q: %w", e.Key, err)
		}
	}
	return tx.Commit()
}

func (s *BlobStore) Close() error {
	return s.db.Close()
}

func withBusyTimeout(dsn string) string {
	if strings.Contains(dsn, "_busy_timeout=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_busy_timeout=5000"
}
