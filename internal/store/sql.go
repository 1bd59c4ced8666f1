package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"investwise-api/internal/models"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
	kind       TEXT NOT NULL,
	user_id    TEXT NOT NULL,
	payload    TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL,
	PRIMARY KEY (kind, user_id)
)`

// SQLBackend stores records in a single table on SQLite or PostgreSQL.
type SQLBackend struct {
	db     *sql.DB
	driver string
}

// NewSQLiteBackend opens (or creates) the database file at path.
func NewSQLiteBackend(path string) (*SQLBackend, error) {
	db, err := sql.Open(DriverSQLite, path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	return newSQLBackend(db, DriverSQLite)
}

// NewPostgresBackend connects using a lib/pq connection string.
func NewPostgresBackend(dsn string) (*SQLBackend, error) {
	db, err := sql.Open(DriverPostgres, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres database: %w", err)
	}
	return newSQLBackend(db, DriverPostgres)
}

func newSQLBackend(db *sql.DB, driver string) (*SQLBackend, error) {
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create records table: %w", err)
	}
	return &SQLBackend{db: db, driver: driver}, nil
}

func (s *SQLBackend) Put(ctx context.Context, kind Kind, userID string, payload []byte) error {
	_, err := s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO records (kind, user_id, payload, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT (kind, user_id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`),
		string(kind), userID, string(payload), time.Now().UTC())
	return err
}

func (s *SQLBackend) Get(ctx context.Context, kind Kind, userID string) ([]byte, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, s.rebind(`SELECT payload FROM records WHERE kind = ? AND user_id = ?`),
		string(kind), userID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(payload), nil
}

func (s *SQLBackend) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLBackend) Close() error {
	return s.db.Close()
}

// rebind rewrites ? placeholders to $n for postgres.
func (s *SQLBackend) rebind(query string) string {
	if s.driver != DriverPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
