package store

import (
	"context"
	"fmt"
)

// Options selects and configures a backend.
type Options struct {
	Driver    string // memory, firestore, sqlite or postgres
	DSN       string // file path for sqlite, connection string for postgres
	ProjectID string // Firestore project
}

// Open builds the backend named by opts.Driver.
func Open(ctx context.Context, opts Options) (Backend, error) {
	switch opts.Driver {
	case "", "memory":
		return NewMemoryBackend(), nil
	case "firestore":
		if opts.ProjectID == "" {
			return nil, fmt.Errorf("firestore driver requires a project id")
		}
		return NewFirestoreBackend(ctx, opts.ProjectID)
	case "sqlite", DriverSQLite:
		if opts.DSN == "" {
			return nil, fmt.Errorf("sqlite driver requires a database path")
		}
		return NewSQLiteBackend(opts.DSN)
	case DriverPostgres:
		if opts.DSN == "" {
			return nil, fmt.Errorf("postgres driver requires a connection string")
		}
		return NewPostgresBackend(opts.DSN)
	default:
		return nil, fmt.Errorf("unknown store driver %q", opts.Driver)
	}
}
