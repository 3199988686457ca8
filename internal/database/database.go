// Package database provides the database abstraction layer for the todos API.
//
// This package defines the Database interface that hides the concrete store
// (SQLite by default, SurrealDB as an alternative), so repositories only deal
// with query text, named variables and plain rows.
//
// # Interface Design
//
// The Database interface provides three query methods:
//   - Query: Returns every row produced by the query
//   - QueryOne: Returns the first row, or ErrNotFound
//   - Execute: Runs a mutation and reports affected rows and the inserted id
//
// Variables are always bound by name. Both drivers accept the $name
// placeholder syntax, so a statement never carries user data in its text.
//
// # Error Handling
//
// Standard errors are defined for common failure cases:
//   - ErrNotFound: Record does not exist
//   - ErrConnection: Database connection issues
//   - ErrQuery: Query execution failures
//
// Use errors.Is() to check error types:
//
//	if errors.Is(err, database.ErrNotFound) {
//	    // Handle missing record
//	}
//
// # Usage Example
//
//	db, err := database.Open(cfg)
//	db.Connect(ctx)
//	defer db.Close()
//
//	row, err := db.QueryOne(ctx, "SELECT * FROM todos WHERE id = $id", map[string]interface{}{"id": id})
package database

import (
	"context"
	"errors"
	"fmt"
)

// Standard errors for database operations.
// Use errors.Is() to check these error types in calling code.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConnection indicates a failure to connect to or communicate with the database.
	ErrConnection = errors.New("database connection error")

	// ErrQuery indicates a query execution failure (syntax error, constraint, etc.).
	ErrQuery = errors.New("query error")

	// ErrUnsupportedDriver indicates an unknown DB_DRIVER value.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Supported drivers
const (
	DriverSQLite    = "sqlite"
	DriverSurrealDB = "surrealdb"
)

// Row is a single record keyed by column name
type Row map[string]interface{}

// Result describes the outcome of a mutation
type Result struct {
	LastInsertID int64
	RowsAffected int64
}

// Database defines the interface for database operations
type Database interface {
	// Connection management
	Connect(ctx context.Context) error
	Close() error
	Ping(ctx context.Context) error

	// Query executes a query and returns all rows
	Query(ctx context.Context, query string, vars map[string]interface{}) ([]Row, error)

	// QueryOne executes a query and returns the first row
	QueryOne(ctx context.Context, query string, vars map[string]interface{}) (Row, error)

	// Execute runs a mutation
	Execute(ctx context.Context, query string, vars map[string]interface{}) (Result, error)
}

// Config holds database configuration
type Config struct {
	Driver string

	// SQLite
	Path string

	// SurrealDB
	Host      string
	Port      string
	User      string
	Password  string
	Namespace string
	Database  string
}

// Open returns an unconnected Database for the configured driver
func Open(cfg Config) (Database, error) {
	switch cfg.Driver {
	case DriverSQLite, "":
		return NewSQLiteDB(cfg), nil
	case DriverSurrealDB:
		return NewSurrealDB(cfg), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}
