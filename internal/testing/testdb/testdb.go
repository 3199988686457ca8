// Package testdb provides test database utilities.
//
// New opens a private in-memory SQLite database, so every test starts from
// an empty store and needs no external service. NewSurreal connects to a
// real SurrealDB instance in a unique namespace and skips the test unless
// TEST_SURREAL_HOST is set.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    tdb := testdb.New(t)
//
//	    // Use tdb.DB for database operations
//	    rows, err := tdb.DB.Query(tdb.Ctx(), "SELECT * FROM todos", nil)
//	}
package testdb

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/forgo/todos/api/internal/database"
)

// TestDB provides an isolated database environment for testing.
// Close is registered with t.Cleanup.
type TestDB struct {
	DB        database.Database
	Driver    string
	Namespace string
	t         *testing.T
}

var (
	// counterMu protects the namespace counter
	counterMu sync.Mutex
	counter   int64
)

// surrealTestConfig returns SurrealDB config from the environment. ok is
// false when TEST_SURREAL_HOST is not set.
func surrealTestConfig() (cfg database.Config, ok bool) {
	host := os.Getenv("TEST_SURREAL_HOST")
	if host == "" {
		return database.Config{}, false
	}

	port := os.Getenv("TEST_SURREAL_PORT")
	if port == "" {
		port = "8000"
	}

	user := os.Getenv("TEST_SURREAL_USER")
	if user == "" {
		user = "root"
	}

	password := os.Getenv("TEST_SURREAL_PASSWORD")
	if password == "" {
		password = "root"
	}

	return database.Config{
		Driver:   database.DriverSurrealDB,
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
	}, true
}

// uniqueNamespace generates a unique namespace for test isolation
func uniqueNamespace() string {
	counterMu.Lock()
	defer counterMu.Unlock()
	counter++
	return fmt.Sprintf("test_%d_%d", time.Now().UnixNano(), counter)
}

// New creates a private in-memory SQLite database
func New(t *testing.T) *TestDB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db := database.NewSQLiteDB(database.Config{
		Driver: database.DriverSQLite,
		Path:   database.MemoryPath,
	})
	if err := db.Connect(ctx); err != nil {
		t.Fatalf("testdb: failed to open sqlite: %v", err)
	}

	tdb := &TestDB{
		DB:     db,
		Driver: database.DriverSQLite,
		t:      t,
	}
	t.Cleanup(tdb.Close)
	return tdb
}

// NewSurreal creates an isolated SurrealDB namespace, or skips the test when
// no SurrealDB instance is configured.
func NewSurreal(t *testing.T) *TestDB {
	t.Helper()

	cfg, ok := surrealTestConfig()
	if !ok {
		t.Skip("testdb: TEST_SURREAL_HOST not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg.Namespace = uniqueNamespace()
	cfg.Database = "test"

	db := database.NewSurrealDB(cfg)
	if err := db.Connect(ctx); err != nil {
		t.Fatalf("testdb: failed to connect: %v", err)
	}

	tdb := &TestDB{
		DB:        db,
		Driver:    database.DriverSurrealDB,
		Namespace: cfg.Namespace,
		t:         t,
	}
	t.Cleanup(tdb.Close)
	return tdb
}

// Close releases the database. A SurrealDB namespace is removed first.
func (tdb *TestDB) Close() {
	if tdb.DB == nil {
		return
	}

	if tdb.Driver == database.DriverSurrealDB && tdb.Namespace != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		query := fmt.Sprintf("REMOVE NAMESPACE %s", tdb.Namespace)
		_, _ = tdb.DB.Execute(ctx, query, nil) // Ignore errors on cleanup
	}

	_ = tdb.DB.Close()
	tdb.DB = nil
}

// Ctx returns a context with a reasonable timeout for test operations.
func (tdb *TestDB) Ctx() context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	tdb.t.Cleanup(cancel)
	return ctx
}

// MustExec executes a statement and fails the test on error.
func (tdb *TestDB) MustExec(query string, vars map[string]interface{}) database.Result {
	tdb.t.Helper()
	result, err := tdb.DB.Execute(tdb.Ctx(), query, vars)
	if err != nil {
		tdb.t.Fatalf("testdb: exec failed: %v\nQuery: %s", err, query)
	}
	return result
}

// MustQuery executes a query and returns its rows, failing the test on error.
func (tdb *TestDB) MustQuery(query string, vars map[string]interface{}) []database.Row {
	tdb.t.Helper()
	rows, err := tdb.DB.Query(tdb.Ctx(), query, vars)
	if err != nil {
		tdb.t.Fatalf("testdb: query failed: %v\nQuery: %s", err, query)
	}
	return rows
}
