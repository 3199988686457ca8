package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

// SQLiteDB implements the Database interface for SQLite
type SQLiteDB struct {
	db     *sql.DB
	config Config
}

// NewSQLiteDB creates a new SQLite instance
func NewSQLiteDB(cfg Config) *SQLiteDB {
	return &SQLiteDB{
		config: cfg,
	}
}

// Connect opens the database file (or an in-memory database)
func (s *SQLiteDB) Connect(ctx context.Context) error {
	db, err := sql.Open("sqlite3", sqliteDSN(s.config.Path))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	// One connection: every statement sees the same database, which also
	// keeps :memory: databases shared across calls.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	s.db = db
	return nil
}

// sqliteDSN appends connection pragmas to the configured path
func sqliteDSN(path string) string {
	if path == "" {
		path = MemoryPath
	}

	dsn := path
	if !strings.Contains(dsn, "?") {
		dsn += "?"
	} else {
		dsn += "&"
	}
	dsn += "_busy_timeout=5000&_foreign_keys=on"
	if path != MemoryPath {
		dsn += "&_journal_mode=WAL&_synchronous=NORMAL"
	}
	return dsn
}

// Close closes the database connection
func (s *SQLiteDB) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Ping checks the database connection
func (s *SQLiteDB) Ping(ctx context.Context) error {
	if s.db == nil {
		return ErrConnection
	}
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}

// Query executes a query and returns all rows
func (s *SQLiteDB) Query(ctx context.Context, query string, vars map[string]interface{}) ([]Row, error) {
	if s.db == nil {
		return nil, ErrConnection
	}

	rows, err := s.db.QueryContext(ctx, query, namedArgs(vars)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}
	defer func() { _ = rows.Close() }()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}

	output := make([]Row, 0)
	for rows.Next() {
		values := make([]interface{}, len(columns))
		ptrs := make([]interface{}, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrQuery, err)
		}

		row := make(Row, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
				continue
			}
			row[col] = values[i]
		}
		output = append(output, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}

	return output, nil
}

// QueryOne executes a query and returns the first row
func (s *SQLiteDB) QueryOne(ctx context.Context, query string, vars map[string]interface{}) (Row, error) {
	rows, err := s.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows[0], nil
}

// Execute runs a mutation and reports its effect
func (s *SQLiteDB) Execute(ctx context.Context, query string, vars map[string]interface{}) (Result, error) {
	if s.db == nil {
		return Result{}, ErrConnection
	}

	res, err := s.db.ExecContext(ctx, query, namedArgs(vars)...)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrQuery, err)
	}

	var out Result
	if id, err := res.LastInsertId(); err == nil {
		out.LastInsertID = id
	}
	if n, err := res.RowsAffected(); err == nil {
		out.RowsAffected = n
	}
	return out, nil
}

// namedArgs binds every variable by name ($name in the statement)
func namedArgs(vars map[string]interface{}) []interface{} {
	if len(vars) == 0 {
		return nil
	}
	args := make([]interface{}, 0, len(vars))
	for name, value := range vars {
		args = append(args, sql.Named(name, value))
	}
	return args
}
