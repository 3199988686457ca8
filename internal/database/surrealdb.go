package database

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// SurrealDB implements the Database interface for SurrealDB
type SurrealDB struct {
	db     *surrealdb.DB
	config Config
}

// NewSurrealDB creates a new SurrealDB instance
func NewSurrealDB(cfg Config) *SurrealDB {
	return &SurrealDB{
		config: cfg,
	}
}

// Connect establishes a connection to SurrealDB
func (s *SurrealDB) Connect(ctx context.Context) error {
	endpoint := fmt.Sprintf("ws://%s:%s", s.config.Host, s.config.Port)

	db, err := surrealdb.FromEndpointURLString(ctx, endpoint)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	// Sign in as root user
	_, err = db.SignIn(ctx, &surrealdb.Auth{
		Username: s.config.User,
		Password: s.config.Password,
	})
	if err != nil {
		_ = db.Close(ctx)
		return fmt.Errorf("%w: signin failed: %v", ErrConnection, err)
	}

	// Use namespace and database
	if err := db.Use(ctx, s.config.Namespace, s.config.Database); err != nil {
		_ = db.Close(ctx)
		return fmt.Errorf("%w: use failed: %v", ErrConnection, err)
	}

	s.db = db
	return nil
}

// Close closes the database connection
func (s *SurrealDB) Close() error {
	if s.db != nil {
		return s.db.Close(context.Background())
	}
	return nil
}

// Ping checks the database connection
func (s *SurrealDB) Ping(ctx context.Context) error {
	if s.db == nil {
		return ErrConnection
	}
	_, err := s.db.Version(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}

// Query executes a query and returns the records of the last statement
// that produced a value. LET, BEGIN and COMMIT yield nothing, so a
// transaction block returns the records of its final mutation.
func (s *SurrealDB) Query(ctx context.Context, query string, vars map[string]interface{}) ([]Row, error) {
	if s.db == nil {
		return nil, ErrConnection
	}

	results, err := surrealdb.Query[interface{}](ctx, s.db, query, vars)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}
	if results == nil {
		return []Row{}, nil
	}

	var last interface{}
	for _, r := range *results {
		if r.Status != "OK" {
			if r.Error != nil {
				return nil, fmt.Errorf("%w: %s", ErrQuery, r.Error.Message)
			}
			return nil, ErrQuery
		}
		if r.Result != nil {
			last = r.Result
		}
	}

	return toRows(last), nil
}

// QueryOne executes a query and returns the first record
func (s *SurrealDB) QueryOne(ctx context.Context, query string, vars map[string]interface{}) (Row, error) {
	rows, err := s.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows[0], nil
}

// Execute runs a mutation. Mutations return the touched records, so the
// affected count is the record count and the insert id is the numeric key
// of the first record.
func (s *SurrealDB) Execute(ctx context.Context, query string, vars map[string]interface{}) (Result, error) {
	rows, err := s.Query(ctx, query, vars)
	if err != nil {
		return Result{}, err
	}

	out := Result{RowsAffected: int64(len(rows))}
	if len(rows) > 0 {
		if id, ok := RecordKey(rows[0]["id"]); ok {
			out.LastInsertID = id
		}
	}
	return out, nil
}

// toRows normalizes a statement result into rows
func toRows(result interface{}) []Row {
	switch v := result.(type) {
	case []interface{}:
		rows := make([]Row, 0, len(v))
		for _, item := range v {
			if row, ok := toRow(item); ok {
				rows = append(rows, row)
			}
		}
		return rows
	default:
		if row, ok := toRow(v); ok {
			return []Row{row}
		}
		return []Row{}
	}
}

func toRow(v interface{}) (Row, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return Row(m), true
	case map[interface{}]interface{}:
		row := make(Row, len(m))
		for k, val := range m {
			if key, ok := k.(string); ok {
				row[key] = val
			}
		}
		return row, true
	}
	return nil, false
}

// RecordKey extracts an integer key from a SurrealDB record id
// (todos:42) or from a plain number.
func RecordKey(id interface{}) (int64, bool) {
	switch v := id.(type) {
	case models.RecordID:
		return RecordKey(v.ID)
	case *models.RecordID:
		if v != nil {
			return RecordKey(v.ID)
		}
	case int64:
		return v, true
	case int:
		return int64(v), true
	case uint64:
		return int64(v), true
	case float64:
		return int64(v), true
	case string:
		if key, err := strconv.ParseInt(v, 10, 64); err == nil {
			return key, true
		}
		if i := strings.LastIndex(v, ":"); i > 0 {
			if key, err := strconv.ParseInt(v[i+1:], 10, 64); err == nil {
				return key, true
			}
		}
	}
	return 0, false
}
