package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/forgo/todos/api/internal/database"
	"github.com/forgo/todos/api/internal/model"
)

// TodoRepository handles todo data access
type TodoRepository struct {
	db      database.Database
	dialect Dialect
}

// NewTodoRepository creates a new todo repository
func NewTodoRepository(db database.Database, dialect Dialect) *TodoRepository {
	return &TodoRepository{db: db, dialect: dialect}
}

// Initialize creates the todos table if it does not exist. Safe to call on
// every start.
func (r *TodoRepository) Initialize(ctx context.Context) error {
	for _, stmt := range r.dialect.Schema() {
		if _, err := r.db.Execute(ctx, stmt.Query, stmt.Vars); err != nil {
			return fmt.Errorf("initialize %s schema: %w", r.dialect.Name(), err)
		}
	}
	return nil
}

// Insert stores a candidate with done = 0 and returns its new id. Blank
// fields are rejected before any statement runs.
func (r *TodoRepository) Insert(ctx context.Context, c model.TodoCandidate) (int64, error) {
	if strings.TrimSpace(c.Title) == "" || strings.TrimSpace(c.AssignedTo) == "" {
		return 0, model.NewValidationError("todo", model.MsgInvalidTodoProvided)
	}

	stmt := r.dialect.Insert(c)
	result, err := r.db.Execute(ctx, stmt.Query, stmt.Vars)
	if err != nil {
		return 0, err
	}
	if result.LastInsertID == 0 {
		return 0, fmt.Errorf("%w: insert returned no id", database.ErrQuery)
	}
	return result.LastInsertID, nil
}

// InsertMany inserts each candidate independently. Results follow input
// order; one failure does not stop the others.
func (r *TodoRepository) InsertMany(ctx context.Context, candidates []model.TodoCandidate) []model.TodoInsertResult {
	results := make([]model.TodoInsertResult, 0, len(candidates))
	for _, c := range candidates {
		id, err := r.Insert(ctx, c)
		results = append(results, model.TodoInsertResult{Candidate: c, ID: id, Err: err})
	}
	return results
}

// Query returns the todos matching filter ordered by id. The result is
// never nil.
func (r *TodoRepository) Query(ctx context.Context, filter model.TodoFilter) ([]model.Todo, error) {
	stmt, err := r.dialect.Select(filter)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, stmt.Query, stmt.Vars)
	if err != nil {
		return nil, err
	}

	todos := make([]model.Todo, 0, len(rows))
	for _, row := range rows {
		parsed, err := parseTodoRow(row)
		if err != nil {
			return nil, err
		}
		todos = append(todos, parsed.Todo())
	}
	return todos, nil
}

// Update overwrites title, assignedTo and done of an existing todo
func (r *TodoRepository) Update(ctx context.Context, todo model.Todo) error {
	stmt := r.dialect.Update(model.NewTodoRow(todo))
	result, err := r.db.Execute(ctx, stmt.Query, stmt.Vars)
	if err != nil {
		return err
	}
	if result.RowsAffected == 0 {
		return model.ErrTodoNotFound
	}
	return nil
}

// Delete removes a todo by id
func (r *TodoRepository) Delete(ctx context.Context, id int64) error {
	stmt := r.dialect.Delete(id)
	result, err := r.db.Execute(ctx, stmt.Query, stmt.Vars)
	if err != nil {
		return err
	}
	if result.RowsAffected == 0 {
		return model.ErrTodoNotFound
	}
	return nil
}

// Ping checks the underlying database
func (r *TodoRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
