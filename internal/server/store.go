package server

import (
	"context"
	"fmt"

	"github.com/forgo/todos/api/internal/database"
	"github.com/forgo/todos/api/internal/repository"
)

// Store is a connected database with the todo schema in place
type Store struct {
	DB    database.Database
	Todos *repository.TodoRepository
}

// OpenStore connects the configured driver and creates the todos schema
func OpenStore(ctx context.Context, cfg database.Config) (*Store, error) {
	dialect, err := repository.DialectFor(cfg.Driver)
	if err != nil {
		return nil, err
	}

	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}
	if err := db.Connect(ctx); err != nil {
		return nil, err
	}

	todos := repository.NewTodoRepository(db, dialect)
	if err := todos.Initialize(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("prepare store: %w", err)
	}

	return &Store{DB: db, Todos: todos}, nil
}

// Close releases the database connection
func (s *Store) Close() error {
	return s.DB.Close()
}
