// Package fixtures provides test data factories.
//
// Each factory method creates todos with sensible defaults while allowing
// customization via option functions. Factories insert through the
// repository and return fully populated models.
//
// Usage:
//
//	f := fixtures.New(repo)
//	todo := f.CreateTodo(t)
//	list := f.SeedShoppingList(t)
package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/forgo/todos/api/internal/model"
	"github.com/forgo/todos/api/internal/repository"
)

// Factory creates test todos in the database
type Factory struct {
	repo *repository.TodoRepository
}

// New creates a new fixture factory
func New(repo *repository.TodoRepository) *Factory {
	return &Factory{repo: repo}
}

// randomID generates a random hex ID
func randomID() string {
	b := make([]byte, 6)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// TodoOpts customizes todo creation
type TodoOpts struct {
	Title      string
	AssignedTo string
	Done       bool
}

// WithTitle sets the title
func WithTitle(title string) func(*TodoOpts) {
	return func(o *TodoOpts) { o.Title = title }
}

// WithAssignedTo sets the assignee
func WithAssignedTo(name string) func(*TodoOpts) {
	return func(o *TodoOpts) { o.AssignedTo = name }
}

// WithDone marks the todo as done after it is inserted
func WithDone() func(*TodoOpts) {
	return func(o *TodoOpts) { o.Done = true }
}

// CreateTodo creates a todo with optional customizations
func (f *Factory) CreateTodo(t *testing.T, opts ...func(*TodoOpts)) model.Todo {
	t.Helper()

	o := &TodoOpts{
		Title:      fmt.Sprintf("Todo %s", randomID()),
		AssignedTo: fmt.Sprintf("Person %s", randomID()),
	}
	for _, fn := range opts {
		fn(o)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := f.repo.Insert(ctx, model.TodoCandidate{Title: o.Title, AssignedTo: o.AssignedTo})
	if err != nil {
		t.Fatalf("fixtures: failed to create todo: %v", err)
	}

	todo := model.Todo{ID: id, Title: o.Title, AssignedTo: o.AssignedTo}
	if o.Done {
		todo.Done = true
		if err := f.repo.Update(ctx, todo); err != nil {
			t.Fatalf("fixtures: failed to mark todo done: %v", err)
		}
	}
	return todo
}

// SeedShoppingList inserts four todos in a fixed order:
//
//	1 Buy milk       / Alice
//	2 Buy some eggs  / Bob
//	3 Call mom       / Alice
//	4 Buy flour      / Carol
func (f *Factory) SeedShoppingList(t *testing.T) []model.Todo {
	t.Helper()

	seed := []struct{ title, assignedTo string }{
		{"Buy milk", "Alice"},
		{"Buy some eggs", "Bob"},
		{"Call mom", "Alice"},
		{"Buy flour", "Carol"},
	}

	todos := make([]model.Todo, 0, len(seed))
	for _, s := range seed {
		todos = append(todos, f.CreateTodo(t, WithTitle(s.title), WithAssignedTo(s.assignedTo)))
	}
	return todos
}
