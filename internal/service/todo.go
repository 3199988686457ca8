package service

import (
	"context"

	"github.com/forgo/todos/api/internal/model"
)

// TodoRepository defines the interface for todo storage
type TodoRepository interface {
	Insert(ctx context.Context, c model.TodoCandidate) (int64, error)
	InsertMany(ctx context.Context, candidates []model.TodoCandidate) []model.TodoInsertResult
	Query(ctx context.Context, filter model.TodoFilter) ([]model.Todo, error)
	Update(ctx context.Context, todo model.Todo) error
	Delete(ctx context.Context, id int64) error
}

// TodoService handles todo business logic
type TodoService struct {
	todoRepo TodoRepository
}

// TodoServiceConfig holds configuration for the todo service
type TodoServiceConfig struct {
	TodoRepo TodoRepository
}

// NewTodoService creates a new todo service
func NewTodoService(cfg TodoServiceConfig) *TodoService {
	return &TodoService{
		todoRepo: cfg.TodoRepo,
	}
}

// Create stores a new todo. The stored todo always starts with done = false.
func (s *TodoService) Create(ctx context.Context, req *model.CreateTodoRequest) (*model.Todo, error) {
	if req == nil {
		return nil, ErrTodoRequired
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c := req.Candidate()
	id, err := s.todoRepo.Insert(ctx, c)
	if err != nil {
		return nil, err
	}

	return &model.Todo{
		ID:         id,
		Title:      c.Title,
		AssignedTo: c.AssignedTo,
		Done:       false,
	}, nil
}

// Import creates many todos. Each candidate is validated with the same rules
// as Create; results follow input order and failures do not stop the batch.
func (s *TodoService) Import(ctx context.Context, candidates []model.TodoCandidate) []model.TodoInsertResult {
	results := make([]model.TodoInsertResult, len(candidates))
	valid := make([]model.TodoCandidate, 0, len(candidates))
	slots := make([]int, 0, len(candidates))

	for i, c := range candidates {
		title, assignedTo := c.Title, c.AssignedTo
		req := &model.CreateTodoRequest{Title: &title, AssignedTo: &assignedTo}
		if err := req.Validate(); err != nil {
			results[i] = model.TodoInsertResult{Candidate: c, Err: err}
			continue
		}
		valid = append(valid, req.Candidate())
		slots = append(slots, i)
	}

	for j, r := range s.todoRepo.InsertMany(ctx, valid) {
		results[slots[j]] = r
	}
	return results
}

// List returns the todos matching filter
func (s *TodoService) List(ctx context.Context, filter model.TodoFilter) ([]model.Todo, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return s.todoRepo.Query(ctx, filter)
}

// Get returns one todo or ErrTodoNotFound
func (s *TodoService) Get(ctx context.Context, id int64) (*model.Todo, error) {
	todos, err := s.todoRepo.Query(ctx, model.ByID(id))
	if err != nil {
		return nil, err
	}
	if len(todos) == 0 {
		return nil, ErrTodoNotFound
	}
	return &todos[0], nil
}

// Update applies a partial update and returns the merged todo. Only the
// supplied fields are validated up front; the merged todo is validated again
// before it is written.
func (s *TodoService) Update(ctx context.Context, id int64, req *model.UpdateTodoRequest) (*model.Todo, error) {
	if req == nil {
		return nil, ErrTodoRequired
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.IsEmpty() {
		return current, nil
	}

	merged := req.ApplyTo(*current)
	if err := model.ValidateTodo(merged); err != nil {
		return nil, err
	}

	if err := s.todoRepo.Update(ctx, merged); err != nil {
		return nil, err
	}
	return &merged, nil
}

// Delete removes a todo or returns ErrTodoNotFound
func (s *TodoService) Delete(ctx context.Context, id int64) error {
	return s.todoRepo.Delete(ctx, id)
}
