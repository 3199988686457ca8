// Package service implements the business logic layer for the todos API.
//
// The service package holds the validation and orchestration that sit
// between HTTP handlers and storage.
//
// # Service Pattern
//
//   - Constructor function (NewTodoService) accepts a config struct with repository dependencies
//   - Methods implement business operations with proper validation
//   - Context is passed through for cancellation and request-scoped values
//
// # Repository Interfaces
//
// TodoService declares its own TodoRepository interface, so tests can swap
// in a mock and the concrete storage engine stays a wiring decision in main.
//
// # Error Handling
//
// Errors are *model.Error values with an ErrorKind. Shared values live in
// errors.go:
//
//	var (
//	    ErrTodoNotFound = model.ErrTodoNotFound
//	    ErrTodoRequired = model.NewValidationError("todo", model.MsgTodoMissing)
//	)
//
// # Example Usage
//
//	svc := NewTodoService(TodoServiceConfig{
//	    TodoRepo: todoRepository,
//	})
//	todo, err := svc.Update(ctx, id, req)
//	if model.KindOf(err) == model.KindNotFound {
//	    // 404
//	}
package service
