package service

import "github.com/forgo/todos/api/internal/model"

// Centralized service layer errors.
// Every error carries a model.ErrorKind so handlers can map it to a status
// with model.KindOf instead of matching individual values.

// ===== Todo Errors =====
var (
	ErrTodoNotFound = model.ErrTodoNotFound
	ErrTodoRequired = model.NewValidationError("todo", model.MsgTodoMissing)
)
