// Package model defines domain entities and data structures for the todos API.
//
// The model package contains the Todo entity, its stored row form, request
// types with their validation rules, the query filter and the error types
// shared by every layer.
//
// # Domain Entities
//
//   - Todo: id, title, assignedTo, done
//   - TodoRow: the stored form, done kept as 0 or 1
//   - TodoCandidate: a todo that has not been stored yet
//
// # Validation
//
// Request bodies use the {"todo": {...}} envelope. DecodeCreateTodo and
// DecodeUpdateTodo check the envelope shape against a JSON schema, then apply
// the content rules and report the first failure only:
//
//	req, err := model.DecodeCreateTodo(body)
//	if model.KindOf(err) == model.KindValidation { ... }
//
// # Error Types
//
// Error carries an ErrorKind discriminant (validation, invalid input,
// invalid filter, not found, internal). ProblemDetails in errors.go is the
// RFC 9457 wire form the handler layer writes.
package model
