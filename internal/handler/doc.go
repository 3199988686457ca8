// Package handler provides HTTP request handlers for the todos API.
//
// # Handler Pattern
//
//   - Constructor function (NewXxxHandler) accepts its service or dependency
//   - Methods handle specific HTTP endpoints
//   - Response helpers from response.go standardize output format
//   - Errors are mapped to RFC 9457 Problem Details responses by MapServiceError
//
// # Routes
//
//	POST   /todos          201 created todo
//	GET    /todos          200 array, filtered by id, title, assignedTo, limit, offset
//	GET    /todos/{id}     200 todo
//	PATCH  /todos/{id}     200 merged todo
//	DELETE /todos/{id}     204
//	GET    /health         200, or 503 when the database is unreachable
//
// # Error Mapping
//
//	validation, invalid input, invalid filter → 400
//	not found                                 → 404
//	anything else                             → 500, cause logged, generic detail
//
// # Example Usage
//
//	h := handler.NewTodoHandler(todoService)
//	h.RegisterRoutes(mux)
package handler
