package handler

import (
	"net/http"

	"github.com/forgo/todos/api/internal/model"
	"github.com/forgo/todos/api/internal/service"
)

// TodoHandler handles todo endpoints
type TodoHandler struct {
	todoService *service.TodoService
}

// NewTodoHandler creates a new todo handler
func NewTodoHandler(todoService *service.TodoService) *TodoHandler {
	return &TodoHandler{
		todoService: todoService,
	}
}

// RegisterRoutes mounts the todo routes on mux
func (h *TodoHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /todos", h.Create)
	mux.HandleFunc("GET /todos", h.List)
	mux.HandleFunc("GET /todos/{id}", h.Get)
	mux.HandleFunc("PATCH /todos/{id}", h.Update)
	mux.HandleFunc("DELETE /todos/{id}", h.Delete)
}

// Create handles POST /todos - create a todo
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := ReadBody(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	req, err := model.DecodeCreateTodo(body)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	todo, err := h.todoService.Create(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	WriteJSON(w, http.StatusCreated, todo)
}

// List handles GET /todos - list todos matching the query filter
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter, err := model.NewTodoFilter(model.FilterParams{
		ID:         q.Get("id"),
		Title:      q.Get("title"),
		AssignedTo: q.Get("assignedTo"),
		Limit:      q.Get("limit"),
		Offset:     q.Get("offset"),
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	todos, err := h.todoService.List(r.Context(), filter)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, todos)
}

// Get handles GET /todos/{id} - get one todo
func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := model.ParseTodoID(r.PathValue("id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	todo, err := h.todoService.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, todo)
}

// Update handles PATCH /todos/{id} - partially update a todo
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := model.ParseTodoID(r.PathValue("id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	body, err := ReadBody(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	req, err := model.DecodeUpdateTodo(body)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	todo, err := h.todoService.Update(r.Context(), id, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, todo)
}

// Delete handles DELETE /todos/{id} - delete a todo
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := model.ParseTodoID(r.PathValue("id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.todoService.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}

	WriteNoContent(w)
}

func (h *TodoHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	WriteError(w, MapServiceError(r.Context(), err))
}
