package model

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Todo is a task with a title, an assignee and a completion flag
type Todo struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	AssignedTo string `json:"assignedTo"`
	Done       bool   `json:"done"`
}

// TodoRow is the stored form of a Todo; done is kept as 0 or 1
type TodoRow struct {
	ID         int64
	Title      string
	AssignedTo string
	Done       int
}

// NewTodoRow converts a Todo to its stored form
func NewTodoRow(t Todo) TodoRow {
	done := 0
	if t.Done {
		done = 1
	}
	return TodoRow{
		ID:         t.ID,
		Title:      t.Title,
		AssignedTo: t.AssignedTo,
		Done:       done,
	}
}

// Todo converts a stored row back to the domain form
func (r TodoRow) Todo() Todo {
	return Todo{
		ID:         r.ID,
		Title:      r.Title,
		AssignedTo: r.AssignedTo,
		Done:       r.Done != 0,
	}
}

// TodoCandidate is a todo that has not been stored yet
type TodoCandidate struct {
	Title      string `json:"title"`
	AssignedTo string `json:"assignedTo"`
}

// TodoInsertResult is the outcome of one candidate in a batch insert.
// Exactly one of ID (non-zero) and Err is set.
type TodoInsertResult struct {
	Candidate TodoCandidate
	ID        int64
	Err       error
}

// Todo constraints
const (
	MaxTodoTextLength = 100
)

// todoTextPattern rejects markup and quoting characters: < > / \ ' -
var todoTextPattern = regexp.MustCompile(`^[^<>/\\'-]+$`)

// Validation messages
const (
	MsgInvalidID           = "The ID provided is invalid"
	MsgInvalidBody         = "The request body is not valid JSON"
	MsgBodyTooLarge        = "The request body is too large"
	MsgTodoMissing         = "The Todo sent is invalid"
	MsgTitleRequired       = "Todo title text is required"
	MsgTitleInvalid        = "Todo title contain invalid characters"
	MsgTitleTooLong        = "Todo title is too long"
	MsgAssignedToRequired  = "An assigned persons name is required"
	MsgAssignedToInvalid   = "Assigned persons name contain invalid characters"
	MsgAssignedToTooLong   = "Assigned persons name is too long"
	MsgDoneInvalid         = "Todo must be checked correctly"
	MsgTodoNotFound        = "No Todo was found for the provided id"
	MsgInvalidTodoProvided = "Error: the Todo provided is invalid"
)

// ErrTodoNotFound is returned when no todo has the requested id
var ErrTodoNotFound = NewNotFoundError(MsgTodoNotFound)

type textRule struct {
	field    string
	required string
	invalid  string
	tooLong  string
}

var (
	titleRule = textRule{
		field:    "title",
		required: MsgTitleRequired,
		invalid:  MsgTitleInvalid,
		tooLong:  MsgTitleTooLong,
	}
	assignedToRule = textRule{
		field:    "assignedTo",
		required: MsgAssignedToRequired,
		invalid:  MsgAssignedToInvalid,
		tooLong:  MsgAssignedToTooLong,
	}
)

// check trims value and applies the rule; the trimmed value is returned
func (r textRule) check(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", NewValidationError(r.field, r.required)
	}
	if !todoTextPattern.MatchString(value) {
		return "", NewValidationError(r.field, r.invalid)
	}
	if utf8.RuneCountInString(value) > MaxTodoTextLength {
		return "", NewValidationError(r.field, r.tooLong)
	}
	return value, nil
}

// CreateTodoRequest represents a request to create a todo
type CreateTodoRequest struct {
	Title      *string `json:"title,omitempty"`
	AssignedTo *string `json:"assignedTo,omitempty"`
}

// Validate checks title then assignedTo and returns the first failure.
// On success the request fields are replaced with their trimmed values.
func (r *CreateTodoRequest) Validate() error {
	if r.Title == nil {
		return NewValidationError(titleRule.field, titleRule.required)
	}
	title, err := titleRule.check(*r.Title)
	if err != nil {
		return err
	}

	if r.AssignedTo == nil {
		return NewValidationError(assignedToRule.field, assignedToRule.required)
	}
	assignedTo, err := assignedToRule.check(*r.AssignedTo)
	if err != nil {
		return err
	}

	r.Title = &title
	r.AssignedTo = &assignedTo
	return nil
}

// Candidate returns the storable form of a validated request
func (r *CreateTodoRequest) Candidate() TodoCandidate {
	var c TodoCandidate
	if r.Title != nil {
		c.Title = *r.Title
	}
	if r.AssignedTo != nil {
		c.AssignedTo = *r.AssignedTo
	}
	return c
}

// UpdateTodoRequest represents a partial update; nil fields are untouched
type UpdateTodoRequest struct {
	Title      *string `json:"title,omitempty"`
	AssignedTo *string `json:"assignedTo,omitempty"`
	Done       *bool   `json:"done,omitempty"`
}

// Validate checks only the supplied fields, in order title, assignedTo.
// Supplied text fields are replaced with their trimmed values.
func (r *UpdateTodoRequest) Validate() error {
	if r.Title != nil {
		title, err := titleRule.check(*r.Title)
		if err != nil {
			return err
		}
		r.Title = &title
	}
	if r.AssignedTo != nil {
		assignedTo, err := assignedToRule.check(*r.AssignedTo)
		if err != nil {
			return err
		}
		r.AssignedTo = &assignedTo
	}
	return nil
}

// IsEmpty reports whether the update changes nothing
func (r *UpdateTodoRequest) IsEmpty() bool {
	return r.Title == nil && r.AssignedTo == nil && r.Done == nil
}

// ApplyTo merges the supplied fields onto t; the id is never changed
func (r *UpdateTodoRequest) ApplyTo(t Todo) Todo {
	if r.Title != nil {
		t.Title = *r.Title
	}
	if r.AssignedTo != nil {
		t.AssignedTo = *r.AssignedTo
	}
	if r.Done != nil {
		t.Done = *r.Done
	}
	return t
}

// ValidateTodo checks a complete todo, as produced by a merge
func ValidateTodo(t Todo) error {
	if _, err := titleRule.check(t.Title); err != nil {
		return err
	}
	if _, err := assignedToRule.check(t.AssignedTo); err != nil {
		return err
	}
	return nil
}

// ParseTodoID parses a path id parameter
func ParseTodoID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, NewInvalidInputError("id", MsgInvalidID)
	}
	return id, nil
}
