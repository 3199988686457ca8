package model

import (
	"strconv"
	"strings"
)

// TodoFilter narrows which todos a query returns. Every field is optional.
//
// Combination rules:
//   - ID is exclusive: when set, every other field is ignored
//   - Title and AssignedTo are substring matches, ANDed together
//   - Offset is only valid together with Limit
type TodoFilter struct {
	ID         *int64
	Title      *string
	AssignedTo *string
	Limit      *int
	Offset     *int
}

// FilterParams holds raw query parameters; empty strings mean "not set"
type FilterParams struct {
	ID         string
	Title      string
	AssignedTo string
	Limit      string
	Offset     string
}

// Filter messages
const (
	MsgFilterIDInvalid      = "The id filter must be a number"
	MsgFilterLimitInvalid   = "The limit filter must be a non-negative number"
	MsgFilterOffsetInvalid  = "The offset filter must be a non-negative number"
	MsgFilterOffsetNoLimit  = "The offset filter requires a limit"
	MsgFilterNegativeBounds = "limit and offset must not be negative"
)

// NewTodoFilter parses raw parameters and enforces the combination rules
func NewTodoFilter(p FilterParams) (TodoFilter, error) {
	var f TodoFilter

	if raw := strings.TrimSpace(p.ID); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return TodoFilter{}, NewInvalidInputError("id", MsgFilterIDInvalid)
		}
		f.ID = &id
	}
	if p.Title != "" {
		title := p.Title
		f.Title = &title
	}
	if p.AssignedTo != "" {
		assignedTo := p.AssignedTo
		f.AssignedTo = &assignedTo
	}
	if raw := strings.TrimSpace(p.Limit); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return TodoFilter{}, NewInvalidInputError("limit", MsgFilterLimitInvalid)
		}
		f.Limit = &limit
	}
	if raw := strings.TrimSpace(p.Offset); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return TodoFilter{}, NewInvalidInputError("offset", MsgFilterOffsetInvalid)
		}
		f.Offset = &offset
	}

	if err := f.Validate(); err != nil {
		return TodoFilter{}, err
	}
	return f, nil
}

// Validate enforces the combination rules. An id lookup ignores the other
// fields, so it is valid whatever they hold.
func (f TodoFilter) Validate() error {
	if f.ID != nil {
		return nil
	}
	if f.Offset != nil && f.Limit == nil {
		return NewInvalidFilterError(MsgFilterOffsetNoLimit)
	}
	if (f.Limit != nil && *f.Limit < 0) || (f.Offset != nil && *f.Offset < 0) {
		return NewInvalidFilterError(MsgFilterNegativeBounds)
	}
	return nil
}

// ByID returns a filter that selects exactly one todo
func ByID(id int64) TodoFilter {
	return TodoFilter{ID: &id}
}
