package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/forgo/todos/api/internal/model"
)

func TestMapServiceError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   model.ErrorCode
		wantDetail string
	}{
		{
			name:       "validation",
			err:        model.NewValidationError("title", model.MsgTitleRequired),
			wantStatus: http.StatusBadRequest,
			wantCode:   model.ErrCodeValidation,
			wantDetail: model.MsgTitleRequired,
		},
		{
			name:       "invalid input",
			err:        model.NewInvalidInputError("id", model.MsgInvalidID),
			wantStatus: http.StatusBadRequest,
			wantCode:   model.ErrCodeInvalidInput,
			wantDetail: model.MsgInvalidID,
		},
		{
			name:       "invalid filter",
			err:        model.NewInvalidFilterError(model.MsgFilterOffsetNoLimit),
			wantStatus: http.StatusBadRequest,
			wantCode:   model.ErrCodeInvalidFilter,
			wantDetail: model.MsgFilterOffsetNoLimit,
		},
		{
			name:       "not found sentinel wrapped",
			err:        fmt.Errorf("update: %w", model.ErrTodoNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   model.ErrCodeNotFound,
			wantDetail: model.MsgTodoNotFound,
		},
		{
			name:       "internal hides cause",
			err:        model.NewInternalError("query todos", errors.New("disk I/O error")),
			wantStatus: http.StatusInternalServerError,
			wantCode:   model.ErrCodeInternal,
			wantDetail: "An unexpected error occurred",
		},
		{
			name:       "untyped error",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   model.ErrCodeInternal,
			wantDetail: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			problem := MapServiceError(context.Background(), tt.err)
			if problem == nil {
				t.Fatal("expected problem, got nil")
			}
			if problem.Status != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, problem.Status)
			}
			if problem.Code != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, problem.Code)
			}
			if problem.Detail != tt.wantDetail {
				t.Errorf("expected detail %q, got %q", tt.wantDetail, problem.Detail)
			}
		})
	}
}

func TestMapServiceError_Nil(t *testing.T) {
	t.Parallel()

	if problem := MapServiceError(context.Background(), nil); problem != nil {
		t.Errorf("expected nil, got %+v", problem)
	}
}

func TestMapServiceError_ValidationCarriesField(t *testing.T) {
	t.Parallel()

	problem := MapServiceError(context.Background(), model.NewValidationError("assignedTo", model.MsgAssignedToTooLong))
	if len(problem.Errors) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(problem.Errors))
	}
	if problem.Errors[0].Field != "assignedTo" {
		t.Errorf("expected field assignedTo, got %q", problem.Errors[0].Field)
	}
}
