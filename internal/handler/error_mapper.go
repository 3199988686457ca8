package handler

import (
	"context"
	"log/slog"

	"github.com/forgo/todos/api/internal/middleware"
	"github.com/forgo/todos/api/internal/model"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This is the only place an error kind becomes an HTTP status. Internal
// errors are logged here and answered with a generic message.
func MapServiceError(ctx context.Context, err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	e, ok := model.AsError(err)
	if !ok {
		return internalProblem(ctx, err)
	}

	switch e.Kind {
	// ===== Caller Errors → 400 =====
	case model.KindValidation:
		return model.NewValidationProblem(e.Field, e.Message)
	case model.KindInvalidInput:
		return model.NewBadRequestProblem(e.Message)
	case model.KindInvalidFilter:
		return model.NewInvalidFilterProblem(e.Message)

	// ===== Not Found → 404 =====
	case model.KindNotFound:
		return model.NewNotFoundProblem(e.Message)

	// ===== Everything Else → 500 =====
	default:
		return internalProblem(ctx, err)
	}
}

func internalProblem(ctx context.Context, err error) *model.ProblemDetails {
	slog.ErrorContext(ctx, "unhandled service error",
		slog.String("error", err.Error()),
		slog.String("request_id", middleware.GetRequestID(ctx)),
	)
	return model.NewInternalProblem("")
}
