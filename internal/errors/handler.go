package errors

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net/http"

	"cafecast/internal/dataprocessing"
	"cafecast/internal/middleware"
)

// ErrorHandler converts pipeline and transport errors into RFC 7807
// responses and logs them with request context.
type ErrorHandler struct {
	logger *slog.Logger
}

// NewErrorHandler creates a new error handler.
func NewErrorHandler(logger *slog.Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger.With(slog.String("component", "error_handler"))}
}

// HandleError renders err as a problem-details response.
func (h *ErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	h.logger.ErrorContext(r.Context(), "request failed",
		slog.String("error", err.Error()),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)

	problem := h.ErrorToProblem(err, r)
	problem.WithExtension("trace_id", middleware.GetRequestID(r.Context()))

	// written directly: chi/render's JSON responder forces its own
	// Content-Type, and problem documents carry their own media type
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(problem.Status)
	if encodeErr := json.NewEncoder(w).Encode(problem); encodeErr != nil {
		h.logger.ErrorContext(r.Context(), "failed to write problem response",
			slog.String("error", encodeErr.Error()))
	}
}

// ErrorToProblem maps an error to its RFC 7807 representation. Schema
// and cell-format failures from the pipeline become 422s carrying the
// offending detail; everything unrecognized is a 500.
func (h *ErrorHandler) ErrorToProblem(err error, r *http.Request) *ProblemDetails {
	if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(err, context.Canceled) {
		return NewProblemDetails(
			http.StatusGatewayTimeout,
			TypeTimeout,
			"Request Timeout",
			"The request took too long to process and was cancelled",
			r.URL.Path,
		)
	}

	var problem *ProblemDetails
	if stderrors.As(err, &problem) {
		return problem
	}

	var schemaErr *dataprocessing.SchemaError
	if stderrors.As(err, &schemaErr) {
		return NewProblemDetails(
			http.StatusUnprocessableEntity,
			TypeSchema,
			"Unresolvable Columns",
			schemaErr.Error(),
			r.URL.Path,
		).WithExtension("missing_columns", schemaErr.MissingRoles)
	}

	var dateErr *dataprocessing.DateParseError
	if stderrors.As(err, &dateErr) {
		return cellProblem(dateErr.Error(), dateErr.Row, r)
	}

	var moneyErr *dataprocessing.MoneyParseError
	if stderrors.As(err, &moneyErr) {
		return cellProblem(moneyErr.Error(), moneyErr.Row, r)
	}

	return NewProblemDetails(
		http.StatusInternalServerError,
		TypeInternal,
		"Internal Server Error",
		"An unexpected error occurred while processing the request",
		r.URL.Path,
	)
}

func cellProblem(detail string, row int, r *http.Request) *ProblemDetails {
	return NewProblemDetails(
		http.StatusUnprocessableEntity,
		TypeMalformedCell,
		"Malformed Cell",
		detail,
		r.URL.Path,
	).WithExtension("row", row)
}
