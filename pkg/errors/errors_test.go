package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_StatusCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantCode string
		wantHTTP int
		sentinel error
	}{
		{"not found", NotFound("timesheet"), "NOT_FOUND", http.StatusNotFound, ErrNotFound},
		{"bad request", BadRequest("invalid week number"), "BAD_REQUEST", http.StatusBadRequest, ErrBadRequest},
		{"validation", Validation("invalid input", nil), "VALIDATION_FAILED", http.StatusUnprocessableEntity, ErrValidation},
		{"unauthorized", Unauthorized(""), "UNAUTHORIZED", http.StatusUnauthorized, ErrUnauthorized},
		{"forbidden", Forbidden(""), "FORBIDDEN", http.StatusForbidden, ErrForbidden},
		{"conflict", Conflict("week already submitted"), "CONFLICT", http.StatusConflict, ErrConflict},
		{"already exists", AlreadyExists("timesheet"), "ALREADY_EXISTS", http.StatusConflict, ErrAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", tt.err.Code, tt.wantCode)
			}
			if tt.err.StatusCode != tt.wantHTTP {
				t.Errorf("StatusCode = %d, want %d", tt.err.StatusCode, tt.wantHTTP)
			}
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestAppError_Wrap(t *testing.T) {
	cause := fmt.Errorf("sql: connection refused")
	err := Internal(cause)

	if !errors.Is(err, cause) {
		t.Error("wrapped cause should be reachable via errors.Is")
	}
	if err.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", err.StatusCode)
	}
}

func TestAsAppError(t *testing.T) {
	appErr := NotFound("project")
	wrapped := fmt.Errorf("service: %w", appErr)

	got := AsAppError(wrapped)
	if got.Code != "NOT_FOUND" {
		t.Errorf("Code = %q, want NOT_FOUND", got.Code)
	}

	plain := errors.New("boom")
	got = AsAppError(plain)
	if got.Code != "INTERNAL_ERROR" {
		t.Errorf("Code = %q, want INTERNAL_ERROR", got.Code)
	}
	if !errors.Is(got, plain) {
		t.Error("plain error should be wrapped as cause")
	}
}

func TestAppError_WithDetails(t *testing.T) {
	err := Validation("invalid hours", nil).WithDetails(map[string]string{"monday": "must be between 0 and 24"})
	details, ok := err.Details.(map[string]string)
	if !ok {
		t.Fatalf("Details type = %T, want map[string]string", err.Details)
	}
	if details["monday"] == "" {
		t.Error("expected field detail for monday")
	}
}
