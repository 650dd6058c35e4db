package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"bad request", BadRequest("bad"), http.StatusBadRequest},
		{"validation", Validation("invalid", []string{"name is required"}), http.StatusBadRequest},
		{"unauthorized", Unauthorized("nope"), http.StatusUnauthorized},
		{"not found", NotFound("missing"), http.StatusNotFound},
		{"internal", Internal("boom"), http.StatusInternalServerError},
		{"database", Database(errors.New("connection reset")), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("share: %w", NotFound("missing")), http.StatusNotFound},
		{"plain", errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := StatusOf(tc.err); got != tc.want {
			t.Fatalf("%s: expected status %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestDatabaseErrorHidesCause(t *testing.T) {
	cause := errors.New("pq: relation does not exist")
	err := Database(cause)

	if err.Message != DatabaseMessage {
		t.Fatalf("expected generic message, got %q", err.Message)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be reachable through Unwrap")
	}
}

func TestValidationCopiesViolations(t *testing.T) {
	violations := []string{"name is required"}
	err := Validation("folder is invalid", violations)
	violations[0] = "changed"

	if err.Errors[0] != "name is required" {
		t.Fatalf("expected violations to be copied, got %v", err.Errors)
	}
	if !IsKind(err, KindValidation) {
		t.Fatalf("expected validation kind")
	}
}

func TestSentinelIdentity(t *testing.T) {
	sentinel := NotFound("travel band not found")
	wrapped := fmt.Errorf("lookup: %w", sentinel)

	if !errors.Is(wrapped, sentinel) {
		t.Fatalf("expected errors.Is to match the sentinel")
	}
	if errors.Is(wrapped, NotFound("travel band not found")) {
		t.Fatalf("distinct values with the same message must not match")
	}
}
