package errs

import (
	"errors"
	"net/http"
	"testing"
)

func TestConstructorsWrapSentinels(t *testing.T) {
	cases := []struct {
		err    *AppError
		kind   error
		status int
	}{
		{NotFound(CodeFarmNotFound, "farm not found"), ErrNotFound, http.StatusNotFound},
		{Forbidden(CodeOwnerOnly, "owner only"), ErrForbidden, http.StatusForbidden},
		{Validation(CodeNegativeSize, "bad size"), ErrValidation, http.StatusBadRequest},
		{Conflict(CodeManagerExists, "already there"), ErrConflict, http.StatusConflict},
		{Storage(CodeStorageFailure, "boom", errors.New("driver")), ErrStorage, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if !errors.Is(c.err, c.kind) {
			t.Fatalf("%s does not wrap %v", c.err.Code, c.kind)
		}
		if c.err.HTTPStatus != c.status {
			t.Fatalf("%s status = %d, want %d", c.err.Code, c.err.HTTPStatus, c.status)
		}
	}
}

func TestWithParamsCarriesContext(t *testing.T) {
	err := Validation(CodeFieldNameTaken, "name taken").
		WithParams(map[string]any{"name": "North-40"})
	if err.Params["name"] != "North-40" {
		t.Fatalf("Params = %v", err.Params)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("WithParams must keep the sentinel chain")
	}
}

func TestStorageKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Storage(CodeStorageFailure, "query failed", cause)
	if !errors.Is(err, cause) {
		t.Fatal("Storage must chain the cause")
	}
	if got := err.Error(); got == "" {
		t.Fatal("Error() must render code and message")
	}
}
