package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAppErrorWrapsCause(t *testing.T) {
	cause := errors.New("boom")
	appErr := NewAppError("INTERNAL", "something broke", http.StatusInternalServerError, cause)

	if appErr.Error() != "boom" {
		t.Fatalf("expected cause message, got %q", appErr.Error())
	}
	if !errors.Is(appErr, cause) {
		t.Fatal("expected Unwrap to expose the cause")
	}
	if !IsAppError(fmt.Errorf("wrapped: %w", appErr)) {
		t.Fatal("expected IsAppError to see through wrapping")
	}
	if IsAppError(cause) {
		t.Fatal("plain errors must not look like AppErrors")
	}
}

func TestJSONFromError(t *testing.T) {
	appErr := NewAppError("NOT_FOUND", "nothing here", http.StatusNotFound, nil)

	rr := httptest.NewRecorder()
	JSONFromError(rr, fmt.Errorf("lookup: %w", appErr))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rr.Code)
	}
	var resp struct {
		Error ErrorBody `json:"error"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error.Code != "NOT_FOUND" || resp.Error.Message != "nothing here" {
		t.Fatalf("unexpected error body %+v", resp.Error)
	}

	rr2 := httptest.NewRecorder()
	JSONFromError(rr2, errors.New("db exploded"))
	if rr2.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rr2.Code)
	}
	if err := json.Unmarshal(rr2.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error.Code != "INTERNAL" || resp.Error.Message == "db exploded" {
		t.Fatalf("internal detail leaked: %+v", resp.Error)
	}
}
