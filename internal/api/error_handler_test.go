package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/wattline/energy-tracker/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, map[string]string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(err, c)

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec.Code, body
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidInput, http.StatusBadRequest},
		{fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput), http.StatusBadRequest},
		{domain.ErrInvalidOTP, http.StatusBadRequest},
		{domain.ErrIdentityNotFound, http.StatusNotFound},
		{domain.ErrOTPThrottled, http.StatusTooManyRequests},
		{domain.ErrApplianceNotFound, http.StatusNotFound},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrNotifierFailed, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		code, body := renderError(t, tc.err)
		if code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, code)
		}
		if body["error"] == "" {
			t.Fatalf("%v: expected error message in envelope, got %+v", tc.err, body)
		}
	}
}

func TestHTTPErrorHandler_InvalidInputMessagePreserved(t *testing.T) {
	wrapped := fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
	_, body := renderError(t, wrapped)
	if body["error"] != wrapped.Error() {
		t.Fatalf("validation detail lost: %+v", body)
	}
}

func TestHTTPErrorHandler_EchoErrorPassthrough(t *testing.T) {
	code, body := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token"))
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if body["error"] != "missing bearer token" {
		t.Fatalf("unexpected message: %+v", body)
	}
}

func TestHTTPErrorHandler_UnknownError(t *testing.T) {
	code, body := renderError(t, errors.New("mongo fell over"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if body["error"] != "internal server error" {
		t.Fatalf("internal detail leaked: %+v", body)
	}
}

func TestHTTPErrorHandler_CommittedResponseUntouched(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := c.NoContent(http.StatusOK); err != nil {
		t.Fatalf("prime response: %v", err)
	}

	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(errors.New("late failure"), c)

	if rec.Code != http.StatusOK {
		t.Fatalf("committed response was rewritten: %d", rec.Code)
	}
}
