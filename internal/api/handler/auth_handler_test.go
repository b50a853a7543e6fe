package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/wattline/energy-tracker/internal/core/ports"
)

type stubAuthService struct {
	requestFn func(ctx context.Context, name, email string) error
	verifyFn  func(ctx context.Context, email, otp string) (*ports.VerifyResult, error)
}

func (s *stubAuthService) RequestOTP(ctx context.Context, name, email string) error {
	return s.requestFn(ctx, name, email)
}

func (s *stubAuthService) VerifyOTP(ctx context.Context, email, otp string) (*ports.VerifyResult, error) {
	return s.verifyFn(ctx, email, otp)
}

func newAuthTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_RequestOTP_Success(t *testing.T) {
	stub := &stubAuthService{
		requestFn: func(ctx context.Context, name, email string) error {
			if name != "Alice" || email != "a@x.com" {
				t.Fatalf("unexpected args: %s %s", name, email)
			}
			return nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthTestContext(t, `{"name":"Alice","email":"a@x.com"}`)
	if err := handler.RequestOTP(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] == "" {
		t.Fatalf("expected confirmation message, got %+v", resp)
	}
}

func TestAuthHandler_RequestOTP_MissingFields(t *testing.T) {
	stub := &stubAuthService{
		requestFn: func(ctx context.Context, name, email string) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newAuthTestContext(t, `{"name":"Alice"}`)
	err := handler.RequestOTP(c)

	var he *echo.HTTPError
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if ok := errors.As(err, &he); !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_RequestOTP_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		requestFn: func(ctx context.Context, name, email string) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newAuthTestContext(t, "not-json")
	err := handler.RequestOTP(c)

	var he *echo.HTTPError
	if ok := errors.As(err, &he); !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_VerifyOTP_Success(t *testing.T) {
	stub := &stubAuthService{
		verifyFn: func(ctx context.Context, email, otp string) (*ports.VerifyResult, error) {
			if email != "a@x.com" || otp != "1234" {
				t.Fatalf("unexpected args: %s %s", email, otp)
			}
			return &ports.VerifyResult{Token: "token123", UserID: "user_1", Name: "Alice", Email: email}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newAuthTestContext(t, `{"email":"a@x.com","otp":"1234"}`)
	if err := handler.VerifyOTP(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" || resp["user_id"] != "user_1" || resp["name"] != "Alice" || resp["email"] != "a@x.com" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_VerifyOTP_ShortCode(t *testing.T) {
	stub := &stubAuthService{
		verifyFn: func(ctx context.Context, email, otp string) (*ports.VerifyResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newAuthTestContext(t, `{"email":"a@x.com","otp":"12"}`)
	err := handler.VerifyOTP(c)

	var he *echo.HTTPError
	if ok := errors.As(err, &he); !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
