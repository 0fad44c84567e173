package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/surveykit/questionnaire/internal/core/domain"
	"github.com/surveykit/questionnaire/internal/core/ports"
)

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubUserService{
		createUserFn: func(ctx context.Context, email, password string, extra ports.UserFields) (*domain.User, error) {
			if email != "Alice@EXAMPLE.com" || password != "secret" || extra.Name != "Alice" {
				t.Fatalf("unexpected args: %s %s %+v", email, password, extra)
			}
			return &domain.User{ID: 1, Email: "Alice@example.com", Name: "Alice", IsActive: true, PasswordHash: "hash"}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newContext(http.MethodPost, "/auth/register", `{"email":"Alice@EXAMPLE.com","password":"secret","name":"Alice"}`, 0, "")
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}

	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["email"] != "Alice@example.com" || user["is_active"] != true {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Fatalf("password hash must not be serialized")
	}
}

func TestAuthHandler_Register_ServiceErrorsPassThrough(t *testing.T) {
	for _, want := range []error{domain.ErrUserExists, domain.ErrEmailRequired} {
		stub := &stubUserService{
			createUserFn: func(context.Context, string, string, ports.UserFields) (*domain.User, error) {
				return nil, want
			},
		}
		c, _ := newContext(http.MethodPost, "/auth/register", `{"email":"bob@example.com"}`, 0, "")

		if err := NewAuthHandler(stub).Register(c); !errors.Is(err, want) {
			t.Fatalf("expected %v, got %v", want, err)
		}
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	stub := &stubUserService{
		createUserFn: func(context.Context, string, string, ports.UserFields) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}

	c, _ := newContext(http.MethodPost, "/auth/register", "not-json", 0, "")
	assertHTTPError(t, NewAuthHandler(stub).Register(c), http.StatusBadRequest)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubUserService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			if email != "alice@example.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", &domain.User{ID: 1, Email: email}, nil
		},
	}

	c, rec := newContext(http.MethodPost, "/auth/login", `{"email":"alice@example.com","password":"secret"}`, 0, "")
	if err := NewAuthHandler(stub).Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubUserService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}

	c, _ := newContext(http.MethodPost, "/auth/login", `{"email":"alice@example.com","password":"bad"}`, 0, "")
	if err := NewAuthHandler(stub).Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	stub := &stubUserService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}

	c, _ := newContext(http.MethodPost, "/auth/login", "{", 0, "")
	assertHTTPError(t, NewAuthHandler(stub).Login(c), http.StatusBadRequest)
}
