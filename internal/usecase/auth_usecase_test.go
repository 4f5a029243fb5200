package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"rerank/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

func newAuth(t *testing.T) *Auth {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	svc := jwt.NewHMACService("access-secret", "refresh-secret", time.Minute, time.Hour)
	return NewAuthUsecase(RecruiterCredentials{Email: " Recruiter@Example.com ", PasswordHash: string(hash)}, svc)
}

func TestAuth_LoginAndRefresh(t *testing.T) {
	uc := newAuth(t)
	ctx := context.Background()

	if !uc.Enabled() {
		t.Fatalf("expected auth to be enabled")
	}

	tokens, err := uc.Login(ctx, "recruiter@example.com", "s3cret")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Fatalf("expected both tokens, got %+v", tokens)
	}

	refreshed, err := uc.Refresh(ctx, tokens.RefreshToken)
	if err != nil {
		t.Fatalf("unexpected refresh err: %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Fatalf("expected a new access token")
	}

	if _, err := uc.Refresh(ctx, tokens.AccessToken); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("access token must not refresh, got %v", err)
	}
	if _, err := uc.Refresh(ctx, ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuth_LoginRejections(t *testing.T) {
	uc := newAuth(t)
	ctx := context.Background()

	tests := []struct {
		name, email, password string
	}{
		{name: "wrong password", email: "recruiter@example.com", password: "nope"},
		{name: "wrong email", email: "other@example.com", password: "s3cret"},
		{name: "empty", email: "", password: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.Login(ctx, tt.email, tt.password); !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestAuth_Disabled(t *testing.T) {
	uc := NewAuthUsecase(RecruiterCredentials{}, nil)
	if uc.Enabled() {
		t.Fatalf("expected auth to be disabled")
	}
	if _, err := uc.Login(context.Background(), "a@b.c", "x"); !errors.Is(err, ErrAuthDisabled) {
		t.Fatalf("expected ErrAuthDisabled, got %v", err)
	}
}
