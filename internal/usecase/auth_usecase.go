package usecase

import (
	"context"
	"errors"
	"strings"

	"rerank/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RecruiterCredentials is the single recruiter account allowed to mutate
// candidates. PasswordHash is a bcrypt hash.
type RecruiterCredentials struct {
	Email        string
	PasswordHash string
}

type AuthUsecase interface {
	Enabled() bool
	Login(ctx context.Context, email, password string) (Tokens, error)
	Refresh(ctx context.Context, refreshToken string) (Tokens, error)
}

type Auth struct {
	creds RecruiterCredentials
	jwt   jwt.Service
}

// NewAuthUsecase returns an auth usecase. With no jwt service or no
// credentials it reports Enabled() == false and refuses every login.
func NewAuthUsecase(creds RecruiterCredentials, jwtSvc jwt.Service) *Auth {
	creds.Email = normalizeEmail(creds.Email)
	creds.PasswordHash = strings.TrimSpace(creds.PasswordHash)
	return &Auth{creds: creds, jwt: jwtSvc}
}

func (u *Auth) Enabled() bool {
	return u != nil && u.jwt != nil && u.creds.Email != "" && u.creds.PasswordHash != ""
}

func (u *Auth) Login(_ context.Context, email, password string) (Tokens, error) {
	if !u.Enabled() {
		return Tokens{}, ErrAuthDisabled
	}
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return Tokens{}, ErrInvalidCredentials
	}
	if email != u.creds.Email {
		return Tokens{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.creds.PasswordHash), []byte(password)); err != nil {
		return Tokens{}, ErrInvalidCredentials
	}
	return u.issue(email)
}

func (u *Auth) Refresh(_ context.Context, refreshToken string) (Tokens, error) {
	if !u.Enabled() {
		return Tokens{}, ErrAuthDisabled
	}
	if refreshToken == "" {
		return Tokens{}, ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Tokens{}, ErrRefreshTokenExpired
		}
		return Tokens{}, ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) {
		return Tokens{}, ErrInvalidRefreshToken
	}
	if normalizeEmail(claims.Email) != u.creds.Email {
		return Tokens{}, ErrInvalidRefreshToken
	}

	return u.issue(u.creds.Email)
}

func (u *Auth) issue(subject string) (Tokens, error) {
	access, err := u.jwt.GenerateAccessToken(subject)
	if err != nil {
		return Tokens{}, ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(subject)
	if err != nil {
		return Tokens{}, ErrInternal
	}
	return Tokens{AccessToken: access, RefreshToken: refresh}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
