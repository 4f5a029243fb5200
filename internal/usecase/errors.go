package usecase

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrCandidateNotFound   = errors.New("candidate not found")
	ErrMissingResume       = errors.New("no resume file uploaded")
	ErrMissingIdentity     = errors.New("name and email are required")
	ErrFileTooLarge        = errors.New("resume file too large")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrAuthDisabled        = errors.New("recruiter auth is not configured")
	ErrInternal            = errors.New("internal error")
)
