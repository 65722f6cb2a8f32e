package auth

import "errors"

var (
	ErrEmailAlreadyExists    = errors.New("email already registered")
	ErrUsernameAlreadyExists = errors.New("username already taken")
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrUserNotFound          = errors.New("user not found")
	ErrRefreshTokenRequired  = errors.New("refresh token required")
	ErrInvalidRefreshToken   = errors.New("invalid refresh token")
	ErrStoreUnavailable      = errors.New("user store unavailable")
)
