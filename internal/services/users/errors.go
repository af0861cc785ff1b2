package users

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrDuplicateUser      = errors.New("username or email already registered")
	ErrAccountDisabled    = errors.New("account is disabled")
)
