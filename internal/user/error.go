package user

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidRole     = errors.New("invalid role")
	ErrUnauthenticated = errors.New("unauthenticated")
)
