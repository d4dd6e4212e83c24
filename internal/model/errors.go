package model

import "errors"

var (
	// User related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Token related errors
	ErrTokenRequired = errors.New("token required")
	ErrInvalidToken  = errors.New("invalid token")

	// Car related errors
	ErrCarNotFound = errors.New("car not found")
)
