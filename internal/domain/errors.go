package domain

import "errors"

// User store errors
var (
	ErrUserNotFound = errors.New("user not found")
	ErrNameTaken    = errors.New("username already used")
	ErrEmailTaken   = errors.New("email already used")
)

// Auth and session errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSession          = errors.New("no active session")
	ErrSessionStore       = errors.New("session store failure")
)
