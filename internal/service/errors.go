package service

import "errors"

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrExpenseNotFound    = errors.New("expense not found")

	// ErrLLMUnavailable is returned by the text-generation backend when no
	// API key is configured. It never crosses the service boundary; the
	// categorizer and advisor translate it into their fallback values.
	ErrLLMUnavailable = errors.New("llm backend is not configured")
)
