package services

import "errors"

// Error kinds. Handlers map them to HTTP statuses with errors.Is.
var (
	ErrValidation         = errors.New("validation error")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AppError carries a client-safe message alongside its kind.
type AppError struct {
	Kind    error
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Kind
}

func NewValidationError(message string) error {
	return &AppError{Kind: ErrValidation, Message: message}
}

func NewNotFoundError(message string) error {
	return &AppError{Kind: ErrNotFound, Message: message}
}

func NewConflictError(message string) error {
	return &AppError{Kind: ErrConflict, Message: message}
}

func NewInvalidCredentialsError(message string) error {
	return &AppError{Kind: ErrInvalidCredentials, Message: message}
}
