// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import "errors"

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Erro de validação", Fields: fields}
}

// Sentinel errors classifying service failures. Handlers map them to HTTP
// statuses; services wrap them with context via fmt.Errorf("…: %w", …).
var (
	// ErrValidation marks bad or missing required input (empty payment
	// method, malformed item payload, reopening a past-day register).
	ErrValidation = errors.New("entrada inválida")

	// ErrNotFound marks a reference to a nonexistent record where
	// existence is required (product, quotation).
	ErrNotFound = errors.New("registro não encontrado")

	// ErrDegraded marks a non-critical read that failed at the storage
	// layer; callers surface an advisory and an empty result set instead
	// of a hard failure.
	ErrDegraded = errors.New("armazenamento indisponível")
)
