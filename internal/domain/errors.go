package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrDuplicate         = errors.New("duplicate resource")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// NotFoundError recurso inexistente. Error() es apto para el cliente ("Product not found").
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

// Unwrap permite errors.Is(err, ErrNotFound).
func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NotFound construye un *NotFoundError.
func NotFound(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError entrada inválida. Field es el nombre JSON del campo si se conoce.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Invalid construye un *ValidationError sin campo asociado.
func Invalid(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// InvalidField construye un *ValidationError para un campo concreto.
func InvalidField(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// ConflictError choca con un recurso existente (SKU repetido, asociación repetida).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// Unwrap permite errors.Is(err, ErrDuplicate).
func (e *ConflictError) Unwrap() error { return ErrDuplicate }

// Conflict construye un *ConflictError.
func Conflict(message string) error {
	return &ConflictError{Message: message}
}

// InsufficientStockError indica que una salida dejaría la cantidad en negativo.
// Lleva el disponible y lo solicitado para que el cliente pueda reaccionar.
type InsufficientStockError struct {
	ProductID string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: available %d, requested %d",
		e.ProductID, e.Available, e.Requested)
}

// Unwrap permite errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
