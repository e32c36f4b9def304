package service

import (
	"errors"
	"fmt"
)

// Error taxonomy for the job lifecycle and inventory operations. Handlers
// map each class to a distinct HTTP status and message.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("conflict")
)

// InsufficientStockError is returned when a part's stock cannot cover a
// requested consumption. It carries the part name and remaining quantity
// for user display.
type InsufficientStockError struct {
	PartName  string
	Remaining int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: only %d remaining", e.PartName, e.Remaining)
}

func validationErr(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func notFoundErr(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func forbiddenErr(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrForbidden, fmt.Sprintf(format, args...))
}
