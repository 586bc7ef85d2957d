package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrConflict          = errors.New("conflict")
	ErrAlreadyClosed     = errors.New("shift already closed")
	ErrAlreadyCancelled  = errors.New("sale already cancelled")
	ErrNoActiveShift     = errors.New("no active shift")
	ErrForbidden         = errors.New("forbidden")
	ErrInternal          = errors.New("internal error")
)

var known = []error{
	ErrValidation,
	ErrNotFound,
	ErrInsufficientStock,
	ErrConflict,
	ErrAlreadyClosed,
	ErrAlreadyCancelled,
	ErrNoActiveShift,
	ErrForbidden,
	ErrInternal,
}

// Kind returns the taxonomy sentinel err belongs to, or ErrInternal.
func Kind(err error) error {
	for _, sentinel := range known {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}
	return ErrInternal
}

// Classify leaves taxonomy errors untouched and wraps anything else
// (storage, transport, timeouts) as ErrInternal.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if Kind(err) != ErrInternal || errors.Is(err, ErrInternal) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrInternal, err)
}

// Code is the stable category name shown to terminals.
func Code(err error) string {
	switch Kind(err) {
	case ErrValidation:
		return "validation_error"
	case ErrNotFound:
		return "not_found"
	case ErrInsufficientStock:
		return "insufficient_stock"
	case ErrConflict:
		return "conflict"
	case ErrAlreadyClosed:
		return "already_closed"
	case ErrAlreadyCancelled:
		return "already_cancelled"
	case ErrNoActiveShift:
		return "no_active_shift"
	case ErrForbidden:
		return "forbidden"
	default:
		return "internal_error"
	}
}

func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
