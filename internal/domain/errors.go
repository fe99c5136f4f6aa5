package domain

import "errors"

var (
	ErrMenuItemNotFound     = errors.New("menu item not found")
	ErrTableNotFound        = errors.New("table not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrDuplicateTableNumber = errors.New("table number already in use")
	ErrInvalidTransition    = errors.New("order status transition not allowed")
)

// IsNotFound reports whether err means a referenced entity does not exist,
// regardless of which store raised it.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrMenuItemNotFound) ||
		errors.Is(err, ErrTableNotFound) ||
		errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrPaymentNotFound)
}

// ValidationError communicates rule violations back to the caller without
// touching any state.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string { return e.Message }

func NewValidationError(msg string) error {
	return ValidationError{Message: msg}
}

// IsValidation helps callers distinguish business rule failures from
// infrastructure ones.
func IsValidation(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}
