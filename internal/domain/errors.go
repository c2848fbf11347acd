package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientFunds is returned when a buy costs more than the
	// portfolio's available money.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInsufficientAssets is returned when a sell requests more units
	// than the portfolio currently holds.
	ErrInsufficientAssets = errors.New("insufficient assets")

	// ErrUnauthenticated is returned when a credential cannot be resolved
	// to a user account.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrInvalidCredentials is returned on a failed username/password
	// check at login.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError rejects bad input before any state change.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) error {
	return ValidationError{Field: field, Reason: reason}
}

func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
