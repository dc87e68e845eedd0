package services

import (
	"errors"
	"fmt"

	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/repository"
)

// errors controllers switch on
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("not authorized")
	ErrUnauthenticated    = errors.New("sign in required")
	ErrCartEmpty          = errors.New("cart is empty")
	ErrPaymentFailed      = errors.New("payment was not confirmed")
	ErrInvalidTransition  = errors.New("order cannot move to that status")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrItemUnavailable    = errors.New("menu item is not available")
	ErrRestaurantClosed   = errors.New("restaurant is closed")
	ErrCodeTaken          = errors.New("promotion code already exists")
	ErrPromotionInvalid   = errors.New("promotion cannot be applied")
)

// ValidationError is a user facing complaint about input. No write happened.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string { return e.Message }
func (e *ValidationError) Unwrap() error { return e.Err }

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// storeErr maps repository errors onto service errors and adds context.
func storeErr(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}
