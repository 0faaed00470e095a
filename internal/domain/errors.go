package domain

import "errors"

var (
	ErrNotFound              = errors.New("not found")
	ErrInvalidReference      = errors.New("invalid reference")
	ErrInsufficientFunds     = errors.New("insufficient funds")
	ErrInvalidTransition     = errors.New("invalid status transition")
	ErrInvalidDiscount       = errors.New("discount must be a fraction in [0,1)")
	ErrDuplicateRegistration = errors.New("username already registered")
)
