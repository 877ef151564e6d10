package domain

import "errors"

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrFlightNotFound   = errors.New("flight not found")
	ErrAirplaneNotFound = errors.New("airplane not found")
	ErrAirportNotFound  = errors.New("airport not found")
	ErrWalletNotFound   = errors.New("wallet not found")
	ErrUserNotFound     = errors.New("user not found")
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrAlreadyCancelled  = errors.New("booking is already cancelled")
	ErrBookingNotPending = errors.New("booking is not pending")
	ErrNoAvailableSeats  = errors.New("no available seats on flight")
)

var (
	ErrEmailTaken  = errors.New("email is already registered")
	ErrBadPassword = errors.New("invalid email or password")
	ErrForbidden   = errors.New("operation not allowed for this user")
	ErrValidation  = errors.New("validation error")
)
