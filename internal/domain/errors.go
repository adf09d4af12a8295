package domain

import "errors"

var (
	ErrVenueNotFound    = errors.New("venue not found")
	ErrActivityNotFound = errors.New("activity not found")
	ErrSessionNotFound  = errors.New("session not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrBookingNotFound  = errors.New("booking not found")
)

var (
	ErrInsufficientCapacity  = errors.New("insufficient remaining capacity")
	ErrSessionClosed         = errors.New("session is closed for booking")
	ErrBookingNotCancellable = errors.New("booking cannot be cancelled in its current state")
	ErrInvalidTransition     = errors.New("invalid booking state transition")
	ErrGenerationInProgress  = errors.New("session generation already running for this activity")
	ErrCustomerResolution    = errors.New("customer resolution failed")
	ErrCustomerExists        = errors.New("customer already exists for this organization")
)

var (
	ErrValidation = errors.New("validation error")
)
