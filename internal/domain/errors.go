package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrNoAvailableSlots   = errors.New("no available slots")
	ErrHoldAlreadyTaken   = errors.New("tour is already on hold for this email")
	ErrBookingNotPending  = errors.New("booking is not pending")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
