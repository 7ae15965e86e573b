// Package service implements the reservation and fare subsystem:
// account management with explicit sessions, fare computation, ticket
// purchase and the in-memory mirror of the persisted tables. The
// sentinel errors below are the full taxonomy surfaced to the
// interactive loop; all of them are recoverable there.
package service

import (
	"errors"
	"fmt"

	"github.com/alfikriangelo/rail-ticket-reservation/internal/model"
)

var (
	// ErrDuplicateUsername is returned by CreateAccount when the
	// username is already taken, whether the duplicate was caught in
	// the mirror or by the store's key constraint.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrUnknownUser is returned by Login for a username with no
	// account.
	ErrUnknownUser = errors.New("unknown user")

	// ErrInvalidCredentials is returned by Login when the password
	// does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotAuthenticated is returned by any authorized operation
	// given a session that is missing, expired, tampered with or
	// already logged out.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrInvalidRoute is returned by Purchase when origin and
	// destination are the same station.
	ErrInvalidRoute = errors.New("origin and destination must differ")

	// ErrInvalidPassengerCount is returned by Purchase for an empty
	// passenger batch.
	ErrInvalidPassengerCount = errors.New("at least one passenger is required")
)

// PartialBookingError reports a ticket batch write that failed
// partway. Batch writes are not atomic: rows inserted before the
// failure stay persisted, and Succeeded lists exactly those rows so
// the caller can tell the user which bookings went through.
type PartialBookingError struct {
	Succeeded []model.Ticket
	Cause     error
}

func (e *PartialBookingError) Error() string {
	return fmt.Sprintf("booking failed after %d ticket(s) were written: %v",
		len(e.Succeeded), e.Cause)
}

func (e *PartialBookingError) Unwrap() error { return e.Cause }
