// Package repository holds the in-memory catalog and booking ledger.
// This file defines the sentinel errors shared across the package.
// Handlers translate them into HTTP statuses: not-found sentinels map
// to 404, invalid input to 400 and booking conflicts to 409.
package repository

import "errors"

// ErrUserNotFound is returned when a user id cannot be resolved and
// resolution is mandatory (direct lookups, booking creation).
var ErrUserNotFound = errors.New("user not found")

// ErrUnitNotFound is returned when no unit with the requested id
// exists in any campsite.  Booking creation treats this as a hard
// failure; the ledger never fabricates a booking for an unknown unit.
var ErrUnitNotFound = errors.New("unit not found")

// ErrUserExists is returned when registering a user under an id that
// is already taken.
var ErrUserExists = errors.New("user already exists")

// ErrInvalidInput is returned for malformed booking requests: a
// check-out date that is not after check-in, or a guest count outside
// the unit's capacity.  Callers wrap it with a specific message.
var ErrInvalidInput = errors.New("invalid input")

// ErrBookingConflict is returned when a CONFIRMED booking for the same
// unit overlaps the requested [check_in, check_out) interval.
var ErrBookingConflict = errors.New("booking conflict")
