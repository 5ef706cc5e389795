// Package repository defines error values shared across the individual
// repositories. These sentinels let handlers and services distinguish
// failure scenarios without string matching. For example, ErrSlotTaken
// signals that another active reservation already occupies the requested
// table and slot, while ErrTableHasActiveReservations blocks deletion of
// a table that still has bookings on it.
package repository

import "errors"

// ErrTableNotFound is returned when no table matches the requested id or
// table number. Handlers should translate this into an HTTP 404 response.
var ErrTableNotFound = errors.New("table not found")

// ErrTableNumberExists is returned when creating a table whose table
// number collides with an existing one. Handlers should translate this
// into an HTTP 409 response.
var ErrTableNumberExists = errors.New("table number already exists")

// ErrReservationNotFound is returned when no reservation matches the
// requested id. Handlers should translate this into an HTTP 404 response.
var ErrReservationNotFound = errors.New("reservation not found")

// ErrSlotTaken is returned when a create would produce a second
// non-terminal reservation for the same (tableNumber, date, time) tuple.
// Handlers should translate this into an HTTP 409 response.
var ErrSlotTaken = errors.New("table already reserved for this slot")

// ErrTableHasActiveReservations is returned when a delete cannot proceed
// because pending, confirmed or seated reservations still reference the
// table. Handlers should translate this into an HTTP 409 response.
var ErrTableHasActiveReservations = errors.New("table has active reservations")

// ErrUserExists is returned when registering a user whose username or
// email is already taken. Handlers should translate this into an HTTP
// 409 response.
var ErrUserExists = errors.New("username or email already exists")

// ErrUserNotFound is returned when no user matches the requested id.
var ErrUserNotFound = errors.New("user not found")
