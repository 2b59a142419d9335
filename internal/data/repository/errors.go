package repository

import "errors"

var (
	// ErrSeatNotFound is returned when an update matched no seat row.
	ErrSeatNotFound = errors.New("seat not found")
	// ErrSeatTaken is returned when a seat exists but is no longer available.
	ErrSeatTaken = errors.New("seat already taken")
)
