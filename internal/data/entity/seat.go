package entity

import "github.com/google/uuid"

// Seat is a physical seat inside a hall. SeatNumber is the label that
// travels through the availability queue.
type Seat struct {
	Base
	HallID      uuid.UUID `db:"hall_id"`
	SeatNumber  string    `db:"seat_number"` // A1, A2, B1, ...
	SeatRow     string    `db:"seat_row"`
	SeatColumn  int       `db:"seat_column"`
	IsAvailable bool      `db:"is_available"`
}
