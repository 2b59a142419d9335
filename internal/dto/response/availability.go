package response

type AvailabilityResponse struct {
	HallID         string `json:"hall_id"`
	AvailableCount int    `json:"available_count"`
}

// ReservationResponse reports the outcome of a reserve call. SeatID is null
// and Reserved false when the hall had nothing left.
type ReservationResponse struct {
	HallID         string  `json:"hall_id"`
	Reserved       bool    `json:"reserved"`
	SeatID         *string `json:"seat_id"`
	AvailableCount int     `json:"available_count"`
}
