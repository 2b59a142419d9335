package request

// ReleaseSeatRequest puts a seat back on sale. The pointer lets an empty
// seat id through while still rejecting a missing field.
type ReleaseSeatRequest struct {
	SeatID *string `json:"seat_id" validate:"required,max=50"`
}
