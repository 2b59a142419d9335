package repository

import (
	"seat-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Hall HallRepository
	Seat SeatRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Hall: NewHallRepository(db, log),
		Seat: NewSeatRepository(db, log),
	}
}
